package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON is a semi-structured document stored in a jsonb column.
// The shape of the document is owned by the calling application;
// the store treats it as opaque.
type JSON map[string]interface{}

// Value implements driver.Valuer for writing the document to the database.
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for reading the document back.
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSON: %T", value)
	}

	return json.Unmarshal(data, j)
}
