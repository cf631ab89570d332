package models

import (
	"time"
)

// StatusDraft is the status a campaign starts in. The schema enforces no
// status enumeration or transition rules; the column is free text and any
// lifecycle semantics live in the calling application.
const StatusDraft = "draft"

// Campaign represents one marketing campaign belonging to exactly one brand.
type Campaign struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	BrandID uint `json:"brand_id" gorm:"not null;index:idx_campaigns_brand_id"`

	// Generation inputs
	ProductService *string `json:"product_service,omitempty" gorm:"type:varchar(255)"`
	ICP            *string `json:"icp,omitempty" gorm:"type:text"`
	Tone           *string `json:"tone,omitempty" gorm:"type:varchar(100)"`
	Description    *string `json:"description,omitempty" gorm:"type:text"`
	ContentType    *string `json:"content_type,omitempty" gorm:"type:varchar(255)"`

	// Semi-structured documents. Their internal shape is defined and
	// interpreted entirely by the calling application.
	AIBrain          JSON `json:"ai_brain,omitempty" gorm:"column:ai_brain;type:jsonb"`
	GeneratedContent JSON `json:"generated_content,omitempty" gorm:"type:jsonb"`

	Status    string    `json:"status" gorm:"type:varchar(50);default:'draft';index:idx_campaigns_status"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Brand Brand `json:"-" gorm:"foreignKey:BrandID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// CreateCampaignRequest represents the request to create a new campaign.
// Only brand_id is required; the brand must already exist.
type CreateCampaignRequest struct {
	BrandID        uint    `json:"brand_id"`
	ProductService *string `json:"product_service,omitempty"`
	ICP            *string `json:"icp,omitempty"`
	Tone           *string `json:"tone,omitempty"`
	Description    *string `json:"description,omitempty"`
	ContentType    *string `json:"content_type,omitempty"`
	AIBrain        JSON    `json:"ai_brain,omitempty"`
	Status         string  `json:"status,omitempty"`
}

// UpdateCampaignRequest represents the request to update a campaign.
// Nil fields are left untouched.
type UpdateCampaignRequest struct {
	ProductService   *string `json:"product_service,omitempty"`
	ICP              *string `json:"icp,omitempty"`
	Tone             *string `json:"tone,omitempty"`
	Description      *string `json:"description,omitempty"`
	ContentType      *string `json:"content_type,omitempty"`
	AIBrain          JSON    `json:"ai_brain,omitempty"`
	GeneratedContent JSON    `json:"generated_content,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// CampaignResponse represents the response for campaign operations
type CampaignResponse struct {
	ID               uint    `json:"id"`
	BrandID          uint    `json:"brand_id"`
	ProductService   *string `json:"product_service,omitempty"`
	ICP              *string `json:"icp,omitempty"`
	Tone             *string `json:"tone,omitempty"`
	Description      *string `json:"description,omitempty"`
	ContentType      *string `json:"content_type,omitempty"`
	AIBrain          JSON    `json:"ai_brain,omitempty"`
	GeneratedContent JSON    `json:"generated_content,omitempty"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

// ToResponse converts a Campaign to a CampaignResponse
func (c *Campaign) ToResponse() CampaignResponse {
	return CampaignResponse{
		ID:               c.ID,
		BrandID:          c.BrandID,
		ProductService:   c.ProductService,
		ICP:              c.ICP,
		Tone:             c.Tone,
		Description:      c.Description,
		ContentType:      c.ContentType,
		AIBrain:          c.AIBrain,
		GeneratedContent: c.GeneratedContent,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
}
