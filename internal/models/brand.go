package models

import (
	"time"
)

// Brand represents a company being marketed. A brand owns zero or more
// campaigns; deleting a brand deletes all of its campaigns.
type Brand struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"type:varchar(255);not null;index:idx_brands_company_name"`

	// Social profile
	InstagramHandle *string `json:"instagram_handle,omitempty" gorm:"type:varchar(255)"`
	TwitterHandle   *string `json:"twitter_handle,omitempty" gorm:"type:varchar(255)"`
	LinkedinURL     *string `json:"linkedin_url,omitempty" gorm:"type:text"`

	// Categorization
	Industry *string `json:"industry,omitempty" gorm:"type:varchar(255)"`
	Region   *string `json:"region,omitempty" gorm:"type:varchar(255)"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Campaigns []Campaign `json:"campaigns,omitempty" gorm:"foreignKey:BrandID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// CreateBrandRequest represents the request to create a new brand.
// Only company_name is required; handle and URL formats are not validated
// here, that is the caller's concern.
type CreateBrandRequest struct {
	CompanyName     string  `json:"company_name"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	TwitterHandle   *string `json:"twitter_handle,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	Region          *string `json:"region,omitempty"`
}

// BrandResponse represents the response for brand operations
type BrandResponse struct {
	ID              uint    `json:"id"`
	CompanyName     string  `json:"company_name"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	TwitterHandle   *string `json:"twitter_handle,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	Region          *string `json:"region,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToResponse converts a Brand to a BrandResponse
func (b *Brand) ToResponse() BrandResponse {
	return BrandResponse{
		ID:              b.ID,
		CompanyName:     b.CompanyName,
		InstagramHandle: b.InstagramHandle,
		TwitterHandle:   b.TwitterHandle,
		LinkedinURL:     b.LinkedinURL,
		Industry:        b.Industry,
		Region:          b.Region,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
