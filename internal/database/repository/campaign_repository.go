package repository

import (
	"github.com/brandforge/brandforge-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign. Fails with a foreign key violation if the
// referenced brand does not exist.
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByBrandID retrieves all campaigns owned by a brand
func (r *CampaignRepository) GetByBrandID(brandID uint) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("brand_id = ?", brandID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// GetByStatus retrieves all campaigns with the given status
func (r *CampaignRepository) GetByStatus(status string) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

// GetAll retrieves campaigns with pagination, newest first
func (r *CampaignRepository) GetAll(offset, limit int) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&campaigns).Error
	return campaigns, err
}

// Count returns the total number of campaigns
func (r *CampaignRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Count(&count).Error
	return count, err
}

// CountByBrandID returns the number of campaigns owned by a brand
func (r *CampaignRepository) CountByBrandID(brandID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Where("brand_id = ?", brandID).Count(&count).Error
	return count, err
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// UpdateFields applies a partial update to a campaign. Used for status
// changes and for writing the ai_brain / generated_content documents.
func (r *CampaignRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).Updates(fields).Error
}

// Delete deletes a campaign. The owning brand is not affected.
func (r *CampaignRepository) Delete(id uint) error {
	return r.db.Delete(&models.Campaign{}, "id = ?", id).Error
}
