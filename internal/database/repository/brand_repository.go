package repository

import (
	"github.com/brandforge/brandforge-backend/internal/models"

	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// GetByID retrieves a brand by ID
func (r *BrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetByCompanyName retrieves all brands with the given company name.
// company_name is indexed but not unique, so this can return several rows.
func (r *BrandRepository) GetByCompanyName(companyName string) ([]*models.Brand, error) {
	var brands []*models.Brand
	err := r.db.Where("company_name = ?", companyName).Order("created_at DESC").Find(&brands).Error
	return brands, err
}

// GetAll retrieves brands with pagination, newest first
func (r *BrandRepository) GetAll(offset, limit int) ([]*models.Brand, error) {
	var brands []*models.Brand
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&brands).Error
	return brands, err
}

// Count returns the total number of brands
func (r *BrandRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Brand{}).Count(&count).Error
	return count, err
}

// Update updates a brand
func (r *BrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete deletes a brand. The database cascades the delete to all campaigns
// owned by the brand.
func (r *BrandRepository) Delete(id uint) error {
	return r.db.Delete(&models.Brand{}, "id = ?", id).Error
}
