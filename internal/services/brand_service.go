package services

import (
	"fmt"

	"github.com/brandforge/brandforge-backend/internal/database/repository"
	"github.com/brandforge/brandforge-backend/internal/models"
	"github.com/brandforge/brandforge-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type BrandService struct {
	brandRepo    *repository.BrandRepository
	campaignRepo *repository.CampaignRepository
}

func NewBrandService(brandRepo *repository.BrandRepository, campaignRepo *repository.CampaignRepository) *BrandService {
	return &BrandService{
		brandRepo:    brandRepo,
		campaignRepo: campaignRepo,
	}
}

// CreateBrand creates a new brand. Beyond a non-empty company_name nothing is
// validated here; handle and URL formats are the caller's responsibility.
func (s *BrandService) CreateBrand(req *models.CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		CompanyName:     req.CompanyName,
		InstagramHandle: req.InstagramHandle,
		TwitterHandle:   req.TwitterHandle,
		LinkedinURL:     req.LinkedinURL,
		Industry:        req.Industry,
		Region:          req.Region,
	}

	if err := s.brandRepo.Create(brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	logrus.Infof("Brand '%s' created with id=%d", brand.CompanyName, brand.ID)
	return brand, nil
}

// GetBrandByID retrieves a brand by ID
func (s *BrandService) GetBrandByID(id uint) (*models.Brand, error) {
	return s.brandRepo.GetByID(id)
}

// GetBrandsByCompanyName retrieves all brands with the given company name
func (s *BrandService) GetBrandsByCompanyName(companyName string) ([]*models.Brand, error) {
	return s.brandRepo.GetByCompanyName(companyName)
}

// GetAllBrands retrieves brands with pagination metadata
func (s *BrandService) GetAllBrands(page, pageSize int) ([]*models.Brand, *utils.PaginationResponse, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	total, err := s.brandRepo.Count()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count brands: %w", err)
	}

	offset := utils.CalculateOffset(page, pageSize)
	brands, err := s.brandRepo.GetAll(offset, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get brands: %w", err)
	}

	pagination := utils.CalculatePaginationInfo(int(total), page, pageSize)
	return brands, &pagination, nil
}

// DeleteBrand deletes a brand. The database cascades the delete to every
// campaign owned by the brand.
func (s *BrandService) DeleteBrand(id uint) error {
	// Fetch first so the caller gets a not-found error instead of a silent no-op
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return err
	}

	campaignCount, err := s.campaignRepo.CountByBrandID(id)
	if err != nil {
		return fmt.Errorf("failed to count campaigns for brand %d: %w", id, err)
	}

	if err := s.brandRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete brand %d: %w", id, err)
	}

	logrus.Infof("Brand '%s' (id=%d) deleted along with %d campaigns", brand.CompanyName, id, campaignCount)
	return nil
}
