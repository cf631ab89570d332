package services

import (
	"fmt"

	"github.com/brandforge/brandforge-backend/internal/database/repository"
	"github.com/brandforge/brandforge-backend/internal/models"
	"github.com/brandforge/brandforge-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
}

func NewCampaignService(campaignRepo *repository.CampaignRepository) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo}
}

// CreateCampaign creates a new campaign for an existing brand. If the request
// carries no status the campaign starts as "draft". A request referencing a
// non-existent brand fails with the engine's foreign key violation.
func (s *CampaignService) CreateCampaign(req *models.CreateCampaignRequest) (*models.Campaign, error) {
	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	campaign := &models.Campaign{
		BrandID:        req.BrandID,
		ProductService: req.ProductService,
		ICP:            req.ICP,
		Tone:           req.Tone,
		Description:    req.Description,
		ContentType:    req.ContentType,
		AIBrain:        req.AIBrain,
		Status:         status,
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign for brand %d: %w", req.BrandID, err)
	}

	logrus.Infof("Campaign id=%d created for brand %d with status '%s'", campaign.ID, campaign.BrandID, campaign.Status)
	return campaign, nil
}

// GetCampaignByID retrieves a campaign by ID
func (s *CampaignService) GetCampaignByID(id uint) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(id)
}

// GetCampaignsByBrandID retrieves all campaigns owned by a brand
func (s *CampaignService) GetCampaignsByBrandID(brandID uint) ([]*models.Campaign, error) {
	return s.campaignRepo.GetByBrandID(brandID)
}

// GetCampaignsByStatus retrieves all campaigns with the given status
func (s *CampaignService) GetCampaignsByStatus(status string) ([]*models.Campaign, error) {
	return s.campaignRepo.GetByStatus(status)
}

// GetAllCampaigns retrieves campaigns with pagination metadata
func (s *CampaignService) GetAllCampaigns(page, pageSize int) ([]*models.Campaign, *utils.PaginationResponse, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	total, err := s.campaignRepo.Count()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	offset := utils.CalculateOffset(page, pageSize)
	campaigns, err := s.campaignRepo.GetAll(offset, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get campaigns: %w", err)
	}

	pagination := utils.CalculatePaginationInfo(int(total), page, pageSize)
	return campaigns, &pagination, nil
}

// UpdateCampaign applies a partial update to a campaign. Nil request fields
// are left untouched; status values are stored as-is since the schema defines
// no transition rules.
func (s *CampaignService) UpdateCampaign(id uint, req *models.UpdateCampaignRequest) (*models.Campaign, error) {
	// Ensure the campaign exists before touching it
	if _, err := s.campaignRepo.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.ProductService != nil {
		fields["product_service"] = *req.ProductService
	}
	if req.ICP != nil {
		fields["icp"] = *req.ICP
	}
	if req.Tone != nil {
		fields["tone"] = *req.Tone
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ContentType != nil {
		fields["content_type"] = *req.ContentType
	}
	if req.AIBrain != nil {
		fields["ai_brain"] = req.AIBrain
	}
	if req.GeneratedContent != nil {
		fields["generated_content"] = req.GeneratedContent
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) > 0 {
		if err := s.campaignRepo.UpdateFields(id, fields); err != nil {
			return nil, fmt.Errorf("failed to update campaign %d: %w", id, err)
		}
	}

	return s.campaignRepo.GetByID(id)
}

// UpdateCampaignStatus updates only the status of a campaign
func (s *CampaignService) UpdateCampaignStatus(id uint, status string) (*models.Campaign, error) {
	return s.UpdateCampaign(id, &models.UpdateCampaignRequest{Status: &status})
}

// SaveGeneratedContent stores the produced output document on a campaign
func (s *CampaignService) SaveGeneratedContent(id uint, content models.JSON) (*models.Campaign, error) {
	return s.UpdateCampaign(id, &models.UpdateCampaignRequest{GeneratedContent: content})
}

// DeleteCampaign deletes a campaign. The owning brand is never affected.
func (s *CampaignService) DeleteCampaign(id uint) error {
	if _, err := s.campaignRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.campaignRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete campaign %d: %w", id, err)
	}

	logrus.Infof("Campaign id=%d deleted", id)
	return nil
}
