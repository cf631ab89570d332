package services_test

import (
	"errors"
	"testing"

	"github.com/brandforge/brandforge-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCampaignDefaultsToDraft(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{
		BrandID:     brand.ID,
		ContentType: strPtr("social_post"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, campaign.Status)

	fetched, err := campaignService.GetCampaignByID(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, fetched.Status)
}

func TestCreateCampaignKeepsExplicitStatus(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	// No enumeration is enforced; any status text is stored as-is
	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{
		BrandID: brand.ID,
		Status:  "generating",
	})
	require.NoError(t, err)
	assert.Equal(t, "generating", campaign.Status)
}

func TestCreateCampaignUnknownBrandFails(t *testing.T) {
	_, campaignService := setupServices(t)

	_, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{BrandID: 999})
	assert.Error(t, err)
}

func TestUpdateCampaignLeavesNilFieldsUntouched(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{
		BrandID: brand.ID,
		Tone:    strPtr("confident"),
		ICP:     strPtr("Procurement leads"),
	})
	require.NoError(t, err)

	updated, err := campaignService.UpdateCampaign(campaign.ID, &models.UpdateCampaignRequest{
		Description: strPtr("Launch push"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Description)
	assert.Equal(t, "Launch push", *updated.Description)
	require.NotNil(t, updated.Tone)
	assert.Equal(t, "confident", *updated.Tone)
	require.NotNil(t, updated.ICP)
	assert.Equal(t, "Procurement leads", *updated.ICP)
}

func TestUpdateCampaignStatus(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{BrandID: brand.ID})
	require.NoError(t, err)

	updated, err := campaignService.UpdateCampaignStatus(campaign.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestSaveGeneratedContentRoundTrip(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{BrandID: brand.ID})
	require.NoError(t, err)

	content := models.JSON{
		"canonical_post": "Meet the new anvil line.",
		"video_script": map[string]interface{}{
			"hook":   "Ever dropped an anvil?",
			"scenes": []interface{}{"intro", "demo", "cta"},
		},
	}

	updated, err := campaignService.SaveGeneratedContent(campaign.ID, content)
	require.NoError(t, err)
	assert.Equal(t, content, updated.GeneratedContent)

	fetched, err := campaignService.GetCampaignByID(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, content, fetched.GeneratedContent)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	_, campaignService := setupServices(t)

	_, err := campaignService.UpdateCampaign(42, &models.UpdateCampaignRequest{Status: strPtr("completed")})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCampaignNotFound(t *testing.T) {
	_, campaignService := setupServices(t)

	err := campaignService.DeleteCampaign(42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteCampaignLeavesBrand(t *testing.T) {
	brandService, campaignService := setupServices(t)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{CompanyName: "Acme Co"})
	require.NoError(t, err)

	campaign, err := campaignService.CreateCampaign(&models.CreateCampaignRequest{BrandID: brand.ID})
	require.NoError(t, err)
	require.NoError(t, campaignService.DeleteCampaign(campaign.ID))

	fetched, err := brandService.GetBrandByID(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", fetched.CompanyName)
}
