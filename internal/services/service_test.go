package services_test

import (
	"fmt"
	"testing"

	"github.com/brandforge/brandforge-backend/internal/database/repository"
	"github.com/brandforge/brandforge-backend/internal/models"
	"github.com/brandforge/brandforge-backend/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServices(t *testing.T) (*services.BrandService, *services.CampaignService) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Brand{}, &models.Campaign{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	brandRepo := repository.NewBrandRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	return services.NewBrandService(brandRepo, campaignRepo), services.NewCampaignService(campaignRepo)
}

func strPtr(s string) *string { return &s }
