package main

import (
	"log"

	"github.com/brandforge/brandforge-backend/internal/database"
	"github.com/brandforge/brandforge-backend/internal/database/repository"
	"github.com/brandforge/brandforge-backend/internal/models"
	"github.com/brandforge/brandforge-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// seeder writes a demo brand with a few campaigns through the store layer,
// for local development against an empty database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	brandRepo := repository.NewBrandRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	brandService := services.NewBrandService(brandRepo, campaignRepo)
	campaignService := services.NewCampaignService(campaignRepo)

	brand, err := brandService.CreateBrand(&models.CreateBrandRequest{
		CompanyName:     "Acme Co",
		InstagramHandle: strPtr("acme.co"),
		TwitterHandle:   strPtr("acmeco"),
		LinkedinURL:     strPtr("https://www.linkedin.com/company/acme-co"),
		Industry:        strPtr("Manufacturing"),
		Region:          strPtr("EMEA"),
	})
	if err != nil {
		logrus.Fatalf("Failed to seed brand: %v", err)
	}

	seedCampaigns := []*models.CreateCampaignRequest{
		{
			BrandID:        brand.ID,
			ProductService: strPtr("Anvils"),
			ICP:            strPtr("Procurement leads at mid-size factories"),
			Tone:           strPtr("confident"),
			Description:    strPtr("Launch push for the new anvil line"),
			ContentType:    strPtr("social_post"),
		},
		{
			BrandID:     brand.ID,
			ContentType: strPtr("carousel"),
			AIBrain: models.JSON{
				"template_type": "educational",
				"rag": map[string]interface{}{
					"collection": "acme-co",
					"top_k":      5,
				},
			},
		},
	}

	for _, req := range seedCampaigns {
		campaign, err := campaignService.CreateCampaign(req)
		if err != nil {
			logrus.Fatalf("Failed to seed campaign: %v", err)
		}
		logrus.Infof("Seeded campaign id=%d status=%s", campaign.ID, campaign.Status)
	}

	logrus.Info("Database seeding completed successfully")
}

func strPtr(s string) *string { return &s }
