package usecases

import (
	"context"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"github.com/elevateplus/coaching-api/internal/validation"
	"github.com/google/uuid"
)

type CreateCampaignRequest struct {
	CampaignName string `json:"campaign_name" validate:"required"`
}

type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*entities.Campaign, error)
	GetCampaigns(ctx context.Context, page, limit int, orderBy string) ([]entities.Campaign, int64, error)
}

type campaignUseCase struct {
	campaignRepo repositories.CampaignRepository
}

func NewCampaignUseCase(campaignRepo repositories.CampaignRepository) CampaignUseCase {
	return &campaignUseCase{campaignRepo}
}

func (uc *campaignUseCase) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*entities.Campaign, error) {
	if err := validation.CheckStruct(req); err != nil {
		return nil, err
	}

	campaign := &entities.Campaign{
		CampaignID:   uuid.New().String(),
		CampaignName: req.CampaignName,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (uc *campaignUseCase) GetCampaigns(ctx context.Context, page, limit int, orderBy string) ([]entities.Campaign, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.campaignRepo.GetCampaigns(ctx, page, limit, orderBy)
}
