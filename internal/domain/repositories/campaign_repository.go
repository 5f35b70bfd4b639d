package repositories

import (
	"context"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"gorm.io/gorm"
)

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *entities.Campaign) error
	GetCampaigns(ctx context.Context, page, limit int, orderBy string) ([]entities.Campaign, int64, error)
	GetCampaignByID(ctx context.Context, id string) (*entities.Campaign, error)
}

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *entities.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) GetCampaigns(ctx context.Context, page, limit int, orderBy string) ([]entities.Campaign, int64, error) {
	var campaigns []entities.Campaign
	var total int64

	if err := r.db.WithContext(ctx).Model(&entities.Campaign{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	result := r.db.WithContext(ctx).Model(&entities.Campaign{}).
		Order(orderBy).
		Offset(offset).
		Limit(limit).
		Find(&campaigns)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return campaigns, total, nil
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*entities.Campaign, error) {
	var campaign entities.Campaign
	if err := r.db.WithContext(ctx).First(&campaign, "campaign_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}
