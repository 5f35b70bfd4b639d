package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"github.com/elevateplus/coaching-api/internal/infrastructure/cache"
	"github.com/elevateplus/coaching-api/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog lookups run on every scorecard render and admin toggle screen,
// so they are memoized briefly and invalidated on any catalog mutation.
const catalogCacheTTL = time.Minute

type CreateKPIRequest struct {
	KPIName string `json:"kpi_name" validate:"required"`
	KPIType string `json:"kpi_type" validate:"required,kpitype"`
}

type ToggleEnablementRequest struct {
	IsEnabled bool `json:"is_enabled"`
}

type KPIUseCase interface {
	CreateKPI(ctx context.Context, req CreateKPIRequest) (*entities.KPI, error)
	GetKPIs(ctx context.Context, page, limit int, orderBy string) ([]entities.KPI, int64, error)
	ToggleEnablement(ctx context.Context, campaignID, kpiID string, req ToggleEnablementRequest) (*entities.CampaignKPI, error)
	GetEnablements(ctx context.Context, campaignID string) ([]entities.CampaignKPI, error)
	GetEnabledKPIs(ctx context.Context, campaignID string) ([]entities.KPI, error)
}

type kpiUseCase struct {
	kpiRepo      repositories.KPIRepository
	campaignRepo repositories.CampaignRepository
	catalogCache *cache.Cache
}

func NewKPIUseCase(kpiRepo repositories.KPIRepository, campaignRepo repositories.CampaignRepository, catalogCache *cache.Cache) KPIUseCase {
	return &kpiUseCase{kpiRepo, campaignRepo, catalogCache}
}

func (uc *kpiUseCase) CreateKPI(ctx context.Context, req CreateKPIRequest) (*entities.KPI, error) {
	if err := validation.CheckStruct(req); err != nil {
		return nil, err
	}

	kpi := &entities.KPI{
		KPIID:     uuid.New().String(),
		KPIName:   req.KPIName,
		KPIType:   req.KPIType,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.kpiRepo.CreateKPI(ctx, kpi); err != nil {
		return nil, err
	}
	return kpi, nil
}

func (uc *kpiUseCase) GetKPIs(ctx context.Context, page, limit int, orderBy string) ([]entities.KPI, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.kpiRepo.GetKPIs(ctx, page, limit, orderBy)
}

func (uc *kpiUseCase) ToggleEnablement(ctx context.Context, campaignID, kpiID string, req ToggleEnablementRequest) (*entities.CampaignKPI, error) {
	if _, err := uc.campaignRepo.GetCampaignByID(ctx, campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	kpis, err := uc.kpiRepo.GetKPIsByIDs(ctx, []string{kpiID})
	if err != nil {
		return nil, err
	}
	if len(kpis) == 0 {
		return nil, ErrNotFound
	}

	enablement := &entities.CampaignKPI{
		CampaignID: campaignID,
		KPIID:      kpiID,
		IsEnabled:  req.IsEnabled,
	}
	if err := uc.kpiRepo.UpsertEnablement(ctx, enablement); err != nil {
		return nil, err
	}

	// Drop every cached view of this campaign's catalog in one sweep.
	uc.catalogCache.DeletePrefix(catalogCachePrefix(campaignID))
	return enablement, nil
}

// GetEnablements returns the full toggle matrix for a campaign, including
// rows switched off, for the admin enablement screen.
func (uc *kpiUseCase) GetEnablements(ctx context.Context, campaignID string) ([]entities.CampaignKPI, error) {
	key := catalogCachePrefix(campaignID) + "enablements"
	if cached, found := uc.catalogCache.Get(key); found {
		return cached.([]entities.CampaignKPI), nil
	}

	enablements, err := uc.kpiRepo.GetEnablements(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	uc.catalogCache.Set(key, enablements, catalogCacheTTL)
	return enablements, nil
}

func (uc *kpiUseCase) GetEnabledKPIs(ctx context.Context, campaignID string) ([]entities.KPI, error) {
	key := catalogCachePrefix(campaignID) + "enabled"
	if cached, found := uc.catalogCache.Get(key); found {
		return cached.([]entities.KPI), nil
	}

	kpis, err := uc.kpiRepo.GetEnabledKPIs(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	uc.catalogCache.Set(key, kpis, catalogCacheTTL)
	return kpis, nil
}

func catalogCachePrefix(campaignID string) string {
	return "catalog:" + campaignID + ":"
}
