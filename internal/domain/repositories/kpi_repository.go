package repositories

import (
	"context"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KPIRepository interface {
	CreateKPI(ctx context.Context, kpi *entities.KPI) error
	GetKPIs(ctx context.Context, page, limit int, orderBy string) ([]entities.KPI, int64, error)
	GetKPIsByIDs(ctx context.Context, ids []string) ([]entities.KPI, error)
	UpsertEnablement(ctx context.Context, enablement *entities.CampaignKPI) error
	GetEnablements(ctx context.Context, campaignID string) ([]entities.CampaignKPI, error)
	GetEnabledKPIs(ctx context.Context, campaignID string) ([]entities.KPI, error)
}

type kpiRepository struct {
	db *gorm.DB
}

func NewKPIRepository(db *gorm.DB) KPIRepository {
	return &kpiRepository{db}
}

func (r *kpiRepository) CreateKPI(ctx context.Context, kpi *entities.KPI) error {
	return r.db.WithContext(ctx).Create(kpi).Error
}

func (r *kpiRepository) GetKPIs(ctx context.Context, page, limit int, orderBy string) ([]entities.KPI, int64, error) {
	var kpis []entities.KPI
	var total int64

	if err := r.db.WithContext(ctx).Model(&entities.KPI{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	result := r.db.WithContext(ctx).Model(&entities.KPI{}).
		Order(orderBy).
		Offset(offset).
		Limit(limit).
		Find(&kpis)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return kpis, total, nil
}

func (r *kpiRepository) GetKPIsByIDs(ctx context.Context, ids []string) ([]entities.KPI, error) {
	var kpis []entities.KPI
	if len(ids) == 0 {
		return kpis, nil
	}
	result := r.db.WithContext(ctx).
		Where("kpi_id IN ?", ids).
		Order("kpi_name asc").
		Find(&kpis)
	if result.Error != nil {
		return nil, result.Error
	}
	return kpis, nil
}

// UpsertEnablement toggles a (campaign, kpi) pair, keeping at most one row
// per pair.
func (r *kpiRepository) UpsertEnablement(ctx context.Context, enablement *entities.CampaignKPI) error {
	enablement.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "kpi_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_enabled", "updated_at"}),
		}).
		Create(enablement).Error
}

func (r *kpiRepository) GetEnablements(ctx context.Context, campaignID string) ([]entities.CampaignKPI, error) {
	var enablements []entities.CampaignKPI
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Find(&enablements)
	if result.Error != nil {
		return nil, result.Error
	}
	return enablements, nil
}

func (r *kpiRepository) GetEnabledKPIs(ctx context.Context, campaignID string) ([]entities.KPI, error) {
	var kpis []entities.KPI
	result := r.db.WithContext(ctx).Model(&entities.KPI{}).
		Joins("JOIN campaign_kpis ON campaign_kpis.kpi_id = kpis.kpi_id").
		Where("campaign_kpis.campaign_id = ? AND campaign_kpis.is_enabled = ?", campaignID, true).
		Order("kpis.kpi_name asc").
		Find(&kpis)
	if result.Error != nil {
		return nil, result.Error
	}
	return kpis, nil
}
