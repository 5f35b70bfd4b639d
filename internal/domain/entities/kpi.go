package entities

import "time"

// KPI data types as they appear in the catalog. The scoring engine only
// knows how to normalize Percentage, Currency and Rating (1-5) scores;
// other types still participate in weighting (see domain/scoring).
const (
	KPITypePercentage = "Percentage"
	KPITypeRating     = "Rating (1-5)"
	KPITypeTime       = "Time"
	KPITypeCurrency   = "Currency"
)

var AllKPITypes = []string{KPITypePercentage, KPITypeRating, KPITypeTime, KPITypeCurrency}

// KPI is a catalog definition. Definitions are immutable once created and
// are never deleted; campaigns opt in through CampaignKPI.
type KPI struct {
	KPIID     string    `json:"kpi_id" gorm:"primaryKey;column:kpi_id"`
	KPIName   string    `json:"kpi_name" gorm:"column:kpi_name"`
	KPIType   string    `json:"kpi_type" gorm:"column:kpi_type"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// CampaignKPI is the enablement join between a campaign and a KPI
// definition. At most one row exists per (campaign, kpi) pair.
type CampaignKPI struct {
	CampaignID string    `json:"campaign_id" gorm:"primaryKey;column:campaign_id"`
	KPIID      string    `json:"kpi_id" gorm:"primaryKey;column:kpi_id"`
	IsEnabled  bool      `json:"is_enabled" gorm:"column:is_enabled"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (CampaignKPI) TableName() string {
	return "campaign_kpis"
}
