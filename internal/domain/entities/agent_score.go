package entities

import "time"

// AgentScore is one measured KPI inside a scoring submission. A submission
// produces one row per KPI the coach actually scored, all sharing the
// CreatedAt of the companion CoachingLog. Rows are immutable once written.
type AgentScore struct {
	ScoreID    string    `json:"score_id" gorm:"primaryKey;column:score_id"`
	AgentID    string    `json:"agent_id" gorm:"column:agent_id"`
	KPIID      string    `json:"kpi_id" gorm:"column:kpi_id"`
	CampaignID string    `json:"campaign_id" gorm:"column:campaign_id"`
	Score      float64   `json:"score" gorm:"column:score"`
	Target     float64   `json:"target" gorm:"column:target"`
	Weight     float64   `json:"weight" gorm:"column:weight"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`

	KPI KPI `json:"kpi" gorm:"foreignKey:KPIID;references:KPIID"`
}
