package entities

import "time"

// DefaultActionPlan is stored when the coach submits scores without
// writing a formal action plan.
const DefaultActionPlan = "No formal action plan recorded."

// CoachingLog records one coaching session: who coached whom, the notes
// agreed on, and the overall rating computed from the scores submitted in
// the same transaction. Rows are immutable once written.
type CoachingLog struct {
	LogID         string    `json:"log_id" gorm:"primaryKey;column:log_id"`
	AgentID       string    `json:"agent_id" gorm:"column:agent_id"`
	CoachID       string    `json:"coach_id" gorm:"column:coach_id"`
	CoachName     string    `json:"coach_name" gorm:"column:coach_name"`
	CampaignID    string    `json:"campaign_id" gorm:"column:campaign_id"`
	ActionPlan    string    `json:"action_plan" gorm:"column:action_plan;type:text"`
	OverallRating float64   `json:"overall_rating" gorm:"column:overall_rating"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}
