package entities

import "time"

type Campaign struct {
	CampaignID   string    `json:"campaign_id" gorm:"primaryKey;column:campaign_id"`
	CampaignName string    `json:"campaign_name" gorm:"column:campaign_name"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}
