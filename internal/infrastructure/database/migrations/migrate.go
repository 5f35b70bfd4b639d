package migrations

import (
	"github.com/elevateplus/coaching-api/internal/domain/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Campaign{},
		&entities.KPI{},
		&entities.CampaignKPI{},
		&entities.CoachingLog{},
		&entities.AgentScore{},
	)
}
