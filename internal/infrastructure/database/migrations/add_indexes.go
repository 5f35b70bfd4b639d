package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Add indexes to the users table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users (role)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_manager_id ON users (manager_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_users_campaign_id ON users (campaign_id)").Error; err != nil {
		return err
	}

	// Add indexes to the campaign_kpis table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_campaign_kpis_campaign_enabled ON campaign_kpis (campaign_id, is_enabled)").Error; err != nil {
		return err
	}

	// Add indexes to the coaching_logs table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_coaching_logs_agent_id ON coaching_logs (agent_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_coaching_logs_coach_id ON coaching_logs (coach_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_coaching_logs_created_at ON coaching_logs (created_at)").Error; err != nil {
		return err
	}

	// Add indexes to the agent_scores table
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_agent_scores_agent_id ON agent_scores (agent_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_agent_scores_kpi_id ON agent_scores (kpi_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_agent_scores_agent_created ON agent_scores (agent_id, created_at)").Error; err != nil {
		return err
	}

	return nil
}
