package repositories

import (
	"context"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"gorm.io/gorm"
)

type CoachingRepository interface {
	// CreateSubmission persists one coaching log and its agent scores as a
	// single transaction: either the whole coaching event is recorded or
	// none of it is.
	CreateSubmission(ctx context.Context, log *entities.CoachingLog, scores []entities.AgentScore) error
	GetCoachingLogs(ctx context.Context, agentID string, page, limit int, from, to *time.Time) ([]entities.CoachingLog, int64, error)
	GetAgentScores(ctx context.Context, agentID string, page, limit int, from, to *time.Time) ([]entities.AgentScore, int64, error)
}

type coachingRepository struct {
	db *gorm.DB
}

func NewCoachingRepository(db *gorm.DB) CoachingRepository {
	return &coachingRepository{db}
}

func (r *coachingRepository) CreateSubmission(ctx context.Context, log *entities.CoachingLog, scores []entities.AgentScore) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		if len(scores) > 0 {
			if err := tx.Create(&scores).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *coachingRepository) GetCoachingLogs(ctx context.Context, agentID string, page, limit int, from, to *time.Time) ([]entities.CoachingLog, int64, error) {
	var logs []entities.CoachingLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.CoachingLog{}).Where("agent_id = ?", agentID)
	query = applyDateRange(query, from, to)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	result := query.Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return logs, total, nil
}

func (r *coachingRepository) GetAgentScores(ctx context.Context, agentID string, page, limit int, from, to *time.Time) ([]entities.AgentScore, int64, error) {
	var scores []entities.AgentScore
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.AgentScore{}).Where("agent_id = ?", agentID)
	query = applyDateRange(query, from, to)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	result := query.Preload("KPI").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&scores)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return scores, total, nil
}

func applyDateRange(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}
	return query
}
