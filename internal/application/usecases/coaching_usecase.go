package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AgentPerformance is the combined history the performance view renders.
type AgentPerformance struct {
	Agent        *entities.User         `json:"agent"`
	CoachingLogs []entities.CoachingLog `json:"coaching_logs"`
	Scores       []entities.AgentScore  `json:"scores"`
}

type CoachingUseCase interface {
	GetTeam(ctx context.Context, managerID string) ([]entities.User, error)
	GetCoachingLogs(ctx context.Context, actor *entities.User, agentID string, page, limit int, from, to *time.Time) ([]entities.CoachingLog, int64, error)
	GetAgentScores(ctx context.Context, actor *entities.User, agentID string, page, limit int, from, to *time.Time) ([]entities.AgentScore, int64, error)
	GetAgentPerformance(ctx context.Context, actor *entities.User, agentID string) (*AgentPerformance, error)
}

type coachingUseCase struct {
	userRepo     repositories.UserRepository
	coachingRepo repositories.CoachingRepository
}

func NewCoachingUseCase(userRepo repositories.UserRepository, coachingRepo repositories.CoachingRepository) CoachingUseCase {
	return &coachingUseCase{userRepo, coachingRepo}
}

func (uc *coachingUseCase) GetTeam(ctx context.Context, managerID string) ([]entities.User, error) {
	return uc.userRepo.GetAgentsByManager(ctx, managerID)
}

func (uc *coachingUseCase) GetCoachingLogs(ctx context.Context, actor *entities.User, agentID string, page, limit int, from, to *time.Time) ([]entities.CoachingLog, int64, error) {
	if _, err := uc.authorizeHistoryAccess(ctx, actor, agentID); err != nil {
		return nil, 0, err
	}
	page, limit = normalizePaging(page, limit)
	return uc.coachingRepo.GetCoachingLogs(ctx, agentID, page, limit, from, to)
}

func (uc *coachingUseCase) GetAgentScores(ctx context.Context, actor *entities.User, agentID string, page, limit int, from, to *time.Time) ([]entities.AgentScore, int64, error) {
	if _, err := uc.authorizeHistoryAccess(ctx, actor, agentID); err != nil {
		return nil, 0, err
	}
	page, limit = normalizePaging(page, limit)
	return uc.coachingRepo.GetAgentScores(ctx, agentID, page, limit, from, to)
}

// GetAgentPerformance joins the coaching-log and score histories for the
// agent view. Both queries run concurrently and the result is only
// reported once both have landed.
func (uc *coachingUseCase) GetAgentPerformance(ctx context.Context, actor *entities.User, agentID string) (*AgentPerformance, error) {
	agent, err := uc.authorizeHistoryAccess(ctx, actor, agentID)
	if err != nil {
		return nil, err
	}

	performance := &AgentPerformance{Agent: agent}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs, _, err := uc.coachingRepo.GetCoachingLogs(gCtx, agentID, 1, 50, nil, nil)
		if err != nil {
			return err
		}
		performance.CoachingLogs = logs
		return nil
	})
	g.Go(func() error {
		scores, _, err := uc.coachingRepo.GetAgentScores(gCtx, agentID, 1, 200, nil, nil)
		if err != nil {
			return err
		}
		performance.Scores = scores
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return performance, nil
}

// authorizeHistoryAccess lets admins, the agent's manager and the agent
// themself read the history; everyone else is refused.
func (uc *coachingUseCase) authorizeHistoryAccess(ctx context.Context, actor *entities.User, agentID string) (*entities.User, error) {
	agent, err := uc.userRepo.GetUserByID(ctx, agentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if actor.IsAdmin() || actor.ManagesAgent(agent) || actor.UserID == agent.UserID {
		return agent, nil
	}
	return nil, ErrForbidden
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}
