package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/domain/repositories"
	"github.com/elevateplus/coaching-api/internal/domain/scoring"
	"github.com/elevateplus/coaching-api/internal/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreItem is one row of the scoring form. Score, target and weight are
// pointers so "left blank" and "zero" stay distinguishable: blank numbers
// read as 0 for the rating, but only KPIs with an actual score entered
// produce an AgentScore row.
type ScoreItem struct {
	KPIID  string   `json:"kpi_id" validate:"required,uuid4"`
	Score  *float64 `json:"score"`
	Target *float64 `json:"target" validate:"omitempty,min=0"`
	Weight *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

type SubmitScoresRequest struct {
	ActionPlan string      `json:"action_plan"`
	Scores     []ScoreItem `json:"scores" validate:"required,min=1,dive"`
}

type ScoringUseCase interface {
	// GetScorecard returns the KPI definitions enabled for the agent's
	// campaign, i.e. the rows the scoring form may present. Agents may
	// read their own scorecard; only coaches may submit against it.
	GetScorecard(ctx context.Context, actor *entities.User, agentID string) ([]entities.KPI, error)

	// SubmitScores validates the submission, computes the overall rating
	// and records the coaching log plus its agent scores atomically.
	SubmitScores(ctx context.Context, actor *entities.User, agentID string, req SubmitScoresRequest) (*entities.CoachingLog, error)
}

type scoringUseCase struct {
	userRepo     repositories.UserRepository
	coachingRepo repositories.CoachingRepository
	kpiUseCase   KPIUseCase
}

func NewScoringUseCase(userRepo repositories.UserRepository, coachingRepo repositories.CoachingRepository, kpiUseCase KPIUseCase) ScoringUseCase {
	return &scoringUseCase{userRepo, coachingRepo, kpiUseCase}
}

func (uc *scoringUseCase) GetScorecard(ctx context.Context, actor *entities.User, agentID string) ([]entities.KPI, error) {
	agent, err := uc.resolveAgent(ctx, actor, agentID, true)
	if err != nil {
		return nil, err
	}

	kpis, err := uc.kpiUseCase.GetEnabledKPIs(ctx, *agent.CampaignID)
	if err != nil {
		return nil, err
	}
	if len(kpis) == 0 {
		return nil, ErrEmptyCatalog
	}
	return kpis, nil
}

func (uc *scoringUseCase) SubmitScores(ctx context.Context, actor *entities.User, agentID string, req SubmitScoresRequest) (*entities.CoachingLog, error) {
	agent, err := uc.resolveAgent(ctx, actor, agentID, false)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckStruct(req); err != nil {
		return nil, err
	}

	enabled, err := uc.kpiUseCase.GetEnabledKPIs(ctx, *agent.CampaignID)
	if err != nil {
		return nil, err
	}
	if len(enabled) == 0 {
		return nil, ErrEmptyCatalog
	}
	enabledByID := make(map[string]entities.KPI, len(enabled))
	for _, kpi := range enabled {
		enabledByID[kpi.KPIID] = kpi
	}

	// Only KPIs enabled for the agent's campaign may be scored.
	inputs := make([]scoring.Input, 0, len(req.Scores))
	for _, item := range req.Scores {
		kpi, ok := enabledByID[item.KPIID]
		if !ok {
			return nil, validation.NewError(
				fmt.Errorf("KPI %s is not enabled for the agent's campaign", item.KPIID),
				validation.FieldError{Field: "scores", Error: "contains a KPI that is not enabled for this campaign"},
			)
		}
		inputs = append(inputs, scoring.Input{
			KPIType: kpi.KPIType,
			Score:   floatOrZero(item.Score),
			Target:  floatOrZero(item.Target),
			Weight:  floatOrZero(item.Weight),
		})
	}

	rating, err := scoring.Rate(inputs)
	if errors.Is(err, scoring.ErrNoWeightedInput) {
		return nil, validation.NewMessageError("Please set weight for at least one KPI.")
	}
	if err != nil {
		return nil, err
	}

	actionPlan := req.ActionPlan
	if actionPlan == "" {
		actionPlan = entities.DefaultActionPlan
	}
	coachName := actor.FullName
	if coachName == "" {
		coachName = "Manager"
	}

	now := time.Now().UTC()
	log := &entities.CoachingLog{
		LogID:         uuid.New().String(),
		AgentID:       agent.UserID,
		CoachID:       actor.UserID,
		CoachName:     coachName,
		CampaignID:    *agent.CampaignID,
		ActionPlan:    actionPlan,
		OverallRating: rating,
		CreatedAt:     now,
	}

	scores := make([]entities.AgentScore, 0, len(req.Scores))
	for _, item := range req.Scores {
		if item.Score == nil {
			continue
		}
		scores = append(scores, entities.AgentScore{
			ScoreID:    uuid.New().String(),
			AgentID:    agent.UserID,
			KPIID:      item.KPIID,
			CampaignID: *agent.CampaignID,
			Score:      *item.Score,
			Target:     floatOrZero(item.Target),
			Weight:     floatOrZero(item.Weight),
			CreatedAt:  now,
		})
	}

	if err := uc.coachingRepo.CreateSubmission(ctx, log, scores); err != nil {
		return nil, err
	}
	return log, nil
}

// resolveAgent loads the agent and enforces resource-level access: admins
// always pass, managers only for their own agents, and the agent themself
// only when allowSelf is set.
func (uc *scoringUseCase) resolveAgent(ctx context.Context, actor *entities.User, agentID string, allowSelf bool) (*entities.User, error) {
	agent, err := uc.userRepo.GetUserByID(ctx, agentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !agent.IsAgent() {
		return nil, ErrNotFound
	}

	allowed := actor.IsAdmin() || actor.ManagesAgent(agent) || (allowSelf && actor.UserID == agent.UserID)
	if !allowed {
		return nil, ErrForbidden
	}

	if agent.CampaignID == nil || *agent.CampaignID == "" {
		return nil, validation.NewMessageError("agent has no campaign assigned")
	}
	return agent, nil
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
