package handlers

import (
	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type ScoringHandler struct {
	scoringUseCase usecases.ScoringUseCase
}

func NewScoringHandler(scoringUseCase usecases.ScoringUseCase) *ScoringHandler {
	return &ScoringHandler{scoringUseCase}
}

// GetScorecard returns the KPIs enabled for the agent's campaign so the
// scoring form knows which rows to render.
func (h *ScoringHandler) GetScorecard(c *fiber.Ctx) error {
	agentID := c.Params("id")
	actor := middleware.CurrentUser(c)

	kpis, err := h.scoringUseCase.GetScorecard(c.Context(), actor, agentID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": kpis,
		"meta": fiber.Map{
			"total": len(kpis),
		},
	})
}

// SubmitScores records one coaching session: the computed overall rating,
// the action plan, and one score row per KPI the coach filled in.
func (h *ScoringHandler) SubmitScores(c *fiber.Ctx) error {
	agentID := c.Params("id")
	actor := middleware.CurrentUser(c)

	var req usecases.SubmitScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	log, err := h.scoringUseCase.SubmitScores(c.Context(), actor, agentID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    log,
		"message": "Scores and Coaching Log saved successfully!",
	})
}
