package handlers

import (
	"strconv"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type CoachingHandler struct {
	coachingUseCase usecases.CoachingUseCase
}

func NewCoachingHandler(coachingUseCase usecases.CoachingUseCase) *CoachingHandler {
	return &CoachingHandler{coachingUseCase}
}

// GetTeam returns the roster of agents assigned to the calling manager.
func (h *CoachingHandler) GetTeam(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	agents, err := h.coachingUseCase.GetTeam(c.Context(), actor.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": agents,
		"meta": fiber.Map{
			"total": len(agents),
		},
	})
}

func (h *CoachingHandler) GetCoachingLogs(c *fiber.Ctx) error {
	agentID := c.Params("id")
	actor := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}

	logs, total, err := h.coachingUseCase.GetCoachingLogs(c.Context(), actor, agentID, page, limit, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": logs,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"limit":     limit,
			"last_page": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (h *CoachingHandler) GetAgentScores(c *fiber.Ctx) error {
	agentID := c.Params("id")
	actor := middleware.CurrentUser(c)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	from, to, err := parseDateRange(c)
	if err != nil {
		return respondError(c, err)
	}

	scores, total, err := h.coachingUseCase.GetAgentScores(c.Context(), actor, agentID, page, limit, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": scores,
		"meta": fiber.Map{
			"total":     total,
			"page":      page,
			"limit":     limit,
			"last_page": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetAgentPerformance returns the combined logs + scores view.
func (h *CoachingHandler) GetAgentPerformance(c *fiber.Ctx) error {
	agentID := c.Params("id")
	actor := middleware.CurrentUser(c)

	performance, err := h.coachingUseCase.GetAgentPerformance(c.Context(), actor, agentID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": performance,
	})
}
