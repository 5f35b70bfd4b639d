package handlers

import (
	"strconv"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type CampaignHandler struct {
	campaignUseCase usecases.CampaignUseCase
}

func NewCampaignHandler(campaignUseCase usecases.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{campaignUseCase}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req usecases.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	campaign, err := h.campaignUseCase.CreateCampaign(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": campaign,
	})
}

func (h *CampaignHandler) GetCampaigns(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	sortBy := c.Query("sortBy", "created_at")
	sortDirection := c.Query("sortDirection", "desc")
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	validSortFields := map[string]string{
		"campaign_name": "campaign_name",
		"created_at":    "created_at",
		"is_active":     "is_active",
	}

	orderBy := "created_at desc"
	if field, ok := validSortFields[sortBy]; ok {
		orderBy = field + " " + sortDirection
	}

	campaigns, total, err := h.campaignUseCase.GetCampaigns(c.Context(), page, limit, orderBy)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": campaigns,
		"meta": fiber.Map{
			"total":             total,
			"page":              page,
			"limit":             limit,
			"last_page":         (total + int64(limit) - 1) / int64(limit),
			"sort_by":           sortBy,
			"sort_direction":    sortDirection,
			"valid_sort_fields": getKeys(validSortFields),
		},
	})
}
