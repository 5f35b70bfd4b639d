package handlers

import (
	"strconv"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type KPIHandler struct {
	kpiUseCase usecases.KPIUseCase
}

func NewKPIHandler(kpiUseCase usecases.KPIUseCase) *KPIHandler {
	return &KPIHandler{kpiUseCase}
}

func (h *KPIHandler) CreateKPI(c *fiber.Ctx) error {
	var req usecases.CreateKPIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	kpi, err := h.kpiUseCase.CreateKPI(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": kpi,
	})
}

func (h *KPIHandler) GetKPIs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	sortBy := c.Query("sortBy", "created_at")
	sortDirection := c.Query("sortDirection", "desc")
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	validSortFields := map[string]string{
		"kpi_name":   "kpi_name",
		"kpi_type":   "kpi_type",
		"created_at": "created_at",
	}

	orderBy := "created_at desc"
	if field, ok := validSortFields[sortBy]; ok {
		orderBy = field + " " + sortDirection
	}

	kpis, total, err := h.kpiUseCase.GetKPIs(c.Context(), page, limit, orderBy)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": kpis,
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

// ToggleEnablement switches a KPI on or off for a campaign.
func (h *KPIHandler) ToggleEnablement(c *fiber.Ctx) error {
	campaignID := c.Params("id")
	kpiID := c.Params("kpiId")

	var req usecases.ToggleEnablementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	enablement, err := h.kpiUseCase.ToggleEnablement(c.Context(), campaignID, kpiID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": enablement,
	})
}

// GetEnablements returns the campaign's full toggle matrix, disabled rows
// included, for the admin enablement screen.
func (h *KPIHandler) GetEnablements(c *fiber.Ctx) error {
	campaignID := c.Params("id")

	enablements, err := h.kpiUseCase.GetEnablements(c.Context(), campaignID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": enablements,
		"meta": fiber.Map{
			"total": len(enablements),
		},
	})
}

// GetCampaignKPIs returns the KPI definitions enabled for a campaign.
func (h *KPIHandler) GetCampaignKPIs(c *fiber.Ctx) error {
	campaignID := c.Params("id")

	kpis, err := h.kpiUseCase.GetEnabledKPIs(c.Context(), campaignID)
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
