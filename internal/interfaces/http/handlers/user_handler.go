package handlers

import (
	"strconv"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userUseCase usecases.UserUseCase
}

func NewUserHandler(userUseCase usecases.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req usecases.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.userUseCase.CreateUser(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": user,
	})
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	// Get query parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	role := c.Query("role")

	// Get sort parameters
	sortBy := c.Query("sortBy", "created_at")
	sortDirection := c.Query("sortDirection", "desc")

	// Validate sort direction
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "desc"
	}

	// Validate sortBy field and build orderBy
	validSortFields := map[string]string{
		"full_name":  "full_name",
		"email":      "email",
		"role":       "role",
		"created_at": "created_at",
	}

	orderBy := "created_at desc" // default ordering
	if field, ok := validSortFields[sortBy]; ok {
		orderBy = field + " " + sortDirection
	}

	users, total, err := h.userUseCase.GetUsers(c.Context(), page, limit, orderBy, role)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": users,
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

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	// Admins can read anyone; everyone else only their own profile.
	actor := middleware.CurrentUser(c)
	if !actor.IsAdmin() && actor.UserID != id {
		return respondError(c, usecases.ErrForbidden)
	}

	user, err := h.userUseCase.GetUserByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": user,
	})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var req usecases.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := h.userUseCase.UpdateUser(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": user,
	})
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": middleware.CurrentUser(c),
	})
}

// PasswordReset asks the identity provider to email the caller a recovery
// link, same as the dashboard's change-password button.
func (h *UserHandler) PasswordReset(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if actor.Email == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "account has no email on file",
		})
	}

	if err := h.userUseCase.SendPasswordReset(actor.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "A password reset link has been sent to your email: " + actor.Email,
	})
}
