package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/validation"
	"github.com/gofiber/fiber/v2"
)

// getKeys extracts the keys from a map for the meta response
func getKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// respondError maps the error taxonomy onto HTTP statuses. Validation
// failures are recoverable user messages; persistence failures surface the
// underlying cause; nothing here is fatal to the process.
func respondError(c *fiber.Ctx, err error) error {
	if vErr, ok := validation.AsError(err); ok {
		status := fiber.StatusBadRequest
		if len(vErr.Fields) == 0 {
			// message-only rejections (e.g. no KPI weighted) are
			// semantic, not structural
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"error":  vErr.Error(),
			"fields": vErr.Fields,
		})
	}

	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, usecases.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, usecases.ErrEmptyCatalog):
		// blocking warning: the scoring form cannot be rendered
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	fmt.Printf("Error handling request %s %s: %v\n", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// parseDateRange reads optional from/to query params (YYYY-MM-DD). The
// "to" bound is pushed to the end of its day so the range is inclusive.
func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, validation.NewMessageError("invalid 'from' date, expected YYYY-MM-DD")
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, validation.NewMessageError("invalid 'to' date, expected YYYY-MM-DD")
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	return from, to, nil
}
