package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	repository "microtask-market.com/microtask-market/internal/repositories"
)

// BrowseTasks is the public task board: open tasks with the discovery
// filters (skill, category, payment range, duration, text search).
func (h *Handler) BrowseTasks(c echo.Context) error {
	limit, offset, page := pageParams(c)

	filter := repository.TaskFilter{
		Skill:    c.QueryParam("skill"),
		Category: c.QueryParam("category"),
		Duration: queryInt(c, "duration", 0),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	}

	if raw := c.QueryParam("min_payment"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_payment")
		}
		filter.MinPayment = &min
	}
	if raw := c.QueryParam("max_payment"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid max_payment")
		}
		filter.MaxPayment = &max
	}

	tasks, total, err := h.tasks.Discover(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, paginated(tasks, page, limit, total))
}

// GetOpenTask shows a single task to the public, open tasks only.
func (h *Handler) GetOpenTask(c echo.Context) error {
	task, err := h.tasks.GetOpen(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.tasks.Categories(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": categories})
}

func (h *Handler) ListSkills(c echo.Context) error {
	skills, err := h.tasks.Skills(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": skills})
}
