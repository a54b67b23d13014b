package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "microtask-market.com/microtask-market/internal/errors"
	"microtask-market.com/microtask-market/internal/services"
)

type Handler struct {
	tasks        *services.TaskService
	applications *services.ApplicationService
	submissions  *services.SubmissionService
	payments     *services.PaymentService
	profiles     *services.ProfileService
}

func NewHandler(
	tasks *services.TaskService,
	applications *services.ApplicationService,
	submissions *services.SubmissionService,
	payments *services.PaymentService,
	profiles *services.ProfileService,
) *Handler {
	return &Handler{
		tasks:        tasks,
		applications: applications,
		submissions:  submissions,
		payments:     payments,
		profiles:     profiles,
	}
}

// toHTTPError maps the workflow error taxonomy onto HTTP responses.
// Anything outside the taxonomy surfaces as a bare 500; storage error
// details never leak to the client.
func toHTTPError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func pageParams(c echo.Context) (limit, offset, page int) {
	page = queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = queryInt(c, "limit", 10)
	if limit < 1 {
		limit = 10
	}
	return limit, (page - 1) * limit, page
}

func queryInt(c echo.Context, name string, defaultVal int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

func paginated(data interface{}, page, limit int, total int64) echo.Map {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return echo.Map{
		"data": data,
		"pagination": echo.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	}
}
