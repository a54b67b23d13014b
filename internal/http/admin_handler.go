package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microtask-market.com/microtask-market/internal/constants"
	dto "microtask-market.com/microtask-market/internal/data_models"
	middleware "microtask-market.com/microtask-market/internal/http/middlewares"
)

func (h *Handler) ListAllTasks(c echo.Context) error {
	limit, offset, page := pageParams(c)

	tasks, total, err := h.tasks.ListAll(
		c.Request().Context(),
		middleware.ActorFrom(c),
		constants.TaskStatus(c.QueryParam("status")),
		limit, offset,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, paginated(tasks, page, limit, total))
}

func (h *Handler) ApproveTask(c echo.Context) error {
	task, err := h.tasks.Approve(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) RejectTask(c echo.Context) error {
	var req dto.RejectTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.tasks.Reject(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), req.Reason)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	err := h.tasks.Delete(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}

func (h *Handler) VerifyCompany(c echo.Context) error {
	var req dto.VerifyCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	profile, err := h.profiles.VerifyCompany(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		constants.VerificationStatus(req.VerificationStatus),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) ListAllPayments(c echo.Context) error {
	payments, err := h.payments.ListAll(
		c.Request().Context(),
		middleware.ActorFrom(c),
		constants.PaymentStatus(c.QueryParam("status")),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": payments})
}
