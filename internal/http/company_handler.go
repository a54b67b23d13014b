package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microtask-market.com/microtask-market/internal/constants"
	dto "microtask-market.com/microtask-market/internal/data_models"
	middleware "microtask-market.com/microtask-market/internal/http/middlewares"
	"microtask-market.com/microtask-market/internal/http/validators"
	"microtask-market.com/microtask-market/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.Create(
		c.Request().Context(),
		middleware.ActorFrom(c),
		services.CreateTaskInput{
			Title:           req.Title,
			Description:     req.Description,
			RequiredSkills:  req.RequiredSkills,
			Category:        req.Category,
			Duration:        req.Duration,
			PaymentAmount:   req.PaymentAmount,
			Deadline:        req.Deadline,
			NumberOfWorkers: req.NumberOfWorkers,
		},
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.tasks.Update(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		services.TaskPatch{
			Title:           req.Title,
			Description:     req.Description,
			RequiredSkills:  req.RequiredSkills,
			Category:        req.Category,
			Duration:        req.Duration,
			PaymentAmount:   req.PaymentAmount,
			Deadline:        req.Deadline,
			NumberOfWorkers: req.NumberOfWorkers,
		},
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListCompanyTasks(c echo.Context) error {
	limit, offset, page := pageParams(c)

	tasks, total, err := h.tasks.ListForCompany(
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

func (h *Handler) GetCompanyTask(c echo.Context) error {
	task, err := h.tasks.GetForCompany(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTaskApplications(c echo.Context) error {
	apps, err := h.applications.ListForTask(c.Request().Context(), middleware.ActorFrom(c), c.Param("taskId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": apps})
}

func (h *Handler) AcceptApplication(c echo.Context) error {
	app, err := h.applications.Accept(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) RejectApplication(c echo.Context) error {
	app, err := h.applications.Reject(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *Handler) ListTaskSubmissions(c echo.Context) error {
	subs, err := h.submissions.ListForTask(c.Request().Context(), middleware.ActorFrom(c), c.Param("taskId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": subs})
}

func (h *Handler) ReviewSubmission(c echo.Context) error {
	var req dto.ReviewSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	sub, err := h.submissions.Review(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		constants.ReviewStatus(req.ReviewStatus),
		req.ReviewNotes,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, sub)
}

func (h *Handler) ConfirmPayment(c echo.Context) error {
	var req dto.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	payment, err := h.payments.Confirm(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("id"),
		req.Proof,
		req.TransactionID,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

func (h *Handler) ListCompanyPayments(c echo.Context) error {
	payments, err := h.payments.ListForCompany(
		c.Request().Context(),
		middleware.ActorFrom(c),
		constants.PaymentStatus(c.QueryParam("status")),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": payments})
}

func (h *Handler) GetCompanyProfile(c echo.Context) error {
	profile, err := h.profiles.GetCompany(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateCompanyProfile(c echo.Context) error {
	var req dto.UpdateCompanyProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	profile, err := h.profiles.UpdateCompany(
		c.Request().Context(),
		middleware.ActorFrom(c),
		services.CompanyProfilePatch{
			CompanyName: req.CompanyName,
			Domain:      req.Domain,
			Logo:        req.Logo,
			Description: req.Description,
		},
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, profile)
}
