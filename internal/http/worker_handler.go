package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microtask-market.com/microtask-market/internal/constants"
	dto "microtask-market.com/microtask-market/internal/data_models"
	middleware "microtask-market.com/microtask-market/internal/http/middlewares"
	"microtask-market.com/microtask-market/internal/http/validators"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/services"
)

func (h *Handler) ApplyToTask(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateApplyRequest(&req); err != nil {
		return err
	}

	app, err := h.applications.Apply(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("taskId"),
		services.ApplyInput{
			Proposal:             req.Proposal,
			ExpectedDeliveryTime: req.ExpectedDeliveryTime,
			Attachment:           req.Attachment,
		},
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, app)
}

func (h *Handler) ListWorkerApplications(c echo.Context) error {
	apps, err := h.applications.ListForWorker(
		c.Request().Context(),
		middleware.ActorFrom(c),
		constants.ApplicationStatus(c.QueryParam("status")),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": apps})
}

func (h *Handler) ListAssignedTasks(c echo.Context) error {
	tasks, err := h.tasks.ListAssigned(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": tasks})
}

func (h *Handler) SubmitWork(c echo.Context) error {
	var req dto.SubmitWorkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	files := make([]model.SubmissionFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, model.SubmissionFile{
			Filename: f.Filename,
			Path:     f.Path,
		})
	}

	sub, err := h.submissions.Submit(
		c.Request().Context(),
		middleware.ActorFrom(c),
		c.Param("taskId"),
		req.Description,
		files,
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListWorkerSubmissions(c echo.Context) error {
	subs, err := h.submissions.ListForWorker(
		c.Request().Context(),
		middleware.ActorFrom(c),
		constants.ReviewStatus(c.QueryParam("review_status")),
	)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"data": subs})
}

func (h *Handler) WorkerEarnings(c echo.Context) error {
	summary, err := h.payments.Earnings(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": summary})
}

func (h *Handler) GetWorkerProfile(c echo.Context) error {
	profile, err := h.profiles.GetWorker(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateWorkerProfile(c echo.Context) error {
	var req dto.UpdateWorkerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	patch := services.WorkerProfilePatch{
		Skills: req.Skills,
		Bio:    req.Bio,
	}
	if req.PortfolioLinks != nil {
		links := make([]model.PortfolioLink, 0, len(req.PortfolioLinks))
		for _, l := range req.PortfolioLinks {
			links = append(links, model.PortfolioLink{Title: l.Title, URL: l.URL})
		}
		patch.PortfolioLinks = links
	}
	if req.AvailabilityStatus != nil {
		status := constants.AvailabilityStatus(*req.AvailabilityStatus)
		patch.AvailabilityStatus = &status
	}

	profile, err := h.profiles.UpdateWorker(c.Request().Context(), middleware.ActorFrom(c), patch)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, profile)
}
