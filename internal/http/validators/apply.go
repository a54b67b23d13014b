package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "microtask-market.com/microtask-market/internal/data_models"
)

func ValidateApplyRequest(r *dto.ApplyRequest) error {
	if r.Proposal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "proposal is required")
	}
	if r.ExpectedDeliveryTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "expected delivery time is required")
	}
	return nil
}
