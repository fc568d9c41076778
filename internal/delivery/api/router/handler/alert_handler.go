package handler

import (
	"log/slog"
	"net/http"

	"pricealert/internal/delivery/api/middleware"
	"pricealert/internal/delivery/api/response"
	"pricealert/internal/domain/entity"
	domainerrors "pricealert/internal/domain/errors"
	"pricealert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	// scopeAll widens statistics and processing to every user; operators only.
	scopeAll = "all"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the alert endpoints.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlert handles POST /alerts
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), req.toUsecase(userID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// UpdateAlert handles PATCH /alerts/:id
func (h *AlertHandler) UpdateAlert(c echo.Context) error {
	userID, alertID, err := h.ownedAlertParams(c)
	if err != nil {
		return err
	}

	var req UpdateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert update")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	alert, err := h.alertUC.UpdateAlert(c.Request().Context(), userID, alertID, req.toUsecase())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// DeleteAlert handles DELETE /alerts/:id. The alert is cancelled, not removed.
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	userID, alertID, err := h.ownedAlertParams(c)
	if err != nil {
		return err
	}

	if err := h.alertUC.DeleteAlert(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAlert handles GET /alerts/:id
func (h *AlertHandler) GetAlert(c echo.Context) error {
	userID, alertID, err := h.ownedAlertParams(c)
	if err != nil {
		return err
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), userID, alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alert)
}

// ListAlerts handles GET /alerts?limit=&offset=
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	limit, offset := defaultPageLimit, 0
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).Int("offset", &offset).BindError(); err != nil {
		return domainerrors.NewValidationError("limit and offset must be integers")
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)
	offset = max(offset, 0)

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if alerts == nil {
		alerts = []*entity.Alert{}
	}

	return response.Page(c, alerts, limit, offset, len(alerts))
}

// GetAlertReport handles GET /alerts/:id/report
func (h *AlertHandler) GetAlertReport(c echo.Context) error {
	userID, alertID, err := h.ownedAlertParams(c)
	if err != nil {
		return err
	}

	report, err := h.alertUC.GetAlertDeliveryReport(c.Request().Context(), userID, alertID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// GetStatistics handles GET /alerts/statistics. Operators may pass scope=all for global figures.
func (h *AlertHandler) GetStatistics(c echo.Context) error {
	owner, err := h.scopedOwner(c)
	if err != nil {
		return err
	}

	stats, err := h.alertUC.GetAlertStatistics(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ProcessAlerts handles POST /alerts/process?dry_run=&scope=
func (h *AlertHandler) ProcessAlerts(c echo.Context) error {
	owner, err := h.scopedOwner(c)
	if err != nil {
		return err
	}

	var dryRun bool
	if err := echo.QueryParamsBinder(c).Bool("dry_run", &dryRun).BindError(); err != nil {
		return domainerrors.NewValidationError("dry_run must be a boolean")
	}

	results, err := h.alertUC.ProcessAlerts(c.Request().Context(), owner, dryRun)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Run(c, nonNil(results), summarize(results, dryRun))
}

// ProcessBatch handles POST /alerts/batch
func (h *AlertHandler) ProcessBatch(c echo.Context) error {
	owner, err := h.scopedOwner(c)
	if err != nil {
		return err
	}

	var req BatchProcessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := h.alertUC.ProcessBatchAlerts(c.Request().Context(), owner, req.AlertIDs, req.DryRun)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Run(c, nonNil(results), summarize(results, req.DryRun))
}

// ownedAlertParams returns the caller and the :id path parameter.
func (h *AlertHandler) ownedAlertParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.NewValidationError("alert id must be a UUID")
	}

	return userID, alertID, nil
}

// scopedOwner returns nil for an operator asking for scope=all and the caller otherwise.
func (h *AlertHandler) scopedOwner(c echo.Context) (*uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	if c.QueryParam("scope") == scopeAll {
		if !middleware.HasRole(c, entity.RoleOperator) {
			return nil, domainerrors.ErrForbidden.WithDetails("scope=all requires the operator role")
		}

		return nil, nil
	}

	return &userID, nil
}

func summarize(results []entity.DeliveryResult, dryRun bool) response.RunSummary {
	summary := response.RunSummary{Results: len(results), DryRun: dryRun}
	for _, r := range results {
		switch {
		case r.Postponed:
			summary.Postponed++
		case r.Success:
			summary.Succeeded++
		default:
			summary.Failed++
		}
	}

	return summary
}

func nonNil(results []entity.DeliveryResult) []entity.DeliveryResult {
	if results == nil {
		return []entity.DeliveryResult{}
	}

	return results
}
