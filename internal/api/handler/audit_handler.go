package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/geo"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

const (
	defaultAuditLimit = 20
	maxAuditLimit     = 100
)

// AuditHandler serves the stored anti-spoofing outcomes to the manual-review
// tooling.
type AuditHandler struct {
	repo ports.AuditRepository
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// ListByEmployee handles GET /v1/audit/:employee_id — recent audit records,
// newest first.
//
// @Summary      List recent anti-spoofing audit records for an employee
// @Tags         audit
// @Produce      json
// @Param        employee_id  path   string  true   "Employee ID"
// @Param        limit        query  int     false  "Max records (default 20, cap 100)"
// @Success      200  {array}   auditRecordResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/audit/{employee_id} [get]
func (h *AuditHandler) ListByEmployee(c echo.Context) error {
	employeeID := c.Param("employee_id")
	if employeeID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "employee_id is required")
	}

	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	records, err := h.repo.ListByEmployee(c.Request().Context(), employeeID, limit)
	if err != nil {
		return err
	}

	out := make([]auditRecordResponse, 0, len(records))
	for _, rec := range records {
		loc := geo.FormatLocation(rec.Reading.Coordinate, rec.Reading.AccuracyMeters)
		out = append(out, toAuditResponse(rec, loc))
	}
	return c.JSON(http.StatusOK, out)
}
