package handler

import (
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/api/metrics"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/analyzer"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/geo"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// AuditDispatcher is the interface the handler uses to enqueue audit records.
type AuditDispatcher interface {
	Enqueue(rec *ports.AuditRecord)
}

// VerificationHandler exposes the verification engine to the time-tracking
// subsystem.
type VerificationHandler struct {
	verifier  ports.VerificationService
	antispoof ports.AntiSpoofingService
	branches  ports.BranchRepository
	audit     AuditDispatcher
}

// NewVerificationHandler creates a VerificationHandler.
func NewVerificationHandler(
	verifier ports.VerificationService,
	antispoof ports.AntiSpoofingService,
	branches ports.BranchRepository,
	audit AuditDispatcher,
) *VerificationHandler {
	return &VerificationHandler{
		verifier:  verifier,
		antispoof: antispoof,
		branches:  branches,
		audit:     audit,
	}
}

// resolveGeofence returns the geofence for a request: inline when provided,
// otherwise looked up in the branch registry.
func (h *VerificationHandler) resolveGeofence(c echo.Context, branchID string, inline *geofenceRequest) (domain.WorkplaceGeofence, error) {
	if inline != nil {
		return toGeofence(inline), nil
	}
	if branchID == "" {
		return domain.WorkplaceGeofence{}, echo.NewHTTPError(http.StatusBadRequest, "geofence or branch_id is required")
	}
	branch, err := h.branches.FindByID(c.Request().Context(), branchID)
	if err != nil {
		return domain.WorkplaceGeofence{}, err
	}
	return branch.Geofence, nil
}

// VerifyLocation handles POST /v1/locations/verify — the standalone hard gate.
//
// @Summary      Verify a location reading against a workplace geofence
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      verifyLocationRequest  true  "Reading and geofence"
// @Success      200   {object}  verifyLocationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  verifyLocationResponse
// @Router       /v1/locations/verify [post]
func (h *VerificationHandler) VerifyLocation(c echo.Context) error {
	var req verifyLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fence, err := h.resolveGeofence(c, req.BranchID, req.Geofence)
	if err != nil {
		return err
	}

	reading := toReading(req.Reading)
	result, err := h.verifier.VerifyLocation(c.Request().Context(), reading, fence, req.ClientIP)
	if err != nil {
		return err
	}

	resp := verifyLocationResponse{
		Verified:       result.Verified,
		DistanceMeters: result.DistanceMeters,
		AccuracyMeters: result.AccuracyMeters,
		Location:       geo.FormatLocation(reading.Coordinate, reading.AccuracyMeters),
	}
	if result.Verified {
		metrics.VerificationsTotal.WithLabelValues("verified", "none").Inc()
		return c.JSON(http.StatusOK, resp)
	}

	// Hard failure: blocks the clock action, reason surfaced verbatim.
	resp.Reason = string(result.Reason)
	resp.Message = result.Reason.Message()
	metrics.VerificationsTotal.WithLabelValues("rejected", string(result.Reason)).Inc()
	return c.JSON(http.StatusUnprocessableEntity, resp)
}

// ValidateClockEvent handles POST /v1/clock-events/validate — the full
// anti-spoofing evaluation. Heuristic risk never blocks here: a well-formed
// request always yields 200 and the caller's policy decides what to do with
// the score.
//
// @Summary      Evaluate a clock event for location spoofing risk
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      validateClockEventRequest  true  "Clock event and caller-supplied context"
// @Success      200   {object}  domain.AntiSpoofingResult
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clock-events/validate [post]
func (h *VerificationHandler) ValidateClockEvent(c echo.Context) error {
	var req validateClockEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fence, err := h.resolveGeofence(c, req.BranchID, req.Geofence)
	if err != nil {
		return err
	}

	reading := toReading(req.Reading)
	vctx := ports.ValidationContext{
		EmployeeID:       req.EmployeeID,
		Geofence:         fence,
		History:          toReadings(req.History),
		AcceptedClockIns: toCoordinates(req.AcceptedClockIns),
		ClientIP:         req.ClientIP,
	}

	result, err := h.antispoof.Validate(c.Request().Context(), reading, vctx)
	if err != nil {
		return err
	}

	verdict := "valid"
	if !result.IsValid {
		verdict = "suspect"
	}
	metrics.ValidationsTotal.WithLabelValues(verdict).Inc()
	metrics.RiskScore.Observe(float64(result.RiskScore))
	for _, f := range result.Flags {
		metrics.RiskFlagsTotal.WithLabelValues(string(f)).Inc()
	}

	h.audit.Enqueue(&ports.AuditRecord{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		BranchID:     req.BranchID,
		Reading:      reading,
		Result:       result,
		CaptureError: domain.CaptureError(req.CaptureError),
		CreatedAt:    time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, result)
}

// CheckMovement handles POST /v1/movement/check — the reusable
// suspicious-movement primitive.
//
// @Summary      Check whether the transition between two readings is physically plausible
// @Tags         verification
// @Accept       json
// @Produce      json
// @Param        body  body      movementCheckRequest  true  "Previous and current readings"
// @Success      200   {object}  movementCheckResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/movement/check [post]
func (h *VerificationHandler) CheckMovement(c echo.Context) error {
	var req movementCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prev, curr := toReading(req.Previous), toReading(req.Current)
	resp := movementCheckResponse{
		Suspicious: analyzer.DetectSuspiciousMovement(prev, curr),
	}
	if speed := analyzer.SpeedBetween(prev, curr); !math.IsInf(speed, 1) {
		resp.SpeedKmh = speed
	}
	return c.JSON(http.StatusOK, resp)
}
