package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/platform/telemetry"
	"github.com/healthassist/healthassist/pkg/pagination"
)

const timestampLayout = "2006-01-02 15:04:05"

type Handler struct {
	svc    *Service
	health *telemetry.HealthMetricsRecorder
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SetHealthMetrics attaches an optional gauge recorder; the liveness endpoint
// refreshes the user-count gauge on every successful check.
func (h *Handler) SetHealthMetrics(rec *telemetry.HealthMetricsRecorder) {
	h.health = rec
}

// RegisterRoutes wires the aggregation views and the liveness endpoint. None
// of the admin routes carry authorization; that gap is part of the exposed
// contract.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/admin/stats", h.Stats)
	g.POST("/admin/all_appointments", h.AllAppointments)
	g.POST("/admin/all_medications", h.AllMedications)
	g.POST("/admin/all_records", h.AllRecords)
	g.GET("/health", h.Health)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("admin stats")
		return c.JSON(http.StatusOK, map[string]string{"error": "Failed to fetch statistics"})
	}
	return c.JSON(http.StatusOK, stats)
}

// The aggregation views return bare arrays; a store failure yields an empty
// list rather than an error envelope.

func (h *Handler) AllAppointments(c echo.Context) error {
	rows, err := h.svc.AllAppointments(c.Request().Context(), pagination.FromContext(c))
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("admin all appointments")
		return c.JSON(http.StatusOK, []*AppointmentRow{})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) AllMedications(c echo.Context) error {
	rows, err := h.svc.AllMedications(c.Request().Context(), pagination.FromContext(c))
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("admin all medications")
		return c.JSON(http.StatusOK, []*MedicationRow{})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) AllRecords(c echo.Context) error {
	rows, err := h.svc.AllRecords(c.Request().Context(), pagination.FromContext(c))
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("admin all records")
		return c.JSON(http.StatusOK, []*RecordRow{})
	}
	return c.JSON(http.StatusOK, rows)
}

// Health is the one endpoint that signals failure through the HTTP status
// code: 500 when the store ping fails, 200 otherwise.
func (h *Handler) Health(c echo.Context) error {
	users, err := h.svc.Health(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":    "unhealthy",
			"message":   err.Error(),
			"timestamp": time.Now().Format(timestampLayout),
		})
	}
	if h.health != nil {
		h.health.SetUsersTotal(users)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"message":   "Health Assistant API is running",
		"database":  "connected",
		"users":     users,
		"timestamp": time.Now().Format(timestampLayout),
	})
}
