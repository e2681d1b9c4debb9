package medication

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthassist/healthassist/internal/platform/web"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/medication/add", h.Add)
	g.POST("/medication/get", h.List)
	g.DELETE("/medication/delete/:id", h.Delete)
}

type addRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  int    `json:"duration"`
}

func (h *Handler) Add(c echo.Context) error {
	var req addRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.Add(c.Request().Context(), req.Email, req.Name, req.Dosage, req.Frequency, req.Duration); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Medication added successfully!", nil)
}

type listRequest struct {
	Email string `json:"email"`
}

// List returns a bare array; a missing email or a store failure yields an
// empty list.
func (h *Handler) List(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusOK, []*Medication{})
	}
	meds, err := h.svc.List(c.Request().Context(), req.Email)
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("list medications")
		return c.JSON(http.StatusOK, []*Medication{})
	}
	return c.JSON(http.StatusOK, meds)
}

type deleteRequest struct {
	Email string `json:"email"`
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return web.Fail(c, web.ValidationError("Invalid medication id"))
	}
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.Delete(c.Request().Context(), id, req.Email); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Medication deleted", nil)
}
