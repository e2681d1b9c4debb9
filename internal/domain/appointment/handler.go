package appointment

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

// RegisterRoutes wires both the user-facing booking routes and the admin
// appointment actions. The admin routes carry no authorization; that gap is
// part of the exposed contract.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/appointment/add", h.Book)
	g.POST("/appointment/get", h.List)
	g.DELETE("/appointment/delete/:id", h.Cancel)
	g.POST("/admin/appointment/complete", h.AdminComplete)
	g.POST("/admin/appointment/delete", h.AdminDelete)
}

type bookRequest struct {
	Email  string `json:"email"`
	Doctor string `json:"doctor"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

func (h *Handler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.Book(c.Request().Context(), req.Email, req.Doctor, req.Date, req.Time); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Appointment booked successfully!", nil)
}

type listRequest struct {
	Email string `json:"email"`
}

// List returns a bare array. A missing email or a store failure both yield an
// empty list rather than an error envelope.
func (h *Handler) List(c echo.Context) error {
	var req listRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusOK, []*Appointment{})
	}
	appts, err := h.svc.List(c.Request().Context(), req.Email)
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("list appointments")
		return c.JSON(http.StatusOK, []*Appointment{})
	}
	return c.JSON(http.StatusOK, appts)
}

type cancelRequest struct {
	Email string `json:"email"`
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return web.Fail(c, web.ValidationError("Invalid appointment id"))
	}
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.Cancel(c.Request().Context(), id, req.Email); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Appointment cancelled", nil)
}

type adminActionRequest struct {
	ID int64 `json:"id"`
}

func (h *Handler) AdminComplete(c echo.Context) error {
	return h.adminRemove(c, "Appointment marked as completed")
}

func (h *Handler) AdminDelete(c echo.Context) error {
	return h.adminRemove(c, "Appointment deleted")
}

func (h *Handler) adminRemove(c echo.Context, successMsg string) error {
	var req adminActionRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if req.ID == 0 {
		return web.Fail(c, web.ValidationError("Missing appointment ID"))
	}
	if err := h.svc.AdminRemove(c.Request().Context(), req.ID); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, successMsg, nil)
}
