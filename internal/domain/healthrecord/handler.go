package healthrecord

import (
	"net/http"

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
	g.POST("/health_records/save", h.Save)
	g.POST("/health_records/get", h.Get)
}

type saveRequest struct {
	Email             string   `json:"email"`
	BloodGroup        *string  `json:"blood_group"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	EmergencyName     *string  `json:"emergency_name"`
	EmergencyRelation *string  `json:"emergency_relation"`
	EmergencyPhone    *string  `json:"emergency_phone"`
	MedicalConditions *string  `json:"medical_conditions"`
	Allergies         *string  `json:"allergies"`
}

func (h *Handler) Save(c echo.Context) error {
	var req saveRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	rec := &Record{
		UserEmail:         req.Email,
		BloodGroup:        req.BloodGroup,
		Height:            req.Height,
		Weight:            req.Weight,
		EmergencyName:     req.EmergencyName,
		EmergencyRelation: req.EmergencyRelation,
		EmergencyPhone:    req.EmergencyPhone,
		MedicalConditions: req.MedicalConditions,
		Allergies:         req.Allergies,
	}
	if err := h.svc.Save(c.Request().Context(), rec); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Health records saved", nil)
}

type getRequest struct {
	Email string `json:"email"`
}

// Get returns the record object, or an empty object when the user has none.
func (h *Handler) Get(c echo.Context) error {
	var req getRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusOK, struct{}{})
	}
	rec, err := h.svc.Get(c.Request().Context(), req.Email)
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("get health records")
		return c.JSON(http.StatusOK, struct{}{})
	}
	if rec == nil {
		return c.JSON(http.StatusOK, struct{}{})
	}
	return c.JSON(http.StatusOK, rec)
}
