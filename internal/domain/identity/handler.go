package identity

import (
	"github.com/labstack/echo/v4"

	"github.com/healthassist/healthassist/internal/platform/web"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.POST("/profile/save", h.SaveProfile)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.Signup(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Account created successfully! Please login.", nil)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	u, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "", web.Envelope{"user": web.Envelope{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"age":   u.Age,
		"bio":   u.Bio,
	}})
}

type profileRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   string `json:"age"`
	Bio   string `json:"bio"`
}

func (h *Handler) SaveProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return web.Fail(c, web.ValidationError("Invalid request payload"))
	}
	if err := h.svc.SaveProfile(c.Request().Context(), req.Email, req.Name, req.Age, req.Bio); err != nil {
		return web.Fail(c, err)
	}
	return web.Success(c, "Profile updated successfully", nil)
}
