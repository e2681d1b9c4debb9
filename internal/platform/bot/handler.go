package bot

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the chat responder over HTTP.
type Handler struct {
	engine *Engine
}

// NewHandler creates a chat handler backed by the given engine.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// RegisterRoutes registers the chat endpoint on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Chat)
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a free-text question. The endpoint always returns 200 with a
// reply; a bad payload gets the error reply rather than an error envelope so
// chat clients can render whatever comes back.
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, chatResponse{Reply: ErrorReply})
	}

	return c.JSON(http.StatusOK, chatResponse{Reply: h.engine.Respond(req.Question)})
}
