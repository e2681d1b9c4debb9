package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the flat response body shared by every mutating endpoint.
type Envelope map[string]interface{}

// Success writes {"status":"success","msg":msg} plus any extra keys. An empty
// msg is omitted; some endpoints carry their payload in extra alone.
func Success(c echo.Context, msg string, extra Envelope) error {
	body := Envelope{"status": "success"}
	if msg != "" {
		body["msg"] = msg
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

// Fail renders err as {"status":"error","msg":...} with HTTP 200. Messages
// from classified errors pass through verbatim; anything unclassified is
// logged and masked as a generic server error.
func Fail(c echo.Context, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindInternal, Msg: "Server error occurred", Err: err}
	}

	if e.Kind == KindInternal {
		zerolog.Ctx(c.Request().Context()).Error().
			Err(err).
			Str("path", c.Request().URL.Path).
			Msg("unhandled service error")
	}

	return c.JSON(http.StatusOK, Envelope{"status": "error", "msg": e.Msg})
}
