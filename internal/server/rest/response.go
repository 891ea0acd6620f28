package rest

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(envelope{Status: statusSuccess, Message: message, Data: data})
}

func fail(c fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(envelope{Status: statusFail, Message: message})
}

// handleError renders errors escaping handlers, including fiber's own
// (unknown route, method not allowed).
func (s *Server) handleError(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fail(c, fe.Code, fe.Message)
	}

	s.logger.Error(requestContext(c), "request failed", "error", err, "path", c.Path())
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}
