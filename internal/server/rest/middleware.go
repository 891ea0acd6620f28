package rest

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/dmitrijs2005/noteskeeper/internal/server/auth"
	"github.com/dmitrijs2005/noteskeeper/internal/server/users"
)

const (
	headerRequestID = "X-Request-ID"

	localsContext = "requestContext"
	localsUser    = "user"
)

// requestContext returns the context prepared by requestLogger.
func requestContext(c fiber.Ctx) context.Context {
	if ctx, ok := c.Locals(localsContext).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func currentUser(c fiber.Ctx) *users.User {
	u, _ := c.Locals(localsUser).(*users.User)
	return u
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		var base context.Context = c.Context()
		ctx := logging.WithRequestID(base, c.Get(headerRequestID))
		c.Locals(localsContext, ctx)

		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := s.handleError(c, err); herr != nil {
				return herr
			}
		}

		s.logger.Debug(ctx, "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return nil
	}
}

func (s *Server) requireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fail(c, fiber.StatusUnauthorized, "Missing authentication")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fail(c, fiber.StatusUnauthorized, "Invalid token format")
		}

		ctx := requestContext(c)
		user, err := s.users.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				s.logger.Debug(ctx, "token rejected", "error", err)
				return fail(c, fiber.StatusUnauthorized, "Invalid token")
			}
			return err
		}

		c.Locals(localsUser, user)
		return c.Next()
	}
}
