// Package rest exposes the users and notes services over the JSON API
// consumed by the notes client.
package rest

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/dmitrijs2005/noteskeeper/internal/server/notes"
	"github.com/dmitrijs2005/noteskeeper/internal/server/users"
)

// BasePath prefixes every route.
const BasePath = "/v1"

type Server struct {
	address string
	app     *fiber.App
	users   *users.Service
	notes   *notes.Service
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, us *users.Service, ns *notes.Service) *Server {
	s := &Server{
		address: address,
		users:   us,
		notes:   ns,
		logger:  l.With("module", "rest_server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "notesd",
		ErrorHandler: s.handleError,
	})
	s.routes()
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) routes() {
	s.app.Use(s.requestLogger())
	s.app.Use(recoverer.New())

	v1 := s.app.Group(BasePath)
	v1.Post("/register", s.register)
	v1.Post("/login", s.login)

	authorized := s.requireAuth()

	u := v1.Group("/users", authorized)
	u.Get("/me", s.currentUser)

	n := v1.Group("/notes", authorized)
	n.Post("/", s.createNote)
	n.Get("/", s.listNotes)
	n.Get("/archived", s.listArchivedNotes)
	n.Get("/:id", s.getNote)
	n.Post("/:id/archive", s.archiveNote)
	n.Post("/:id/unarchive", s.unarchiveNote)
	n.Delete("/:id", s.deleteNote)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error(context.Background(), "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := s.app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.address, err)
	}
	return s.Serve(ctx, ln)
}
