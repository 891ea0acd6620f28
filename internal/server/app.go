// Package server wires the in-memory notes API used for local runs of the
// notes client: configuration, services, the HTTP server and graceful
// shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/dmitrijs2005/noteskeeper/internal/server/config"
	"github.com/dmitrijs2005/noteskeeper/internal/server/notes"
	"github.com/dmitrijs2005/noteskeeper/internal/server/rest"
	"github.com/dmitrijs2005/noteskeeper/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.Server
}

func NewApp(c *config.Config, l logging.Logger) *App {
	us := users.NewService(users.NewInMemoryRepository(), c.SecretKey, c.AccessTokenValidityDuration)
	ns := notes.NewService(notes.NewInMemoryRepository())

	return &App{
		config: c,
		logger: l,
		server: rest.NewServer(c.Addr, l, us, ns),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves on the configured address until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an already open listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		srvErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Serve(ctx, ln); err != nil {
			app.logger.Error(ctx, err.Error())
			srvErr = err
			cancelFunc()
		}
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return srvErr
}
