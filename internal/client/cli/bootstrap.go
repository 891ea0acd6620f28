package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/config"
	"github.com/dmitrijs2005/noteskeeper/internal/client/session"
	"github.com/dmitrijs2005/noteskeeper/internal/client/storage"
	"github.com/dmitrijs2005/noteskeeper/internal/client/store"
	"github.com/dmitrijs2005/noteskeeper/internal/client/theme"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

// AppFactory builds an App for one command run. The returned function
// releases its resources.
type AppFactory func(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, func() error, error)

// Bootstrap is the production AppFactory: it opens the local database,
// creates the API client and the state containers and loads the theme.
func Bootstrap(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) (*App, func() error, error) {
	log, err := logging.New(logging.Mode(cfg.LogMode), cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	st, err := storage.InitDatabase(ctx, cfg.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.StoragePath, "error", err)
		return nil, nil, err
	}

	// the session is both the consumer of the client and its token source
	var sess *session.Session
	client := api.NewHTTPClient(cfg.APIBaseURL,
		api.TokenFunc(func() string { return sess.AccessToken() }),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	)
	sess = session.New(client, st.Metadata, st, log)

	th := theme.New(st.Metadata, log)
	if err := th.Load(ctx); err != nil {
		log.Warn(ctx, "theme not persisted", "error", err)
	}

	app := New(Deps{
		Session: sess,
		Notes:   store.New(client, log),
		Theme:   th,
		Log:     log,
	}, in, out)

	closeFn := func() error {
		// syncing stderr fails on most terminals
		_ = log.Sync()
		return st.Close()
	}
	return app, closeFn, nil
}
