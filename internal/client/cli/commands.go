package cli

import (
	"context"

	"github.com/dmitrijs2005/noteskeeper/internal/client/config"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/spf13/cobra"
)

type commandRunner struct {
	factory AppFactory
}

// run loads the configuration, builds an App and calls fn with it.
func (r *commandRunner) run(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logging.WithRequestID(ctx, "")

		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}

		app, closeFn, err := r.factory(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		return fn(ctx, app, args)
	}
}

// NewRootCommand builds the notes command tree. factory creates the App for
// every invocation; Bootstrap is the production one.
func NewRootCommand(factory AppFactory) *cobra.Command {
	r := &commandRunner{factory: factory}

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Terminal client for the notes API",
		Long:          "notes keeps short text notes on a remote notes service.\n\nEnvironment:\n" + config.Usage(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Create an account and log in",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
				return a.Register(ctx)
			}),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Log in and remember the session",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
				return a.Login(ctx)
			}),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
				return a.Logout(ctx)
			}),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the logged-in user",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
				return a.WhoAmI(ctx)
			}),
		},
		newListCommand(r),
		newAddCommand(r),
		&cobra.Command{
			Use:     "show <id>",
			Short:   "Show a note",
			Aliases: []string{"s"},
			Args:    cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, a *App, args []string) error {
				return a.Show(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "archive <id>",
			Short: "Move a note to the archive",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, a *App, args []string) error {
				return a.Archive(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "unarchive <id>",
			Short: "Move a note back to the active notes",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, a *App, args []string) error {
				return a.Unarchive(ctx, args[0])
			}),
		},
		newDeleteCommand(r),
		&cobra.Command{
			Use:       "theme [toggle|light|dark]",
			Short:     "Show, toggle or set the color theme",
			Args:      cobra.MaximumNArgs(1),
			ValidArgs: []string{"toggle", "light", "dark"},
			RunE: r.run(func(ctx context.Context, a *App, args []string) error {
				arg := ""
				if len(args) > 0 {
					arg = args[0]
				}
				return a.Theme(ctx, arg)
			}),
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Start the interactive shell",
			Args:  cobra.NoArgs,
			RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
				a.Shell(ctx)
				return nil
			}),
		},
	)

	return root
}

func newListCommand(r *commandRunner) *cobra.Command {
	var (
		archived bool
		query    string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List active (or archived) notes",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
			return a.List(ctx, archived, query)
		}),
	}
	cmd.Flags().BoolVarP(&archived, "archived", "a", false, "list archived notes")
	cmd.Flags().StringVarP(&query, "search", "s", "", "only notes whose title or body contains this text")
	return cmd
}

func newAddCommand(r *commandRunner) *cobra.Command {
	var title, body string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, a *App, _ []string) error {
			return a.Add(ctx, title, body)
		}),
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title (prompted when empty)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "note body (prompted when empty)")
	return cmd
}

func newDeleteCommand(r *commandRunner) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a note",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, a *App, args []string) error {
			return a.Delete(ctx, args[0], yes)
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
