package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, archived bool, query string) error
	Add(ctx context.Context, title, body string) error
	Show(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Unarchive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, yes bool) error
	Theme(ctx context.Context, arg string) error
	ReportError(err error)
}

const (
	helpLoggedOut = "Available commands: register, login, theme [toggle|light|dark], exit"
	helpLoggedIn  = "Available commands: (l)ist [query], (a)rchived [query], add, show <id>, " +
		"archive <id>, unarchive <id>, delete <id>, whoami, theme [toggle|light|dark], logout, exit"
)

// runREPL starts a read–eval–print loop over reader.
//
// The first token of a line is the command, the rest its arguments. Command
// errors are reported through a.ReportError and never end the loop. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// The reader is shared with the interactive prompts of the commands, so
// lines are read from it directly instead of through a bufio.Scanner.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "notes %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := strings.Join(args, " ")

		// each command gets its own request id
		cctx := logging.WithRequestID(ctx, "")

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(cctx)

		case "login":
			cmdErr = a.Login(cctx)

		case "logout":
			cmdErr = a.Logout(cctx)

		case "whoami":
			cmdErr = a.WhoAmI(cctx)

		case "l", "list":
			cmdErr = a.List(cctx, false, arg)

		case "a", "archived":
			cmdErr = a.List(cctx, true, arg)

		case "add":
			cmdErr = a.Add(cctx, "", "")

		case "show":
			cmdErr = a.Show(cctx, arg)

		case "archive":
			cmdErr = a.Archive(cctx, arg)

		case "unarchive":
			cmdErr = a.Unarchive(cctx, arg)

		case "delete", "rm":
			cmdErr = a.Delete(cctx, arg, false)

		case "theme":
			cmdErr = a.Theme(cctx, arg)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			a.ReportError(cmdErr)
		}
	}
}

// Shell runs the interactive shell until EOF or exit.
func (a *App) Shell(ctx context.Context) {
	a.restore(ctx)
	a.println(a.styles().Title.Render("Notes shell") + " " + a.styles().Muted.Render("(type 'help' for commands)"))
	runREPL(ctx, a, a.status, a.reader, a.out)
}
