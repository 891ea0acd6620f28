// Package cli provides the notes command-line client.
//
// It wires configuration, local storage, the API client and the three
// state containers (session, notes store, theme) into an App, and exposes
// the App through cobra commands and an interactive shell.
//
// Commands that touch notes restore the persisted session first and fail
// with ErrNotLoggedIn when there is none. Errors are reported to the user
// as their message; none of them ends the shell.
package cli
