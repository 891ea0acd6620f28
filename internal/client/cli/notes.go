package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/noteskeeper/internal/client/store"
)

var (
	ErrEmptyTitle = errors.New("title must not be empty")
	ErrEmptyBody  = errors.New("body must not be empty")
	ErrEmptyID    = errors.New("note id is required")
)

// List fetches all notes and prints one tab, filtered by query.
func (a *App) List(ctx context.Context, archived bool, query string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if err := a.notes.FetchAll(ctx); err != nil {
		return err
	}

	tab := a.notes.SelectActive()
	if archived {
		tab = a.notes.SelectArchived()
	}
	query = strings.TrimSpace(query)
	renderNotes(a.out, a.styles(), store.Search(tab, query), len(tab), query, archived)
	return nil
}

// Add creates a note, prompting for whatever was not given.
func (a *App) Add(ctx context.Context, title, body string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	var err error
	if strings.TrimSpace(title) == "" {
		if title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
			return err
		}
	}
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	if strings.TrimSpace(body) == "" {
		if body, err = getMultiline(a.reader, "Body", a.out); err != nil {
			return err
		}
	}
	if strings.TrimSpace(body) == "" {
		return ErrEmptyBody
	}

	n, err := a.notes.Create(ctx, title, body)
	if err != nil {
		return err
	}
	a.success("Note created: " + n.ID)
	return nil
}

// Show prints a single note, looking it up remotely when it is not mirrored.
func (a *App) Show(ctx context.Context, id string) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}
	n, err := a.notes.Get(ctx, id)
	if err != nil {
		return err
	}
	renderNote(a.out, a.styles(), n)
	return nil
}

func (a *App) Archive(ctx context.Context, id string) error {
	return a.setArchived(ctx, id, true)
}

func (a *App) Unarchive(ctx context.Context, id string) error {
	return a.setArchived(ctx, id, false)
}

func (a *App) setArchived(ctx context.Context, id string, archived bool) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}
	if err := a.notes.FetchAll(ctx); err != nil {
		return err
	}

	if archived {
		if err := a.notes.Archive(ctx, id); err != nil {
			return err
		}
		a.success("Note archived")
		return nil
	}

	if err := a.notes.Unarchive(ctx, id); err != nil {
		return err
	}
	a.success("Note moved to active notes")
	return nil
}

// Delete removes a note after confirmation (skipped when yes is set) and
// refreshes the mirror.
func (a *App) Delete(ctx context.Context, id string, yes bool) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if id == "" {
		return ErrEmptyID
	}

	if !yes {
		ok, err := confirm(a.reader, "Are you sure you want to delete this note?", a.out)
		if err != nil {
			return err
		}
		if !ok {
			a.println("Cancelled")
			return nil
		}
	}

	if err := a.notes.Remove(ctx, id); err != nil {
		return err
	}
	a.success("Note deleted")

	if err := a.notes.FetchAll(ctx); err != nil {
		a.log.Warn(ctx, "refresh after delete failed", "error", err)
	}
	return nil
}
