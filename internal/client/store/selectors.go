package store

import (
	"strings"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// Active returns the notes that are not archived, preserving order.
func Active(notes []models.Note) []models.Note {
	return filter(notes, func(n models.Note) bool { return !n.Archived })
}

// Archived returns the archived notes, preserving order.
func Archived(notes []models.Note) []models.Note {
	return filter(notes, func(n models.Note) bool { return n.Archived })
}

// ByID finds a note by id.
func ByID(notes []models.Note, id string) (models.Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Search keeps the notes whose title or body contains query, ignoring case.
// An empty query returns notes unchanged.
func Search(notes []models.Note, query string) []models.Note {
	if query == "" {
		return notes
	}
	q := strings.ToLower(query)
	return filter(notes, func(n models.Note) bool {
		return strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Body), q)
	})
}

func filter(notes []models.Note, keep func(models.Note) bool) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
