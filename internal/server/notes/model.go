package notes

import "time"

// Note is the wire and storage shape of a note.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Archived  bool      `json:"archived"`
	Owner     string    `json:"owner"`
}
