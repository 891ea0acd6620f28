// Package models defines the notes client data types and the payloads
// exchanged with the notes API.
package models

import "time"

// Note is a user-authored record mirrored from the remote notes API.
type Note struct {
	// ID is assigned by the server and never generated client-side.
	ID string `json:"id"`

	Title string `json:"title"`
	Body  string `json:"body"`

	// CreatedAt is set once by the server.
	CreatedAt time.Time `json:"createdAt"`

	// Archived changes only through the archive/unarchive endpoints.
	Archived bool `json:"archived"`

	// Owner identifies the owning account; read-only for the client.
	Owner string `json:"owner,omitempty"`
}

// CreateNoteRequest is the payload of POST /notes.
type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
