package rest

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dmitrijs2005/noteskeeper/internal/server/notes"
	"github.com/dmitrijs2005/noteskeeper/internal/server/users"
)

const msgInvalidBody = "Invalid request body"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	user, err := s.users.Register(requestContext(c), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, users.ErrEmailTaken):
		return fail(c, fiber.StatusBadRequest, "Email already in use")
	case errors.Is(err, users.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	return success(c, fiber.StatusCreated, "User Created", fiber.Map{"userId": user.ID})
}

func (s *Server) login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	token, err := s.users.Login(requestContext(c), req.Email, req.Password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		return fail(c, fiber.StatusBadRequest, "Invalid email or password")
	}
	if err != nil {
		return err
	}

	return success(c, fiber.StatusOK, "User logged successfully", fiber.Map{"accessToken": token})
}

func (s *Server) currentUser(c fiber.Ctx) error {
	u := currentUser(c)
	return success(c, fiber.StatusOK, "User retrieved", userResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}

func (s *Server) createNote(c fiber.Ctx) error {
	var req createNoteRequest
	if err := c.Bind().Body(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	note, err := s.notes.Create(requestContext(c), currentUser(c).ID, req.Title, req.Body)
	if errors.Is(err, notes.ErrInvalidInput) {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	return success(c, fiber.StatusCreated, "Note created", note)
}

func (s *Server) listNotes(c fiber.Ctx) error {
	list, err := s.notes.List(requestContext(c), currentUser(c).ID, false)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Notes retrieved", list)
}

func (s *Server) listArchivedNotes(c fiber.Ctx) error {
	list, err := s.notes.List(requestContext(c), currentUser(c).ID, true)
	if err != nil {
		return err
	}
	return success(c, fiber.StatusOK, "Archived notes retrieved", list)
}

func (s *Server) getNote(c fiber.Ctx) error {
	note, err := s.notes.Get(requestContext(c), currentUser(c).ID, c.Params("id"))
	if err != nil {
		return noteError(c, err)
	}
	return success(c, fiber.StatusOK, "Note retrieved", note)
}

func (s *Server) archiveNote(c fiber.Ctx) error {
	if err := s.notes.Archive(requestContext(c), currentUser(c).ID, c.Params("id")); err != nil {
		return noteError(c, err)
	}
	return success(c, fiber.StatusOK, "Note archived", nil)
}

func (s *Server) unarchiveNote(c fiber.Ctx) error {
	if err := s.notes.Unarchive(requestContext(c), currentUser(c).ID, c.Params("id")); err != nil {
		return noteError(c, err)
	}
	return success(c, fiber.StatusOK, "Note unarchived", nil)
}

func (s *Server) deleteNote(c fiber.Ctx) error {
	if err := s.notes.Delete(requestContext(c), currentUser(c).ID, c.Params("id")); err != nil {
		return noteError(c, err)
	}
	return success(c, fiber.StatusOK, "Note deleted", nil)
}

func noteError(c fiber.Ctx, err error) error {
	if errors.Is(err, notes.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Note not found")
	}
	return err
}
