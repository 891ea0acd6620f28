package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

const minPasswordLength = 6

var (
	ErrEmptyEmail       = errors.New("email must not be empty")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrShortPassword    = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmptyName        = errors.New("name must not be empty")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
)

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrShortPassword
	}
	return nil
}

func validateRegistration(name, email, password, confirm string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Register prompts for name, email and password (twice), validates them and
// creates the account. A successful registration also logs in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	if err := validateRegistration(name, email, string(password), string(confirm)); err != nil {
		return err
	}

	if err := a.session.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), string(password)); err != nil {
		return err
	}
	a.restored = true

	a.success(fmt.Sprintf("Welcome, %s!", strings.TrimSpace(name)))
	return nil
}

// Login prompts for credentials, offering the last used email as default.
func (a *App) Login(ctx context.Context) error {
	prompt := "Email"
	last := a.session.LastEmail(ctx)
	if last != "" {
		prompt = fmt.Sprintf("Email [%s]", last)
	}

	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = last
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := validateCredentials(email, string(password)); err != nil {
		return err
	}

	if err := a.session.Login(ctx, strings.TrimSpace(email), string(password)); err != nil {
		return err
	}
	a.restored = true

	if u, ok := a.session.User(); ok {
		a.success(fmt.Sprintf("Logged in as %s", u.Name))
	} else {
		a.success("Logged in")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.restored = true
	a.success("Logged out")
	return nil
}

// WhoAmI prints the profile of the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	u, ok := a.session.User()
	if !ok {
		a.println("Logged in (profile unavailable)")
		return nil
	}
	a.println(fmt.Sprintf("%s <%s>", a.styles().Title.Render(u.Name), u.Email))
	return nil
}
