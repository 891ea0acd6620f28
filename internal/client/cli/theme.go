package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// Theme shows the current theme (arg ""), toggles it ("toggle") or sets it
// ("light", "dark").
func (a *App) Theme(ctx context.Context, arg string) error {
	switch arg {
	case "":
		a.println("Theme: " + a.styles().Title.Render(string(a.theme.Current())))
		return nil
	case "toggle":
		t, err := a.theme.Toggle(ctx)
		if err != nil {
			return err
		}
		a.success(fmt.Sprintf("Theme switched to %s", t))
		return nil
	default:
		t, err := models.ParseTheme(arg)
		if err != nil {
			return err
		}
		if err := a.theme.Set(ctx, t); err != nil {
			return err
		}
		a.success(fmt.Sprintf("Theme set to %s", t))
		return nil
	}
}
