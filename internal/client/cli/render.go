package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/theme"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	dateLayout     = "Monday, 2 January 2006"
	bodyPreviewMax = 40
)

// FormatDate renders t as a long weekday/day/month/year date in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	r := []rune(body)
	if len(r) <= bodyPreviewMax {
		return body
	}
	return string(r[:bodyPreviewMax-1]) + "…"
}

// renderNotes prints a tab of notes. total is the size of the tab before
// searching; it is shown as "(n of m)" when query is set.
func renderNotes(w io.Writer, st theme.Styles, notes []models.Note, total int, query string, archived bool) {
	heading := "Active notes"
	if archived {
		heading = "Archive"
	}
	count := fmt.Sprintf("(%d)", total)
	if query != "" {
		count = fmt.Sprintf("(%d of %d)", len(notes), total)
	}
	fmt.Fprintln(w, st.Title.Render(heading)+" "+st.Muted.Render(count))

	if len(notes) == 0 {
		if query != "" {
			fmt.Fprintln(w, st.Muted.Render(fmt.Sprintf("No notes match %q", query)))
			return
		}
		fmt.Fprintln(w, st.Muted.Render("No notes yet"))
		fmt.Fprintln(w, st.Muted.Render("Start by adding your first note!"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Title", "Body", "Created"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 30},
		{Number: 3, WidthMax: bodyPreviewMax},
		{Number: 4, Align: text.AlignRight},
	})
	titleStyle := st.Body
	if archived {
		titleStyle = st.Archived
	}
	for _, n := range notes {
		t.AppendRow(table.Row{
			n.ID,
			titleStyle.Render(n.Title),
			preview(n.Body),
			FormatDate(n.CreatedAt),
		})
	}
	t.Render()
}

// renderNote prints the full note.
func renderNote(w io.Writer, st theme.Styles, n models.Note) {
	var b strings.Builder
	b.WriteString(st.Title.Render(n.Title))
	if n.Archived {
		b.WriteString(" " + st.Archived.Render("[archived]"))
	}
	b.WriteString("\n\n")
	b.WriteString(st.Body.Render(n.Body))
	b.WriteString("\n\n")
	b.WriteString(st.Muted.Render("Created: " + FormatDate(n.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(st.Muted.Render("ID: " + n.ID))

	fmt.Fprintln(w, st.Panel.Render(b.String()))
}
