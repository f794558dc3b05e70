package terminal

import (
	"fmt"
	"strconv"
	"time"

	"wolfpack/internal/domain/packs"
	"wolfpack/internal/domain/wolves"
	"wolfpack/internal/wire"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timestampLayout = "2006-01-02 15:04"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleMuted).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTitle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func WolvesTable(items []wolves.Wolf) string {
	t := newTable("ID", "NAME", "GENDER", "BIRTHDAY", "UPDATED")
	for _, w := range items {
		t.Row(strconv.Itoa(w.ID), w.Name, string(w.Gender), wire.FormatDate(w.Birthday), stamp(w.UpdatedAt))
	}
	return t.Render()
}

func PacksTable(items []packs.Pack) string {
	t := newTable("ID", "NAME", "LAT", "LNG", "UPDATED")
	for _, p := range items {
		t.Row(strconv.Itoa(p.ID), p.Name, coord(p.Latitude), coord(p.Longitude), stamp(p.UpdatedAt))
	}
	return t.Render()
}

// PackDetail es la ficha de la manada con su tabla de miembros.
func PackDetail(p packs.Pack) string {
	head := fmt.Sprintf("%s  %s\n%s %s, %s   %s %s",
		styleTitle.Render(p.Name), styleMuted.Render("#"+strconv.Itoa(p.ID)),
		styleMuted.Render("location"), coord(p.Latitude), coord(p.Longitude),
		styleMuted.Render("updated"), stamp(p.UpdatedAt))
	if len(p.Wolves) == 0 {
		return head + "\n" + styleMuted.Render("No wolves in this pack.")
	}
	return head + "\n" + WolvesTable(p.Wolves)
}

func WolfDetail(w wolves.Wolf) string {
	return fmt.Sprintf("%s  %s\n%s %s   %s %s\n%s %s   %s %s",
		styleTitle.Render(w.Name), styleMuted.Render("#"+strconv.Itoa(w.ID)),
		styleMuted.Render("gender"), w.Gender,
		styleMuted.Render("birthday"), wire.FormatDate(w.Birthday),
		styleMuted.Render("created"), stamp(w.CreatedAt),
		styleMuted.Render("updated"), stamp(w.UpdatedAt))
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}

func coord(f float64) string {
	return strconv.FormatFloat(f, 'f', 5, 64)
}
