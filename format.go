package smartdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
)

// Theme styles the parts of a pretty-printed report
type Theme struct {
	Path    lipgloss.Style
	Edit    lipgloss.Style
	New     lipgloss.Style
	Deleted lipgloss.Style
	Neutral lipgloss.Style
}

// DefaultTheme uses ANSI colors:
// red "-" for values only present on the left
// green "+" for values only present on the right
// blue "~" for changes (values present on both sides)
// its styles follow the color profile detected for stdout
var DefaultTheme = NewDefaultTheme(lipgloss.DefaultRenderer())

// NewDefaultTheme builds the DefaultTheme styles on renderer r
func NewDefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Path:    r.NewStyle().Bold(true),
		Edit:    r.NewStyle().Foreground(lipgloss.Color("4")),
		New:     r.NewStyle().Foreground(lipgloss.Color("2")),
		Deleted: r.NewStyle().Foreground(lipgloss.Color("1")),
		Neutral: r.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// ansiTheme is the default theme forced to ANSI colors regardless of what w
// is connected to
func ansiTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return NewDefaultTheme(r)
}

// plainTheme renders everything as-is
var plainTheme = Theme{
	Path:    lipgloss.NewStyle(),
	Edit:    lipgloss.NewStyle(),
	New:     lipgloss.NewStyle(),
	Deleted: lipgloss.NewStyle(),
	Neutral: lipgloss.NewStyle(),
}

// FormatPrettyString is a convenice wrapper that outputs to a string instead of
// an io.Writer
func FormatPrettyString(diffs Differences, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, diffs, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per difference in path
// order. if colorTTY is true lines are always colored with ANSI escapes
func FormatPretty(w io.Writer, diffs Differences, colorTTY bool) error {
	theme := plainTheme
	if colorTTY {
		theme = ansiTheme(w)
	}
	return FormatPrettyTheme(w, diffs, theme)
}

// FormatPrettyTheme writes a text report to w using the given theme
func FormatPrettyTheme(w io.Writer, diffs Differences, theme Theme) error {
	for _, p := range diffs.Paths() {
		d := diffs[p]
		switch {
		case d.LeftPresent() && d.RightPresent():
			left, err := formatValue(d.Left)
			if err != nil {
				return err
			}
			right, err := formatValue(d.Right)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %s: %s -> %s\n", theme.Edit.Render("~"), theme.Path.Render(p), theme.Deleted.Render(left), theme.New.Render(right))
		case d.RightPresent():
			right, err := formatValue(d.Right)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %s: %s\n", theme.New.Render("+"), theme.Path.Render(p), theme.New.Render(right))
		default:
			left, err := formatValue(d.Left)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s %s: %s\n", theme.Deleted.Render("-"), theme.Path.Render(p), theme.Deleted.Render(left))
		}
	}
	return nil
}

func formatValue(v interface{}) (string, error) {
	if IsUndefined(v) {
		return "undefined", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, plainTheme)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, ansiTheme(io.Discard))
}

func formatStats(st *Stats, theme Theme) string {
	if st == nil {
		return "<nil>"
	}

	buf := &bytes.Buffer{}
	buf.WriteString(theme.Neutral.Render(plural(st.Reported, "difference", "differences") + "."))
	buf.WriteString(" " + theme.Edit.Render(plural(st.Edits, "edit", "edits")+"."))
	buf.WriteString(" " + theme.New.Render(plural(st.News, "insert", "inserts")+"."))
	buf.WriteString(" " + theme.Deleted.Render(plural(st.Deletes, "delete", "deletes")+"."))
	if st.ArrayEdits > 0 {
		buf.WriteString(" " + theme.Edit.Render(plural(st.ArrayEdits, "array edit", "array edits")+"."))
	}
	if st.Suppressed() > 0 {
		buf.WriteString(" " + theme.Neutral.Render(humanize.Comma(int64(st.Suppressed()))+" suppressed."))
	}
	buf.WriteRune('\n')
	return buf.String()
}

func plural(n int, singular, many string) string {
	word := many
	if n == 1 {
		word = singular
	}
	return humanize.Comma(int64(n)) + " " + word
}
