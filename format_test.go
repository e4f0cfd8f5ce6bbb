package smartdiff

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatPretty(t *testing.T) {
	diffs := Differences{
		"name":           {Left: "john", Right: "JOHN"},
		"age":            {Left: Undefined, Right: 19},
		"emails.primary": {Left: "john@example.com", Right: Undefined},
		"nip":            {Left: Undefined, Right: nil},
		"d1":             {Left: time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC), Right: time.Date(2000, 2, 2, 0, 0, 0, 0, time.UTC)},
	}

	got, err := FormatPrettyString(diffs, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := `+ age: 19
~ d1: "2000-02-01T00:00:00Z" -> "2000-02-02T00:00:00Z"
- emails.primary: "john@example.com"
~ name: "john" -> "JOHN"
+ nip: null
`
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}

func TestFormatPrettyColor(t *testing.T) {
	diffs := Differences{
		"name": {Left: "john", Right: "JOHN"},
		"age":  {Left: Undefined, Right: 19},
	}

	// a buffer is never a terminal, colors must still be emitted
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, diffs, true); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output, got: %q", got)
	}
	if !strings.Contains(got, "name") || !strings.Contains(got, `"JOHN"`) {
		t.Errorf("colored output is missing content: %q", got)
	}

	if stats := FormatPrettyStatsColor(&Stats{Reported: 2, Edits: 1, News: 1}); !strings.Contains(stats, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored stats, got: %q", stats)
	}
}

func TestFormatPrettyEmpty(t *testing.T) {
	got, err := FormatPrettyString(Differences{}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected empty report, got: %q", got)
	}
}

func TestFormatPrettyUnencodable(t *testing.T) {
	diffs := Differences{"fn": {Left: func() {}, Right: Undefined}}
	if _, err := FormatPrettyString(diffs, false); err == nil {
		t.Error("expected error formatting an unencodable value")
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{Raw: 8, Reported: 6, Edits: 2, News: 2, Deletes: 2, Equivalent: 2},
			"6 differences. 2 edits. 2 inserts. 2 deletes. 2 suppressed.\n",
		},
		{"all singular",
			&Stats{Raw: 3, Reported: 3, Edits: 1, News: 1, Deletes: 1},
			"3 differences. 1 edit. 1 insert. 1 delete.\n",
		},
		{"array edits & large numbers",
			&Stats{Raw: 2500, Reported: 1200, ArrayEdits: 1200, Filtered: 1300},
			"1,200 differences. 0 edits. 0 inserts. 0 deletes. 1,200 array edits. 1,300 suppressed.\n",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStats(c.input)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStats(nil)
	expect := `<nil>`
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
