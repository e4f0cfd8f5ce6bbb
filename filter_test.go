package smartdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFilters(t *testing.T) {
	cases := []struct {
		description string
		filter      PathFilter
		path        []string
		expect      bool
	}{
		{"whitelist match", Whitelist("age", "name"), []string{"age"}, true},
		{"whitelist nested match", Whitelist("primary"), []string{"emails", "primary"}, true},
		{"whitelist miss", Whitelist("age", "name"), []string{"emails", "primary"}, false},
		{"whitelist empty path", Whitelist("age"), []string{}, false},
		{"blacklist match", Blacklist("age", "name"), []string{"name"}, false},
		{"blacklist nested match", Blacklist("emails"), []string{"emails", "work"}, false},
		{"blacklist miss", Blacklist("age", "name"), []string{"emails", "work"}, true},
		{"prefix exact", PathPrefix("address"), []string{"address"}, true},
		{"prefix child", PathPrefix("address"), []string{"address", "street"}, true},
		{"prefix sibling", PathPrefix("address"), []string{"addressee"}, false},
		{"prefix dotted", PathPrefix("a.b"), []string{"a", "b", "c"}, true},
		{"all filters", AllFilters(Whitelist("emails"), Blacklist("work")), []string{"emails", "primary"}, true},
		{"all filters rejects", AllFilters(Whitelist("emails"), Blacklist("work")), []string{"emails", "work"}, false},
		{"all filters skips nil", AllFilters(nil, Whitelist("a")), []string{"a"}, true},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			assert.Equal(t, c.expect, c.filter(c.path))
		})
	}
}

func TestFilterExpr(t *testing.T) {
	cases := []struct {
		src    string
		path   []string
		expect bool
	}{
		{`Has("age", "name")`, []string{"age"}, true},
		{`Has("age", "name")`, []string{"emails", "primary"}, false},
		{`!Has("age", "name")`, []string{"emails", "primary"}, true},
		{`Depth > 1`, []string{"emails", "primary"}, true},
		{`Depth > 1`, []string{"age"}, false},
		{`Key == "primary"`, []string{"emails", "primary"}, true},
		{`Under("emails") && Key != "work"`, []string{"emails", "work"}, false},
		{`Under("emails") && Key != "work"`, []string{"emails", "primary"}, true},
		{`Path[0] == "emails"`, []string{"emails", "primary"}, true},
		{`Key startsWith "is"`, []string{"flags", "isAdmin"}, true},
	}

	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			f, err := FilterExpr(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.expect, f(c.path), "path: %v", c.path)
		})
	}
}

func TestFilterExprErrors(t *testing.T) {
	_, err := FilterExpr(`Depth +`)
	assert.Error(t, err)

	// non-boolean expressions are rejected at compile time
	_, err = FilterExpr(`Depth + 1`)
	assert.Error(t, err)

	// runtime failures drop the path
	f, err := FilterExpr(`Path[3] == "x"`)
	require.NoError(t, err)
	assert.False(t, f([]string{"a"}))
}

func TestFilterExprCompare(t *testing.T) {
	f, err := FilterExpr(`Under("emails")`)
	require.NoError(t, err)

	diffs, err := Compare(johnProfile(), fredProfile(), OptionPathFilter(f))
	require.NoError(t, err)
	assert.Equal(t, []string{"emails.primary", "emails.work"}, diffs.Paths())
}
