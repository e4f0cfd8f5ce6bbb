package smartdiff

import (
	"testing"
	"time"
)

func TestEquivalence(t *testing.T) {
	shared := map[string]interface{}{"a": 1}
	slice := []interface{}{1}
	at := time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		description string
		ts          []Transformation
		left, right interface{}
		expect      bool
	}{
		{"equal strings", nil, "a", "a", true},
		{"different strings", nil, "a", "b", false},
		{"number & string", nil, 19, "19", false},
		{"int & float", nil, 1, 1.0, false},
		{"null & undefined", nil, nil, Undefined, false},
		{"undefined & undefined", nil, Undefined, Undefined, true},
		{"null & null", nil, nil, nil, true},
		{"null & undefined normalized", []Transformation{NullOrUndefinedAsEmptyString}, nil, Undefined, true},
		{"same record reference", nil, shared, shared, true},
		{"equal records, different references", nil, map[string]interface{}{"a": 1}, map[string]interface{}{"a": 1}, false},
		{"same slice reference", nil, slice, slice, true},
		{"equal slices, different references", nil, []interface{}{1}, []interface{}{1}, false},
		{"same instant", nil, at, at.In(time.FixedZone("X", 3600)), true},
		{"same millisecond", nil, at, at.Add(time.Microsecond), true},
		{"different instants", nil, at, at.Add(time.Millisecond), false},
		{"date pointer", nil, &at, at, true},
		{"uppercase", []Transformation{Uppercase}, "john", "JOHN", true},
		{"trim then uppercase", []Transformation{Trim, Uppercase}, " john ", "JOHN", true},
		{"toString", []Transformation{ToString}, 251, "251", true},
		{"uncomparable struct fields", nil, struct{ V interface{} }{[]int{1}}, struct{ V interface{} }{[]int{1}}, false},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			if got := Equivalence(c.ts)(c.left, c.right); got != c.expect {
				t.Errorf("want: %t. got: %t", c.expect, got)
			}
		})
	}
}

func TestTransformationsFor(t *testing.T) {
	global := []Transformation{Uppercase}
	cfg := &CompareConfig{
		Transformations: global,
		PathTransformations: func(path []string) ([]Transformation, bool) {
			switch Path(path).String() {
			case "exact":
				return []Transformation{}, true
			case "trimmed":
				return []Transformation{Trim}, true
			}
			return nil, false
		},
	}

	if got := cfg.transformationsFor(Path{"other"}); len(got) != 1 {
		t.Errorf("expected global transformations, got %d", len(got))
	}
	if got := cfg.transformationsFor(Path{"exact"}); got == nil || len(got) != 0 {
		t.Errorf("expected empty override, got %v", got)
	}
	if got := cfg.transformationsFor(Path{"trimmed"}); len(got) != 1 || got[0](" a ") != "a" {
		t.Errorf("expected trim override")
	}

	// presence & absence differences are never equivalent
	for _, k := range []Kind{KindNew, KindDeleted, KindArrayEdit} {
		if cfg.equivalent(Record{Kind: k, Path: Path{"other"}, Left: "a", Right: "A"}) {
			t.Errorf("kind %s should never be equivalent", k)
		}
	}
	if !cfg.equivalent(Record{Kind: KindEdit, Path: Path{"other"}, Left: "a", Right: "A"}) {
		t.Error("expected edit to be equivalent under the global transformations")
	}
}
