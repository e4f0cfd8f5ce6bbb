package smartdiff

import (
	"encoding/json"
	"sort"
)

// Difference holds the two sides of a single meaningful difference. A side
// with no value is Undefined
type Difference struct {
	Left  interface{}
	Right interface{}
}

// LeftPresent returns false if the left side had no value
func (d Difference) LeftPresent() bool { return !IsUndefined(d.Left) }

// RightPresent returns false if the right side had no value
func (d Difference) RightPresent() bool { return !IsUndefined(d.Right) }

// MarshalJSON encodes a difference as an object, omitting missing sides
func (d Difference) MarshalJSON() ([]byte, error) {
	v := map[string]interface{}{}
	if d.LeftPresent() {
		v["left"] = d.Left
	}
	if d.RightPresent() {
		v["right"] = d.Right
	}
	return json.Marshal(v)
}

// Differences maps a dot-separated property path to the difference found there
type Differences map[string]Difference

// Paths lists the paths of all differences in sorted order
func (ds Differences) Paths() []string {
	paths := make([]string, 0, len(ds))
	for p := range ds {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// assemble folds records into Differences, later records at the same path
// overwrite earlier ones
func assemble(records []Record) Differences {
	ds := make(Differences, len(records))
	for _, r := range records {
		ds[r.Path.String()] = Difference{Left: r.Left, Right: r.Right}
	}
	return ds
}
