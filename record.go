package smartdiff

import (
	"encoding/json"
	"strings"
)

// Kind defines the kind of a raw diff Record
type Kind string

const (
	// KindEdit means both sides are present and differ
	KindEdit = Kind("E")
	// KindNew means only the right side holds a value at the path
	KindNew = Kind("N")
	// KindDeleted means only the left side holds a value at the path
	KindDeleted = Kind("D")
	// KindArrayEdit is a change to the length of an array. Records of this kind
	// carry the element that was added or removed at the given index
	KindArrayEdit = Kind("A")
)

// UndefinedValue is the type of Undefined
type UndefinedValue struct{}

// String implements the fmt.Stringer interface
func (UndefinedValue) String() string { return "undefined" }

// MarshalJSON encodes undefined as null, JSON has no notion of a missing value
// outside of an object
func (UndefinedValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Undefined marks the absence of a value. It's used on the empty side of New
// & Deleted records and in Differences, and can be stored in records to model
// a key that is present but has no value
var Undefined = UndefinedValue{}

// IsUndefined returns true if v is the Undefined sentinel
func IsUndefined(v interface{}) bool {
	_, ok := v.(UndefinedValue)
	return ok
}

// Path is an ordered list of keys and array indices locating a value inside a
// nested structure
type Path []string

// String renders a path as its segments joined with "."
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Equal returns true if both paths have the same segments
func (p Path) Equal(b Path) bool {
	if len(p) != len(b) {
		return false
	}
	for i := range p {
		if p[i] != b[i] {
			return false
		}
	}
	return true
}

// Record is a single raw structural difference as reported by a
// StructuralDiffer
type Record struct {
	// the kind of change
	Kind Kind `json:"kind"`
	// Path locates the change in both documents. only the top-level comparison
	// of two non-records can produce an empty path
	Path Path `json:"path"`
	// Left is the value in the left document, Undefined for New records
	Left interface{} `json:"left"`
	// Right is the value in the right document, Undefined for Deleted records
	Right interface{} `json:"right"`
}

// MarshalJSON implements a compact custom JSON Marshaller
func (r Record) MarshalJSON() ([]byte, error) {
	v := []interface{}{r.Kind, r.Path.String()}
	switch r.Kind {
	case KindNew:
		v = append(v, r.Right)
	case KindDeleted:
		v = append(v, r.Left)
	default:
		v = append(v, r.Left, r.Right)
	}
	return json.Marshal(v)
}
