package smartdiff

import (
	"fmt"

	"github.com/r3labs/diff/v3"
)

// StructuralDiffer computes raw structural differences between two values.
// Implementations must descend into nested records, tag every record with a
// Kind & Path, and return no records for equal values
type StructuralDiffer interface {
	StructuralDiff(left, right interface{}) ([]Record, error)
}

// StructuralDiffFunc adapts a plain function to the StructuralDiffer interface
type StructuralDiffFunc func(left, right interface{}) ([]Record, error)

// StructuralDiff calls f(left, right)
func (f StructuralDiffFunc) StructuralDiff(left, right interface{}) ([]Record, error) {
	return f(left, right)
}

// ChangelogDiffer is a StructuralDiffer backed by r3labs/diff changelogs. It's
// the default differ. Type mismatches between the two sides are reported as
// edits rather than errors. Slices are compared index by index, so reordered
// elements are reported as edits at each moved index
type ChangelogDiffer struct {
	// IgnoreSliceOrder matches slice elements regardless of their position
	IgnoreSliceOrder bool
}

// compile-time assertion
var _ StructuralDiffer = (*ChangelogDiffer)(nil)

// StructuralDiff implements the StructuralDiffer interface
func (c ChangelogDiffer) StructuralDiff(left, right interface{}) ([]Record, error) {
	d, err := diff.NewDiffer(
		diff.AllowTypeMismatch(true),
		diff.SliceOrdering(!c.IgnoreSliceOrder),
	)
	if err != nil {
		return nil, err
	}

	cl, err := d.Diff(left, right)
	if err != nil {
		return nil, err
	}
	if len(cl) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(cl))
	for _, ch := range cl {
		r, err := changeRecord(ch)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// changeRecord converts a changelog entry to a Record
func changeRecord(ch diff.Change) (Record, error) {
	r := Record{Path: Path(ch.Path), Left: ch.From, Right: ch.To}
	switch ch.Type {
	case diff.CREATE:
		r.Kind = KindNew
		r.Left = Undefined
	case diff.DELETE:
		r.Kind = KindDeleted
		r.Right = Undefined
	case diff.UPDATE:
		r.Kind = KindEdit
	default:
		return r, fmt.Errorf("unrecognized change type %q at path '%s'", ch.Type, r.Path)
	}
	return r, nil
}
