// Package smartdiff reports the meaningful differences between two loosely
// typed records as a flat map of dot-separated property paths to left & right
// values.
//
// Raw structural diffing of loosely-typed records is noisy: a name that
// changed case, a postal code with an extra space, or an age stored as "19"
// instead of 19 all show up as changes. smartdiff lets callers declare which of
// those differences don't matter by running both sides of every change through
// a list of transformations before comparing them:
//
//	diffs, err := smartdiff.Compare(before, after,
//		smartdiff.OptionTransformations(smartdiff.Uppercase, smartdiff.Trim),
//		smartdiff.OptionPathFilter(smartdiff.Blacklist("updatedAt")),
//	)
//
// Transformations never alter reported values, they only decide equivalence.
// They can be set globally or per path, and paths can be filtered out of the
// comparison entirely.
//
// Like deepdiff, smartdiff operates on document trees consisting of the go
// types created by unmarshaling from JSON:
//
//	map[string]interface{}
//	[]interface{}
//	string, float64, int, bool, nil
//
// plus time.Time for dates, which compare by timestamp. The lack of a value is
// represented by Undefined, which keeps "key missing" distinct from "key set to
// null".
//
// Finding raw differences is delegated to a StructuralDiffer. The default
// ChangelogDiffer uses github.com/r3labs/diff, WalkDiffer is a dependency-free
// deterministic alternative
package smartdiff
