package smartdiff

import (
	"sort"
	"strings"
)

// explode expands New & Deleted records holding a whole nested record into one
// record per leaf field, so each nested field is reported on its own. Empty
// nested records have no leaves and are kept whole. Edit &
// ArrayEdit records, and New/Deleted records of non-record values (including
// arrays), pass through unchanged
func explode(records []Record) []Record {
	exploded := make([]Record, 0, len(records))
	for _, r := range records {
		switch r.Kind {
		case KindNew:
			if rec, ok := r.Right.(map[string]interface{}); ok && len(rec) > 0 {
				exploded = appendLeaves(exploded, r.Kind, r.Path, rec)
				continue
			}
		case KindDeleted:
			if rec, ok := r.Left.(map[string]interface{}); ok && len(rec) > 0 {
				exploded = appendLeaves(exploded, r.Kind, r.Path, rec)
				continue
			}
		}
		exploded = append(exploded, r)
	}
	return exploded
}

// appendLeaves appends one record of kind k for every leaf of rec
func appendLeaves(records []Record, k Kind, parent Path, rec map[string]interface{}) []Record {
	prefix := parent.String()
	flattenRecord("", rec, func(key string, v interface{}) {
		if prefix != "" {
			key = prefix + "." + key
		}
		leaf := Record{Kind: k, Path: Path(strings.Split(key, ".")), Left: Undefined, Right: Undefined}
		if k == KindNew {
			leaf.Right = v
		} else {
			leaf.Left = v
		}
		records = append(records, leaf)
	})
	return records
}

// flattenRecord calls fn with the dot-joined key path & value of every
// non-record value or empty record nested in rec, visiting keys in sorted order. there is no
// cycle detection, a self-referencing record recurses until the stack runs out
func flattenRecord(prefix string, rec map[string]interface{}, fn func(key string, v interface{})) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := rec[k].(map[string]interface{}); ok && len(nested) > 0 {
			flattenRecord(key, nested, fn)
			continue
		}
		fn(key, rec[k])
	}
}
