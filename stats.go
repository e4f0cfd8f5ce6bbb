package smartdiff

// Stats holds statistical metadata about a comparison
type Stats struct {
	Raw        int `json:"raw"`                  // count of records reported by the differ
	Exploded   int `json:"exploded,omitempty"`   // records added by expanding nested records
	Filtered   int `json:"filtered,omitempty"`   // records dropped by the path filter
	Equivalent int `json:"equivalent,omitempty"` // edits dropped as equivalent
	Reported   int `json:"reported"`             // count of differences in the result

	Edits      int `json:"edits,omitempty"`      // reported edits
	News       int `json:"news,omitempty"`       // reported values only present on the right
	Deletes    int `json:"deletes,omitempty"`    // reported values only present on the left
	ArrayEdits int `json:"arrayEdits,omitempty"` // reported array element changes
}

// Suppressed returns the number of raw records that did not make it into the
// result
func (s Stats) Suppressed() int {
	return s.Filtered + s.Equivalent
}

// PctSuppressed returns a value from 0.0 to 1.0 representing the share of
// records that were judged not meaningful
func (s Stats) PctSuppressed() float64 {
	total := s.Raw + s.Exploded
	if total == 0 {
		return 0
	}
	return float64(s.Suppressed()) / float64(total)
}

func (s *Stats) count(k Kind) {
	switch k {
	case KindEdit:
		s.Edits++
	case KindNew:
		s.News++
	case KindDeleted:
		s.Deletes++
	case KindArrayEdit:
		s.ArrayEdits++
	}
}
