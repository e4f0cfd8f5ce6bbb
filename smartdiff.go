package smartdiff

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"k8s.io/klog/v2"
)

// ErrInvariant is returned when a StructuralDiffer breaks its contract
var ErrInvariant = errors.New("smartdiff: internal invariant violated")

// Compare computes the meaningful differences between left & right.
//
// nil & Undefined inputs are treated as empty records, so comparing a record
// against nothing reports each of its fields on its own. Raw differences flow
// through these stages:
//
//  1. the StructuralDiffer lists raw difference records
//  2. if DeepCompare is set, New & Deleted records of whole nested records are
//     expanded into one record per leaf field
//  3. the PathFilter drops out-of-scope paths
//  4. edits that are equivalent under the transformations for their path are
//     dropped
//  5. the remaining records are folded into Differences keyed by path
//
// Compare never returns a partial result. Panics raised by caller-supplied
// transformations or filters are not recovered
func Compare(left, right interface{}, opts ...CompareOption) (Differences, error) {
	cfg := &CompareConfig{
		Differ: ChangelogDiffer{},
		Logger: klog.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &comparison{cfg: cfg, left: orEmptyRecord(left), right: orEmptyRecord(right)}
	return c.compare()
}

// CompareConfig are any possible configuration parameters for a comparison
type CompareConfig struct {
	// PathFilter limits the comparison to paths it returns true for. nil keeps
	// every path
	PathFilter PathFilter
	// Transformations are applied in order to both sides of every edit before
	// checking equivalence. empty means exact equality
	Transformations []Transformation
	// PathTransformations overrides Transformations for the paths it returns a
	// list for
	PathTransformations PathTransformationsProvider
	// DeepCompare reports each leaf of a nested record that is only present on
	// one side, instead of the nested record as a whole
	DeepCompare bool

	// Differ computes raw differences, defaults to ChangelogDiffer
	Differ StructuralDiffer
	// Provide a non-nil stats pointer & Compare will populate it with data
	// from the comparison
	Stats *Stats
	// Logger receives pipeline decisions at high verbosity levels
	Logger klog.Logger
}

// CompareOption is a function that adjust a config, zero or more
// CompareOptions can be passed to the Compare function
type CompareOption func(cfg *CompareConfig)

// OptionPathFilter sets the path filter
func OptionPathFilter(f PathFilter) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.PathFilter = f
	}
}

// OptionTransformations sets the global transformation list
func OptionTransformations(ts ...Transformation) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Transformations = ts
	}
}

// OptionPathTransformations sets the per-path transformation provider
func OptionPathTransformations(p PathTransformationsProvider) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.PathTransformations = p
	}
}

// OptionPathTransformationsMap is a convenience wrapper around
// OptionPathTransformations for a fixed set of dot-separated paths
func OptionPathTransformationsMap(m map[string][]Transformation) CompareOption {
	return OptionPathTransformations(func(path []string) ([]Transformation, bool) {
		ts, ok := m[Path(path).String()]
		return ts, ok
	})
}

// OptionDeepCompare toggles expanding nested records present on one side only
func OptionDeepCompare(deep bool) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.DeepCompare = deep
	}
}

// OptionDiffer swaps the structural differ
func OptionDiffer(d StructuralDiffer) CompareOption {
	return func(cfg *CompareConfig) {
		if d != nil {
			cfg.Differ = d
		}
	}
}

// OptionSetStats will set the passed-in stats pointer when Compare is called
func OptionSetStats(st *Stats) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Stats = st
	}
}

// OptionLogger sets the logger
func OptionLogger(l klog.Logger) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Logger = l
	}
}

// comparison holds the state of a single Compare call
type comparison struct {
	cfg         *CompareConfig
	left, right interface{}
	stats       Stats
}

func (c *comparison) compare() (Differences, error) {
	log := c.cfg.Logger

	records, err := c.cfg.Differ.StructuralDiff(c.left, c.right)
	if err != nil {
		return nil, fmt.Errorf("computing structural diff: %w", err)
	}
	c.stats.Raw = len(records)
	if len(records) == 0 {
		c.finish()
		return Differences{}, nil
	}

	// records belong to the differ, normalize into a fresh slice
	normalized := make([]Record, len(records))
	for i, r := range records {
		normalized[i] = normalizeRecord(r)
	}
	records = normalized

	if c.cfg.DeepCompare {
		exploded := explode(records)
		c.stats.Exploded = len(exploded) - len(records)
		log.V(5).Info("exploded nested records", "before", len(records), "after", len(exploded))
		records = exploded
	}

	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if c.cfg.PathFilter != nil {
			if len(r.Path) == 0 {
				return nil, fmt.Errorf("%w: path filter given a record with no path:\n%s", ErrInvariant, spew.Sdump(r))
			}
			if !c.cfg.PathFilter(r.Path) {
				log.V(4).Info("dropping filtered difference", "path", r.Path.String())
				c.stats.Filtered++
				continue
			}
		}
		if c.cfg.equivalent(r) {
			log.V(4).Info("dropping equivalent difference", "path", r.Path.String())
			c.stats.Equivalent++
			continue
		}
		c.stats.count(r.Kind)
		kept = append(kept, r)
	}

	ds := assemble(kept)
	c.stats.Reported = len(ds)
	c.finish()
	return ds, nil
}

// finish publishes stats if requested
func (c *comparison) finish() {
	if c.cfg.Stats != nil {
		*c.cfg.Stats = c.stats
	}
}

// normalizeRecord marks the missing side of New & Deleted records as Undefined
func normalizeRecord(r Record) Record {
	switch r.Kind {
	case KindNew:
		r.Left = Undefined
	case KindDeleted:
		r.Right = Undefined
	}
	return r
}

func orEmptyRecord(v interface{}) interface{} {
	if v == nil || IsUndefined(v) {
		return map[string]interface{}{}
	}
	return v
}
