package smartdiff

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// PathFilter decides if a difference at path is in scope. returning false
// drops the difference unconditionally
type PathFilter func(path []string) bool

// Whitelist keeps differences whose path contains at least one of props as a
// segment
func Whitelist(props ...string) PathFilter {
	set := stringSet(props)
	return func(path []string) bool {
		for _, seg := range path {
			if set[seg] {
				return true
			}
		}
		return false
	}
}

// Blacklist drops differences whose path contains any of props as a segment
func Blacklist(props ...string) PathFilter {
	set := stringSet(props)
	return func(path []string) bool {
		for _, seg := range path {
			if set[seg] {
				return false
			}
		}
		return true
	}
}

// PathPrefix keeps differences at or below any of the given dot-separated
// paths, eg: "address" keeps "address.street" & "address.city"
func PathPrefix(prefixes ...string) PathFilter {
	return func(path []string) bool {
		rendered := Path(path).String()
		for _, pre := range prefixes {
			if rendered == pre || strings.HasPrefix(rendered, pre+".") {
				return true
			}
		}
		return false
	}
}

// AllFilters combines filters, keeping a path only if every filter keeps it
func AllFilters(filters ...PathFilter) PathFilter {
	return func(path []string) bool {
		for _, f := range filters {
			if f != nil && !f(path) {
				return false
			}
		}
		return true
	}
}

func stringSet(strs []string) map[string]bool {
	set := make(map[string]bool, len(strs))
	for _, s := range strs {
		set[s] = true
	}
	return set
}

// PathEnv is the environment path filter expressions are evaluated in
type PathEnv struct {
	// Path is the list of path segments
	Path []string
	// Key is the last path segment, empty for an empty path
	Key string
	// Depth is the number of path segments
	Depth int
}

func newPathEnv(path []string) PathEnv {
	env := PathEnv{Path: path, Depth: len(path)}
	if len(path) > 0 {
		env.Key = path[len(path)-1]
	}
	return env
}

// String returns the dot-joined path
func (e PathEnv) String() string {
	return Path(e.Path).String()
}

// Has returns true if any path segment is one of segs
func (e PathEnv) Has(segs ...string) bool {
	for _, seg := range e.Path {
		for _, s := range segs {
			if seg == s {
				return true
			}
		}
	}
	return false
}

// Under returns true if the path is at or below any of the dot-separated
// prefixes
func (e PathEnv) Under(prefixes ...string) bool {
	return PathPrefix(prefixes...)(e.Path)
}

// FilterExpr compiles a boolean expression into a PathFilter, eg:
//
//	Has("age", "name") && Depth < 3
//	!Under("metadata") || Key == "labels"
//
// the expression is evaluated against a PathEnv. An expression that fails at
// runtime drops the path
func FilterExpr(src string) (PathFilter, error) {
	prog, err := expr.Compile(src, expr.Env(PathEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression: %w", err)
	}
	return exprFilter(prog), nil
}

func exprFilter(prog *vm.Program) PathFilter {
	return func(path []string) bool {
		out, err := expr.Run(prog, newPathEnv(path))
		if err != nil {
			return false
		}
		keep, _ := out.(bool)
		return keep
	}
}
