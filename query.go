package jsontools

import (
	"fmt"
	"iter"
	"regexp"
)

// compilePattern compiles a key pattern anchored for full-path matching.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

// QueryKeys lazily yields every (key, value) pair from Flatten(root) whose
// whole flattened path matches pattern. When the pattern contains capture
// groups the yielded key is the text of the highest-numbered group
// (non-capturing groups do not count), which lets callers project a long path
// down to a short, meaningful key; without capture groups the whole path is
// yielded.
//
// An uncompilable pattern fails with ErrInvalidPattern before any traversal.
func QueryKeys(root JSONValue, pattern string) (iter.Seq2[string, JSONValue], error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return queryKeys(root, re), nil
}

func queryKeys(root JSONValue, re *regexp.Regexp) iter.Seq2[string, JSONValue] {
	return func(yield func(string, JSONValue) bool) {
		for path, value := range Flatten(root) {
			m := re.FindStringSubmatch(path)
			if m == nil {
				continue
			}
			key := path
			if n := re.NumSubexp(); n > 0 {
				key = m[n]
			}
			if !yield(key, value) {
				return
			}
		}
	}
}

// SearchByKeys lazily yields every structure reachable from root whose
// subtree contains keys matching the given patterns: all of them when
// requireAll is set, at least one otherwise. Each walked structure is queried
// from itself down, so a match found deep inside a structure counts for that
// structure and for every ancestor whose subtree it also is.
//
// Any uncompilable pattern fails with ErrInvalidPattern before traversal.
func SearchByKeys(root JSONValue, requireAll bool, patterns ...string) (iter.Seq[*Object], error) {
	res := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		re, err := compilePattern(pattern)
		if err != nil {
			return nil, err
		}
		res[i] = re
	}
	return func(yield func(*Object) bool) {
		for node := range WalkStructures(root, UnboundedDepth) {
			if matchesPatterns(node, res, requireAll) && !yield(node) {
				return
			}
		}
	}, nil
}

func matchesPatterns(node *Object, res []*regexp.Regexp, requireAll bool) bool {
	for _, re := range res {
		matched := false
		for range queryKeys(node, re) {
			matched = true
			break
		}
		if matched != requireAll {
			return matched
		}
	}
	// An empty pattern set matches everything under all-semantics and
	// nothing under any-semantics.
	return requireAll
}
