package jsontools

import "fmt"

// Matcher selects object members for editing.
type Matcher func(key string, value JSONValue) bool

// Converter produces zero or more replacement members for a matched one.
type Converter func(key string, value JSONValue) []Entry

// ValueFunc computes a replacement value for an existing member.
type ValueFunc func(key string, value JSONValue) JSONValue

// Edit applies an in-place structural rewrite to every structure reachable
// from root. Each walked Object is iterated as a snapshot of its current
// members, so converters may freely insert and remove keys. For every member
// where match returns true, the member is removed when drop is set, then each
// Entry produced by convert is stored in the object — overwriting on key
// collision, so a converter returning the original key replaces the value in
// place when drop is false and re-inserts it at the end when drop is true.
//
// root must be an *Object or an Array; anything else fails with
// ErrTypeMismatch before any mutation.
func Edit(root JSONValue, match Matcher, convert Converter, drop bool) error {
	if err := checkEditable(root); err != nil {
		return err
	}
	for node := range WalkStructures(root, UnboundedDepth) {
		for _, e := range node.Entries() {
			if !match(e.Key, e.Value) {
				continue
			}
			if drop {
				node.Delete(e.Key)
			}
			for _, repl := range convert(e.Key, e.Value) {
				node.Set(repl.Key, repl.Value)
			}
		}
	}
	return nil
}

// ApplyMapping replaces, in every structure reachable from root, the value of
// each key present in mapping with the result of the mapped function applied
// to the current key and value. root may be a single *Object or an Array of
// objects, edited independently; anything else fails with ErrTypeMismatch.
func ApplyMapping(root JSONValue, mapping map[string]ValueFunc) error {
	if err := checkEditable(root); err != nil {
		return err
	}
	for node := range WalkStructures(root, UnboundedDepth) {
		for key, fn := range mapping {
			if value, ok := node.Get(key); ok {
				node.Set(key, fn(key, value))
			}
		}
	}
	return nil
}

// ConvertKeysToNamingConvention renames every key of every structure
// reachable from root from one supported NamingConvention to another. Both
// conventions are validated before anything is mutated; an unknown one fails
// with ErrUnsupportedConvention. root may be a single *Object or an Array of
// objects.
//
// Renaming drops the old key and re-inserts the converted one, which leaves
// the relative member order of each object unchanged.
func ConvertKeysToNamingConvention(root JSONValue, from, to NamingConvention) error {
	if !from.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedConvention, from)
	}
	if !to.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedConvention, to)
	}
	return Edit(root,
		func(string, JSONValue) bool { return true },
		func(key string, value JSONValue) []Entry {
			renamed, _ := ConvertName(key, from, to)
			return []Entry{{Key: renamed, Value: value}}
		},
		true,
	)
}

func checkEditable(root JSONValue) error {
	switch root.(type) {
	case *Object, Array:
		return nil
	}
	return fmt.Errorf("%w: got %T", ErrTypeMismatch, root)
}
