package jsontools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// pathEnd captures the final segment of a flatten path: a key optionally
	// followed by a single [index].
	pathEnd = regexp.MustCompile(`(?:^|/)([^/\[\]]+)(?:\[([0-9]+)\])?$`)
	// pathSegment splits one /-separated component into key and indices.
	pathSegment = regexp.MustCompile(`^([^/\[\]]+)((?:\[[0-9]+\])*)$`)
	// rootIndexes matches a leading component of a path rooted at an array.
	rootIndexes = regexp.MustCompile(`^(?:\[[0-9]+\])+$`)
	// pathIndex extracts a single [index].
	pathIndex = regexp.MustCompile(`\[([0-9]+)\]`)
)

// Decomposition is the result of splitting a flatten path into its final
// segment and the path of the immediate parent container.
type Decomposition struct {
	// Prefix is the flatten path of the node one level up: the parent object
	// for a plain trailing key, or the array-holding key itself (which stays
	// part of the prefix) when the path ends in key[index].
	Prefix string
	// Index is the array index of the addressed element, or -1 when the path
	// ends in a plain key.
	Index int
	// Key is the final key: the array-holding key for a key[index] ending,
	// the trailing key otherwise.
	Key string
}

// Indexed reports whether the path addressed an array element.
func (d Decomposition) Indexed() bool { return d.Index >= 0 }

// DecomposePath splits a flatten path, as produced by Flatten, into prefix,
// key and index:
//
//	DecomposePath("c[3]")           // Prefix "c", Index 3, Key "c"
//	DecomposePath("c[3]/c-c/c-c-c") // Prefix "c[3]/c-c", Index -1, Key "c-c-c"
//
// A path that does not end in a key or key[index] token fails with
// ErrInvalidPath.
func DecomposePath(path string) (Decomposition, error) {
	m := pathEnd.FindStringSubmatch(path)
	if m == nil {
		return Decomposition{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	key := m[1]
	if m[2] != "" {
		index, err := strconv.Atoi(m[2])
		if err != nil {
			return Decomposition{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		// The parent container is the array named by key, so the prefix
		// keeps the key and only sheds the [index] suffix.
		return Decomposition{
			Prefix: strings.TrimSuffix(path, "["+m[2]+"]"),
			Index:  index,
			Key:    key,
		}, nil
	}
	prefix := strings.TrimSuffix(strings.TrimSuffix(path, key), "/")
	return Decomposition{Prefix: prefix, Index: -1, Key: key}, nil
}

// step is one navigation move along a path: descend into an object member
// (index < 0) or into an array element.
type step struct {
	key   string
	index int
}

// pathSteps parses a full flatten path into navigation steps. Only the first
// component may consist of bare indices (a tree rooted at an array).
func pathSteps(path string) ([]step, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	var steps []step
	for i, part := range strings.Split(path, "/") {
		var key, indices string
		if m := pathSegment.FindStringSubmatch(part); m != nil {
			key, indices = m[1], m[2]
		} else if i == 0 && rootIndexes.MatchString(part) {
			indices = part
		} else {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		if key != "" {
			steps = append(steps, step{key: key, index: -1})
		}
		for _, im := range pathIndex.FindAllStringSubmatch(indices, -1) {
			index, err := strconv.Atoi(im[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
			}
			steps = append(steps, step{index: index})
		}
	}
	return steps, nil
}

// Unflatten rebuilds a tree from flatten-produced (path, value) pairs. The
// root kind follows the first created step: paths with a leading [index]
// produce an Array root, anything else an Object root.
//
// The result never aliases subtrees of the tree the pairs were taken from:
// containers are freshly allocated, object-valued pairs only force an
// (initially empty) Object into existence, and array values are placed as
// deep copies. Descendant pairs that follow an array pair write into the
// copy, so empty objects inside arrays survive even though they produce no
// pairs of their own.
func Unflatten(pairs []Entry) (JSONValue, error) {
	var root JSONValue
	for _, pair := range pairs {
		steps, err := pathSteps(pair.Key)
		if err != nil {
			return nil, err
		}
		value := pair.Value
		ensure := false
		switch value.(type) {
		case *Object:
			ensure = true
		case Array:
			value = deepCopy(value)
		}
		root, err = place(root, steps, value, ensure)
		if err != nil {
			return nil, err
		}
	}
	if root == nil {
		root = NewObject()
	}
	return root, nil
}

// place returns node with value stored at steps, creating missing containers
// along the way. When ensure is set, an empty Object is created at the
// destination if nothing is there yet and an existing value is left as is.
func place(node JSONValue, steps []step, value JSONValue, ensure bool) (JSONValue, error) {
	if len(steps) == 0 {
		if !ensure {
			return value, nil
		}
		if node != nil {
			return node, nil
		}
		return NewObject(), nil
	}
	s := steps[0]
	if s.index < 0 {
		obj, ok := node.(*Object)
		if node == nil {
			obj = NewObject()
		} else if !ok {
			return nil, fmt.Errorf("%w: key %q addresses a non-object", ErrTypeMismatch, s.key)
		}
		child, _ := obj.Get(s.key)
		placed, err := place(child, steps[1:], value, ensure)
		if err != nil {
			return nil, err
		}
		obj.Set(s.key, placed)
		return obj, nil
	}
	arr, ok := node.(Array)
	if node == nil {
		arr = Array{}
	} else if !ok {
		return nil, fmt.Errorf("%w: index %d addresses a non-array", ErrTypeMismatch, s.index)
	}
	for len(arr) <= s.index {
		arr = append(arr, nil)
	}
	placed, err := place(arr[s.index], steps[1:], value, ensure)
	if err != nil {
		return nil, err
	}
	arr[s.index] = placed
	return arr, nil
}

// deepCopy clones composite values so a rebuilt tree shares no containers
// with its source. Scalars are returned as is.
func deepCopy(v JSONValue) JSONValue {
	switch v := v.(type) {
	case *Object:
		out := NewObject()
		for _, e := range v.Entries() {
			out.Set(e.Key, deepCopy(e.Value))
		}
		return out
	case Array:
		out := make(Array, len(v))
		for i, elem := range v {
			out[i] = deepCopy(elem)
		}
		return out
	default:
		return v
	}
}
