package jsontools

import (
	"iter"
	"strconv"
)

// UnboundedDepth disables the depth limit of WalkStructures.
const UnboundedDepth = -1

type walkItem struct {
	node  JSONValue
	depth int
}

// WalkStructures lazily yields every Object reachable from root in a stable
// pre-order: a structure is yielded before any structure nested inside it,
// object members in insertion order, array elements in index order. root
// itself is yielded first when it is an Object. Arrays are descended into but
// never yielded themselves, so a scalar or an array of scalars yields
// nothing.
//
// Depth counts only object-to-member descents; descending through an array
// does not increase it, so the objects of an array held at depth d are still
// at depth d. maxDepth bounds the yielded structures (0 keeps only root);
// pass UnboundedDepth for no limit.
//
// The sequence is single-pass but restartable: ranging over it again re-walks
// from scratch. The walk uses an explicit worklist, so deeply nested input
// does not grow the call stack.
func WalkStructures(root JSONValue, maxDepth int) iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		stack := []walkItem{{node: root}}
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch node := item.node.(type) {
			case *Object:
				if maxDepth != UnboundedDepth && item.depth > maxDepth {
					continue
				}
				if !yield(node) {
					return
				}
				for i := len(node.entries) - 1; i >= 0; i-- {
					stack = append(stack, walkItem{node: node.entries[i].Value, depth: item.depth + 1})
				}
			case Array:
				for i := len(node) - 1; i >= 0; i-- {
					stack = append(stack, walkItem{node: node[i], depth: item.depth})
				}
			}
		}
	}
}

type flatItem struct {
	node JSONValue
	path string
	emit bool
}

// Flatten lazily yields every (path, value) pair reachable from root, from
// the shallowest to the deepest levels. Paths join object keys with '/' and
// mark array elements with a [index] suffix on the array-holding key.
//
// Every member of an Object is yielded, composites on the way down before
// their contents. Arrays yield no pair of their own and their scalar
// elements are dropped entirely: only elements that are themselves objects
// or arrays continue the recursion. Flatten preserves that asymmetry with
// how objects are handled; callers relying on it can count on scalar array
// contents only ever appearing inside the array value itself.
func Flatten(root JSONValue) iter.Seq2[string, JSONValue] {
	return FlattenPrefix(root, "")
}

// FlattenPrefix is Flatten with every yielded path prefixed as if root sat
// at prefix inside a larger tree.
func FlattenPrefix(root JSONValue, prefix string) iter.Seq2[string, JSONValue] {
	return func(yield func(string, JSONValue) bool) {
		stack := []flatItem{{node: root, path: prefix}}
		for len(stack) > 0 {
			item := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if item.emit && !yield(item.path, item.node) {
				return
			}
			switch node := item.node.(type) {
			case *Object:
				for i := len(node.entries) - 1; i >= 0; i-- {
					e := node.entries[i]
					stack = append(stack, flatItem{node: e.Value, path: joinPath(item.path, e.Key), emit: true})
				}
			case Array:
				for i := len(node) - 1; i >= 0; i-- {
					stack = append(stack, flatItem{node: node[i], path: item.path + "[" + strconv.Itoa(i) + "]"})
				}
			}
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
