package jsontools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fullWalk lists every structure of the test document in walk order.
func fullWalk(t *testing.T, tree *Object) []*Object {
	t.Helper()
	b := getObj(t, tree, "b")
	bc := getArr(t, b, "b-c")
	c := getArr(t, tree, "c")
	return []*Object{
		tree,
		b,
		getObj(t, b, "b-b"),
		elemObj(t, bc, 0),
		elemObj(t, bc, 1),
		elemObj(t, c, 0),
		elemObj(t, c, 1),
		elemObj(t, c, 2),
		elemObj(t, c, 3),
		getObj(t, elemObj(t, c, 3), "c-c"),
	}
}

func collectWalk(root JSONValue, maxDepth int) []*Object {
	var got []*Object
	for obj := range WalkStructures(root, maxDepth) {
		got = append(got, obj)
	}
	return got
}

func TestWalkStructures(t *testing.T) {
	tree := testTree(t)
	full := fullWalk(t, tree)

	tests := []struct {
		name     string
		maxDepth int
		want     []*Object
	}{
		{name: "unbounded", maxDepth: UnboundedDepth, want: full},
		{name: "depth 0", maxDepth: 0, want: full[0:1]},
		{name: "depth 1", maxDepth: 1, want: append(append([]*Object{}, full[0:2]...), full[5:9]...)},
		{name: "depth 2", maxDepth: 2, want: full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectWalk(tree, tt.maxDepth))
		})
	}
}

func TestWalkStructuresNonObjectRoots(t *testing.T) {
	assert.Empty(t, collectWalk("scalar", UnboundedDepth))
	assert.Empty(t, collectWalk(nil, UnboundedDepth))
	assert.Empty(t, collectWalk(Array{1, 2, 3}, UnboundedDepth))

	// Arrays are transparent: objects inside them are found, the array is not.
	inner := NewObject().Set("x", 1)
	assert.Equal(t, []*Object{inner}, collectWalk(Array{1, inner}, UnboundedDepth))
}

func TestWalkStructuresArrayDepthTransparency(t *testing.T) {
	// The object inside the array sits at the same depth as a direct member.
	leaf := NewObject().Set("deep", 1)
	root := NewObject().Set("list", Array{leaf})

	assert.Equal(t, []*Object{root, leaf}, collectWalk(root, 1))
}

func TestWalkStructuresEarlyStop(t *testing.T) {
	tree := testTree(t)

	var first *Object
	for obj := range WalkStructures(tree, UnboundedDepth) {
		first = obj
		break
	}
	assert.Same(t, tree, first)
}

func collectFlatten(root JSONValue) []Entry {
	var got []Entry
	for path, value := range Flatten(root) {
		got = append(got, Entry{Key: path, Value: value})
	}
	return got
}

func TestFlatten(t *testing.T) {
	tree := testTree(t)
	b := getObj(t, tree, "b")
	bb := getObj(t, b, "b-b")
	bc := getArr(t, b, "b-c")
	c := getArr(t, tree, "c")
	c3 := elemObj(t, c, 3)
	cc := getObj(t, c3, "c-c")

	want := []Entry{
		{Key: "a", Value: getVal(t, tree, "a")},
		{Key: "b", Value: b},
		{Key: "b/b-a", Value: getVal(t, b, "b-a")},
		{Key: "b/b-b", Value: bb},
		{Key: "b/b-b/b-b-a", Value: getVal(t, bb, "b-b-a")},
		{Key: "b/b-b/b-b-b", Value: getVal(t, bb, "b-b-b")},
		{Key: "b/b-b/b-b-c", Value: getVal(t, bb, "b-b-c")},
		{Key: "b/b-c", Value: bc},
		{Key: "b/b-c[0]/b-c-a", Value: getVal(t, elemObj(t, bc, 0), "b-c-a")},
		{Key: "b/b-c[1]/b-c-a", Value: getVal(t, elemObj(t, bc, 1), "b-c-a")},
		{Key: "c", Value: c},
		{Key: "c[0]/c-a", Value: getVal(t, elemObj(t, c, 0), "c-a")},
		{Key: "c[1]/c-a", Value: getVal(t, elemObj(t, c, 1), "c-a")},
		{Key: "c[2]/c-b", Value: getVal(t, elemObj(t, c, 2), "c-b")},
		{Key: "c[3]/c-c", Value: cc},
		{Key: "c[3]/c-c/c-c-a", Value: getVal(t, cc, "c-c-a")},
		{Key: "c[3]/c-c/c-c-b", Value: getVal(t, cc, "c-c-b")},
		{Key: "c[3]/c-c/c-c-c", Value: getVal(t, cc, "c-c-c")},
	}
	assert.Equal(t, want, collectFlatten(tree))
}

// Scalar array elements get no pair of their own, unlike object members.
// Callers depend on this asymmetry, so it is pinned here.
func TestFlattenSkipsScalarArrayElements(t *testing.T) {
	tree := parseObject(t, `{"s": [1, 2, 3]}`)
	want := []Entry{{Key: "s", Value: getArr(t, tree, "s")}}
	assert.Equal(t, want, collectFlatten(tree))

	mixed := parseObject(t, `{"m": [1, {"x": 2}]}`)
	wantMixed := []Entry{
		{Key: "m", Value: getArr(t, mixed, "m")},
		{Key: "m[1]/x", Value: num(2)},
	}
	assert.Equal(t, wantMixed, collectFlatten(mixed))
}

func TestFlattenNonObjectRoots(t *testing.T) {
	assert.Empty(t, collectFlatten("scalar"))
	assert.Empty(t, collectFlatten(Array{1, 2}))

	root := Array{NewObject().Set("x", 1)}
	want := []Entry{{Key: "[0]/x", Value: 1}}
	assert.Equal(t, want, collectFlatten(root))
}

func TestFlattenPrefix(t *testing.T) {
	tree := parseObject(t, `{"a": 1, "b": {"c": 2}}`)

	var paths []string
	for path := range FlattenPrefix(tree, "root") {
		paths = append(paths, path)
	}
	assert.Equal(t, []string{"root/a", "root/b", "root/b/c"}, paths)
}

func TestFlattenEarlyStop(t *testing.T) {
	tree := testTree(t)

	var paths []string
	for path := range Flatten(tree) {
		paths = append(paths, path)
		if len(paths) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, paths)
}
