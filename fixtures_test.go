package jsontools

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// testDocument is the shared fixture most tests navigate. It mixes plain
// members, nested objects, scalar arrays and arrays of objects.
const testDocument = `{
	"a": 1,
	"b": {
		"b-a": 1,
		"b-b": {"b-b-a": 1, "b-b-b": 2, "b-b-c": [1, 2, 3]},
		"b-c": [{"b-c-a": 1}, {"b-c-a": 2}]
	},
	"c": [
		{"c-a": 1},
		{"c-a": 2},
		{"c-b": 2},
		{"c-c": {"c-c-a": 1, "c-c-b": 2, "c-c-c": [1, 2, 3]}}
	]
}`

func testTree(t *testing.T) *Object {
	t.Helper()
	return parseObject(t, testDocument)
}

func parseObject(t *testing.T, doc string) *Object {
	t.Helper()
	var obj Object
	require.NoError(t, json.Unmarshal([]byte(doc), &obj))
	return &obj
}

func getObj(t *testing.T, o *Object, key string) *Object {
	t.Helper()
	v, ok := o.Get(key)
	require.True(t, ok, "missing key %q", key)
	obj, ok := v.(*Object)
	require.True(t, ok, "key %q is not an object", key)
	return obj
}

func getArr(t *testing.T, o *Object, key string) Array {
	t.Helper()
	v, ok := o.Get(key)
	require.True(t, ok, "missing key %q", key)
	arr, ok := v.(Array)
	require.True(t, ok, "key %q is not an array", key)
	return arr
}

func getVal(t *testing.T, o *Object, key string) JSONValue {
	t.Helper()
	v, ok := o.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func elemObj(t *testing.T, arr Array, i int) *Object {
	t.Helper()
	require.Less(t, i, len(arr))
	obj, ok := arr[i].(*Object)
	require.True(t, ok, "element %d is not an object", i)
	return obj
}

// num builds the json.Number the ordered decoder produces for an integer.
func num(i int) json.Number {
	return json.Number(strconv.Itoa(i))
}

// addNum returns value, assumed to be a json.Number, shifted by delta.
func addNum(t *testing.T, value JSONValue, delta int) json.Number {
	t.Helper()
	n, ok := value.(json.Number)
	require.True(t, ok, "value %v is not a number", value)
	i, err := n.Int64()
	require.NoError(t, err)
	return num(int(i) + delta)
}
