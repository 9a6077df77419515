// Package jsontools simplifies interactions with data structured as JSON:
// flattened-path navigation, regex key queries, structure search and bulk
// in-place edits over trees that have already been decoded into memory.
//
// Trees are built from three shapes: *Object (an insertion-ordered string
// mapping), Array (an ordered sequence) and scalar leaves (strings, numbers,
// booleans, nil). The library never copies a caller's tree; Edit and the
// helpers built on it mutate it in place. Trees must be acyclic — none of the
// traversals check for cycles, and a cyclic input will not terminate.
package jsontools

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, Object, or Array.
type JSONValue interface{}

// Entry is a single key/value member of an Object.
type Entry struct {
	Key   string
	Value JSONValue
}

// Object represents a JSON object as an ordered collection of members.
// Unlike a plain map, iteration order is the insertion order: Set on a new
// key appends, Set on an existing key keeps its position, and Delete
// preserves the order of the surviving members.
type Object struct {
	entries []Entry
	index   map[string]int
}

// Array represents a JSON array, which is a slice of JSONValues.
type Array []JSONValue

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.entries) }

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a snapshot of the members in insertion order. The snapshot
// is safe to iterate while the Object is being mutated.
func (o *Object) Entries() []Entry {
	entries := make([]Entry, len(o.entries))
	copy(entries, o.entries)
	return entries
}

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (JSONValue, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].Value, true
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended. Returns the Object so calls can be chained.
func (o *Object) Set(key string, value JSONValue) *Object {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.entries[i].Value = value
		return o
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
	return o
}

// Delete removes key, reporting whether it was present.
func (o *Object) Delete(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.entries = append(o.entries[:i], o.entries[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.entries); j++ {
		o.index[o.entries[j].Key] = j
	}
	return true
}

// MarshalJSON encodes the Object preserving member order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the Object, preserving member
// order. Nested objects decode as *Object, arrays as Array, and numbers as
// json.Number.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // Ensure numbers are read as json.Number
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	obj, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

// decodeObject consumes object members up to and including the closing brace.
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func decodeValue(dec *json.Decoder) (JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); ok {
		switch d {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", d)
	}
	return tok, nil
}
