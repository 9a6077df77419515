// Package randdata builds random jsontools trees for property-style tests.
// All generators take an explicit *rand.Rand so test runs stay reproducible
// from a seed.
package randdata

import (
	"math/rand"
	"time"

	"github.com/mcncl/jsontools"
)

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-"

// maxLevel is the nesting level below which no further composites are
// generated, keeping trees finite and shallow enough to eyeball.
const maxLevel = 4

// String returns a random key-shaped string of letters, '_' and '-'.
func String(r *rand.Rand) string {
	b := make([]byte, 4+r.Intn(9))
	for i := range b {
		b[i] = keyAlphabet[r.Intn(len(keyAlphabet))]
	}
	return string(b)
}

// Int returns a random integer between 1 and 100.
func Int(r *rand.Rand) int { return 1 + r.Intn(100) }

// Float returns a random float in [0, 1).
func Float(r *rand.Rand) float64 { return r.Float64() }

// Timestamp returns a random RFC 3339 timestamp after the Unix epoch.
func Timestamp(r *rand.Rand) string {
	return time.Unix(r.Int63n(100*365*24*3600), 0).UTC().Format(time.RFC3339)
}

func scalar(r *rand.Rand, kind int) jsontools.JSONValue {
	switch kind {
	case 0:
		return String(r)
	case 1:
		return Int(r)
	case 2:
		return Float(r)
	case 3:
		return Timestamp(r)
	default:
		return nil
	}
}

// Value returns a random scalar or, with a probability shrinking as level
// grows, a nested Object or Array. Levels below 1 are treated as 1. No
// composites are produced at or below maxLevel.
func Value(r *rand.Rand, level int) jsontools.JSONValue {
	if level < 1 {
		level = 1
	}
	if level < maxLevel && r.Float64() < 0.1/float64(level) {
		if r.Intn(2) == 0 {
			return Object(r, 1+r.Intn(6), level+1)
		}
		return List(r, 1+r.Intn(6), level+1)
	}
	return scalar(r, r.Intn(5))
}

// Object returns a random Object with n members and random keys.
func Object(r *rand.Rand, n, level int) *jsontools.Object {
	obj := jsontools.NewObject()
	for i := 0; i < n; i++ {
		obj.Set(String(r), Value(r, level))
	}
	return obj
}

// List returns a random Array of n elements, all of the same kind: either n
// non-empty objects or n scalars of one family.
func List(r *rand.Rand, n, level int) jsontools.Array {
	arr := make(jsontools.Array, 0, n)
	if level < maxLevel && r.Float64() < 0.3 {
		for i := 0; i < n; i++ {
			arr = append(arr, Object(r, 1+r.Intn(4), level+1))
		}
		return arr
	}
	kind := r.Intn(5)
	for i := 0; i < n; i++ {
		arr = append(arr, scalar(r, kind))
	}
	return arr
}

// Tree returns a random ten-member Object, the usual root for property tests.
func Tree(r *rand.Rand) *jsontools.Object {
	return Object(r, 10, 1)
}
