package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]float64{}
	for i := range v1 {
		v1[i] = r1.RFloat(0, 1000)
	}

	r2 := NewRand(13)
	v2 := [10]float64{}
	for i := range v2 {
		v2[i] = r2.RFloat(0, 1000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

// The World gets copied in tests and the Rand goes with it, so a copy must
// behave exactly like the original from the moment of the copy on.
func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RInt(0, 1000000)
	}

	r2 := r1

	v1 := [10]int64{}
	v2 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_RIntIncludesBothEnds(t *testing.T) {
	r := NewRand(17)
	seen := map[int64]bool{}
	for range 1000 {
		v := r.RInt(0, 3)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(3))
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestRand_RFloatStaysInRange(t *testing.T) {
	r := NewRand(23)
	for range 1000 {
		v := r.RFloat(-2.5, 0)
		assert.GreaterOrEqual(t, v, -2.5)
		assert.Less(t, v, 0.0)
	}
}
