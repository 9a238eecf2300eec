package main

// Rand is a seeded random number generator with value semantics: copying a
// Rand copies its entire state, so a copy produces the same sequence as the
// original from that point on. The World owns one, which is what makes two
// Worlds created with the same seed run the same simulation.
//
// The generator is xorshift64* which is plenty for picking sprite images and
// velocities. Nothing here is security- or fairness-sensitive.
type Rand struct {
	state uint64
}

func NewRand(seed int64) (r Rand) {
	// Spread the seed bits around so that small seeds (0, 1, 2..) don't start
	// the sequence in a visibly similar place.
	r.state = uint64(seed)*6364136223846793005 + 1442695040888963407
	if r.state == 0 {
		// xorshift is stuck at 0 forever.
		r.state = 1
	}
	return
}

func (r *Rand) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// RInt returns a uniformly random integer in [min, max], both ends included.
func (r *Rand) RInt(min int64, max int64) int64 {
	return min + int64(r.next()%uint64(max-min+1))
}

// RFloat returns a uniformly random float in [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	return min + float64(r.next()>>11)/(1<<53)*(max-min)
}
