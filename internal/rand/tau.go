package rand

import "math/rand/v2"

var _ rand.Source = (*State)(nil)

// State holds the internal state of the combined Tausworthe generator.
// *State is a rand.Source.
type State [3]int64

// New creates a new random state from a seed.
func New(seed int64) State {
	// Initialize state from seed using simple LCG
	s := State{}
	s[0] = seed
	if s[0] == 0 {
		s[0] = 1
	}
	s[1] = s[0]*6364136223846793005 + 1442695040888963407
	s[2] = s[1]*6364136223846793005 + 1442695040888963407
	// Each component needs a 32-bit seed above its minimum (2, 8 and 16)
	// or it degenerates to zero.
	for i, lo := range [3]int64{2, 8, 16} {
		s[i] &= 0xFFFFFFFF
		if s[i] < lo {
			s[i] += lo
		}
	}
	// Warm up
	for i := 0; i < 10; i++ {
		Int(&s)
	}
	return s
}

// Int advances the state and returns the next 32 bits as an int32.
func Int(state *State) int32 {
	state[0] = (((state[0] & 4294967294) << 12) & 0xFFFFFFFF) ^
		((((state[0] << 13) & 0xFFFFFFFF) ^ state[0]) >> 19)
	state[1] = (((state[1] & 4294967288) << 4) & 0xFFFFFFFF) ^
		((((state[1] << 2) & 0xFFFFFFFF) ^ state[1]) >> 25)
	state[2] = (((state[2] & 4294967280) << 17) & 0xFFFFFFFF) ^
		((((state[2] << 3) & 0xFFFFFFFF) ^ state[2]) >> 11)
	return int32(state[0] ^ state[1] ^ state[2])
}

// Uint64 joins two consecutive 32-bit outputs.
func (s *State) Uint64() uint64 {
	hi := uint64(uint32(Int(s)))
	return hi<<32 | uint64(uint32(Int(s)))
}
