package intervalset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	windowLow  = -8
	windowHigh = 40
	rounds     = 3000
)

// oracle tracks coverage one integer at a time over the test window.
type oracle map[int64]bool

func (o oracle) add(l, r int64) {
	for x := l; x < r; x++ {
		o[x] = true
	}
}

func (o oracle) remove(l, r int64) {
	for x := l; x < r; x++ {
		delete(o, x)
	}
}

func (o oracle) clone() oracle {
	c := make(oracle, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

func requireMatches(t *testing.T, o oracle, s *Set, msg string) {
	t.Helper()
	require.NoError(t, s.Validate(), msg)
	for x := int64(windowLow); x < windowHigh; x++ {
		require.Equal(t, o[x], s.Contains(x), "%s: coverage of %d in %s", msg, x, s)
	}
}

func randomRange(rnd *rand.Rand) (int64, int64) {
	// bounds stay inside the window so the oracle sees every change;
	// about one in six ranges is empty or reversed.
	l := int64(rnd.Intn(windowHigh-windowLow-12)) + windowLow + 1
	r := l + int64(rnd.Intn(12)) - 1
	return l, r
}

func TestRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := New()
	o := oracle{}

	for i := 0; i < rounds; i++ {
		l, r := randomRange(rnd)
		if rnd.Intn(2) == 0 {
			s.Add(l, r)
			o.add(l, r)
			requireMatches(t, o, s, "add")
		} else {
			s.Remove(l, r)
			o.remove(l, r)
			requireMatches(t, o, s, "remove")
		}
		if rnd.Intn(200) == 0 {
			s.Clear()
			o = oracle{}
		}
	}
}

func TestIdempotence(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	s := New()

	for i := 0; i < rounds; i++ {
		l, r := randomRange(rnd)
		op := s.Add
		if rnd.Intn(3) == 0 {
			op = s.Remove
		}
		op(l, r)
		once := s.Clone()
		op(l, r)
		require.True(t, once.Equal(s), "%d: applying [%d, %d) twice: -want %s, +got: %s", i, l, r, once, s)
	}
}

func TestNoop(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	s := New()

	for i := 0; i < rounds; i++ {
		l, r := randomRange(rnd)
		s.Add(l, r)
		if rnd.Intn(2) == 0 {
			s.Remove(randomRange(rnd))
		}

		// hi >= lo always, so (hi, lo) is empty or reversed.
		lo, hi := min(l, r), max(l, r)
		before := s.Clone()
		s.Add(hi, lo)
		s.Add(l, l)
		s.Remove(hi, lo)
		s.Remove(r, r)
		require.True(t, before.Equal(s), "%d: -want %s, +got: %s", i, before, s)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	s := New()
	o := oracle{}

	for i := 0; i < rounds; i++ {
		l, r := randomRange(rnd)
		if rnd.Intn(2) == 0 {
			s.Add(l, r)
			o.add(l, r)
		} else {
			s.Remove(l, r)
			o.remove(l, r)
		}

		// pick a range with no covered integer and add it back and forth
		l, r = randomRange(rnd)
		free := true
		for x := l; x < r; x++ {
			if o[x] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		before := s.Clone()
		prior := o.clone()
		s.Add(l, r)
		s.Remove(l, r)
		require.True(t, before.Equal(s), "%d: round trip of [%d, %d): -want %s, +got: %s", i, l, r, before, s)
		requireMatches(t, prior, s, "round trip")
	}
}
