package intervalset

import (
	"sort"

	"github.com/henderiw/intervals/pkg/interval"
)

// The primitives below operate on s.rr by index and assume the set
// invariants hold on entry. Callers restore them before returning.

// findContaining returns the index of the interval whose closed range
// [Left, Right] holds v. Stored intervals never touch, so at most one
// can match.
func (s *Set) findContaining(v int64) (int, bool) {
	i := sort.Search(len(s.rr), func(i int) bool { return s.rr[i].Right >= v })
	if i < len(s.rr) && s.rr[i].Left <= v {
		return i, true
	}
	return i, false
}

// search returns the index of the first interval starting after v.
func (s *Set) search(v int64) int {
	return sort.Search(len(s.rr), func(i int) bool { return s.rr[i].Left > v })
}

// deleteRange drops the intervals at indices [i, j).
func (s *Set) deleteRange(i, j int) {
	if i >= j {
		return
	}
	n := copy(s.rr[i:], s.rr[j:])
	clear(s.rr[i+n:])
	s.rr = s.rr[:i+n]
}

// insertAt places r at index i, shifting the tail right.
func (s *Set) insertAt(i int, r interval.Interval) {
	s.rr = append(s.rr, interval.Interval{})
	copy(s.rr[i+1:], s.rr[i:])
	s.rr[i] = r
}

// replaceRange swaps the intervals at indices [i, j) for r.
func (s *Set) replaceRange(i, j int, r interval.Interval) {
	if i < j {
		s.rr[i] = r
		s.deleteRange(i+1, j)
		return
	}
	s.insertAt(i, r)
}

// splitAt cuts [left, right) out of the middle of the interval at i,
// leaving [Left, left) at i and [right, Right) at i+1.
func (s *Set) splitAt(i int, left, right int64) {
	tail := interval.New(right, s.rr[i].Right)
	s.rr[i].Right = left
	s.insertAt(i+1, tail)
}

func (s *Set) extendLeft(i int, left int64) {
	if left < s.rr[i].Left {
		s.rr[i].Left = left
	}
}

func (s *Set) extendRight(i int, right int64) {
	if right > s.rr[i].Right {
		s.rr[i].Right = right
	}
}

func (s *Set) clipLeft(i int, left int64) {
	if left > s.rr[i].Left {
		s.rr[i].Left = left
	}
}

func (s *Set) clipRight(i int, right int64) {
	if right < s.rr[i].Right {
		s.rr[i].Right = right
	}
}

func (s *Set) first() interval.Interval { return s.rr[0] }

func (s *Set) last() interval.Interval { return s.rr[len(s.rr)-1] }
