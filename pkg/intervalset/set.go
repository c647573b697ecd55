package intervalset

import (
	"strings"

	"github.com/henderiw/intervals/pkg/interval"
)

// Set is an ordered collection of disjoint, non-touching half-open
// integer intervals. The zero value is an empty set ready to use.
//
// A Set is owned by a single caller and is not safe for concurrent use.
type Set struct {
	// rr is sorted ascending, every entry is non-empty and
	// rr[i].Right < rr[i+1].Left for all i.
	rr []interval.Interval
}

func New() *Set {
	return &Set{}
}

// Add unions [left, right) into s, merging every interval it overlaps
// or touches. Add is a no-op when left >= right.
func (s *Set) Add(left, right int64) {
	if left >= right {
		return
	}
	r := interval.New(left, right)

	switch {
	case len(s.rr) == 0:
		s.rr = append(s.rr, r)
		return
	case right < s.first().Left:
		s.insertAt(0, r)
		return
	case left > s.last().Right:
		s.rr = append(s.rr, r)
		return
	}

	li, lok := s.findContaining(left)
	ri, rok := s.findContaining(right)

	switch {
	case lok && rok && li != ri:
		// left and right sit in different intervals: li absorbs
		// everything up to and including ri.
		s.extendRight(li, s.rr[ri].Right)
		s.deleteRange(li+1, ri+1)
	case lok && rok:
		// already covered
	case rok:
		// left sits in a gap, every interval between that gap and ri
		// is swallowed. The gap index is taken while rr is still sorted.
		from := s.search(left)
		s.extendLeft(ri, left)
		s.deleteRange(from, ri)
	case lok:
		s.extendRight(li, right)
		s.deleteRange(li+1, s.search(right))
	default:
		// Both ends sit in gaps. Every interval starting inside
		// [left, right] also ends inside it.
		i, j := s.search(left), s.search(right)
		if i == 0 && j == len(s.rr) {
			s.Clear()
			s.rr = append(s.rr, r)
			return
		}
		s.replaceRange(i, j, r)
	}
}

// Remove subtracts [left, right) from s, clipping or splitting the
// intervals it overlaps. Remove is a no-op when left >= right.
func (s *Set) Remove(left, right int64) {
	if len(s.rr) == 0 || left >= right {
		return
	}

	li, lok := s.findContaining(left)
	ri, rok := s.findContaining(right)

	if lok && rok && li == ri {
		r := s.rr[li]
		switch {
		case r.Left == left && r.Right == right:
			s.deleteRange(li, li+1)
		case r.Left == left:
			s.clipLeft(li, right)
		case r.Right == right:
			s.clipRight(li, left)
		default:
			s.splitAt(li, left, right)
		}
		return
	}

	if !lok && !rok && left < s.first().Left && right > s.last().Right {
		s.Clear()
		return
	}

	// from and to delimit the run of intervals that fall entirely
	// inside [left, right). An end sitting in a gap still clips the
	// neighbouring interval on the other side, this is plain subtraction.
	from := s.search(left)
	if lok {
		from = li + 1
		if s.rr[li].Left == left {
			from = li
		} else {
			s.clipRight(li, left)
		}
	}
	to := s.search(right)
	if rok {
		to = ri
		if s.rr[ri].Right == right {
			to = ri + 1
		} else {
			s.clipLeft(ri, right)
		}
	}
	s.deleteRange(from, to)
}

// Intervals returns a snapshot of the stored intervals in ascending
// order.
func (s *Set) Intervals() []interval.Interval {
	return append([]interval.Interval{}, s.rr...)
}

// Clear empties s.
func (s *Set) Clear() {
	clear(s.rr)
	s.rr = s.rr[:0]
}

func (s *Set) Len() int { return len(s.rr) }

func (s *Set) IsEmpty() bool { return len(s.rr) == 0 }

// Contains reports whether v is covered by s.
func (s *Set) Contains(v int64) bool {
	i, ok := s.findContaining(v)
	return ok && s.rr[i].Contains(v)
}

// Covers reports whether every integer of [left, right) is in s. An
// empty range is always covered.
func (s *Set) Covers(left, right int64) bool {
	if left >= right {
		return true
	}
	i, ok := s.findContaining(left)
	return ok && interval.New(left, right).CoveredBy(s.rr[i])
}

func (s *Set) Clone() *Set {
	return &Set{rr: s.Intervals()}
}

func (s *Set) Equal(other *Set) bool {
	if len(s.rr) != len(other.rr) {
		return false
	}
	for i := range s.rr {
		if s.rr[i] != other.rr[i] {
			return false
		}
	}
	return true
}

// String renders s as {[l1, r1), [l2, r2), ...}, or {} when empty.
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range s.rr {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
