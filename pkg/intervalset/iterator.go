package intervalset

import "github.com/henderiw/intervals/pkg/interval"

// Iterator walks a snapshot of a Set in ascending order. It is not
// affected by later changes to the Set.
type Iterator struct {
	current int
	rr      []interval.Interval
}

// Iterate returns an Iterator positioned before the first interval.
func (s *Set) Iterate() *Iterator {
	return &Iterator{current: -1, rr: s.Intervals()}
}

func (r *Iterator) Value() interval.Interval {
	return r.rr[r.current]
}

func (r *Iterator) Index() int {
	return r.current
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.rr)
}

// Gap returns the uncovered range between the previous interval and
// the current one. ok is false on the first interval.
func (r *Iterator) Gap() (gap interval.Interval, ok bool) {
	if r.current < 1 || r.current >= len(r.rr) {
		return gap, false
	}
	return interval.New(r.rr[r.current-1].Right, r.rr[r.current].Left), true
}
