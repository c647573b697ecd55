package intervalset

import (
	"errors"
	"fmt"
)

// Validate checks the set invariants and returns one joined error
// describing every violation found, or nil.
func (s *Set) Validate() error {
	var errm error
	for i, r := range s.rr {
		if !r.IsValid() {
			errm = errors.Join(errm, fmt.Errorf("interval %d %s is empty", i, r))
		}
		if i == 0 {
			continue
		}
		prev := s.rr[i-1]
		switch {
		case !prev.Less(r):
			errm = errors.Join(errm, fmt.Errorf("interval %d %s is not after %s", i, r, prev))
		case prev.Right > r.Left:
			errm = errors.Join(errm, fmt.Errorf("interval %d %s overlaps %s", i, r, prev))
		case prev.Adjacent(r):
			errm = errors.Join(errm, fmt.Errorf("interval %d %s touches %s", i, r, prev))
		}
	}
	return errm
}
