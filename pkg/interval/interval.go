package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is the half-open integer range [Left, Right).
type Interval struct {
	Left  int64 `json:"left" yaml:"left"`
	Right int64 `json:"right" yaml:"right"`
}

func New(left, right int64) Interval {
	return Interval{Left: left, Right: right}
}

// ParseInterval parses the rendered form "[left, right)".
func ParseInterval(s string) (Interval, error) {
	var r Interval
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "[") || !strings.HasSuffix(t, ")") {
		return r, fmt.Errorf("interval %q must be of the form [left, right)", s)
	}
	t = t[1 : len(t)-1]
	c := strings.IndexByte(t, ',')
	if c == -1 {
		return r, fmt.Errorf("no comma in interval %q", s)
	}
	left, right := strings.TrimSpace(t[:c]), strings.TrimSpace(t[c+1:])
	l, err := strconv.ParseInt(left, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid left bound %q in interval %q", left, s)
	}
	h, err := strconv.ParseInt(right, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid right bound %q in interval %q", right, s)
	}
	return Interval{Left: l, Right: h}, nil
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d, %d)", r.Left, r.Right)
}

// IsValid reports whether r holds at least one integer.
func (r Interval) IsValid() bool { return r.Left < r.Right }

func (r Interval) IsZero() bool { return r == Interval{} }

func (r Interval) Len() int64 {
	if !r.IsValid() {
		return 0
	}
	return r.Right - r.Left
}

// Contains reports whether v is a member of r.
func (r Interval) Contains(v int64) bool {
	return r.Left <= v && v < r.Right
}

// Touches reports whether v lies in the closed range [Left, Right]. A
// value equal to Right is adjacent to r, so merging it in keeps the
// union contiguous.
func (r Interval) Touches(v int64) bool {
	return r.Left <= v && v <= r.Right
}

// EntirelyBefore returns whether r ends before other starts, with at
// least one integer between them.
func (r Interval) EntirelyBefore(other Interval) bool {
	return r.Right < other.Left
}

// Adjacent returns whether r ends exactly where other starts.
func (r Interval) Adjacent(other Interval) bool {
	return r.Right == other.Left
}

// CoveredBy returns whether r is entirely contained within other.
func (r Interval) CoveredBy(other Interval) bool {
	return other.Left <= r.Left && r.Right <= other.Right
}

// InMiddleOf returns whether r is inside other without touching the
// edges of other.
func (r Interval) InMiddleOf(other Interval) bool {
	return other.Left < r.Left && r.Right < other.Right
}

func (r Interval) Less(other Interval) bool {
	if r.Left != other.Left {
		return r.Left < other.Left
	}
	return r.Right < other.Right
}
