package interval

import (
	"testing"

	"github.com/tj/assert"
)

func TestParseInterval(t *testing.T) {
	cases := map[string]struct {
		input       string
		expected    Interval
		expectedErr bool
	}{
		"Normal": {
			input:    "[1, 5)",
			expected: Interval{Left: 1, Right: 5},
		},
		"Negative": {
			input:    "[-10,-2)",
			expected: Interval{Left: -10, Right: -2},
		},
		"Spaces": {
			input:    "  [ 3 ,  4 )  ",
			expected: Interval{Left: 3, Right: 4},
		},
		"Empty": {
			input:    "[4, 4)",
			expected: Interval{Left: 4, Right: 4},
		},
		"ErrorClosed": {
			input:       "[1, 5]",
			expectedErr: true,
		},
		"ErrorNoComma": {
			input:       "[1 5)",
			expectedErr: true,
		},
		"ErrorLeft": {
			input:       "[a, 5)",
			expectedErr: true,
		},
		"ErrorRight": {
			input:       "[1, b)",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := ParseInterval(tc.input)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestString(t *testing.T) {
	r := New(1, 5)
	assert.Equal(t, "[1, 5)", r.String())

	p, err := ParseInterval(r.String())
	assert.NoError(t, err)
	assert.Equal(t, r, p)
}

func TestPredicates(t *testing.T) {
	r := New(3, 7)

	assert.True(t, r.IsValid())
	assert.False(t, New(7, 7).IsValid())
	assert.False(t, New(8, 7).IsValid())
	assert.True(t, Interval{}.IsZero())
	assert.Equal(t, int64(4), r.Len())
	assert.Equal(t, int64(0), New(8, 7).Len())

	assert.False(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(6))
	assert.False(t, r.Contains(7))

	assert.False(t, r.Touches(2))
	assert.True(t, r.Touches(3))
	assert.True(t, r.Touches(7))
	assert.False(t, r.Touches(8))

	assert.True(t, New(0, 2).EntirelyBefore(r))
	assert.False(t, New(0, 3).EntirelyBefore(r))
	assert.True(t, New(0, 3).Adjacent(r))

	assert.True(t, New(3, 7).CoveredBy(r))
	assert.True(t, New(4, 5).CoveredBy(r))
	assert.False(t, New(2, 5).CoveredBy(r))
	assert.True(t, New(4, 6).InMiddleOf(r))
	assert.False(t, New(3, 6).InMiddleOf(r))

	assert.True(t, New(1, 9).Less(r))
	assert.True(t, New(3, 6).Less(r))
	assert.False(t, r.Less(r))
}
