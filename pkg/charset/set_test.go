package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCJK(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"block start", 0x4E00, true},
		{"block end", 0x9FFF, true},
		{"common char", '的', true},
		{"below block", 0x4DFF, false},
		{"above block", 0xA000, false},
		{"latin", 'a', false},
		{"digit", '7', false},
		{"cjk punctuation", '、', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCJK(tt.r); got != tt.want {
				t.Errorf("IsCJK(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestUnionDoesNotMutateInputs(t *testing.T) {
	a := NewSet('一', '二')
	b := NewSet('三')

	u := a.Union(b)

	require.Equal(t, 3, u.Len())
	assert.Equal(t, 2, a.Len(), "left input must stay untouched")
	assert.Equal(t, 1, b.Len(), "right input must stay untouched")
}

func TestUnionAllProperties(t *testing.T) {
	a := NewSet('一', '二', '三')
	b := NewSet('三', '四')
	c := NewSet('四', '五')

	// Idempotent: unioning a set with itself changes nothing.
	assert.Equal(t, a.Len(), UnionAll(a, a).Len())

	// Commutative and order-independent.
	assert.Equal(t, UnionAll(a, b, c), UnionAll(c, a, b))

	// A duplicate never increases cardinality.
	before := UnionAll(a, b)
	after := UnionAll(a, b, NewSet('一'))
	assert.Equal(t, before.Len(), after.Len())
}

func TestSetContains(t *testing.T) {
	s := NewSet('好')
	if !s.Contains('好') {
		t.Error("expected member to be present")
	}
	if s.Contains('坏') {
		t.Error("expected non-member to be absent")
	}
}
