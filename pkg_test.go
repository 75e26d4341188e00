package iterz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	var a Slice[int]
	assert.Equal(t, 0, a.Len())
	a.Append(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, a.Get())
	assert.Equal(t, 3, a.Len())

	// Appending inside a closure is visible to the owner.
	acc := make(Slice[string], 0, 2)
	add := func(s string) { acc.Append(s) }
	add("a")
	add("b")
	assert.Equal(t, []string{"a", "b"}, acc.Get())

	// The Slice type is used to address the following issue:
	var b []int
	b = append(b, 4, 5, 6)
	var c []int = b
	c = append(c, 7, 8, 9)
	assert.Equal(t, []int{4, 5, 6}, b)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, c)
}
