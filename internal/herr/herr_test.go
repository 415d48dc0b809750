package herr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	o := Some(5)
	assert.True(t, o.HasValue())
	assert.False(t, o.IsEmpty())
	assert.Equal(t, 5, o.Value())

	e := Empty[int]()
	assert.False(t, e.HasValue())
	assert.Equal(t, 9, e.ValueOr(9))
}

func TestErrorWrapAndIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(NilError))

	err := Wrap(errors.New("boom"))
	assert.False(t, IsNil(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestErrorfAndJoin(t *testing.T) {
	a := Errorf("a: %d", 1)
	b := Errorf("b: %d", 2)
	joined := Join(a, b)
	assert.Contains(t, joined.Error(), "a: 1")
}

func TestPoolReuse(t *testing.T) {
	get, release := CreatePool(
		func() []int { return make([]int, 0, 4) },
		func(s *[]int) { *s = (*s)[:0] },
	)
	s := get()
	*s = append(*s, 1, 2, 3)
	release(s)

	s2 := get()
	assert.Len(t, *s2, 0)
}

func TestFilterSliceAndContains(t *testing.T) {
	evens := FilterSlice([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
	assert.True(t, Contains(evens, 4))
	assert.False(t, Contains(evens, 3))
}
