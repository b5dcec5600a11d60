package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(sequence(25), 1, 10)

	assert.Equal(t, sequence(10), page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalCount)
	assert.False(t, page.HasPrevious)
	assert.True(t, page.HasNext)
}

func TestPaginateMiddlePage(t *testing.T) {
	page := Paginate(sequence(25), 2, 10)

	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, page.Items)
	assert.True(t, page.HasPrevious)
	assert.True(t, page.HasNext)
}

func TestPaginateLastPartialPage(t *testing.T) {
	page := Paginate(sequence(25), 3, 10)

	assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	// Too-high and non-positive page numbers clamp, they never error
	tooHigh := Paginate(sequence(25), 999999, 10)
	assert.Equal(t, 3, tooHigh.Number)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, tooHigh.Items)

	zero := Paginate(sequence(25), 0, 10)
	assert.Equal(t, 1, zero.Number)
	assert.Equal(t, sequence(10), zero.Items)

	negative := Paginate(sequence(25), -5, 10)
	assert.Equal(t, 1, negative.Number)
}

func TestPaginateEmptySequence(t *testing.T) {
	page := Paginate([]int{}, 1, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalCount)
	assert.False(t, page.HasPrevious)
	assert.False(t, page.HasNext)

	farOff := Paginate([]int{}, 42, 10)
	assert.Equal(t, 1, farOff.Number)
	assert.Empty(t, farOff.Items)
}

func TestPaginateExactMultiple(t *testing.T) {
	page := Paginate(sequence(20), 2, 10)

	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.Len(t, page.Items, 10)
}

func TestPageNumberParsing(t *testing.T) {
	assert.Equal(t, 3, PageNumber("3"))
	assert.Equal(t, 1, PageNumber(""))
	assert.Equal(t, 1, PageNumber("abc"))
	assert.Equal(t, 1, PageNumber("0"))
	assert.Equal(t, 1, PageNumber("-2"))
	assert.Equal(t, 7, PageNumber(" 7 "))
	assert.Equal(t, 999999, PageNumber("999999"))
}
