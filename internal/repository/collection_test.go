package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Tags []string
}

func newItems() *Collection[item] {
	return NewCollection([]item{{ID: "a", Tags: []string{"x"}}, {ID: "b"}}, func(i item) string { return i.ID }, func(i item) item {
		i.Tags = append([]string(nil), i.Tags...)
		return i
	})
}

func TestCollectionListReturnsCopies(t *testing.T) {
	c := newItems()
	list := c.List()
	list[0].Tags[0] = "mutated"
	list[0].ID = "z"

	got, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.Tags)
	assert.Equal(t, uint64(0), c.Version())
}

func TestCollectionUpdateBumpsVersion(t *testing.T) {
	c := newItems()
	updated, err := c.UpdateByID("b", func(i *item) { i.Tags = []string{"y"} })
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, updated.Tags)
	assert.Equal(t, uint64(1), c.Version())

	_, err = c.UpdateByID("missing", func(*item) {})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, uint64(1), c.Version())
}

func TestCollectionInsertAndRemove(t *testing.T) {
	c := newItems()
	c.Insert(item{ID: "c"})
	assert.Equal(t, 3, c.Len())

	require.NoError(t, c.Remove("a"))
	assert.ErrorIs(t, c.Remove("a"), ErrNotFound)
	ids := []string{}
	for _, i := range c.List() {
		ids = append(ids, i.ID)
	}
	assert.Equal(t, []string{"b", "c"}, ids)
	assert.Equal(t, uint64(2), c.Version())
}
