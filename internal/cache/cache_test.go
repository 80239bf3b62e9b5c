package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("product:1", "boots")

	value, found := c.Get("product:1")
	assert.True(t, found)
	assert.Equal(t, "boots", value)

	_, found = c.Get("product:2")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)

	c.Set("product:1", "boots", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("product:1")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:list:", "all")
	c.Set("products:list:cat1", "filtered")
	c.Set("product:1", "boots")
	c.Set("category:1", "shoes")

	c.DeleteByPrefix("product")

	_, found := c.Get("products:list:")
	assert.False(t, found)
	_, found = c.Get("products:list:cat1")
	assert.False(t, found)
	_, found = c.Get("product:1")
	assert.False(t, found)

	_, found = c.Get("category:1")
	assert.True(t, found)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set("product:1", "boots")
	c.Delete("product:1")

	_, found := c.Get("product:1")
	assert.False(t, found)
	assert.Equal(t, 0, c.Size())
}
