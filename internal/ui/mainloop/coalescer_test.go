package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("config-reload", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("config-reload"))
	queue[0]()

	assert.Equal(t, 5, value, "latest task wins")
	assert.False(t, c.Pending("config-reload"))
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("a", func() {})
	c.Post("b", func() {})
	c.Post("", func() {})
	c.Post("a", nil)

	assert.Len(t, queue, 2)
}

func TestCoalescerDropsWorkAfterStop(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("config-reload", func() { ran = true })
	c.Stop()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("config-reload", func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
