package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailbox(t *testing.T) {
	m := NewMailbox[int]()

	_, ok := m.Poll()
	assert.False(t, ok, "empty mailbox")

	assert.True(t, m.Post(1))
	assert.False(t, m.Post(2), "full slot drops the post")

	v, ok := m.Poll()
	assert.True(t, ok)
	assert.Equal(t, 1, v, "first value is kept")

	_, ok = m.Poll()
	assert.False(t, ok)

	assert.True(t, m.Post(3))
}
