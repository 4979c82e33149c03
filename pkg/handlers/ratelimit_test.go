package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewKeyRateLimiter(1, 2)

	assert.True(t, rl.Allow("key-a"))
	assert.True(t, rl.Allow("key-a"))
	assert.False(t, rl.Allow("key-a"), "third immediate request should exceed the burst")
}

func TestKeyRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewKeyRateLimiter(1, 1)

	assert.True(t, rl.Allow("key-a"))
	assert.False(t, rl.Allow("key-a"))
	assert.True(t, rl.Allow("key-b"))
}
