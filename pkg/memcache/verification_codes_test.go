package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewVerificationCodes()
	store.Set("email-change:user-1", "483920|new@example.com", time.Minute)

	assert.Equal(t, "483920|new@example.com", store.Consume("email-change:user-1"))
	assert.Equal(t, "", store.Consume("email-change:user-1"))
}

func TestConsumeMissingKey(t *testing.T) {
	store := NewVerificationCodes()
	assert.Equal(t, "", store.Consume("nope"))
}

func TestExpiredEntryIsGone(t *testing.T) {
	store := NewVerificationCodes()
	store.Set("k", "v", -time.Second)

	_, ok := store.Peek("k")
	assert.False(t, ok)
	assert.Equal(t, "", store.Consume("k"))
}

func TestPeekDoesNotConsume(t *testing.T) {
	store := NewVerificationCodes()
	store.Set("k", "v", time.Minute)

	v, ok := store.Peek("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	assert.Equal(t, "v", store.Consume("k"))
}

func TestSetOverwrites(t *testing.T) {
	store := NewVerificationCodes()
	store.Set("k", "first", time.Minute)
	store.Set("k", "second", time.Minute)

	assert.Equal(t, "second", store.Consume("k"))
}
