package navigation_test

import (
	"testing"

	"safeguard/internal/navigation"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_DisposesOnce(t *testing.T) {
	var lc navigation.Lifecycle
	calls := 0

	assert.True(t, lc.Active())
	assert.Equal(t, navigation.Active, lc.State())

	assert.True(t, lc.Dispose(func() { calls++ }))
	assert.False(t, lc.Dispose(func() { calls++ }))

	assert.Equal(t, 1, calls)
	assert.False(t, lc.Active())
	assert.Equal(t, "disposed", lc.State().String())
}

func TestLifecycle_NilTeardown(t *testing.T) {
	var lc navigation.Lifecycle
	assert.True(t, lc.Dispose(nil))
	assert.False(t, lc.Active())
}

func TestPageID_String(t *testing.T) {
	assert.Equal(t, "quiz", navigation.Quiz.String())
	assert.Equal(t, "main_menu", navigation.MainMenu.String())
	assert.Equal(t, "unknown", navigation.PageID(99).String())
	assert.Equal(t, navigation.Request{To: navigation.Map}, navigation.To(navigation.Map))
}
