package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("should be disabled by default", func(t *testing.T) {
		t.Setenv("TD_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("should be enabled with any non-empty value", func(t *testing.T) {
		t.Setenv("TD_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})
}

func TestDebugf_Disabled(t *testing.T) {
	t.Setenv("TD_DEBUG", "")

	// Must not panic or print when disabled
	Debugf("value: %d\n", 42)
	Debugln("line")
}
