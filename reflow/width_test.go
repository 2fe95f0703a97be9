package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidthASCII(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
}

func TestDisplayWidthWide(t *testing.T) {
	// CJK characters occupy two display columns each.
	assert.Equal(t, 4, DisplayWidth("あい"))
}
