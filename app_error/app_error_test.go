package app_error

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	err := New(404, "player %s not found", "p1")
	assert.Equal(t, "player p1 not found", err.Error())
	assert.Equal(t, 404, Status(err, 500))

	plain := fmt.Errorf("boom")
	assert.Equal(t, 500, Status(plain, 500))

	wrapped := fmt.Errorf("generate: %w", New(404, "missing"))
	assert.Equal(t, 404, Status(wrapped, 500))
}
