package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusMutable(t *testing.T) {
	assert.True(t, RunStatusDraft.Mutable())
	assert.True(t, RunStatusProcessing.Mutable())
	assert.False(t, RunStatusLocked.Mutable())
	assert.False(t, RunStatusPaid.Mutable())
}
