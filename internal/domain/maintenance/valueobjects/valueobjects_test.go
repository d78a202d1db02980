package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusRequested, false},
		{StatusOngoing, false},
		{StatusForVerification, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.True(t, tt.status.IsValid())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" on-going ")
	require.NoError(t, err)
	assert.Equal(t, StatusOngoing, s)

	s, err = ParseStatus("For Verification")
	require.NoError(t, err)
	assert.Equal(t, StatusForVerification, s)

	_, err = ParseStatus("Closed")
	assert.Error(t, err)
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus(4)
	require.NoError(t, err)
	assert.Equal(t, "Completed", s.String())

	_, err = NewStatus(9)
	assert.Error(t, err)
	assert.Equal(t, "Status(9)", Status(9).String())
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("critical")
	require.NoError(t, err)
	assert.Equal(t, PriorityCritical, p)

	_, err = ParsePriority("Low")
	assert.Error(t, err)

	_, err = NewPriority(0)
	assert.Error(t, err)
	assert.Len(t, AllPriorities(), 3)
}
