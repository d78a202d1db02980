package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	got, err := ParseType(" Maintenance ")
	require.NoError(t, err)
	assert.Equal(t, TypeMaintenance, got)

	got, err = ParseType("  ")
	require.NoError(t, err)
	assert.Equal(t, TypeMaintenance, got)

	for _, s := range []string{"sensor", "collection", "billing"} {
		_, err := ParseType(s)
		assert.ErrorIs(t, err, ErrUnsupportedType, s)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Maintenance request accepted", Title("ACCEPTED"))
	assert.Equal(t, "Maintenance awaiting verification", Title("for_verification"))
	assert.Equal(t, "Maintenance update", Title("ESCALATED"))
	assert.Equal(t, "Maintenance update", Title(""))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		actor     string
		title     string
		want      string
	}{
		{"full", "FOR_VERIFICATION", "Juan Dela Cruz", "Leaking pipe", "Juan Dela Cruz sent a for_verification in Leaking pipe."},
		{"missing actor", "ACCEPTED", "  ", "Leaking pipe", "Someone sent a accepted in Leaking pipe."},
		{"missing event", "", "Ana", "Leaking pipe", "Ana sent a update in Leaking pipe."},
		{"missing title", "REMARK_ADDED", "Ana", "", "Ana sent a remark_added in a maintenance ticket."},
		{"all missing", "", "", "", "Someone sent a update in a maintenance ticket."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.eventType, tt.actor, tt.title))
		})
	}
}

func TestItem(t *testing.T) {
	readAt := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	item := &Item{EventType: "COMPLETED", ActorName: "Ana", TicketTitle: "Pipe"}

	assert.False(t, item.Read())
	assert.Equal(t, "Maintenance completed", item.Title())
	assert.Equal(t, "Ana sent a completed in Pipe.", item.Message())

	item.ReadAt = &readAt
	assert.True(t, item.Read())
}
