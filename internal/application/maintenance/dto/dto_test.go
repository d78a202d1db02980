package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
)

func TestToTicketDTO(t *testing.T) {
	created := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	// 16:00 UTC is the next calendar day in Manila.
	due := time.Date(2026, 3, 5, 16, 0, 0, 0, time.UTC)
	prio := vo.PriorityMild
	assignee := uint(10)

	tk := maintenance.ReconstructTicket(7, "Broken lid", "", &prio, vo.StatusOngoing, 20, &assignee, &due, "", created, created, nil)

	out := ToTicketDTO(tk, "", "")
	require.NotNil(t, out)
	assert.Equal(t, "On-going", out.Status)
	require.NotNil(t, out.Priority)
	assert.Equal(t, "Mild", *out.Priority)
	require.NotNil(t, out.DueDate)
	assert.Equal(t, "2026-03-06", *out.DueDate)
	assert.Nil(t, out.AttachmentCount)

	named := ToTicketDTO(tk, "Ongoing (catalog)", "Low")
	assert.Equal(t, "Ongoing (catalog)", named.Status)
	assert.Equal(t, "Low", *named.Priority)

	listed := ToTicketListDTO(&maintenance.TicketView{Ticket: tk, AttachmentCount: 2})
	require.NotNil(t, listed.AttachmentCount)
	assert.Equal(t, int64(2), *listed.AttachmentCount)

	assert.Nil(t, ToTicketDTO(nil, "", ""))
}

func TestToEventDTO(t *testing.T) {
	from := vo.StatusRequested
	e := maintenance.ReconstructEvent(3, 7, maintenance.EventAccepted, 20, &from, vo.StatusOngoing,
		map[string]any{maintenance.PayloadAssignee: float64(10)}, time.Now().UTC())

	out := ToEventDTO(e)
	assert.Equal(t, "ACCEPTED", out.EventType)
	require.NotNil(t, out.FromStatus)
	assert.Equal(t, "Requested", *out.FromStatus)
	assert.Equal(t, "On-going", out.ToStatus)
	assert.Equal(t, float64(10), out.Payload[maintenance.PayloadAssignee])

	assert.Len(t, ToEventDTOs([]*maintenance.Event{e, e}), 2)
}
