package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
)

func TestTicketToDomain_RejectsUnknownCatalogIDs(t *testing.T) {
	mapper := NewMaintenanceMapper()

	_, err := mapper.TicketToDomain(&models.MaintenanceTicketModel{ID: 1, Title: "x", StatusID: 42})
	assert.ErrorContains(t, err, "invalid ticket status id")

	bad := uint(9)
	_, err = mapper.TicketToDomain(&models.MaintenanceTicketModel{ID: 1, Title: "x", StatusID: 1, PriorityID: &bad})
	assert.ErrorContains(t, err, "invalid priority id")
}

func TestTicketToModel_PreservesTimes(t *testing.T) {
	mapper := NewMaintenanceMapper()
	created := time.Date(2025, 11, 20, 1, 2, 3, 4_000_000, time.UTC)
	due := created.Add(72 * time.Hour)
	mild := vo.PriorityMild
	assignee := uint(8)

	tk := maintenance.ReconstructTicket(3, "Clogged drain", "", &mild, vo.StatusOngoing, 5, &assignee, &due, "", created, created, nil)
	model := mapper.TicketToModel(tk)

	assert.Equal(t, created.UnixMilli(), model.CreatedAt)
	require.NotNil(t, model.PriorityID)
	assert.Equal(t, uint(3), *model.PriorityID)
	assert.Nil(t, model.CompletedAt)

	back, err := mapper.TicketToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, created, back.CreatedAt())
	assert.Equal(t, due, *back.DueDate())
	assert.Equal(t, vo.StatusOngoing, back.Status())
}

func TestEventToDomain_DecodesPayload(t *testing.T) {
	mapper := NewMaintenanceMapper()
	from := uint(1)
	model := &models.TicketEventModel{
		ID:           4,
		TicketID:     3,
		EventType:    "ACCEPTED",
		ActorID:      2,
		FromStatusID: &from,
		ToStatusID:   2,
		Payload:      []byte(`{"assignee":8}`),
		CreatedAt:    1_700_000_000_000,
	}

	e, err := mapper.EventToDomain(model)
	require.NoError(t, err)
	assert.Equal(t, maintenance.EventAccepted, e.Type())
	assert.Equal(t, vo.StatusRequested, *e.FromStatus())
	assert.Equal(t, float64(8), e.Payload()["assignee"])

	model.Payload = []byte(`not json`)
	_, err = mapper.EventToDomain(model)
	assert.Error(t, err)
}
