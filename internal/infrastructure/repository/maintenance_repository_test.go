package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/infrastructure/database/testutil"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var (
	repoBaseTime = time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	repoStaff    = authorization.Actor{AccountID: 20, Role: authorization.RoleStaff}
	repoOperator = authorization.Actor{AccountID: 10, Role: authorization.RoleOperator}
)

func setupMaintenanceDB(t *testing.T) *gorm.DB {
	gdb := testutil.NewSQLiteDB(t)
	testutil.SeedAccounts(t, gdb,
		testutil.Account{ID: 10, Name: "Ana Operator", Role: authorization.RoleOperator},
		testutil.Account{ID: 20, Name: "Ben Staff", Role: authorization.RoleStaff},
	)
	return gdb
}

func createTicket(t *testing.T, repo *MaintenanceTicketRepository, title string, creator authorization.Actor, at time.Time) *maintenance.Ticket {
	t.Helper()
	tk, err := maintenance.NewTicket(title, "details", nil, creator, nil, at)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func TestMaintenanceTicketRepository_CreateAndGet(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	repo := NewMaintenanceTicketRepository(gdb)
	ctx := context.Background()

	due := time.Date(2026, 3, 5, 16, 0, 0, 0, time.UTC)
	prio := vo.PriorityUrgent
	tk, err := maintenance.NewTicket("Broken bin lid", "Purok 3", &prio, repoStaff, &due, repoBaseTime)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Broken bin lid", found.Title())
	assert.Equal(t, vo.StatusRequested, found.Status())
	require.NotNil(t, found.Priority())
	assert.Equal(t, vo.PriorityUrgent, *found.Priority())
	require.NotNil(t, found.DueDate())
	assert.True(t, due.Equal(*found.DueDate()))
	assert.True(t, repoBaseTime.Equal(found.CreatedAt()))
	assert.Nil(t, found.AssignedTo())

	t.Run("missing ticket returns nil", func(t *testing.T) {
		missing, err := repo.GetByID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestMaintenanceTicketRepository_Update(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	repo := NewMaintenanceTicketRepository(gdb)
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()
	wf := maintenance.NewWorkflow()

	tk := createTicket(t, repo, "Leaking truck", repoStaff, repoBaseTime)
	due := repoBaseTime.Add(72 * time.Hour)

	err := tm.RunInTransaction(ctx, func(ctx context.Context) error {
		locked, err := repo.GetByIDForUpdate(ctx, tk.ID())
		if err != nil {
			return err
		}
		if _, err := wf.Accept(locked, repoStaff, maintenance.AcceptParams{AssignTo: 10, DueDate: &due}, repoBaseTime.Add(time.Hour)); err != nil {
			return err
		}
		return repo.Update(ctx, locked)
	})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusOngoing, found.Status())
	require.NotNil(t, found.AssignedTo())
	assert.Equal(t, uint(10), *found.AssignedTo())
	assert.True(t, repoBaseTime.Equal(found.CreatedAt()))
	assert.True(t, repoBaseTime.Add(time.Hour).Equal(found.UpdatedAt()))
}

func TestMaintenanceTicketRepository_List(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	repo := NewMaintenanceTicketRepository(gdb)
	attachments := NewTicketAttachmentRepository(gdb)
	ctx := context.Background()
	wf := maintenance.NewWorkflow()

	first := createTicket(t, repo, "First", repoStaff, repoBaseTime)
	second := createTicket(t, repo, "Second", repoOperator, repoBaseTime.Add(time.Minute))
	third := createTicket(t, repo, "Third", repoStaff, repoBaseTime.Add(2*time.Minute))

	due := repoBaseTime.Add(48 * time.Hour)
	prio := vo.PriorityCritical
	_, err := wf.Accept(second, repoStaff, maintenance.AcceptParams{AssignTo: 10, Priority: &prio, DueDate: &due}, repoBaseTime.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, second))

	a, err := maintenance.NewAttachment(second.ID(), 10, maintenance.FileRef{Path: "tickets/a.jpg", Name: "a.jpg"}, nil, repoBaseTime)
	require.NoError(t, err)
	require.NoError(t, attachments.Create(ctx, a))

	t.Run("newest first with joins", func(t *testing.T) {
		views, total, err := repo.List(ctx, maintenance.TicketFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, views, 3)
		assert.Equal(t, third.ID(), views[0].Ticket.ID())
		assert.Equal(t, first.ID(), views[2].Ticket.ID())

		assert.Equal(t, "On-going", views[1].StatusName)
		assert.Equal(t, "Critical", views[1].PriorityName)
		assert.Equal(t, int64(1), views[1].AttachmentCount)
		assert.Equal(t, "Requested", views[0].StatusName)
		assert.Empty(t, views[0].PriorityName)
	})

	t.Run("filter by status and assignee", func(t *testing.T) {
		assignee := uint(10)
		views, total, err := repo.List(ctx, maintenance.TicketFilter{
			Statuses:   []vo.Status{vo.StatusOngoing},
			AssignedTo: &assignee,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, views, 1)
		assert.Equal(t, second.ID(), views[0].Ticket.ID())
	})

	t.Run("filter by creator", func(t *testing.T) {
		creator := repoStaff.AccountID
		_, total, err := repo.List(ctx, maintenance.TicketFilter{CreatedBy: &creator})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("pagination", func(t *testing.T) {
		views, total, err := repo.List(ctx, maintenance.TicketFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, views, 1)
		assert.Equal(t, first.ID(), views[0].Ticket.ID())
	})

	t.Run("no match", func(t *testing.T) {
		views, total, err := repo.List(ctx, maintenance.TicketFilter{Statuses: []vo.Status{vo.StatusCancelled}})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, views)
	})
}

func TestTicketEventRepository(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	tickets := NewMaintenanceTicketRepository(gdb)
	events := NewTicketEventRepository(gdb)
	ctx := context.Background()
	wf := maintenance.NewWorkflow()

	tk := createTicket(t, tickets, "Clogged drain", repoStaff, repoBaseTime)
	requested, err := maintenance.RequestedEvent(tk)
	require.NoError(t, err)
	require.NoError(t, events.Append(ctx, requested))
	assert.NotZero(t, requested.ID())

	due := repoBaseTime.Add(24 * time.Hour)
	accepted, err := wf.Accept(tk, repoStaff, maintenance.AcceptParams{AssignTo: 10, DueDate: &due}, repoBaseTime.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, events.Append(ctx, accepted))

	list, err := events.ListByTicket(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, maintenance.EventRequested, list[0].Type())
	assert.Nil(t, list[0].FromStatus())
	assert.Equal(t, maintenance.EventAccepted, list[1].Type())
	require.NotNil(t, list[1].FromStatus())
	assert.Equal(t, vo.StatusRequested, *list[1].FromStatus())
	assert.Equal(t, vo.StatusOngoing, list[1].ToStatus())
	assert.EqualValues(t, 10, list[1].Payload()[maintenance.PayloadAssignee])

	status, ok := wf.ReplayStatus(list)
	assert.True(t, ok)
	assert.Equal(t, tk.Status(), status)
}

func TestTicketCatalogRepository(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	catalog := NewTicketCatalogRepository(gdb)
	ctx := context.Background()

	s, ok, err := catalog.ResolveStatus(ctx, "  for verification ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, vo.StatusForVerification, s)

	_, ok, err = catalog.ResolveStatus(ctx, "Archived")
	require.NoError(t, err)
	assert.False(t, ok)

	p, ok, err := catalog.ResolvePriority(ctx, "MILD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, vo.PriorityMild, p)

	name, err := catalog.StatusName(ctx, vo.StatusOngoing)
	require.NoError(t, err)
	assert.Equal(t, "On-going", name)
}

func TestAccountRepository_GetByID(t *testing.T) {
	gdb := setupMaintenanceDB(t)
	repo := NewAccountRepository(gdb)
	ctx := context.Background()

	a, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "Ana Operator", a.DisplayName)
	assert.Equal(t, "ana.operator@example.test", a.Email)

	missing, err := repo.GetByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
