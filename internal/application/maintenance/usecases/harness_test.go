package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/database/testutil"
	"github.com/ecobarangay/wasteops/internal/infrastructure/repository"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/db"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/services/markdown"
)

var (
	baseTime  = time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	operatorA = authorization.Actor{AccountID: 10, Role: authorization.RoleOperator}
	staffB    = authorization.Actor{AccountID: 20, Role: authorization.RoleStaff}
	operatorC = authorization.Actor{AccountID: 30, Role: authorization.RoleOperator}
	adminD    = authorization.Actor{AccountID: 40, Role: authorization.RoleAdmin}
	household = authorization.Actor{AccountID: 50, Role: authorization.RoleHousehold}
)

// stepClock advances one minute per reading.
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Minute)
	return c.cur
}

type recordingNotifier struct {
	sent chan AssignmentNotice
	err  error
}

func (n *recordingNotifier) NotifyAssignment(_ context.Context, notice AssignmentNotice) error {
	n.sent <- notice
	return n.err
}

type harness struct {
	db          *gorm.DB
	tickets     *repository.MaintenanceTicketRepository
	events      *repository.TicketEventRepository
	attachments *repository.TicketAttachmentRepository
	notifier    *recordingNotifier

	create   *CreateTicketUseCase
	accept   *AcceptTicketUseCase
	ongoing  *TransitionTicketUseCase
	forVerif *TransitionTicketUseCase
	verify   *TransitionTicketUseCase
	cancel   *TransitionTicketUseCase
	remarks  *AddRemarksUseCase
	list     *ListTicketsUseCase
	get      *GetTicketUseCase
	bind     *BindAttachmentUseCase
}

func newHarness(t *testing.T, opts ...maintenance.Option) *harness {
	t.Helper()
	gdb := testutil.NewSQLiteDB(t)
	testutil.SeedAccounts(t, gdb,
		testutil.Account{ID: 10, Name: "Ana Operator", Role: authorization.RoleOperator},
		testutil.Account{ID: 20, Name: "Ben Staff", Role: authorization.RoleStaff},
		testutil.Account{ID: 30, Name: "Cris Operator", Role: authorization.RoleOperator},
		testutil.Account{ID: 40, Name: "Dina Admin", Role: authorization.RoleAdmin},
		testutil.Account{ID: 50, Name: "Eli Household", Role: authorization.RoleHousehold},
	)

	log := logger.NewDiscardLogger()
	tm := db.NewTransactionManager(gdb)
	tickets := repository.NewMaintenanceTicketRepository(gdb)
	events := repository.NewTicketEventRepository(gdb)
	attachments := repository.NewTicketAttachmentRepository(gdb)
	catalog := repository.NewTicketCatalogRepository(gdb)
	accounts := repository.NewAccountRepository(gdb)
	md := markdown.NewMarkdownService()
	wf := maintenance.NewWorkflow(opts...)
	notifier := &recordingNotifier{sent: make(chan AssignmentNotice, 8)}

	h := &harness{
		db:          gdb,
		tickets:     tickets,
		events:      events,
		attachments: attachments,
		notifier:    notifier,
		create:      NewCreateTicketUseCase(tm, tickets, events, attachments, catalog, md, log),
		accept:      NewAcceptTicketUseCase(tm, tickets, events, attachments, wf, accounts, catalog, notifier, log),
		ongoing:     NewMarkOnGoingUseCase(tm, tickets, events, wf, log),
		forVerif:    NewMarkForVerificationUseCase(tm, tickets, events, wf, log),
		verify:      NewVerifyCompletionUseCase(tm, tickets, events, wf, log),
		cancel:      NewCancelTicketUseCase(tm, tickets, events, wf, log),
		remarks:     NewAddRemarksUseCase(tm, tickets, events, attachments, wf, md, log),
		list:        NewListTicketsUseCase(tickets, catalog, log),
		get:         NewGetTicketUseCase(tickets, events, attachments, catalog, md, log),
		bind:        NewBindAttachmentUseCase(tickets, attachments, log),
	}

	clock := &stepClock{cur: baseTime}
	h.create.now = clock.Now
	for _, w := range []*ticketWriter{
		h.accept.writer, h.ongoing.writer, h.forVerif.writer,
		h.verify.writer, h.cancel.writer, h.remarks.writer,
	} {
		w.now = clock.Now
	}
	return h
}

func (h *harness) createTicket(t *testing.T, creator authorization.Actor, title string) uint {
	t.Helper()
	res, err := h.create.Execute(context.Background(), CreateTicketCommand{Actor: creator, Title: title})
	require.NoError(t, err)
	return res.Ticket.ID
}

func (h *harness) acceptTicket(t *testing.T, id uint, by authorization.Actor, assignTo uint) {
	t.Helper()
	due := baseTime.Add(72 * time.Hour)
	_, err := h.accept.Execute(context.Background(), AcceptTicketCommand{
		TicketID: id, Actor: by, AssignTo: assignTo, DueDate: &due,
	})
	require.NoError(t, err)
}

func (h *harness) eventTypes(t *testing.T, id uint) []maintenance.EventType {
	t.Helper()
	events, err := h.events.ListByTicket(context.Background(), id)
	require.NoError(t, err)
	out := make([]maintenance.EventType, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type())
	}
	return out
}

func (h *harness) ticket(t *testing.T, id uint) *maintenance.Ticket {
	t.Helper()
	tk, err := h.tickets.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, tk)
	return tk
}
