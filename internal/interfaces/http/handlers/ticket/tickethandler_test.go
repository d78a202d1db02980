package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/storage"
	"github.com/ecobarangay/wasteops/internal/interfaces/http/handlers/testutil"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
)

// =====================================================================
// Mocks
// =====================================================================

type mockCreateUC struct {
	executeFn func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error)
}

func (m *mockCreateUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockAcceptUC struct {
	executeFn func(ctx context.Context, cmd usecases.AcceptTicketCommand) (*dto.TransitionResultDTO, error)
}

func (m *mockAcceptUC) Execute(ctx context.Context, cmd usecases.AcceptTicketCommand) (*dto.TransitionResultDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockTransitionUC struct {
	executeFn func(ctx context.Context, cmd usecases.TransitionTicketCommand) (*dto.TransitionResultDTO, error)
}

func (m *mockTransitionUC) Execute(ctx context.Context, cmd usecases.TransitionTicketCommand) (*dto.TransitionResultDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockRemarksUC struct {
	executeFn func(ctx context.Context, cmd usecases.AddRemarksCommand) (*dto.TransitionResultDTO, error)
}

func (m *mockRemarksUC) Execute(ctx context.Context, cmd usecases.AddRemarksCommand) (*dto.TransitionResultDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockListUC struct {
	executeFn func(ctx context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListUC) Execute(ctx context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.executeFn(ctx, q)
}

type mockGetUC struct {
	executeFn func(ctx context.Context, q usecases.GetTicketQuery) (*dto.TicketDetailDTO, error)
}

func (m *mockGetUC) Execute(ctx context.Context, q usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
	return m.executeFn(ctx, q)
}

type mockBindUC struct {
	executeFn func(ctx context.Context, cmd usecases.BindAttachmentCommand) (*dto.AttachmentDTO, error)
}

func (m *mockBindUC) Execute(ctx context.Context, cmd usecases.BindAttachmentCommand) (*dto.AttachmentDTO, error) {
	return m.executeFn(ctx, cmd)
}

type mockFileStore struct {
	saved   [][]byte
	deleted []string
	saveErr error
	content map[string][]byte
}

func (m *mockFileStore) Save(_ context.Context, subfolder, name string, r io.Reader) (*maintenance.FileRef, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	b, _ := io.ReadAll(r)
	m.saved = append(m.saved, b)
	size := int64(len(b))
	return &maintenance.FileRef{Path: subfolder + "/stored.png", Name: name, Type: "image/png", Size: &size, Subfolder: subfolder}, nil
}

func (m *mockFileStore) Open(path string) (io.ReadCloser, error) {
	b, ok := m.content[path]
	if !ok {
		return nil, storage.ErrInvalidLocation
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *mockFileStore) Delete(path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

type actionCounter map[string]int

func (a actionCounter) ObserveAction(action, outcome string) { a[action+":"+outcome]++ }

func newTestHandler(uc UseCases, files *mockFileStore, obs actionCounter) *TicketHandler {
	if files == nil {
		files = &mockFileStore{}
	}
	var observer ActionObserver
	if obs != nil {
		observer = obs
	}
	return NewTicketHandler(uc, files, observer, logger.NewDiscardLogger())
}

func okResult(id uint, status string) *dto.TransitionResultDTO {
	return &dto.TransitionResultDTO{
		Ticket: &dto.TicketDTO{ID: id, Title: "Broken bin", Status: status},
		Event:  &dto.EventDTO{TicketID: id, ToStatus: status},
	}
}

func decodeResult(t *testing.T, body []byte) (*testutil.APIResponse, *dto.TransitionResultDTO) {
	t.Helper()
	var resp testutil.APIResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	if len(resp.Data) == 0 {
		return &resp, nil
	}
	var result dto.TransitionResultDTO
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	return &resp, &result
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestCreateTicket_JSON(t *testing.T) {
	var got usecases.CreateTicketCommand
	h := newTestHandler(UseCases{Create: &mockCreateUC{executeFn: func(_ context.Context, cmd usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error) {
		got = cmd
		return okResult(1, "Requested"), nil
	}}}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{
		"title":    "Broken bin",
		"details":  "Lid hinge snapped",
		"priority": "High",
		"due_date": "2026-03-05",
	})
	testutil.SetActor(c, 10, authorization.RoleHousehold)

	h.CreateTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	resp, result := decodeResult(t, w.Body.Bytes())
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), result.Ticket.ID)

	assert.Equal(t, uint(10), got.Actor.AccountID)
	assert.Equal(t, "Broken bin", got.Title)
	assert.Equal(t, "High", got.Priority)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-03-05", biztime.FormatDate(*got.DueDate))
	assert.Nil(t, got.Attachment)
}

func TestCreateTicket_MultipartWithFile(t *testing.T) {
	files := &mockFileStore{}
	var got usecases.CreateTicketCommand
	h := newTestHandler(UseCases{Create: &mockCreateUC{executeFn: func(_ context.Context, cmd usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error) {
		got = cmd
		return okResult(2, "Requested"), nil
	}}}, files, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets",
		map[string]string{"title": "Overflowing bin"}, "photo.png", []byte("png-bytes"))
	testutil.SetActor(c, 10, authorization.RoleHousehold)

	h.CreateTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Overflowing bin", got.Title)
	require.NotNil(t, got.Attachment)
	assert.Equal(t, "photo.png", got.Attachment.Name)
	assert.Equal(t, storage.DefaultSubfolder, got.Attachment.Subfolder)
	assert.Equal(t, [][]byte{[]byte("png-bytes")}, files.saved)
	assert.Empty(t, files.deleted)
}

func TestCreateTicket_FailureDiscardsUpload(t *testing.T) {
	files := &mockFileStore{}
	h := newTestHandler(UseCases{Create: &mockCreateUC{executeFn: func(context.Context, usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error) {
		return nil, errors.NewValidationError("title is required")
	}}}, files, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets", nil, "photo.png", []byte("png-bytes"))
	testutil.SetActor(c, 10, authorization.RoleHousehold)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"maintenance/stored.png"}, files.deleted)
}

func TestCreateTicket_RejectedUpload(t *testing.T) {
	called := false
	h := newTestHandler(UseCases{Create: &mockCreateUC{executeFn: func(context.Context, usecases.CreateTicketCommand) (*dto.TransitionResultDTO, error) {
		called = true
		return nil, nil
	}}}, &mockFileStore{saveErr: storage.ErrTypeNotAllowed}, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets",
		map[string]string{"title": "Bin"}, "run.sh", []byte("#!/bin/sh"))
	testutil.SetActor(c, 10, authorization.RoleHousehold)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestCreateTicket_BadDueDate(t *testing.T) {
	h := newTestHandler(UseCases{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{"title": "Bin", "due_date": "05/03/2026"})
	testutil.SetActor(c, 10, authorization.RoleHousehold)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTicket_Unauthenticated(t *testing.T) {
	h := newTestHandler(UseCases{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", map[string]string{"title": "Bin"})
	h.CreateTicket(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// Workflow actions
// =====================================================================

func TestAcceptTicket(t *testing.T) {
	obs := actionCounter{}
	var got usecases.AcceptTicketCommand
	h := newTestHandler(UseCases{Accept: &mockAcceptUC{executeFn: func(_ context.Context, cmd usecases.AcceptTicketCommand) (*dto.TransitionResultDTO, error) {
		got = cmd
		return okResult(cmd.TicketID, "Accepted"), nil
	}}}, nil, obs)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/7/accept", map[string]any{
		"assign_to": 30,
		"priority":  "Medium",
		"due_date":  "2026-03-09",
	})
	testutil.SetURLParam(c, "id", "7")
	testutil.SetActor(c, 20, authorization.RoleStaff)

	h.AcceptTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	_, result := decodeResult(t, w.Body.Bytes())
	assert.Equal(t, "Accepted", result.Ticket.Status)
	assert.Equal(t, uint(7), got.TicketID)
	assert.Equal(t, uint(30), got.AssignTo)
	assert.Equal(t, "Medium", got.Priority)
	assert.Equal(t, 1, obs["accept:ok"])
}

func TestTransitions_MapErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"not found", errors.NewNotFoundError("ticket not found"), http.StatusNotFound, string(errors.ErrorTypeNotFound)},
		{"forbidden", errors.NewForbiddenError("actor may not perform this action"), http.StatusForbidden, string(errors.ErrorTypeForbidden)},
		{"conflict", errors.NewConflictError("transition not allowed"), http.StatusConflict, string(errors.ErrorTypeConflict)},
		{"storage", errors.NewStorageError("failed to mark ticket on-going"), http.StatusInternalServerError, string(errors.ErrorTypeStorage)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := actionCounter{}
			uc := &mockTransitionUC{executeFn: func(_ context.Context, cmd usecases.TransitionTicketCommand) (*dto.TransitionResultDTO, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return okResult(cmd.TicketID, "On-going"), nil
			}}
			h := newTestHandler(UseCases{MarkOngoing: uc}, nil, obs)

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/3/ongoing", nil)
			testutil.SetURLParam(c, "id", "3")
			testutil.SetActor(c, 30, authorization.RoleOperator)

			h.MarkOngoing(c)

			require.Equal(t, tt.wantStatus, w.Code)
			resp, _ := decodeResult(t, w.Body.Bytes())
			if tt.wantType == "" {
				assert.True(t, resp.Success)
				assert.Equal(t, 1, obs["mark_ongoing:ok"])
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, 1, obs["mark_ongoing:"+tt.wantType])
		})
	}
}

func TestTransitions_RouteToTheirUseCase(t *testing.T) {
	calls := map[string]usecases.TransitionTicketCommand{}
	uc := func(name string) *mockTransitionUC {
		return &mockTransitionUC{executeFn: func(_ context.Context, cmd usecases.TransitionTicketCommand) (*dto.TransitionResultDTO, error) {
			calls[name] = cmd
			return okResult(cmd.TicketID, name), nil
		}}
	}
	h := newTestHandler(UseCases{
		MarkOngoing:         uc("ongoing"),
		MarkForVerification: uc("verification"),
		VerifyCompletion:    uc("complete"),
		Cancel:              uc("cancel"),
	}, nil, nil)

	for name, handle := range map[string]gin.HandlerFunc{
		"ongoing":      h.MarkOngoing,
		"verification": h.MarkForVerification,
		"complete":     h.VerifyCompletion,
		"cancel":       h.CancelTicket,
	} {
		c, w := testutil.NewTestContext(http.MethodPost, "/tickets/9", nil)
		testutil.SetURLParam(c, "id", "9")
		testutil.SetActor(c, 20, authorization.RoleStaff)

		handle(c)

		require.Equal(t, http.StatusOK, w.Code, name)
		assert.Equal(t, uint(9), calls[name].TicketID, name)
		assert.Equal(t, uint(20), calls[name].Actor.AccountID, name)
	}
}

func TestTransition_InvalidTicketID(t *testing.T) {
	h := newTestHandler(UseCases{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/abc/cancel", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetActor(c, 20, authorization.RoleStaff)

	h.CancelTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Remarks and attachments
// =====================================================================

func TestAddRemarks(t *testing.T) {
	var got usecases.AddRemarksCommand
	h := newTestHandler(UseCases{AddRemarks: &mockRemarksUC{executeFn: func(_ context.Context, cmd usecases.AddRemarksCommand) (*dto.TransitionResultDTO, error) {
		got = cmd
		return okResult(cmd.TicketID, "On-going"), nil
	}}}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/4/remarks", map[string]string{"remarks": "Waiting for parts"})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetActor(c, 30, authorization.RoleOperator)

	h.AddRemarks(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Waiting for parts", got.Remarks)
	assert.Equal(t, uint(4), got.TicketID)
}

func TestUploadAttachment(t *testing.T) {
	files := &mockFileStore{}
	var got usecases.BindAttachmentCommand
	h := newTestHandler(UseCases{BindAttachment: &mockBindUC{executeFn: func(_ context.Context, cmd usecases.BindAttachmentCommand) (*dto.AttachmentDTO, error) {
		got = cmd
		return &dto.AttachmentDTO{ID: 1, TicketID: cmd.TicketID, FilePath: cmd.File.Path}, nil
	}}}, files, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/5/attachments", nil, "after.png", []byte("png"))
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, 30, authorization.RoleOperator)

	h.UploadAttachment(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), got.TicketID)
	assert.Equal(t, uint(30), got.UploadedBy)
	assert.Equal(t, "after.png", got.File.Name)
}

func TestUploadAttachment_RequiresFile(t *testing.T) {
	h := newTestHandler(UseCases{}, nil, nil)

	c, w := testutil.NewMultipartContext(http.MethodPost, "/tickets/5/attachments", map[string]string{"note": "x"}, "", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetActor(c, 30, authorization.RoleOperator)

	h.UploadAttachment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Queries
// =====================================================================

func TestListTickets(t *testing.T) {
	var got usecases.ListTicketsQuery
	h := newTestHandler(UseCases{List: &mockListUC{executeFn: func(_ context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
		got = q
		return &usecases.ListTicketsResult{
			Tickets:  []*dto.TicketDTO{{ID: 2, Status: "On-going"}, {ID: 1, Status: "Requested"}},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}, nil
	}}}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "Requested,On-going", "assigned_to": "30"})

	h.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Requested,On-going", got.Status)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, uint(30), *got.AssignedTo)
	assert.Nil(t, got.CreatedBy)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListTickets_BadQuery(t *testing.T) {
	h := newTestHandler(UseCases{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"assigned_to": "someone"})

	h.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTicket(t *testing.T) {
	h := newTestHandler(UseCases{Get: &mockGetUC{executeFn: func(_ context.Context, q usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
		if q.TicketID != 8 {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return &dto.TicketDetailDTO{TicketDTO: dto.TicketDTO{ID: 8, Title: "Leaking truck"}}, nil
	}}}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/8", nil)
	testutil.SetURLParam(c, "id", "8")
	h.GetTicket(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("Leaking truck")))

	c, w = testutil.NewTestContext(http.MethodGet, "/tickets/9", nil)
	testutil.SetURLParam(c, "id", "9")
	h.GetTicket(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadAttachment(t *testing.T) {
	size := int64(3)
	files := &mockFileStore{content: map[string][]byte{"maintenance/a.png": []byte("png")}}
	h := newTestHandler(UseCases{Get: &mockGetUC{executeFn: func(_ context.Context, q usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
		return &dto.TicketDetailDTO{
			TicketDTO: dto.TicketDTO{ID: q.TicketID},
			Attachments: []dto.AttachmentDTO{
				{ID: 2, TicketID: q.TicketID, FilePath: "maintenance/a.png", FileName: "before.png", FileType: "image/png", FileSize: &size},
				{ID: 3, TicketID: q.TicketID, FilePath: "maintenance/gone.png", FileName: "gone.png"},
			},
		}, nil
	}}}, files, nil)

	t.Run("streams the stored file", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/6/attachments/2", nil)
		testutil.SetURLParam(c, "id", "6")
		testutil.SetURLParam(c, "attachmentId", "2")

		h.DownloadAttachment(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "png", w.Body.String())
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "before.png")
	})

	t.Run("unknown attachment", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/6/attachments/9", nil)
		testutil.SetURLParam(c, "id", "6")
		testutil.SetURLParam(c, "attachmentId", "9")

		h.DownloadAttachment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/tickets/6/attachments/3", nil)
		testutil.SetURLParam(c, "id", "6")
		testutil.SetURLParam(c, "attachmentId", "3")

		h.DownloadAttachment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
