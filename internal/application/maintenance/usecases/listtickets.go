package usecases

import (
	"context"
	"strings"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/dto"
	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/shared/constants"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/utils/setutil"
)

type ListTicketsQuery struct {
	// Status is a comma separated list of status labels.
	Status     string
	AssignedTo *uint
	CreatedBy  *uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

type ListTicketsUseCase struct {
	tickets maintenance.TicketRepository
	catalog maintenance.Catalog
	logger  logger.Interface
}

func NewListTicketsUseCase(
	tickets maintenance.TicketRepository,
	catalog maintenance.Catalog,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		tickets: tickets,
		catalog: catalog,
		logger:  logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case",
		"status", query.Status,
		"page", query.Page,
		"page_size", query.PageSize)

	statuses, err := uc.resolveStatuses(ctx, query.Status)
	if err != nil {
		return nil, err
	}

	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	views, total, err := uc.tickets.List(ctx, maintenance.TicketFilter{
		Statuses:   statuses,
		AssignedTo: query.AssignedTo,
		CreatedBy:  query.CreatedBy,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, toAppError(uc.logger, "list tickets", err)
	}

	out := make([]*dto.TicketDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ToTicketListDTO(v))
	}

	return &ListTicketsResult{
		Tickets:  out,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// resolveStatuses turns "Requested, On-going" into catalog ids. Blank
// entries are skipped; an unknown label fails the whole query.
func (uc *ListTicketsUseCase) resolveStatuses(ctx context.Context, raw string) ([]vo.Status, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	set := setutil.New[vo.Status]()
	for _, label := range strings.Split(raw, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		s, ok, err := uc.catalog.ResolveStatus(ctx, label)
		if err != nil {
			return nil, toAppError(uc.logger, "resolve status", err)
		}
		if !ok {
			return nil, errors.NewValidationError("invalid status", label)
		}
		set.Add(s)
	}
	return set.Values(), nil
}
