package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var _ maintenance.Catalog = (*TicketCatalogRepository)(nil)

// TicketCatalogRepository reads the status and priority lookup tables once
// and serves later lookups from memory. The tables are seeded by migrations
// and do not change at runtime.
type TicketCatalogRepository struct {
	db *gorm.DB

	mu         sync.RWMutex
	loaded     bool
	statuses   map[string]vo.Status
	priorities map[string]vo.Priority
	statusName map[vo.Status]string
	prioName   map[vo.Priority]string
}

func NewTicketCatalogRepository(db *gorm.DB) *TicketCatalogRepository {
	return &TicketCatalogRepository{db: db}
}

func (r *TicketCatalogRepository) ResolveStatus(ctx context.Context, label string) (vo.Status, bool, error) {
	if err := r.load(ctx); err != nil {
		return 0, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.statuses[normalizeLabel(label)]
	return s, ok, nil
}

func (r *TicketCatalogRepository) ResolvePriority(ctx context.Context, label string) (vo.Priority, bool, error) {
	if err := r.load(ctx); err != nil {
		return 0, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.priorities[normalizeLabel(label)]
	return p, ok, nil
}

func (r *TicketCatalogRepository) StatusName(ctx context.Context, s vo.Status) (string, error) {
	if err := r.load(ctx); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.statusName[s]; ok {
		return name, nil
	}
	return s.String(), nil
}

func (r *TicketCatalogRepository) PriorityName(ctx context.Context, p vo.Priority) (string, error) {
	if err := r.load(ctx); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name, ok := r.prioName[p]; ok {
		return name, nil
	}
	return p.String(), nil
}

func (r *TicketCatalogRepository) load(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	var statusRows []models.TicketStatusModel
	if err := tx.Order("id").Find(&statusRows).Error; err != nil {
		return fmt.Errorf("failed to load ticket statuses: %w", err)
	}
	var priorityRows []models.TicketPriorityModel
	if err := tx.Order("id").Find(&priorityRows).Error; err != nil {
		return fmt.Errorf("failed to load ticket priorities: %w", err)
	}

	statuses := make(map[string]vo.Status, len(statusRows))
	statusName := make(map[vo.Status]string, len(statusRows))
	for _, row := range statusRows {
		s, err := vo.NewStatus(row.ID)
		if err != nil {
			return fmt.Errorf("ticket_statuses row %q: %w", row.Name, err)
		}
		statuses[normalizeLabel(row.Name)] = s
		statusName[s] = row.Name
	}
	priorities := make(map[string]vo.Priority, len(priorityRows))
	prioName := make(map[vo.Priority]string, len(priorityRows))
	for _, row := range priorityRows {
		p, err := vo.NewPriority(row.ID)
		if err != nil {
			return fmt.Errorf("ticket_priorities row %q: %w", row.Name, err)
		}
		priorities[normalizeLabel(row.Name)] = p
		prioName[p] = row.Name
	}

	r.mu.Lock()
	r.statuses, r.statusName = statuses, statusName
	r.priorities, r.prioName = priorities, prioName
	r.loaded = true
	r.mu.Unlock()
	return nil
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
