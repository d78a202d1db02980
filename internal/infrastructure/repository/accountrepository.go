package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/infrastructure/persistence/models"
	"github.com/ecobarangay/wasteops/internal/shared/db"
)

var _ maintenance.AccountDirectory = (*AccountRepository)(nil)

// AccountRepository reads accounts owned by the identity service.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*maintenance.Account, error) {
	var model models.AccountModel
	err := db.GetTxFromContext(ctx, r.db).
		Select("id", "display_name", "email").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &maintenance.Account{
		ID:          model.ID,
		DisplayName: model.DisplayName,
		Email:       model.Email,
	}, nil
}
