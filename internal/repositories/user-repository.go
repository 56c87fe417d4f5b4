package repositories

import (
	"context"
	"strings"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"

	"go.uber.org/zap"
)

type UserRepositoryInterface interface {
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
}

type UserRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewUserRepository(store SheetStore, sheet string, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row["login"]), strings.TrimSpace(login)) {
			return &entities.User{
				Login:        strings.TrimSpace(row["login"]),
				PasswordHash: row["password_hash"],
				Company:      strings.TrimSpace(row["company"]),
			}, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
