package repositories

import (
	"context"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type CompanyRepositoryInterface interface {
	GetCompanies(ctx context.Context) ([]entities.Company, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Company, error)
}

type CompanyRepository struct {
	store  SheetStore
	sheet  string
	logger *zap.Logger
}

func NewCompanyRepository(store SheetStore, sheet string, logger *zap.Logger) CompanyRepositoryInterface {
	return &CompanyRepository{
		store:  store,
		sheet:  sheet,
		logger: logger,
	}
}

func (r *CompanyRepository) GetCompanies(ctx context.Context) ([]entities.Company, error) {
	rows, err := r.store.ReadRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}

	companies := make([]entities.Company, 0, len(rows))
	for _, row := range rows {
		if row["company"] == "" {
			continue
		}
		companies = append(companies, entities.Company{
			Name:             row["company"],
			Manager:          row["manager"],
			Contact:          row["contact"],
			Location:         row["location"],
			Technician:       row["technician"],
			LayoutURL:        row["layout_url"],
			QRURL:            row["qr_url"],
			ProcessParamsURL: row["process_params_url"],
		})
	}
	return companies, nil
}

func (r *CompanyRepository) FindBySlug(ctx context.Context, slug string) (*entities.Company, error) {
	companies, err := r.GetCompanies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if utils.CompanySlug(companies[i].Name) == slug {
			return &companies[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}
