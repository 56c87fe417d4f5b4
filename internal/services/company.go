package services

import (
	"context"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/drivelink"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/service"
	"maintenance-system/pkg/utils"

	"go.uber.org/zap"
)

type CompanyServiceInterface interface {
	Directory(ctx context.Context, session service.SessionContext) ([]dto.CompanyBadgeDTO, error)
	Info(ctx context.Context, session service.SessionContext, slug string) (*dto.CompanyInfoDTO, error)
}

type CompanyService struct {
	companyRepository repositories.CompanyRepositoryInterface
	dashboardService  DashboardServiceInterface
	logger            *zap.Logger
}

func NewCompanyService(
	companyRepository repositories.CompanyRepositoryInterface,
	dashboardService DashboardServiceInterface,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepository: companyRepository,
		dashboardService:  dashboardService,
		logger:            logger,
	}
}

// Directory lists the companies the session may see, each with its rollup
// alert badge.
func (s *CompanyService) Directory(ctx context.Context, session service.SessionContext) ([]dto.CompanyBadgeDTO, error) {
	companies, err := s.companyRepository.GetCompanies(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CompanyBadgeDTO, 0, len(companies))
	for _, c := range companies {
		if !session.CanAccess(c.Name) {
			continue
		}
		state, err := s.dashboardService.CompanyRollup(ctx, c.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CompanyBadgeDTO{
			Name:  c.Name,
			Slug:  utils.CompanySlug(c.Name),
			Alert: state.String(),
		})
	}
	return out, nil
}

func (s *CompanyService) Info(ctx context.Context, session service.SessionContext, slug string) (*dto.CompanyInfoDTO, error) {
	company, err := s.companyRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !session.CanAccess(company.Name) {
		return nil, apperrors.ErrForbiddenCompany
	}

	return &dto.CompanyInfoDTO{
		Name:             company.Name,
		Slug:             utils.CompanySlug(company.Name),
		Manager:          company.Manager,
		Contact:          company.Contact,
		Location:         company.Location,
		Technician:       company.Technician,
		LayoutURL:        drivelink.ViewURL(company.LayoutURL),
		QRURL:            drivelink.ViewURL(company.QRURL),
		ProcessParamsURL: drivelink.ViewURL(company.ProcessParamsURL),
	}, nil
}
