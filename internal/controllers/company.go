package controllers

import (
	"net/http"

	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompanyController struct {
	companyService services.CompanyServiceInterface
	logger         *zap.Logger
}

func NewCompanyController(companyService services.CompanyServiceInterface, logger *zap.Logger) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		logger:         logger,
	}
}

func (c *CompanyController) GetCompanies(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	companies, err := c.companyService.Directory(ctx.Request().Context(), session)
	if err != nil {
		c.logger.Error("GetCompanies: directory listing failed", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list companies", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, companies, "companies listed", http.StatusOK, uint64(len(companies)))
}

func (c *CompanyController) FindCompany(ctx echo.Context) error {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	slug := ctx.Param("slug")
	info, err := c.companyService.Info(ctx.Request().Context(), session, slug)
	if err != nil {
		c.logger.Warn("FindCompany: lookup failed", zap.String("slug", slug), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, info, "company found", http.StatusOK)
}
