package controllers

import (
	"net/http"

	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardController serves the selector chain the dashboard walks:
// company -> zone -> equipment -> consumable detail. Companies are addressed
// by slug in the URL; the company service resolves the slug and enforces the
// session's company scope in one step.
type DashboardController struct {
	companyService   services.CompanyServiceInterface
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	companyService services.CompanyServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		companyService:   companyService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// resolveCompany turns the :slug path param into a company name, applying
// the session's access check.
func (c *DashboardController) resolveCompany(ctx echo.Context) (string, error) {
	session, err := utils.SessionFromContext(ctx.Request().Context())
	if err != nil {
		return "", err
	}
	info, err := c.companyService.Info(ctx.Request().Context(), session, ctx.Param("slug"))
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

func (c *DashboardController) GetZones(ctx echo.Context) error {
	company, err := c.resolveCompany(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	zones, err := c.dashboardService.Zones(ctx.Request().Context(), company)
	if err != nil {
		c.logger.Error("GetZones: zone listing failed", zap.String("company", company), zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list zones", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, zones, "zones listed", http.StatusOK, uint64(len(zones)))
}

func (c *DashboardController) GetZoneEquipment(ctx echo.Context) error {
	company, err := c.resolveCompany(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	zone := ctx.Param("zone")
	equipment, err := c.dashboardService.EquipmentBadges(ctx.Request().Context(), company, zone)
	if err != nil {
		c.logger.Error("GetZoneEquipment: listing failed",
			zap.String("company", company), zap.String("zone", zone), zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list equipment", err, nil),
			c.logger)
	}

	// An empty list is a valid answer: the zone simply has no equipment for
	// this company.
	return utils.SuccessResponse(ctx, equipment, "equipment listed", http.StatusOK, uint64(len(equipment)))
}

func (c *DashboardController) GetEquipmentDetail(ctx echo.Context) error {
	company, err := c.resolveCompany(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	code := ctx.Param("code")
	detail, err := c.dashboardService.EquipmentDetail(ctx.Request().Context(), company, code)
	if err != nil {
		c.logger.Warn("GetEquipmentDetail: lookup failed",
			zap.String("company", company), zap.String("code", code), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, detail, "equipment detail", http.StatusOK)
}
