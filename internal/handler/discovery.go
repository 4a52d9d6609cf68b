package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/metrics"
	"github.com/SunbrightCreators/Backend/internal/middleware"
	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/service"
)

type DiscoveryHandler struct {
	svc *service.DiscoveryService
}

func NewDiscoveryHandler(svc *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc}
}

// GetMap handles GET /api/discovery/:role/:zoom
//
// Validation runs front-to-back before any store or provider work: role,
// zoom tier, then the tier's required address fields. The detail tier
// returns the flat annotated list; the cluster tiers return geocoded
// cluster rows.
func (h *DiscoveryHandler) GetMap(c fiber.Ctx) error {
	role, err := model.ParseRole(c.Params("role"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "INVALID_ROLE", err.Error())
	}

	tier, err := model.ParseTier(c.Params("zoom"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "UNKNOWN_ZOOM", err.Error())
	}

	prefix := middleware.QueryAddress(c)
	if err := model.ValidateTierAddress(tier, prefix); err != nil {
		var missing *model.MissingFieldsError
		if errors.As(err, &missing) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ADDRESS", err.Error())
	}

	industry := middleware.ValidateIndustry(fiber.Query[string](c, "industry"))
	viewer := model.Viewer{ID: middleware.ViewerID(c), Role: role}

	metrics.DiscoveryRequests.WithLabelValues(tier.String(), role.String()).Inc()

	if tier == model.TierDetail {
		order, errMsg := middleware.ValidateOrder(fiber.Query[string](c, "order"))
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ORDER", errMsg)
		}

		list, err := h.svc.Detail(c.Context(), viewer, prefix, industry, order)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaigns")
		}
		if list == nil {
			list = []model.CampaignSummary{}
		}
		return c.JSON(list)
	}

	clusters, err := h.svc.Clusters(c.Context(), viewer, tier, prefix, industry)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load clusters")
	}
	if clusters == nil {
		clusters = []model.ClusterRow{}
	}
	return c.JSON(clusters)
}
