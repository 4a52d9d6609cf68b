package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/SunbrightCreators/Backend/internal/middleware"
	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/service"
)

type CampaignHandler struct {
	svc *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{svc: svc}
}

// GetDetail handles GET /api/campaigns/:campaignId/:role
func (h *CampaignHandler) GetDetail(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("campaignId"), 10, 64)
	if err != nil || id <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "campaignId must be a positive integer")
	}

	role, err := model.ParseRole(c.Params("role"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "INVALID_ROLE", err.Error())
	}

	viewer := model.Viewer{ID: middleware.ViewerID(c), Role: role}

	summary, err := h.svc.GetSummary(c.Context(), id, viewer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Campaign not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaign")
	}

	return c.JSON(summary)
}

// GetMyCreated handles GET /api/campaigns/founder/my-created — the
// requesting founder's own campaigns, grouped by status, newest first.
func (h *CampaignHandler) GetMyCreated(c fiber.Ctx) error {
	founderID := middleware.ViewerID(c)

	out, err := h.svc.ListMyCreated(c.Context(), founderID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load campaigns")
	}
	return c.JSON(out)
}
