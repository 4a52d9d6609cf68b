package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/middleware"
	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/service"
)

type ToggleHandler struct {
	svc *service.ToggleService
}

func NewToggleHandler(svc *service.ToggleService) *ToggleHandler {
	return &ToggleHandler{svc: svc}
}

// Like handles POST /api/toggle/:kind/like. Likes are proposer-only.
func (h *ToggleHandler) Like(c fiber.Ctx) error {
	viewer, errMsg := middleware.ViewerFromHeader(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "INVALID_ROLE", errMsg)
	}
	if viewer.Role != model.RoleProposer {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "only proposers can like")
	}
	return h.toggle(c, viewer, model.RelationLike)
}

// Scrap handles POST /api/toggle/:kind/scrap. Both roles can scrap.
func (h *ToggleHandler) Scrap(c fiber.Ctx) error {
	viewer, errMsg := middleware.ViewerFromHeader(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "INVALID_ROLE", errMsg)
	}
	return h.toggle(c, viewer, model.RelationScrap)
}

func (h *ToggleHandler) toggle(c fiber.Ctx, viewer model.Viewer, rel model.RelationKind) error {
	kind, ok := model.ParseTargetKind(c.Params("kind"))
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_KIND", "target kind must be campaign or proposal")
	}

	var req model.ToggleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.TargetID <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "target_id is required")
	}

	result, err := h.svc.Toggle(c.Context(), viewer, rel, kind, req.TargetID)
	if err != nil {
		if errors.Is(err, service.ErrTargetNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", kind.String()+" not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle "+rel.String())
	}

	if result == model.ToggleCreated {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"result": "created"})
	}
	return c.JSON(fiber.Map{"result": "removed"})
}

// ListScraps handles GET /api/toggle/:kind/scrap — the viewer's scrapped
// targets, optionally restricted to an address prefix via the region /
// sub-region / district query parameters.
func (h *ToggleHandler) ListScraps(c fiber.Ctx) error {
	viewer, errMsg := middleware.ViewerFromHeader(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "INVALID_ROLE", errMsg)
	}

	kind, ok := model.ParseTargetKind(c.Params("kind"))
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_KIND", "target kind must be campaign or proposal")
	}

	prefix := middleware.QueryAddress(c)

	if kind == model.TargetCampaign {
		list, err := h.svc.ListScrappedCampaigns(c.Context(), viewer, prefix)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list scraps")
		}
		if list == nil {
			list = []model.CampaignSummary{}
		}
		return c.JSON(list)
	}

	list, err := h.svc.ListScrappedProposals(c.Context(), viewer, prefix)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list scraps")
	}
	if list == nil {
		list = []model.ProposalSummary{}
	}
	return c.JSON(list)
}
