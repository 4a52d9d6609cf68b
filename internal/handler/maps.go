package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/middleware"
	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/service"
)

// MapsHandler exposes the geocoding provider directly: forward geocoding for
// clients placing pins, reverse geocoding for turning a picked point back
// into an address.
type MapsHandler struct {
	geo *service.GeocodeService
}

func NewMapsHandler(geo *service.GeocodeService) *MapsHandler {
	return &MapsHandler{geo: geo}
}

// Geocode handles GET /api/maps/geocoding?address=
// A provider failure yields a position with null coordinates, matching the
// discovery path's degradation rather than erroring.
func (h *MapsHandler) Geocode(c fiber.Ctx) error {
	address := strings.TrimSpace(fiber.Query[string](c, "address"))
	if address == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "address query parameter is required")
	}
	if len(address) > middleware.MaxAddressTextLen {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ADDRESS", "address is too long")
	}

	pos := h.geo.Resolve(c.Context(), address)
	return c.JSON(pos)
}

// ReverseLegal handles GET /api/maps/reverse-geocoding/legal
func (h *MapsHandler) ReverseLegal(c fiber.Ctx) error {
	return h.reverse(c, service.ReverseLegal)
}

// ReverseFull handles GET /api/maps/reverse-geocoding/full
func (h *MapsHandler) ReverseFull(c fiber.Ctx) error {
	return h.reverse(c, service.ReverseFull)
}

func (h *MapsHandler) reverse(c fiber.Ctx, level string) error {
	lat, err := strconv.ParseFloat(fiber.Query[string](c, "latitude"), 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "latitude query parameter is required")
	}
	lng, err := strconv.ParseFloat(fiber.Query[string](c, "longitude"), 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "longitude query parameter is required")
	}

	address, err := h.geo.ReverseResolve(c.Context(), model.NewPosition(lat, lng), level)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Reverse geocoding is unavailable")
	}

	return c.JSON(fiber.Map{"address": address})
}
