package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// Field length limits matching database schema constraints.
const (
	MaxViewerIDLen     = 64  // viewer_addresses.viewer_id VARCHAR(64)
	MaxAddressLevelLen = 30  // campaigns.region / sub_region / district VARCHAR(30)
	MaxIndustryLen     = 30  // campaigns.industry VARCHAR(30)
	MaxAddressTextLen  = 120 // free-text geocoding input
)

// ErrorResponse is a helper that returns the standard API error envelope.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// QueryAddress assembles the address prefix from the region, sub-region and
// district query parameters, trimmed and length-capped.
func QueryAddress(c fiber.Ctx) model.Address {
	return model.Address{
		Region:    cleanLevel(fiber.Query[string](c, "region")),
		SubRegion: cleanLevel(fiber.Query[string](c, "sub-region")),
		District:  cleanLevel(fiber.Query[string](c, "district")),
	}
}

func cleanLevel(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > MaxAddressLevelLen {
		s = s[:MaxAddressLevelLen]
	}
	return s
}

// ValidateViewerID checks the viewer identity header value.
func ValidateViewerID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "X-Viewer-ID header is required"
	}
	if len(id) > MaxViewerIDLen {
		return "", "viewer id must be at most 64 characters"
	}
	return id, ""
}

// ValidateIndustry trims and caps the optional industry filter.
func ValidateIndustry(industry string) string {
	industry = strings.TrimSpace(industry)
	if len(industry) > MaxIndustryLen {
		industry = industry[:MaxIndustryLen]
	}
	return industry
}

// ValidateOrder checks the detail-tier ordering against the closed
// vocabulary. Empty means the default.
func ValidateOrder(order string) (string, string) {
	order = strings.TrimSpace(order)
	if order == "" {
		return model.OrderRecent, ""
	}
	if !model.ValidOrders[order] {
		return "", "order must be one of: recent, funded, liked"
	}
	return order, ""
}
