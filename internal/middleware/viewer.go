package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// viewerIDKey is the Locals key the viewer middleware stores the identity
// under.
const viewerIDKey = "viewerID"

// RequireViewer extracts the viewer identity from the X-Viewer-ID header.
// Authentication itself happens upstream (gateway); this service only needs
// the resolved identity. Requests without one are rejected before any
// handler work.
func RequireViewer() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, errMsg := ValidateViewerID(c.Get("X-Viewer-ID"))
		if errMsg != "" {
			return ErrorResponse(c, fiber.StatusBadRequest, "MISSING_VIEWER", errMsg)
		}
		c.Locals(viewerIDKey, id)
		return c.Next()
	}
}

// ViewerID returns the identity stored by RequireViewer.
func ViewerID(c fiber.Ctx) string {
	id, _ := c.Locals(viewerIDKey).(string)
	return id
}

// ViewerFromHeader builds a Viewer from the stored identity and the role in
// the X-Viewer-Role header. Used by the toggle routes, where the role is not
// part of the path.
func ViewerFromHeader(c fiber.Ctx) (model.Viewer, string) {
	role, err := model.ParseRole(c.Get("X-Viewer-Role"))
	if err != nil {
		return model.Viewer{}, err.Error()
	}
	return model.Viewer{ID: ViewerID(c), Role: role}, ""
}
