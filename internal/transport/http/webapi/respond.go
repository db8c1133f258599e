package webapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httptransport "melodia-server-go/internal/transport/http"
)

func badRequest(c *gin.Context, message string) {
	httptransport.RespondError(c, http.StatusBadRequest, message, "Bad Request")
}

func unauthorized(c *gin.Context, message string) {
	httptransport.RespondError(c, http.StatusUnauthorized, message, "Unauthorized")
}

func forbidden(c *gin.Context, message string) {
	httptransport.RespondError(c, http.StatusForbidden, message, "Forbidden")
}

func notFound(c *gin.Context, message string) {
	httptransport.RespondError(c, http.StatusNotFound, message, "Not Found")
}

func unprocessable(c *gin.Context, message string) {
	httptransport.RespondError(c, http.StatusUnprocessableEntity, message, "Unprocessable Entity")
}

func internalError(c *gin.Context) {
	httptransport.RespondError(c, http.StatusInternalServerError, "Internal server error", "Internal Server Error")
}

// pathID validates the :id route parameter as a UUID. On failure it writes
// the 400 response and reports false.
func pathID(c *gin.Context, label string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, label+" id is not a valid uuid")
		return "", false
	}
	return id, true
}
