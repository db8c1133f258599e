package httptransport

import "github.com/gin-gonic/gin"

// ErrorBody is the error envelope returned on every failed request.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// RespondError writes the error envelope and aborts the request.
func RespondError(c *gin.Context, status int, message, errName string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		StatusCode: status,
		Message:    message,
		Error:      errName,
	})
}
