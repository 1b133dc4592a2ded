package utils

import (
	"github.com/gin-gonic/gin"

	"starwars-blog/internal/schemas"
)

// WriteAndLogResponse writes the response object as JSON with the given
// status code and logs the outcome.
func WriteAndLogResponse(c *gin.Context, response interface{}, statusCode int) {
	LogMessageWithFields(c, "info", "Returning response")
	c.JSON(statusCode, response)
}

// WriteAndLogError logs the underlying error and sends the API-visible error
// body with the specified status code. Internal detail never reaches the
// client.
func WriteAndLogError(c *gin.Context, customErr *schemas.CustomError, statusCode int, err error) {
	LogMessageWithFields(c, "error", "Error occurred: "+err.Error())
	LogMessageWithFields(c, "error", "Returning: "+customErr.Message)
	c.JSON(statusCode, customErr.DTO())
}
