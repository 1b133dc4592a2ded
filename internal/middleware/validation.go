package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"starwars-blog/internal/schemas"
	"starwars-blog/internal/utils"
)

// missingFieldResponder lets a request type override the 400 body produced
// for its missing fields, since the original contracts differ per route.
type missingFieldResponder interface {
	MissingFieldResponse(field string) any
}

// ValidateAndSanitizeStruct binds the JSON body into a fresh request struct,
// sanitizes its string fields, and validates it. The constructor is called
// per request so concurrent requests never share a binding target. On
// success the struct is stored under SanitizedPayloadKey for the handler.
func ValidateAndSanitizeStruct(newRequest func() any) gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := newRequest()
		if err := c.ShouldBindJSON(obj); err != nil {
			utils.LogMessageWithFieldsAndError(c, "error", "Request body rejected", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, schemas.BadRequest.DTO())
			return
		}

		v := utils.GetValidator()
		v.SanitizeData(obj)

		if err := v.Validate.Struct(obj); err != nil {
			utils.LogMessageWithFieldsAndError(c, "error", "Request body invalid", err)

			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
				if responder, ok := obj.(missingFieldResponder); ok {
					c.AbortWithStatusJSON(http.StatusBadRequest, responder.MissingFieldResponse(validationErrs[0].Field()))
					return
				}
			}

			c.AbortWithStatusJSON(http.StatusBadRequest, schemas.BadRequest.DTO())
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), obj)
		c.Next()
	}
}
