package middleware

import (
	"taskhub-api/internal/transport/dto"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-gonic/gin"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"
)

// OpenAPIValidator rejects requests that do not match the API document. Authentication
// is left to JWTAuthMiddleware, so security requirements are not checked here.
func OpenAPIValidator(doc *openapi3.T) gin.HandlerFunc {
	return ginmiddleware.OapiRequestValidatorWithOptions(doc, &ginmiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		ErrorHandler: func(c *gin.Context, message string, statusCode int) {
			c.AbortWithStatusJSON(statusCode, dto.NewCustomError(statusCode, "Request does not match the API schema", map[string]string{
				"request": message,
			}))
		},
	})
}
