package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Swagger UI is loaded from a CDN by a small embedded page pointing at
// /openapi.yaml, so no UI assets ship in the binary.
//
//go:embed swagger.html
var swaggerHTML string

// RegisterDocs mounts the API documentation endpoints at the root: the raw
// OpenAPI document at /openapi.yaml and its Swagger UI rendering at /docs.
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		data, err := os.ReadFile("api/openapi.yaml")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to read openapi document: %v", err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
