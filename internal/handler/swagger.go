package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/dealer-credit-simulator/docs"
)

const swaggerUIVersion = "5.11.0"

// SetupSwagger serves the embedded API document and a CDN-hosted Swagger UI.
func SetupSwagger(router *gin.Engine) {
	serveDoc := func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", docs.SwaggerJSON)
	}
	page := strings.ReplaceAll(swaggerUIHTML, "{{version}}", swaggerUIVersion)

	router.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "doc.json" {
			serveDoc(c)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Dealer Credit Simulator - API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@{{version}}/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@{{version}}/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({ url: '/swagger/doc.json', dom_id: '#swagger-ui' });
  </script>
</body>
</html>`
