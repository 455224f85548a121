package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pricebook/docs"
)

// RegisterSwaggerRoutes mounts the Swagger UI on a Gin router.
func RegisterSwaggerRoutes(router *gin.Engine) {
	// Runtime overrides for the generated documentation.
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// The URL option pins the doc.json path for the UI.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}
