package routes

import (
	"github.com/gin-gonic/gin"

	"leadflow/internal/handlers"
	"leadflow/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	uploadHandler *handlers.UploadHandler,
	leadHandler *handlers.LeadHandler,
	batchHandler *handlers.BatchHandler,
	reportHandler *handlers.ReportHandler,
	jwtSecret []byte,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	r.POST("/upload", uploadHandler.Upload)

	leads := r.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.GET("/duplicates", leadHandler.Duplicates)
		leads.GET("/fields", leadHandler.Fields)
	}

	uploads := r.Group("/uploads")
	{
		uploads.GET("/", batchHandler.List)
		uploads.GET("/:id", batchHandler.GetByID)
		uploads.PUT("/:id", batchHandler.Update)
		uploads.DELETE("/:id", batchHandler.Delete)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/summary/pdf", reportHandler.SummaryPDF)
		reports.GET("/reconcile", reportHandler.Reconcile)
	}

	return r
}
