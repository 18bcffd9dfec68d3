package main

import (
	"reviewer/handler"
	mw "reviewer/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes for the reviewer service
func SetupRoutes(e *echo.Echo, h *handler.ReviewHandler) {
	e.HTTPErrorHandler = handler.HandleErrorView

	// Middleware
	// e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Custom Middleware
	m := mw.NewMiddleware()
	e.Use(m.CsrfMiddleware())
	e.Use(m.RequestContextMiddleware)
	e.Use(m.SessionMiddleware(h.Sessions()))

	// View routes
	e.GET("/health", h.HealthCheck)
	e.GET("/", h.HomeView)
	e.GET("/review", h.ReviewView)

	e.GET("/datasets", h.DatasetsView)
	e.GET("/dataset/uploadDatasetPopup", h.UploadDatasetPopupView)
	e.GET("/dataset/deleteDatasetPopup", h.DeleteDatasetPopupView)

	// API routes
	api := e.Group("/api")

	datasets := api.Group("/dataset")
	datasets.POST("/uploadDataset", h.UploadDataset)
	datasets.POST("/loadDataset/:filename", h.LoadDataset)
	datasets.POST("/deleteDatasets", h.DeleteDatasets)
	datasets.GET("/getStats", h.GetStats)

	reviews := api.Group("/review")
	reviews.POST("/markReviewed", h.MarkReviewed)
	reviews.POST("/unmarkReviewed", h.UnmarkReviewed)
	reviews.POST("/clearReviews", h.ClearReviews)

	exports := api.Group("/export")
	exports.GET("/exportFiltered", h.ExportFiltered)
	exports.GET("/exportReviewed", h.ExportReviewed)
	exports.GET("/exportNotReviewed", h.ExportNotReviewed)

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Static("/static/", "./view/static")
}
