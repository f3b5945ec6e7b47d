package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the REST surface under /api.
func RegisterRoutes(r *gin.Engine, students *StudentHandler, fees *FeeHandler) {
	api := r.Group("/api")

	s := api.Group("/students")
	s.GET("", students.List)
	s.GET("/search", students.Search)
	s.GET("/:id", students.Get)
	s.POST("", students.Create)
	s.PUT("/:id", students.Update)
	s.DELETE("/:id", students.Delete)

	f := api.Group("/fees")
	f.GET("", fees.List)
	f.GET("/:id", fees.Get)
	f.POST("", fees.Create)
	f.PUT("/:id", fees.Update)
	f.DELETE("/:id", fees.Delete)
	f.GET("/student/:studentId", fees.ListByStudent)
	f.GET("/student/:studentId/total", fees.TotalByStudent)
}
