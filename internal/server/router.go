package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", handler.HealthCheck)
	router.POST("/generate-course", handler.GenerateCourse)
	router.GET("/courses/:userID", handler.ListCourses)
	router.GET("/courses/:userID/:name", handler.GetCourse)
	router.POST("/courses/:userID", handler.SaveCourse)

	return router
}
