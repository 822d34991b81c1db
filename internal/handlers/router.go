package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorship-service/internal/services"
	"github.com/mentorhub/mentorship-service/internal/utils"
)

// HandlerManager owns every HTTP handler and knows how to mount them.
type HandlerManager struct {
	serviceManager services.ServiceManager
	logger         utils.Logger

	auth       *AuthHandler
	user       *UserHandler
	instructor *InstructorHandler
	session    *SessionHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		serviceManager: serviceManager,
		logger:         logger,
		auth:           NewAuthHandler(serviceManager.Auth(), logger),
		user:           NewUserHandler(serviceManager.User(), logger),
		instructor:     NewInstructorHandler(serviceManager.Instructor(), logger),
		session:        NewSessionHandler(serviceManager.Session(), logger),
	}
}

// SetupRoutes mounts all routes on the engine.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	auth := router.Group("/auth")
	{
		auth.POST("/signup", hm.auth.Signup)
		auth.POST("/login", hm.auth.Login)
	}

	router.GET("/protected", AuthMiddleware(hm.serviceManager.Auth()), hm.auth.Protected)

	users := router.Group("/users")
	{
		users.POST("", hm.user.CreateUser)
		users.GET("", hm.user.ListUsers)
		users.GET("/:id", hm.user.GetUser)
		users.PUT("/:id", hm.user.UpdateUser)
		users.DELETE("/:id", hm.user.DeleteUser)
	}

	instructors := router.Group("/instructors")
	{
		instructors.POST("", hm.instructor.CreateInstructor)
		instructors.GET("", hm.instructor.ListInstructors)
		instructors.GET("/:id", hm.instructor.GetInstructor)
		instructors.PUT("/:id", hm.instructor.UpdateInstructor)
		instructors.DELETE("/:id", hm.instructor.DeleteInstructor)
	}

	sessions := router.Group("/sessions")
	{
		sessions.POST("", hm.session.CreateSession)
		sessions.GET("", hm.session.ListSessions)
		sessions.GET("/:id", hm.session.GetSession)
		sessions.PUT("/:id", hm.session.UpdateSession)
		sessions.DELETE("/:id", hm.session.DeleteSession)
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
