package router

import (
	"time"

	"github.com/collablab-dev/collablab/internal/auth"
	"github.com/collablab-dev/collablab/internal/handlers"
	"github.com/collablab-dev/collablab/internal/middleware"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the route handlers need; it is assembled once in
// main so no handler reaches for process-global state.
type Deps struct {
	DB       *gorm.DB
	Tokens   *auth.TokenService
	Users    *repository.UserStore
	Projects *repository.ProjectStore
	Saved    *repository.SavedStore
	Requests *repository.RequestStore
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware(deps.Tokens, deps.Users)

	health := &handlers.HealthHandler{DB: deps.DB}
	authHandler := &handlers.AuthHandler{Users: deps.Users, Tokens: deps.Tokens}
	projects := &handlers.ProjectHandler{Projects: deps.Projects}
	saved := &handlers.SavedHandler{Saved: deps.Saved}
	requests := &handlers.RequestHandler{Requests: deps.Requests}

	r.GET("/", health.Root)
	r.GET("/test", health.TestDatabase)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/signin", authHandler.Signin)
	}

	projectGroup := r.Group("/projects")
	{
		projectGroup.GET("", projects.List)
		projectGroup.GET("/:id", projects.Get)
		projectGroup.POST("", authRequired, projects.Create)
		projectGroup.PUT("/:id", authRequired, projects.Update)
		projectGroup.DELETE("/:id", authRequired, projects.Delete)
		projectGroup.POST("/:id/save", authRequired, saved.Save)
		projectGroup.POST("/:id/apply", authRequired, requests.Apply)
	}

	meGroup := r.Group("/me", authRequired)
	{
		meGroup.GET("", authHandler.Me)
		meGroup.POST("", authHandler.UpdateMe)
		meGroup.GET("/saved", saved.List)
	}

	ownerGroup := r.Group("/owner", authRequired)
	{
		ownerGroup.GET("/projects/:id/requests", requests.ListForProject)
		ownerGroup.GET("/requests/:id/document", requests.Document)
		ownerGroup.POST("/requests/:id/status", requests.SetStatus)
	}

	return r
}
