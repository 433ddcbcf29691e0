package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/notevault/vtu-notes-api/internal/handler"
	"github.com/notevault/vtu-notes-api/internal/middleware"
	"github.com/notevault/vtu-notes-api/internal/models"
	"github.com/notevault/vtu-notes-api/internal/service"
	"github.com/notevault/vtu-notes-api/pkg/config"
	"github.com/notevault/vtu-notes-api/pkg/logger"
	corsmiddleware "github.com/notevault/vtu-notes-api/pkg/middleware/cors"
	reqidmiddleware "github.com/notevault/vtu-notes-api/pkg/middleware/requestid"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Calculator *handler.CalculatorHandler
	Curriculum *handler.CurriculumHandler
	Notes      *handler.NoteHandler
	Selections *handler.SelectionHandler
	Auth       *handler.AuthHandler
	Admin      *handler.AdminHandler
}

// New assembles the gin engine: ambient middleware, health and ops
// endpoints, then the API surface grouped by auth requirement.
func New(cfg *config.Config, log *zap.Logger, metrics *service.Metrics, h Handlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.New())
	r.Use(logger.GinMiddleware(log))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Storage.Driver == config.StorageDriverLocal {
		r.Static("/files", cfg.Storage.LocalDir)
	}

	api := r.Group(cfg.APIPrefix)

	calculator := api.Group("/calculator")
	{
		calculator.POST("/sgpa", h.Calculator.SGPA)
		calculator.POST("/cgpa", h.Calculator.CGPA)
		calculator.GET("/grades", h.Calculator.Grades)
		calculator.GET("/template", h.Calculator.Template)
	}

	curriculum := api.Group("/curriculum")
	{
		curriculum.GET("/branches", h.Curriculum.Branches)
		curriculum.GET("/branches/:category", h.Curriculum.Branch)
		curriculum.GET("/branches/:category/semesters/:semester", h.Curriculum.Subjects)
		curriculum.GET("/subjects/:code", h.Curriculum.Subject)
		curriculum.GET("/subjects/:code/groups/:group/download", h.Curriculum.Download)
		curriculum.GET("/first-year/schemes", h.Curriculum.FirstYearSchemes)
		curriculum.GET("/first-year/:scheme/:cycle", h.Curriculum.FirstYearSubjects)
	}

	notes := api.Group("/notes")
	{
		notes.GET("", h.Notes.List)
		notes.GET("/:id/download", h.Notes.Download)
		notes.GET("/:id/preview", h.Notes.Preview)
		notes.POST("/bulk-download", h.Notes.BulkDownload)
	}

	selections := api.Group("/selections")
	{
		selections.POST("/:session/toggle", h.Selections.Toggle)
		selections.GET("/:session", h.Selections.Get)
		selections.DELETE("/:session", h.Selections.Clear)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/refresh", h.Auth.Refresh)

		secured := auth.Group("", middleware.JWT(cfg.JWT))
		secured.POST("/logout", h.Auth.Logout)
		secured.GET("/session", h.Auth.Session)
	}

	admin := api.Group("/admin", middleware.JWT(cfg.JWT), middleware.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/notes", h.Admin.Upload)
		admin.GET("/stats", h.Admin.Stats)
		admin.GET("/exports/csv", h.Admin.ExportCSV)
		admin.GET("/exports/pdf", h.Admin.ExportPDF)
	}

	return r
}
