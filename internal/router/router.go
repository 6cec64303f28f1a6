package router

import (
	"siteadmin/config"
	"siteadmin/internal/handler"
	"siteadmin/internal/metrics"
	"siteadmin/internal/middleware"
	"siteadmin/internal/repository"
	"siteadmin/internal/service"
	"siteadmin/internal/ws"
	"siteadmin/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide collaborators the router wires into handlers.
// Cloud may be nil when uploads are not configured.
type Deps struct {
	DB      *gorm.DB
	Cloud   cloudinary.Client
	Hub     *ws.ChangeHub
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func Setup(cfg *config.Config, d Deps) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(d.Log),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORS(),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	// Repositories
	adminRepo := repository.NewAdminRepository(d.DB)
	auditRepo := repository.NewAuditLogRepository(d.DB)
	categoryRepo := repository.NewCategoryRepository(d.DB)
	tagRepo := repository.NewTagRepository(d.DB)
	blogRepo := repository.NewBlogRepository(d.DB)
	productRepo := repository.NewProductRepository(d.DB)
	contactRepo := repository.NewContactRepository(d.DB)

	// Every successful mutation reaches the dashboard feed and the entity counters.
	changes := service.Notifiers{d.Hub, d.Metrics}

	// Services
	authSvc := service.NewAuthService(&cfg.JWT, adminRepo, changes)
	categorySvc := service.NewCategoryService(categoryRepo, changes)
	tagSvc := service.NewTagService(tagRepo, changes)
	blogSvc := service.NewBlogService(blogRepo, changes)
	productSvc := service.NewProductService(productRepo, changes)
	contactSvc := service.NewContactService(contactRepo, changes)

	// Handlers
	var sessions handler.SessionCloser
	if d.Hub != nil {
		sessions = d.Hub
	}
	authHandler := handler.NewAuthHandler(authSvc, auditRepo, d.Metrics, sessions, d.Log)
	categoryHandler := handler.NewCategoryHandler(categorySvc, d.Log)
	tagHandler := handler.NewTagHandler(tagSvc, d.Log)
	blogHandler := handler.NewBlogHandler(blogSvc, d.Log)
	productHandler := handler.NewProductHandler(productSvc, d.Log)
	contactHandler := handler.NewContactHandler(contactSvc, d.Log)
	uploadHandler := handler.NewUploadHandler(d.Cloud, cfg.Cloudinary.Folder, d.Log)
	healthHandler := handler.NewHealthHandler(d.DB)

	// Every token is re-checked against the store so a blocked admin is locked out at once.
	adminOnly := []gin.HandlerFunc{
		middleware.AuthRequired(&cfg.JWT),
		middleware.ActiveAdmin(authSvc),
		middleware.AdminRequired(),
	}
	withAdmin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, adminOnly...), h)
	}
	// guarded puts the bearer token in front of a route only when REQUIRE_ADMIN_TOKEN is set.
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.Server.RequireAdmin {
			return withAdmin(h)
		}
		return []gin.HandlerFunc{h}
	}
	// Blocking is only offered when signup itself needs an admin token.
	blockRoute := []gin.HandlerFunc{authHandler.BlockingDisabled}
	if cfg.Server.RequireAdmin {
		blockRoute = withAdmin(authHandler.SetBlocked)
	}

	r.GET("/healthz", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := r.Group("/api/admin")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", guarded(authHandler.Register)...)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", withAdmin(authHandler.Me)...)
			authGroup.GET("/activity", withAdmin(authHandler.Activity)...)
		}
		api.PATCH("/admins/:id/block", blockRoute...)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", guarded(categoryHandler.Create)...)
		api.PUT("/categories/:id", guarded(categoryHandler.Update)...)
		api.DELETE("/categories/:id", guarded(categoryHandler.Delete)...)

		api.GET("/tags", tagHandler.List)
		api.POST("/tags", guarded(tagHandler.Create)...)
		api.PUT("/tags/:id", guarded(tagHandler.Update)...)
		api.DELETE("/tags/:id", guarded(tagHandler.Delete)...)

		api.GET("/blogs", blogHandler.List)
		api.GET("/blogs/latest", blogHandler.Latest)
		api.POST("/blogs", guarded(blogHandler.Create)...)
		api.PUT("/blogs/:id", guarded(blogHandler.Update)...)
		api.DELETE("/blogs/:id", guarded(blogHandler.Delete)...)
		api.GET("/blog/:id", blogHandler.Get)

		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
		api.POST("/products", guarded(productHandler.Create)...)
		api.PUT("/products/:id", guarded(productHandler.Update)...)
		api.DELETE("/products/:id", guarded(productHandler.Delete)...)

		api.POST("/contact", contactHandler.Submit)
		api.GET("/contact", guarded(contactHandler.List)...)

		uploads := api.Group("/uploads")
		uploads.Use(adminOnly...)
		{
			uploads.POST("/image", uploadHandler.UploadImage)
			uploads.POST("/video", uploadHandler.UploadVideo)
		}
	}

	r.GET("/ws/changes", ws.UpgradeChangesWS(&cfg.JWT, d.Hub, authSvc))

	return r
}
