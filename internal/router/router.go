// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/handlers"
	"github.com/javajoker/wholesale-catalog/internal/middleware"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

// Initialize wires services and handlers around the shared storage client.
func Initialize(st store.Store, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	paymentGateway := services.NewPaymentGateway(cfg)

	slugService := services.NewSlugService(st)
	redirectService := services.NewRedirectService(st)
	catalogService := services.NewCatalogService(st, redirectService)
	migrationService := services.NewMigrationService(st, slugService)
	productService := services.NewProductService(st, slugService, redirectService, cfg.Payment.Currency).
		WithImageRemover(storageService)
	categoryService := services.NewCategoryService(st, slugService, redirectService)
	inquiryService := services.NewInquiryService(st, notificationService)
	sampleOrderService := services.NewSampleOrderService(st, paymentGateway, notificationService, cfg.Payment.Currency)
	authService := services.NewAuthService(st, cfg)
	adminService := services.NewAdminService(st)
	userService := services.NewUserService(st)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	redirectHandler := handlers.NewRedirectHandler(redirectService)
	migrationHandler := handlers.NewMigrationHandler(migrationService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	sampleOrderHandler := handlers.NewSampleOrderHandler(sampleOrderService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	adminHandler := handlers.NewAdminHandler(adminService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(st, cfg.Storage.Driver)

	limit := func(h gin.HandlerFunc) gin.HandlerFunc {
		if !cfg.Server.RateLimit {
			return func(c *gin.Context) { c.Next() }
		}
		return h
	}

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(limit(middleware.GeneralRateLimit()))

	r.GET("/health", healthHandler.Health)
	if cfg.AWS.AccessKeyID == "" {
		r.Static(services.LocalUploadsPath, cfg.Storage.UploadDir)
	}

	// API v1 routes
	v1 := r.Group(handlers.APIPrefix)
	{
		v1.GET("/health", healthHandler.Health)
		v1.GET("/catalog/:type/:slug", catalogHandler.Resolve)
		v1.GET("/products", productHandler.GetPublicProducts)
		v1.GET("/categories", categoryHandler.GetPublicCategories)

		submissions := v1.Group("")
		submissions.Use(limit(middleware.SubmissionRateLimit()))
		{
			submissions.POST("/inquiries", inquiryHandler.CreateInquiry)
			submissions.POST("/meetings", inquiryHandler.CreateMeeting)
			submissions.POST("/sample-orders", sampleOrderHandler.CreateSampleOrder)
		}

		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", limit(middleware.AuthRateLimit()), authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Back-office routes; editors manage the catalog, admins also run
		// migrations and change customer-facing statuses.
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		admin.Use(middleware.RoleRequired(models.AdminRoleAdmin, models.AdminRoleEditor))
		admin.Use(middleware.AuditLogMiddleware(st))
		{
			admin.GET("/dashboard", adminHandler.GetDashboardStats)

			products := admin.Group("/products")
			{
				products.GET("", productHandler.GetProducts)
				products.GET("/:id", productHandler.GetProduct)
				products.POST("", productHandler.CreateProduct)
				products.PUT("/:id", productHandler.UpdateProduct)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.GET("/:id", categoryHandler.GetCategory)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			redirects := admin.Group("/redirects")
			{
				redirects.GET("", redirectHandler.GetRedirects)
				redirects.GET("/:id", redirectHandler.GetRedirect)
				redirects.POST("", redirectHandler.CreateRedirect)
				redirects.PUT("/:id", redirectHandler.UpdateRedirect)
				redirects.DELETE("/:id", redirectHandler.DeleteRedirect)
			}

			migrations := admin.Group("/migrations")
			migrations.Use(middleware.AdminRequired())
			{
				migrations.GET("/slugs", migrationHandler.GetSlugStatus)
				migrations.POST("/slugs", migrationHandler.RunSlugMigration)
			}

			inquiries := admin.Group("/inquiries")
			{
				inquiries.GET("", inquiryHandler.GetInquiries)
				inquiries.GET("/:id", inquiryHandler.GetInquiry)
				inquiries.PUT("/:id/status", middleware.AdminRequired(), inquiryHandler.UpdateInquiryStatus)
			}

			sampleOrders := admin.Group("/sample-orders")
			{
				sampleOrders.GET("", sampleOrderHandler.GetSampleOrders)
				sampleOrders.GET("/:id", sampleOrderHandler.GetSampleOrder)
				sampleOrders.PUT("/:id/status", middleware.AdminRequired(), sampleOrderHandler.UpdateSampleOrderStatus)
			}

			users := admin.Group("/users")
			users.Use(middleware.AdminRequired())
			{
				users.GET("", userHandler.GetUsers)
				users.GET("/:id", userHandler.GetUser)
				users.POST("", userHandler.CreateUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}

			admin.POST("/uploads", limit(middleware.UploadRateLimit()), uploadHandler.UploadImage)
		}
	}

	return r, nil
}
