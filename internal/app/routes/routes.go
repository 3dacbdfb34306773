package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/arsuntagsmr-eng/seminar-app/docs"
	"github.com/arsuntagsmr-eng/seminar-app/internal/app/controllers"
	"github.com/arsuntagsmr-eng/seminar-app/internal/app/middleware"
	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services/container"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/web"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 上传体积上限，多余1MiB留给其余表单字段
	r.MaxMultipartMemory = cfg.MaxUploadBytes() + (1 << 20)

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 嵌入的单页前端
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})

	// 上传文件直读
	r.Static("/uploads", cfg.UploadDir)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许10个请求，最多突发20个请求
	public := api.Group("/")
	public.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	public.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 报名路由 - 按路径限流，防止脚本刷报名
	registerGroup := public.Group("/register")
	registerGroup.Use(middleware.PathRateLimiter(5, 10))
	registerGroup.POST("", controllers.HandleRegistrationFunc(container, "register"))

	// 认证路由
	public.POST("/admin/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 参与者目录路由
	participantGroup := auth.Group("/participants")
	participantGroup.GET("", controllers.HandleParticipantFunc(container, "getParticipants"))
	participantGroup.GET("/export", controllers.HandleParticipantFunc(container, "exportParticipants"))
	participantGroup.DELETE("/:id", controllers.HandleParticipantFunc(container, "deleteParticipant"))
}
