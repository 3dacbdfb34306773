package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService  services.InterfaceJWTService
	authService services.InterfaceAuthService

	// 数据存储服务
	fileService  services.InterfaceFileService
	redisService services.InterfaceRedisService

	// 业务服务
	registrationService services.InterfaceRegistrationService
	directoryService    services.InterfaceDirectoryService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接，连不上就不启用缓存
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	authService, err := services.NewAuthService(c.config, c.jwtService)
	if err != nil {
		panic("初始化认证服务失败: " + err.Error())
	}
	c.authService = authService

	// 初始化文件存储服务
	fileService, err := services.NewFileService(c.config)
	if err != nil {
		panic("初始化文件存储服务失败: " + err.Error())
	}
	c.fileService = fileService

	// 初始化Redis服务（可选）
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.config, c.redis)
	}

	// 初始化业务服务
	c.registrationService = services.NewRegistrationService(c.db, c.config, c.fileService, c.redisService)
	c.directoryService = services.NewDirectoryService(c.db, c.config, c.fileService, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "auth":
		return c.authService
	case "file":
		return c.fileService
	case "redis":
		return c.redisService
	case "registration":
		return c.registrationService
	case "directory":
		return c.directoryService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
