// @title           Seminar Registration Service API
// @version         1.0
// @description     Registration portal for thesis seminar sign-ups with an admin directory

// @host      localhost:4000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/arsuntagsmr-eng/seminar-app/internal/app/routes"
	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/database"
	Logger "github.com/arsuntagsmr-eng/seminar-app/pkg/logger"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建participants表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表，不会删除或修改列
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 初始化Redis客户端（可选，未配置时禁用列表缓存）
	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.GetRedisAddr(),
			DB:   cfg.RedisDB,
		})
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 启动服务器
	Logger.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Participant{}); err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	// 警告: 这将删除所有数据
	if err := db.Migrator().DropTable(&models.Participant{}); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	return autoMigrate(db)
}
