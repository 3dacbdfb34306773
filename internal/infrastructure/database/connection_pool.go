package database

import (
	"context"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

// ConnectionPool 数据库连接池管理
type ConnectionPool struct {
	DB              *gorm.DB
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewConnectionPool 创建新的数据库连接池
func NewConnectionPool(cfg *config.Config) (*ConnectionPool, error) {
	// 创建数据库连接
	// TranslateError 将驱动的唯一约束冲突翻译为 gorm.ErrDuplicatedKey
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// 创建连接池
	pool := &ConnectionPool{
		DB:              db,
		MaxIdleConns:    10,               // 默认空闲连接数
		MaxOpenConns:    100,              // 默认最大连接数
		ConnMaxLifetime: 1 * time.Hour,    // 连接最大生命周期
		ConnMaxIdleTime: 30 * time.Minute, // 空闲连接最大生命周期
	}

	// 初始化连接池配置
	if err := pool.ConfigurePool(); err != nil {
		return nil, err
	}

	return pool, nil
}

// ConfigurePool 配置连接池参数
func (p *ConnectionPool) ConfigurePool() error {
	// 获取底层SQL连接
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	log.Printf("数据库连接池已配置: 最大空闲连接数=%d, 最大连接数=%d", p.MaxIdleConns, p.MaxOpenConns)
	return nil
}

// HealthCheck 健康检查
func (p *ConnectionPool) HealthCheck() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close 关闭连接池
func (p *ConnectionPool) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// GetDB 获取GORM数据库实例
func (p *ConnectionPool) GetDB() *gorm.DB {
	return p.DB
}
