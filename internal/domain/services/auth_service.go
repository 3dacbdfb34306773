package services

import (
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/utils"
)

// InterfaceAuthService 管理员认证服务接口
type InterfaceAuthService interface {
	Login(password string) (string, error)
}

// AuthService 提供管理员登录认证
type AuthService struct {
	passwordHash string
	jwtService   InterfaceJWTService
}

// NewAuthService 创建一个新的认证服务
// 配置中的明文口令在启动时哈希一次，登录比较走bcrypt（恒定时间）
func NewAuthService(cfg *config.Config, jwtService InterfaceJWTService) (*AuthService, error) {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		passwordHash: hash,
		jwtService:   jwtService,
	}, nil
}

// Login 校验管理员口令，成功时签发8小时有效的会话令牌
func (s *AuthService) Login(password string) (string, error) {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		return "", ErrPasswordIncorrect
	}

	return s.jwtService.GenerateToken("admin")
}
