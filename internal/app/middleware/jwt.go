package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/code"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/response"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 验证管理员会话令牌
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    code.ErrTokenInvalid,
				"message": "Unauthorized",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 提取并校验token
		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    code.ErrTokenInvalid,
				"message": "Invalid token",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 签名有效但角色不对
		if claims.Role != "admin" {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
