package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services/container"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/code"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/response"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Ping 健康检查端点
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Ping() {
	// 保持原有的对外格式
	c.Ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Status 健康状态详情，包含数据库连通性
// @Summary      健康状态详情
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "healthy"

	db := c.Container.GetDB()
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	response.Success(c.Ctx, gin.H{
		"status":   "healthy",
		"database": dbStatus,
	})
}
