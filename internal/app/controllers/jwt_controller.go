package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services"
	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services/container"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/code"
	"github.com/arsuntagsmr-eng/seminar-app/internal/error/response"
	"github.com/arsuntagsmr-eng/seminar-app/pkg/logger"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Password string `json:"password" binding:"required" example:"admin123"`
}

// HandleJWTFunc 返回一个处理JWT认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Login 处理管理员登录
// @Summary      Admin Login
// @Description  Validate the admin password and return an 8h JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  map[string]interface{}  "Success response with token"
// @Failure      400  {object}  response.Response  "Password missing"
// @Failure      401  {object}  response.Response  "Wrong password"
// @Router       /admin/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrPasswordRequired, nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	token, err := authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrPasswordIncorrect) {
			response.Fail(c.Ctx, code.ErrPasswordIncorrect, nil)
			return
		}
		logger.Error("签发令牌失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	// 保持原有的对外成功格式
	c.Ctx.JSON(http.StatusOK, gin.H{"token": token})
}
