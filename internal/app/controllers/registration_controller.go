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

// InterfaceRegistrationController 定义报名控制器接口
type InterfaceRegistrationController interface {
	Register()
}

// RegistrationController 报名控制器
type RegistrationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRegistrationController 创建一个新的报名控制器
func NewRegistrationController(ctx *gin.Context, container *container.ServiceContainer) *RegistrationController {
	return &RegistrationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRegistrationFunc 返回一个处理报名请求的Gin处理函数
func HandleRegistrationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRegistrationController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Register 处理报名提交
// @Summary      提交报名
// @Description  提交研讨会报名表单，可附带PDF文件
// @Tags         Registration
// @Accept       multipart/form-data
// @Produce      json
// @Param        nama formData string true "姓名"
// @Param        nim formData string true "学号(NIM), 8-12位数字"
// @Param        prodi formData string false "专业"
// @Param        dosen formData string false "指导教师"
// @Param        judul formData string true "论文题目"
// @Param        tanggal formData string false "答辩日期 (YYYY-MM-DD)"
// @Param        berkas formData file false "PDF文件"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /register [post]
func (c *RegistrationController) Register() {
	input := services.RegisterInput{
		Nama:    c.Ctx.PostForm("nama"),
		NIM:     c.Ctx.PostForm("nim"),
		Prodi:   c.Ctx.PostForm("prodi"),
		Dosen:   c.Ctx.PostForm("dosen"),
		Judul:   c.Ctx.PostForm("judul"),
		Tanggal: c.Ctx.PostForm("tanggal"),
	}

	// 可选的上传文件
	var upload *services.Upload
	fileHeader, err := c.Ctx.FormFile("berkas")
	if err == nil && fileHeader != nil {
		src, err := fileHeader.Open()
		if err != nil {
			logger.Error("打开上传文件失败: %v", err)
			response.Fail(c.Ctx, code.ErrFileStorage, nil)
			return
		}
		defer src.Close()

		upload = &services.Upload{
			Reader: src,
			Name:   fileHeader.Filename,
			Size:   fileHeader.Size,
		}
	}

	registrationService := c.Container.GetService("registration").(services.InterfaceRegistrationService)
	participant, err := registrationService.Register(input, upload)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequiredFields):
			response.Fail(c.Ctx, code.ErrRequiredFields, nil)
		case errors.Is(err, services.ErrNIMFormat):
			response.Fail(c.Ctx, code.ErrNIMFormat, nil)
		case errors.Is(err, services.ErrTanggalFormat):
			response.ParamError(c.Ctx, "Format tanggal tidak valid (YYYY-MM-DD).")
		case errors.Is(err, services.ErrDuplicateNIM):
			response.Fail(c.Ctx, code.ErrDuplicateNIM, nil)
		case errors.Is(err, services.ErrFileTooLarge):
			response.Fail(c.Ctx, code.ErrFileTooLarge, nil)
		case errors.Is(err, services.ErrFileType):
			response.Fail(c.Ctx, code.ErrFileType, nil)
		default:
			logger.Error("报名写入失败: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	// 保持原有的对外成功格式
	c.Ctx.JSON(http.StatusOK, gin.H{
		"ok": true,
		"id": participant.ID,
	})
}
