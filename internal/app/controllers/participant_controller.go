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

// InterfaceParticipantController 定义参与者控制器接口
type InterfaceParticipantController interface {
	GetParticipants()
	DeleteParticipant()
	ExportParticipants()
}

// ParticipantController 参与者目录控制器
type ParticipantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewParticipantController 创建一个新的参与者控制器
func NewParticipantController(ctx *gin.Context, container *container.ServiceContainer) *ParticipantController {
	return &ParticipantController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleParticipantFunc 返回一个处理参与者请求的Gin处理函数
func HandleParticipantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewParticipantController(ctx, container)

		switch method {
		case "getParticipants":
			controller.GetParticipants()
		case "deleteParticipant":
			controller.DeleteParticipant()
		case "exportParticipants":
			controller.ExportParticipants()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetParticipants 获取参与者列表
// @Summary      获取参与者列表
// @Description  返回全部报名记录，按报名时间倒序
// @Tags         Participant
// @Produce      json
// @Success      200  {array}   models.Participant
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /participants [get]
// @Security     BearerAuth
func (c *ParticipantController) GetParticipants() {
	directoryService := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	participants, err := directoryService.List()
	if err != nil {
		logger.Error("查询参与者列表失败: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 保持原有的对外格式：裸数组
	c.Ctx.JSON(http.StatusOK, participants)
}

// 2. DeleteParticipant 删除参与者
// @Summary      删除参与者
// @Description  删除指定报名记录及其关联的上传文件
// @Tags         Participant
// @Produce      json
// @Param        id path string true "参与者ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /participants/{id} [delete]
// @Security     BearerAuth
func (c *ParticipantController) DeleteParticipant() {
	id := c.Ctx.Param("id")

	directoryService := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	if err := directoryService.Remove(id); err != nil {
		if errors.Is(err, services.ErrParticipantNotFound) {
			response.NotFound(c.Ctx, "")
			return
		}
		logger.Error("删除参与者失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	// 保持原有的对外成功格式
	c.Ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// 3. ExportParticipants 导出CSV
// @Summary      导出参与者CSV
// @Description  将全部报名记录导出为CSV文件
// @Tags         Participant
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /participants/export [get]
// @Security     BearerAuth
func (c *ParticipantController) ExportParticipants() {
	directoryService := c.Container.GetService("directory").(services.InterfaceDirectoryService)
	data, err := directoryService.ExportCSV()
	if err != nil {
		logger.Error("导出CSV失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	c.Ctx.Header("Content-Disposition", `attachment; filename="peserta.csv"`)
	c.Ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
