package services

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/pkg/logger"
)

// NIM必须是8-12位数字
var nimPattern = regexp.MustCompile(`^\d{8,12}$`)

// RegisterInput 报名表单字段
type RegisterInput struct {
	Nama    string
	NIM     string
	Prodi   string
	Dosen   string
	Judul   string
	Tanggal string // 可选, 格式 2006-01-02
}

// Upload 可选的上传文件
type Upload struct {
	Reader io.Reader
	Name   string
	Size   int64
}

// InterfaceRegistrationService 报名服务接口
type InterfaceRegistrationService interface {
	Register(input RegisterInput, upload *Upload) (*models.Participant, error)
}

// RegistrationService 处理新的报名提交
type RegistrationService struct {
	DB           *gorm.DB
	Config       *config.Config
	FileService  InterfaceFileService
	RedisService InterfaceRedisService
}

// NewRegistrationService 创建一个新的报名服务
func NewRegistrationService(db *gorm.DB, cfg *config.Config, fileService InterfaceFileService, redisService InterfaceRedisService) InterfaceRegistrationService {
	return &RegistrationService{
		DB:           db,
		Config:       cfg,
		FileService:  fileService,
		RedisService: redisService,
	}
}

// Register 校验并写入一条报名记录
// 校验顺序: 必填字段 -> NIM格式 -> NIM查重 -> 文件保存 -> 落库
// 查重的SELECT只是快速路径，唯一索引才是并发提交下的权威防线
func (s *RegistrationService) Register(input RegisterInput, upload *Upload) (*models.Participant, error) {
	input.Nama = strings.TrimSpace(input.Nama)
	input.NIM = strings.TrimSpace(input.NIM)
	input.Judul = strings.TrimSpace(input.Judul)

	if input.Nama == "" || input.NIM == "" || input.Judul == "" {
		return nil, ErrRequiredFields
	}
	if !nimPattern.MatchString(input.NIM) {
		return nil, ErrNIMFormat
	}

	// NIM查重
	var count int64
	if err := s.DB.Model(&models.Participant{}).Where("nim = ?", input.NIM).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateNIM
	}

	// 可选的答辩日期
	var tanggal *time.Time
	if input.Tanggal != "" {
		t, err := time.Parse("2006-01-02", input.Tanggal)
		if err != nil {
			return nil, ErrTanggalFormat
		}
		tanggal = &t
	}

	// 保存上传文件
	var berkas *string
	if upload != nil {
		name, err := s.FileService.Save(upload.Reader, upload.Name, upload.Size)
		if err != nil {
			return nil, err
		}
		berkas = &name
	}

	participant := &models.Participant{
		ID:          uuid.NewString(),
		Nama:        input.Nama,
		NIM:         input.NIM,
		Prodi:       strings.TrimSpace(input.Prodi),
		Dosen:       strings.TrimSpace(input.Dosen),
		Judul:       input.Judul,
		Tanggal:     tanggal,
		Berkas:      berkas,
		WaktuDaftar: time.Now(),
	}

	if err := s.DB.Create(participant).Error; err != nil {
		// 落库失败时回收已保存的文件，避免孤儿文件
		if berkas != nil {
			if delErr := s.FileService.Delete(*berkas); delErr != nil {
				logger.Warning("回收上传文件失败: %v", delErr)
			}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateNIM
		}
		return nil, err
	}

	// 新记录要立即出现在管理端列表里，清掉列表缓存
	if s.RedisService != nil {
		if err := s.RedisService.Delete(participantListCacheKey); err != nil {
			logger.Warning("清除参与者列表缓存失败: %v", err)
		}
	}

	return participant, nil
}
