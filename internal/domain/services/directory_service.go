package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/pkg/logger"
)

// 参与者列表的缓存键与有效期
const (
	participantListCacheKey = "participants:list"
	participantListCacheTTL = 1 * time.Minute
)

// CSV导出的固定列顺序
var csvHeader = []string{"id", "nama", "nim", "prodi", "dosen", "judul", "tanggal", "berkas", "waktu_daftar"}

// InterfaceDirectoryService 管理端参与者目录服务接口
type InterfaceDirectoryService interface {
	List() ([]models.Participant, error)
	Remove(id string) error
	ExportCSV() ([]byte, error)
}

// DirectoryService 提供参与者的列表、删除与导出
type DirectoryService struct {
	DB           *gorm.DB
	Config       *config.Config
	FileService  InterfaceFileService
	RedisService InterfaceRedisService
}

// NewDirectoryService 创建一个新的目录服务
func NewDirectoryService(db *gorm.DB, cfg *config.Config, fileService InterfaceFileService, redisService InterfaceRedisService) InterfaceDirectoryService {
	return &DirectoryService{
		DB:           db,
		Config:       cfg,
		FileService:  fileService,
		RedisService: redisService,
	}
}

// List 返回全部参与者，按报名时间倒序
// 不分页，整表加载只适用于院系级的小规模数据
func (s *DirectoryService) List() ([]models.Participant, error) {
	// 缓存命中时跳过数据库
	if s.RedisService != nil {
		var cached []models.Participant
		if err := s.RedisService.Get(participantListCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var participants []models.Participant
	if err := s.DB.Order("waktu_daftar DESC").Find(&participants).Error; err != nil {
		return nil, err
	}

	if s.RedisService != nil {
		if err := s.RedisService.Set(participantListCacheKey, participants, participantListCacheTTL); err != nil {
			logger.Warning("写入参与者列表缓存失败: %v", err)
		}
	}

	return participants, nil
}

// Remove 删除一条报名记录及其关联文件
// 先删文件后删记录，中途崩溃最多留下孤儿文件而非悬空的文件引用
func (s *DirectoryService) Remove(id string) error {
	var participant models.Participant
	if err := s.DB.Where("id = ?", id).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	if participant.Berkas != nil {
		if err := s.FileService.Delete(*participant.Berkas); err != nil {
			return err
		}
	}

	if err := s.DB.Delete(&models.Participant{}, "id = ?", id).Error; err != nil {
		return err
	}

	s.invalidateCache()
	return nil
}

// ExportCSV 将当前全部参与者序列化为CSV: 一行表头 + 每人一行
func (s *DirectoryService) ExportCSV() ([]byte, error) {
	participants, err := s.List()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, p := range participants {
		tanggal := ""
		if p.Tanggal != nil {
			tanggal = p.Tanggal.Format("2006-01-02")
		}
		berkas := ""
		if p.Berkas != nil {
			berkas = *p.Berkas
		}

		record := []string{
			p.ID,
			p.Nama,
			p.NIM,
			p.Prodi,
			p.Dosen,
			p.Judul,
			tanggal,
			berkas,
			p.WaktuDaftar.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// invalidateCache 清除列表缓存，删除后列表要立即反映变化
func (s *DirectoryService) invalidateCache() {
	if s.RedisService == nil {
		return
	}
	if err := s.RedisService.Delete(participantListCacheKey); err != nil {
		logger.Warning("清除参与者列表缓存失败: %v", err)
	}
}
