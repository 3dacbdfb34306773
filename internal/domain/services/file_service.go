package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
	"github.com/arsuntagsmr-eng/seminar-app/utils"
)

// PDF文件的魔数
var pdfMagic = []byte("%PDF-")

// InterfaceFileService 上传文件存储服务接口
type InterfaceFileService interface {
	Save(r io.Reader, originalName string, size int64) (string, error)
	Delete(name string) error
	Path(name string) string
}

// FileService 管理上传目录中的文件
type FileService struct {
	dir     string
	maxSize int64
}

// NewFileService 创建一个新的文件存储服务
func NewFileService(cfg *config.Config) (*FileService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	return &FileService{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxUploadBytes(),
	}, nil
}

// Save 校验并保存上传文件，返回生成的文件名
// 文件名格式: <毫秒时间戳>-<随机后缀><原始扩展名>，并发写入不会冲突
func (s *FileService) Save(r io.Reader, originalName string, size int64) (string, error) {
	if size > s.maxSize {
		return "", ErrFileTooLarge
	}

	// 服务端重新校验文件类型，客户端的accept限制只是交互提示
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext != ".pdf" {
		return "", ErrFileType
	}

	magic := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != string(pdfMagic) {
		return "", ErrFileType
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), utils.RandomString(7), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	// 已读出的魔数也要写入，再限制剩余字节防止超限流
	if _, err := dst.Write(magic); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSize))
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	if written+int64(len(magic)) > s.maxSize {
		os.Remove(dst.Name())
		return "", ErrFileTooLarge
	}

	return name, nil
}

// Delete 删除已存储的文件，文件不存在视为成功（幂等）
func (s *FileService) Delete(name string) error {
	// 拒绝路径穿越
	if name == "" || filepath.Base(name) != name {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path 返回文件在磁盘上的路径
func (s *FileService) Path(name string) string {
	return filepath.Join(s.dir, name)
}
