package services

import "errors"

// 服务层错误，由控制器映射为 internal/error/code 中的错误码
var (
	// ErrRequiredFields 缺少必填字段 (nama, nim, judul)
	ErrRequiredFields = errors.New("field wajib belum lengkap")
	// ErrNIMFormat NIM不满足8-12位数字
	ErrNIMFormat = errors.New("format NIM tidak valid")
	// ErrDuplicateNIM NIM已被注册
	ErrDuplicateNIM = errors.New("NIM sudah terdaftar")
	// ErrTanggalFormat 日期格式错误
	ErrTanggalFormat = errors.New("format tanggal tidak valid")
	// ErrParticipantNotFound 报名记录不存在
	ErrParticipantNotFound = errors.New("peserta tidak ditemukan")
	// ErrFileTooLarge 上传文件超出大小限制
	ErrFileTooLarge = errors.New("ukuran berkas melebihi batas")
	// ErrFileType 上传文件不是PDF
	ErrFileType = errors.New("berkas harus berformat PDF")
	// ErrPasswordIncorrect 管理员密码错误
	ErrPasswordIncorrect = errors.New("password salah")
)
