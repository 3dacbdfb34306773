package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

// newTestDB 创建内存数据库，唯一索引行为与生产环境一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Participant{}))

	return db
}

// newTestConfig 创建指向临时目录的测试配置
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		UploadDir:       t.TempDir(),
		MaxUploadSizeMB: 10,
		JWTSecretKey:    "test-secret",
		AdminPassword:   "admin123",
	}
}

// seedParticipant 直接插入一条记录
func seedParticipant(t *testing.T, db *gorm.DB, nim string, registeredAt time.Time, berkas *string) models.Participant {
	t.Helper()

	p := models.Participant{
		ID:          uuid.NewString(),
		Nama:        "Peserta " + nim,
		NIM:         nim,
		Prodi:       "Informatika",
		Judul:       "Judul " + nim,
		Berkas:      berkas,
		WaktuDaftar: registeredAt,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// 最小的合法PDF文件头
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
