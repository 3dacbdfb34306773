package services

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

func setupDirectory(t *testing.T) (InterfaceDirectoryService, *gorm.DB, *config.Config) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig(t)
	fileService, err := NewFileService(cfg)
	require.NoError(t, err)

	return NewDirectoryService(db, cfg, fileService, nil), db, cfg
}

func TestDirectoryListNewestFirst(t *testing.T) {
	svc, db, _ := setupDirectory(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	seedParticipant(t, db, "11111111", base, nil)
	seedParticipant(t, db, "33333333", base.Add(2*time.Hour), nil)
	seedParticipant(t, db, "22222222", base.Add(1*time.Hour), nil)

	participants, err := svc.List()
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, "33333333", participants[0].NIM)
	assert.Equal(t, "22222222", participants[1].NIM)
	assert.Equal(t, "11111111", participants[2].NIM)
}

func TestDirectoryRemoveWithFile(t *testing.T) {
	svc, db, cfg := setupDirectory(t)

	// 伪造一个已存储的文件
	berkas := "1700000000000-abc1234.pdf"
	path := filepath.Join(cfg.UploadDir, berkas)
	require.NoError(t, os.WriteFile(path, pdfBytes, 0644))

	p := seedParticipant(t, db, "12345678", time.Now(), &berkas)

	require.NoError(t, svc.Remove(p.ID))

	// 记录和文件都要消失
	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&count).Error)
	assert.Zero(t, count)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDirectoryRemoveWithoutFile(t *testing.T) {
	svc, db, _ := setupDirectory(t)

	p := seedParticipant(t, db, "12345678", time.Now(), nil)
	require.NoError(t, svc.Remove(p.ID))

	participants, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestDirectoryRemoveMissing(t *testing.T) {
	svc, _, _ := setupDirectory(t)

	err := svc.Remove("tidak-ada")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

// 指向磁盘上已不存在文件的记录，删除仍要成功（文件删除幂等）
func TestDirectoryRemoveOrphanedHandle(t *testing.T) {
	svc, db, _ := setupDirectory(t)

	berkas := "1700000000000-hilang1.pdf"
	p := seedParticipant(t, db, "12345678", time.Now(), &berkas)

	require.NoError(t, svc.Remove(p.ID))
}

func TestDirectoryExportCSV(t *testing.T) {
	svc, db, _ := setupDirectory(t)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	berkas := "1700000000000-abc1234.pdf"
	older := seedParticipant(t, db, "11111111", base, nil)
	newer := seedParticipant(t, db, "22222222", base.Add(time.Hour), &berkas)

	data, err := svc.ExportCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // 表头 + 两行数据

	assert.Equal(t, []string{"id", "nama", "nim", "prodi", "dosen", "judul", "tanggal", "berkas", "waktu_daftar"}, records[0])

	// 数据行沿用列表顺序：最新在前
	assert.Equal(t, newer.ID, records[1][0])
	assert.Equal(t, "22222222", records[1][2])
	assert.Equal(t, berkas, records[1][7])
	assert.Equal(t, older.ID, records[2][0])
	assert.Equal(t, "", records[2][7])
}

func TestDirectoryExportCSVEmpty(t *testing.T) {
	svc, _, _ := setupDirectory(t)

	data, err := svc.ExportCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // 只有表头
}
