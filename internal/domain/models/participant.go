package models

import "time"

// Participant represents a thesis seminar registration
type Participant struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nama        string     `gorm:"type:varchar(100);not null" json:"nama"`
	NIM         string     `gorm:"type:varchar(12);uniqueIndex;not null" json:"nim"` // 8-12 digit student number, globally unique
	Prodi       string     `gorm:"type:varchar(100)" json:"prodi"`
	Dosen       string     `gorm:"type:varchar(100)" json:"dosen"`
	Judul       string     `gorm:"type:text;not null" json:"judul"`
	Tanggal     *time.Time `gorm:"type:date" json:"tanggal"`
	Berkas      *string    `gorm:"type:varchar(255)" json:"berkas"` // stored file name, nil when no file uploaded
	WaktuDaftar time.Time  `gorm:"index" json:"waktu_daftar"`
}

// TableName 指定表名
func (Participant) TableName() string {
	return "participants"
}
