package model

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	File             string    `gorm:"type:text;not null" json:"file"` // storage key
	OriginalFilename string    `gorm:"type:text" json:"original_filename"`
	ContentType      string    `gorm:"type:varchar(255)" json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	StorageProvider  string    `gorm:"type:varchar(20);not null" json:"storage_provider"`
	UploadedAt       time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}
