package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo is a standalone uploaded image with no parent gallery.
type Photo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	FileName    string    `gorm:"size:255;not null" json:"fileName"`
	FilePath    string    `gorm:"size:512;not null" json:"filePath"`
	FileSize    int64     `json:"fileSize"`
	MimeType    string    `gorm:"size:120" json:"mimeType"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null;index" json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Uploader *User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
