package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is external-link metadata only; no binary payload is stored.
type Video struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"size:1000" json:"description,omitempty"`
	YoutubeURL   string    `gorm:"size:512;not null" json:"youtubeUrl"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnailUrl,omitempty"`
	UploadedBy   uuid.UUID `gorm:"type:uuid;not null" json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Uploader *User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
