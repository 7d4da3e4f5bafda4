package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery is a titled group of uploaded images owned by one uploader.
type Gallery struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null" json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Images   []Image `gorm:"foreignKey:GalleryID" json:"images"`
	Uploader *User   `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Image is a stored file belonging to exactly one gallery.
type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GalleryID uuid.UUID `gorm:"type:uuid;not null;index" json:"galleryId"`
	FileName  string    `gorm:"size:255;not null" json:"fileName"`
	FilePath  string    `gorm:"size:512;not null" json:"filePath"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `gorm:"size:120" json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
