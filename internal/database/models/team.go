package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Photo is a single gallery image of a team. It lives embedded in Team.Gallery.
type Photo struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	PublicID   string    `json:"publicId"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Team groups athletes of one user. Gallery is kept newest-first and
// GalleryCount is written together with it in every update.
type Team struct {
	BaseModel
	UserID       uuid.UUID                      `json:"userId" gorm:"type:uuid;not null;index"`
	Name         string                         `json:"name" gorm:"not null;size:100"`
	AgeCategory  string                         `json:"ageCategory" gorm:"not null;size:50"`
	AthleteIDs   datatypes.JSONSlice[uuid.UUID] `json:"athleteIds" gorm:"type:jsonb;not null;default:'[]'"`
	Logo         string                         `json:"logo,omitempty" gorm:"size:500"`
	LogoPublicID string                         `json:"-" gorm:"size:200"`
	Gallery      datatypes.JSONSlice[Photo]     `json:"gallery" gorm:"type:jsonb;not null;default:'[]'"`
	GalleryCount int                            `json:"galleryCount" gorm:"not null;default:0"`
	Version      int64                          `json:"version" gorm:"not null;default:1"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasAthlete reports whether id is on the roster.
func (t *Team) HasAthlete(id uuid.UUID) bool {
	for _, a := range t.AthleteIDs {
		if a == id {
			return true
		}
	}
	return false
}

// PrependPhoto adds p at the front of the gallery and refreshes the count.
func (t *Team) PrependPhoto(p Photo) {
	gallery := make(datatypes.JSONSlice[Photo], 0, len(t.Gallery)+1)
	gallery = append(gallery, p)
	gallery = append(gallery, t.Gallery...)
	t.Gallery = gallery
	t.GalleryCount = len(t.Gallery)
}

// RemovePhoto drops the photo with the given id and refreshes the count.
// It returns the removed photo, or nil when no such photo exists.
func (t *Team) RemovePhoto(id uuid.UUID) *Photo {
	for i, p := range t.Gallery {
		if p.ID != id {
			continue
		}
		removed := p
		gallery := make(datatypes.JSONSlice[Photo], 0, len(t.Gallery)-1)
		gallery = append(gallery, t.Gallery[:i]...)
		gallery = append(gallery, t.Gallery[i+1:]...)
		t.Gallery = gallery
		t.GalleryCount = len(t.Gallery)
		return &removed
	}
	return nil
}

// FindPhoto returns the photo with the given id, or nil.
func (t *Team) FindPhoto(id uuid.UUID) *Photo {
	for i := range t.Gallery {
		if t.Gallery[i].ID == id {
			return &t.Gallery[i]
		}
	}
	return nil
}

// GalleryBytes sums the recorded sizes of all photos.
func (t *Team) GalleryBytes() int64 {
	var total int64
	for _, p := range t.Gallery {
		total += p.Size
	}
	return total
}
