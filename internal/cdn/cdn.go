package cdn

import (
	"context"
	"path"
	"strings"
)

//go:generate mockgen -source=cdn.go -destination=../mocks/cdn_mocks.go -package=mocks

// Folders used for uploaded images
const (
	FolderTeams    = "teams"
	FolderAthletes = "athletes"
	FolderAvatars  = "avatars"
	FolderGallery  = "gallery"
)

// UploadResult describes a stored object
type UploadResult struct {
	PublicID string
	URL      string
	Bytes    int64
}

// File is a validated image waiting to be uploaded
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the file length in bytes
func (f *File) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Data))
}

// ObjectStore stores public images. Destroy is used best-effort by callers.
type ObjectStore interface {
	Upload(ctx context.Context, folder, name, contentType string, data []byte) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// Key joins a folder and an object name into a public id
func Key(folder, name string) string {
	return strings.TrimPrefix(path.Join(folder, name), "/")
}
