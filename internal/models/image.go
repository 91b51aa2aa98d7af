package models

import (
	"time"

	"github.com/google/uuid"
)

// UserImageDB represents the metadata row for a user's single profile image
type UserImageDB struct {
	ImageID     uuid.UUID `json:"id" db:"image_id"`               // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owning user, at most one image per user
	FileName    string    `json:"file_name" db:"file_name"`       // Generated file name (uuid + original extension)
	ObjectKey   string    `json:"object_key" db:"object_key"`     // Key in the object store
	ContentType string    `json:"content_type" db:"content_type"` // MIME type of the stored object
	SizeBytes   int64     `json:"size_bytes" db:"size_bytes"`     // Object size in bytes
	UploadDate  time.Time `json:"upload_date" db:"upload_date"`   // Upload timestamp

	// URL is the externally resolvable location (bucket/key). Derived, not stored.
	URL string `json:"url" db:"-"`
}
