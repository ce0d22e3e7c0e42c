package catalog

import (
	"fmt"
	"strings"
)

// DefaultThumb asks the file server for the original size.
const DefaultThumb = "0x0"

// Resolver builds file URLs against the backend base URL.
type Resolver struct {
	Base string
}

// NewResolver returns a resolver for base, adding the trailing slash URLs
// are joined with.
func NewResolver(base string) Resolver {
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Resolver{Base: base}
}

func (r Resolver) fileURL(collection, id, file, size string) string {
	if size == "" {
		size = DefaultThumb
	}
	return fmt.Sprintf("%sapi/files/%s/%s/%s?thumb=%s", r.Base, collection, id, file, size)
}

// ImageURL returns the URL of an image file, scaled to size ("WxH").
func (r Resolver) ImageURL(collection, id, file, size string) string {
	return r.fileURL(collection, id, file, size)
}

// VideoURL returns the URL of a video file.
func (r Resolver) VideoURL(collection, id, file, size string) string {
	return r.fileURL(collection, id, file, size)
}

// AudioURL returns the URL of an audio file.
func (r Resolver) AudioURL(collection, id, file, size string) string {
	return r.fileURL(collection, id, file, size)
}

// WorkThumb returns the thumbnail URL of a work, or "" when it has none.
func (r Resolver) WorkThumb(w *Work, size string) string {
	if w == nil || w.Thumb == "" {
		return ""
	}
	return r.ImageURL(CollectionWorks, w.ID, w.Thumb, size)
}

// CategoryThumb returns the thumbnail URL of a category, or "" when it has none.
func (r Resolver) CategoryThumb(c *Category, size string) string {
	if c == nil || c.Thumb == "" {
		return ""
	}
	return r.ImageURL(CollectionCategories, c.ID, c.Thumb, size)
}

// OwnerAvatar returns the avatar URL of the owner, or "" when there is none.
func (r Resolver) OwnerAvatar(o *Owner, size string) string {
	if o == nil || o.Avatar == "" {
		return ""
	}
	return r.ImageURL(CollectionUsers, o.ID, o.Avatar, size)
}
