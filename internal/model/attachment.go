package model

import "time"

// Attachment describes an uploaded supporting document. Path is relative to
// the upload root and is what a PricingRequest stores in AttachmentPath.
type Attachment struct {
	Filename   string
	Path       string
	Size       int64
	SHA256     string
	UploadedAt time.Time
}
