package dto

import "pricingdesk.app/server/internal/model"

type AttachmentResponse struct {
	Filename  string `json:"filename"`
	SavedPath string `json:"saved_path"`
	Size      int64  `json:"size"`
	SHA256    string `json:"sha256"`
}

func ToAttachmentResponse(a model.Attachment) AttachmentResponse {
	return AttachmentResponse{
		Filename:  a.Filename,
		SavedPath: a.Path,
		Size:      a.Size,
		SHA256:    a.SHA256,
	}
}
