package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"pricingdesk.app/server/internal/http/dto"
	"pricingdesk.app/server/internal/store"
)

const multipartOverhead = 1 << 20

type AttachmentHandler struct {
	store    store.AttachmentStore
	maxBytes int64
}

func NewAttachmentHandler(s store.AttachmentStore, maxBytes int64) *AttachmentHandler {
	if maxBytes <= 0 {
		maxBytes = store.DefaultMaxAttachmentSize
	}
	return &AttachmentHandler{store: s, maxBytes: maxBytes}
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.tooLarge(c)
			return
		}
		badRequest(c, err)
		return
	}
	if fh.Size > h.maxBytes {
		h.tooLarge(c)
		return
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer f.Close()

	att, err := h.store.Save(ctx, fh.Filename, f)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAttachmentTooLarge):
			h.tooLarge(c)
		case errors.Is(err, store.ErrAttachmentEmpty):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "File is empty", Field: "file"})
		default:
			slog.ErrorContext(ctx, "failed to save attachment", "error", err, "filename", fh.Filename)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save file"})
		}
		return
	}

	slog.InfoContext(ctx, "attachment uploaded", "path", att.Path, "size", att.Size)
	c.JSON(http.StatusOK, dto.ToAttachmentResponse(att))
}

func (h *AttachmentHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	path := strings.TrimPrefix(c.Param("path"), "/")

	rc, err := h.store.Open(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAttachmentNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Attachment not found"})
		case errors.Is(err, store.ErrInvalidAttachmentPath), errors.Is(err, store.ErrAttachmentPathTraversal):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Field: "path"})
		default:
			slog.ErrorContext(ctx, "failed to open attachment", "error", err, "path", path)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read file"})
		}
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filepath.Base(path)}))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		slog.WarnContext(ctx, "attachment download interrupted", "error", err, "path", path)
	}
}

func (h *AttachmentHandler) tooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
		Error: fmt.Sprintf("File size exceeds %dMB limit", h.maxBytes>>20),
		Field: "file",
	})
}
