// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tube/internal/logger"
	"github.com/MKhiriev/go-tube/internal/service"
	"github.com/MKhiriev/go-tube/internal/utils"
	"github.com/MKhiriev/go-tube/models"
)

// multipartOverhead leaves room for the multipart envelope around the file.
const multipartOverhead = 64 << 10

// uploadThumbnail replaces the caller's video thumbnail with the "file" part
// of a multipart form.
func (h *Handler) uploadThumbnail(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	videoID := chi.URLParam(r, "videoId")
	if !utils.IsUUID(videoID) {
		writeError(w, r, fmt.Errorf("%w: video id %q", service.ErrInvalidDataProvided, videoID), "invalid video id")
		return
	}

	maxSize := h.services.ThumbnailUploadService.MaxSize()
	if maxSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			err = fmt.Errorf("%w: limit is %s", service.ErrFileTooLarge, humanize.Bytes(uint64(maxSize)))
		case errors.Is(err, http.ErrMissingFile):
			err = ErrMissingFile
		default:
			err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		}
		writeError(w, r, err, "failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "application/octet-stream" && !strings.HasPrefix(contentType, "image/") {
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrUnsupportedFileType, contentType), "rejected upload")
		return
	}

	video, err := h.services.ThumbnailUploadService.Upload(r.Context(), userID, videoID, models.UploadedFile{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeError(w, r, err, "thumbnail upload failed")
		return
	}

	logger.FromRequest(r).Info().Str("video_id", videoID).Str("file", header.Filename).
		Str("size", humanize.Bytes(uint64(header.Size))).Msg("thumbnail uploaded")

	if _, err = utils.WriteJSON(w, video, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing upload response failed")
	}
}
