package httpx

import (
	"net/http"

	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// maxUploadBytes bounds the in-memory multipart parse.
const maxUploadBytes = 32 << 20

// UploadHandlers serves the complaint attachment upload endpoint.
type UploadHandlers struct {
	Uploader ports.Uploader
}

// Upload handles POST /api/uploads (multipart form, field "file"). The
// uploader identity comes from the session.
func (h *UploadHandlers) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, errors.Validation("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, errors.ValidationField("file", "a file part is required"))
		return
	}
	defer func() { _ = file.Close() }()

	profile, ok := ProfileFromContext(r.Context())
	if !ok {
		WriteError(w, errors.Authentication("profile required to upload"))
		return
	}

	result, err := h.Uploader.Upload(r.Context(), ports.UploadInput{
		FileName:   header.Filename,
		File:       file,
		UploadedBy: profile.StaffID,
	})
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, result)
}
