package media

import (
	"errors"
	"io"
	"net/http"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/httputil"
)

const (
	// FieldName is the multipart field that carries the image.
	FieldName = "image"

	multipartOverhead = 1 << 20
)

type Handler struct {
	intake *Intake
}

func NewHandler(intake *Intake) *Handler {
	return &Handler{intake: intake}
}

// UploadHandler streams the "image" part of a multipart body into the
// intake and answers with {"url": ...}. Other parts are skipped.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.intake.MaxSize()+multipartOverhead)

	mr, err := r.MultipartReader()
	if err != nil {
		httputil.WriteError(w, r, apperr.InvalidInput("Expected multipart/form-data"))
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			httputil.WriteError(w, r, apperr.InvalidInput("No image uploaded"))
			return
		}
		if err != nil {
			httputil.WriteError(w, r, uploadError(err))
			return
		}
		if part.FormName() != FieldName || part.FileName() == "" {
			part.Close()
			continue
		}

		url, err := h.intake.Upload(r.Context(), part, part.FileName(), part.Header.Get("Content-Type"))
		part.Close()
		if err != nil {
			httputil.WriteError(w, r, uploadError(err))
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
		return
	}
}

// uploadError reports a body cut off by the request size cap as too large.
func uploadError(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return ErrFileTooLarge
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Wrap(apperr.KindInvalidInput, "Invalid upload", err)
}
