package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-docx/internal/packer"
	"github.com/jonathan/resume-docx/internal/server/middleware"
	"github.com/jonathan/resume-docx/internal/types"
)

// formFileField is the multipart field carrying an uploaded resume file.
const formFileField = "file"

// handleGenerate builds the resume in the request and returns it as a .docx attachment.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	resume, err := s.readResume(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	doc, err := s.builder.Build(resume)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	data, err := packer.Bytes(doc)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", packer.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": s.outputFilename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[generate] %s: failed to write response: %v", middleware.GetRequestID(r), err)
		return
	}
	log.Printf("[generate] %s: %d blocks, %d bytes", middleware.GetRequestID(r), len(doc.Blocks), len(data))
}

// handlePreview builds the resume in the request and returns the block tree as JSON.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	resume, err := s.readResume(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	doc, err := s.builder.Build(resume)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}

// readResume reads a resume from a raw JSON body or from the "file" field of a
// multipart form, bounded by the upload limit.
func (s *Server) readResume(w http.ResponseWriter, r *http.Request) (*types.Resume, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	var data []byte
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, _, err := r.FormFile(formFileField)
		if err != nil {
			return nil, s.requestError(err, formFileField)
		}
		defer file.Close()
		if data, err = io.ReadAll(file); err != nil {
			return nil, s.requestError(err, formFileField)
		}
	} else {
		var err error
		if data, err = io.ReadAll(r.Body); err != nil {
			return nil, s.requestError(err, "body")
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ErrValidation{Field: "body", Message: "request contains no resume"}
	}
	return types.DecodeResume(data)
}

func (s *Server) requestError(err error, field string) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return &ErrPayloadTooLarge{Limit: s.maxUploadBytes}
	case errors.Is(err, http.ErrMissingFile):
		return &ErrValidation{Field: field, Message: "multipart field is missing"}
	default:
		return &ErrValidation{Field: field, Message: err.Error()}
	}
}
