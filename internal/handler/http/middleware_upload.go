// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-keeper/internal/app"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/utils"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

// Form fields carrying product media.
const (
	imageFileField = "imageFile"
	videoFileField = "videoFile"
)

// withUpload parses the request body into a [models.UploadForm] and stores it
// in the request context.
//
// multipart/form-data bodies yield text fields and files, url-encoded and
// JSON bodies yield text fields only. Bodies above the configured upload
// size are answered with 413.
func (h *Handler) withUpload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.maxUploadSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
		}

		form, err := h.parseUploadForm(r)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				log.Debug().Err(err).Int64("limit", maxBytesErr.Limit).Msg("upload rejected")
				utils.WriteError(w, http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge, ErrRequestTooLarge)
				return
			}
			log.Debug().Err(err).Msg("error parsing request form")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidFormData, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUploadForm(r.Context(), form)))
	})
}

func (h *Handler) parseUploadForm(r *http.Request) (models.UploadForm, error) {
	form := models.UploadForm{
		Fields: make(map[string]string),
		Files:  make(map[string]models.MediaFile),
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return form, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return form, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	switch mediaType {
	case "multipart/form-data":
		return form, parseMultipart(r, h.maxUploadSize, form)
	case "application/x-www-form-urlencoded":
		if err = r.ParseForm(); err != nil {
			return form, fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		for name, values := range r.PostForm {
			if len(values) > 0 {
				form.Fields[name] = values[0]
			}
		}
		return form, nil
	case "application/json":
		return form, parseJSONFields(r.Body, form.Fields)
	default:
		return form, fmt.Errorf("%w: unsupported content type %q", ErrInvalidForm, mediaType)
	}
}

func parseMultipart(r *http.Request, maxMemory int64, form models.UploadForm) error {
	if maxMemory <= 0 {
		maxMemory = 32 << 20
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		return err
	}
	defer r.MultipartForm.RemoveAll()

	for name, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			form.Fields[name] = values[0]
		}
	}

	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}

		file, err := readMediaFile(name, headers[0])
		if err != nil {
			return err
		}
		form.Files[name] = file
	}

	return nil
}

func readMediaFile(field string, header *multipart.FileHeader) (models.MediaFile, error) {
	f, err := header.Open()
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("error opening uploaded file %q: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("error reading uploaded file %q: %w", field, err)
	}

	return models.MediaFile{
		FieldName:   field,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// parseJSONFields flattens a JSON object of scalars into text fields.
func parseJSONFields(body io.Reader, fields map[string]string) error {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	for name, value := range raw {
		switch v := value.(type) {
		case nil:
			fields[name] = ""
		case string:
			fields[name] = v
		case json.Number:
			fields[name] = v.String()
		case bool:
			fields[name] = strconv.FormatBool(v)
		default:
			return fmt.Errorf("%w: field %q must be a scalar", ErrInvalidForm, name)
		}
	}

	return nil
}

// productFormFromRequest builds the service form from the parsed upload.
func productFormFromRequest(r *http.Request) models.ProductForm {
	form, _ := utils.GetUploadFormFromContext(r.Context())
	return models.ProductForm{
		Fields: form.Fields,
		Image:  form.File(imageFileField),
		Video:  form.File(videoFileField),
	}
}
