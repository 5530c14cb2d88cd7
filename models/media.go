// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MediaFile is an uploaded file held in memory until it is pushed to
// object storage.
type MediaFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// StoredObject is the result of a successful upload: the object name inside
// its bucket and the public URL derived from it.
type StoredObject struct {
	Bucket string
	Key    string
	URL    string
}

// UploadForm is a parsed request body: text fields plus any files keyed by
// form field name.
type UploadForm struct {
	Fields map[string]string
	Files  map[string]MediaFile
}

// File returns a pointer to the file submitted under field, or nil.
func (f UploadForm) File(field string) *MediaFile {
	file, ok := f.Files[field]
	if !ok {
		return nil
	}
	return &file
}
