// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces random identifiers for trace ids and object names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new random (version 4) UUID string.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// ObjectName builds the storage object name for an uploaded file:
// prefix + "-" + the base name of fileName. Path separators in the client
// supplied name are dropped so the object cannot escape its bucket root.
func ObjectName(prefix, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		base = "file"
	}
	return prefix + "-" + base
}
