// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the catalog server.
//
// It wires chi routes to the service layer and carries the request-level
// middleware: trace ids, access logging, compression, bearer token
// authentication, role checks and form/multipart parsing. Every response is
// written as a [models.Response] envelope.
package http
