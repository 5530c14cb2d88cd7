// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfoNotAvailable stands in for build values that were not linked.
const BuildInfoNotAvailable = "N/A"

// AppBuildInfo holds the version, date and commit linked into the server
// binary with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// AppVersion returns what the version endpoint reports. Values that were not
// linked are left empty; a missing version falls back to configured.
func (a AppBuildInfo) AppVersion(configured string) AppVersion {
	version := AppVersion{
		Version: linked(a.buildVersion),
		Date:    linked(a.buildDate),
		Commit:  linked(a.buildCommit),
	}
	if version.Version == "" {
		version.Version = configured
	}
	return version
}

func linked(value string) string {
	if value == BuildInfoNotAvailable {
		return ""
	}
	return value
}

// AppVersion is the body of the version endpoint.
type AppVersion struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
