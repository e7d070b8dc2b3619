// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the linker-injected identity of a binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills every value left empty by the linker with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the info as "version (date, commit)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Version, a.Date, a.Commit)
}

func orUnknown(value string) string {
	if value == "" {
		return unknownBuildValue
	}
	return value
}
