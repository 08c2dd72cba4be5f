// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the metadata baked into the binary with -ldflags -X.
// Fields stay empty when the build did not set them.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// String renders the three values on one line, using N/A for unset ones.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s",
		orNotAvailable(a.Version), orNotAvailable(a.Date), orNotAvailable(a.Commit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
