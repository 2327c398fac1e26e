// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package common

import "fmt"

// Version is the release version of this library. It is fixed at build time
// and reported to the service through the User-Agent header.
const Version = "0.1.0"

const libraryName = "accessgrid-go"

// UserAgent returns the User-Agent value sent with every request.
func UserAgent() string {
	return fmt.Sprintf("%s @ v%s", libraryName, Version)
}
