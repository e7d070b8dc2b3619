// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inbound credential requests before
// they reach the hasher or the user directory.
package validators

import "context"

// Validator checks a request value. When fields are given only those are
// checked; otherwise every field of the request is.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}
