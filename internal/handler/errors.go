// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	errNoServices    = errors.New("handler: services are not initialised")
	errNoHTTPAddress = errors.New("handler: http address is empty, nothing to serve")
)
