// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	ErrNoServices = errors.New("client services are required")

	errNothingSelected = errors.New("no config selected")
	errPortNotNumber   = errors.New("port must be a number")
)
