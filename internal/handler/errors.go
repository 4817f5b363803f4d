// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// a service layer. It is a startup misconfiguration.
var errNoServicesProvided = errors.New("no services provided to handlers")
