// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin panel process.
//
// It wires the HTTP config adapter, the local preferences file and the
// client services into the terminal panel and runs it until exit.
package client
