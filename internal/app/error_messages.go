// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages written into the "msg"
// field of REST API responses. The admin panel shows them as is, so the
// wording is kept in one place.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"

	MsgUnauthorized            = "unauthorized"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgMethodNotAllowed = "method not allowed"
	MsgNotFound         = "not found"

	// MsgConfigCreated, MsgConfigUpdated and MsgConfigDeleted are the
	// success messages of the mutating config endpoints.
	MsgConfigCreated = "config created"
	MsgConfigUpdated = "config updated"
	MsgConfigDeleted = "config deleted"

	MsgConfigNotFound    = "config not found"
	MsgConfigNameMissing = "config name is required"
	MsgNoFieldsToUpdate  = "no fields to update"

	MsgUISettingsSaved = "ui settings saved"

	MsgStorageUnavailable = "storage unavailable"
)
