// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants: the detail codes
// the rating API writes into error bodies and the user-visible notice texts
// shown by the client.
//
// Keeping them in one place keeps wording consistent between the controller
// and the terminal UI.
package app

// Detail codes sent by the API in {"detail": "..."} bodies.
const (
	// DetailCooldownRating5Min is returned with HTTP 429 when a profile
	// modifies its rating of an item less than five minutes after the
	// previous modification.
	DetailCooldownRating5Min = "COOLDOWN_RATING_5MIN"

	// DetailAdminOnly is returned with HTTP 403 when a non-admin profile
	// tries to delete an item.
	DetailAdminOnly = "ADMIN_ONLY"
)

// Notice texts.
const (
	MsgIncorrectCode      = "Incorrect code"
	MsgServerUnavailable  = "Server unavailable"
	MsgLoginError         = "Login error"
	MsgSessionExpired     = "Session expired"
	MsgItemCodeRequired   = "Item code is required"
	MsgCreateItemError    = "Could not create item"
	MsgSaved              = "Saved"
	MsgRatingCooldown     = "Wait 5 minutes before modifying this rating"
	MsgGenericError       = "Error"
	MsgItemDeleted        = "Item deleted"
	MsgAdminOnly          = "Only an administrator can delete items"
	MsgCodeCopied         = "Code copied to clipboard"
	MsgClipboardError     = "Clipboard is not available"
	MsgNoItems            = "No items"
	MsgNoData             = "No data"
	MsgRateToSeeOthers    = "Rate this item to see the others"
	MsgStoredTokenIgnored = "Cached session could not be read"
)
