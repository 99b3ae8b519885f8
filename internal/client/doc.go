// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It probes the rating API, runs the terminal UI and releases the local
// token store when the UI exits.
package client
