// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTokensTable = "session_tokens"

	upsertSessionTokenSuffix = `ON CONFLICT (profile_key) DO UPDATE SET
		token = excluded.token,
		updated_at = excluded.updated_at`
)

func buildGetTokenQuery(profileKey string) (string, []any, error) {
	return sq.Select("token").
		From(sessionTokensTable).
		Where(sq.Eq{"profile_key": profileKey}).
		ToSql()
}

func buildSaveTokenQuery(profileKey, token string, updatedAt time.Time) (string, []any, error) {
	return sq.Insert(sessionTokensTable).
		Columns("profile_key", "token", "updated_at").
		Values(profileKey, token, updatedAt.UTC()).
		Suffix(upsertSessionTokenSuffix).
		ToSql()
}
