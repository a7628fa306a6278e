package database

import (
	"database/sql"
	"time"
)

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// StringToNullString stores empty strings as NULL
func StringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullMillisToTime converts an epoch-millisecond column to *time.Time.
// Returns nil if the value is not valid.
func NullMillisToTime(nv sql.NullInt64) *time.Time {
	if !nv.Valid {
		return nil
	}
	t := time.UnixMilli(nv.Int64)
	return &t
}

// TimeToNullMillis stores t as epoch milliseconds, nil as NULL
func TimeToNullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
