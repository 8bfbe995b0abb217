// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package settings implements the key/value site configuration store.

Settings hold small singleton values the site reads at render time (resume
URL, social links, contact email, hero copy). Writes use upsert semantics:
an unknown key is created, an existing key is overwritten.
*/
package settings

import "time"

// Setting is a single key/value pair.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Row is the flat record shape stored by the relational store and the
// static snapshot.
type Row struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const (
	FieldKey   = "key"
	FieldValue = "value"
)

func FromRow(row Row) Setting {
	return Setting{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt}
}

func ToRow(setting Setting) Row {
	return Row{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt}
}
