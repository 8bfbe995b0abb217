// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package inbox implements the contact-form message box.

Messages are created by the public contact form and managed from the admin
panel: listed newest-first, marked read one by one or in bulk, and deleted.
There is no static snapshot; without a configured store the inbox is simply
empty and submissions are refused.
*/
package inbox

import "time"

// Message is a single contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Row is the flat record shape stored by the relational store.
type Row struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      bool
	CreatedAt time.Time
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

func FromRow(row Row) Message {
	return Message{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Subject:   row.Subject,
		Message:   row.Message,
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
	}
}

func ToRow(message Message) Row {
	return Row{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		Read:      message.Read,
		CreatedAt: message.CreatedAt,
	}
}

// BulkReadResult reports the outcome of a mark-all-read sweep. The sweep
// runs per message, so some marks can succeed while others fail.
type BulkReadResult struct {
	Marked    int      `json:"marked"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}
