// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package profile implements the résumé-style profile sections.

Five section kinds (experience, skill, education, certification,
leadership) share one entry shape: a title, a subtitle, a free-form period
string, a detail body and an integer sort order. Lower sort order displays
first; no reindexing happens on delete.
*/
package profile

// Section identifies one of the five profile section kinds.
type Section string

const (
	SectionExperience    Section = "experience"
	SectionSkill         Section = "skill"
	SectionEducation     Section = "education"
	SectionCertification Section = "certification"
	SectionLeadership    Section = "leadership"
)

// Sections lists every section kind in display order.
var Sections = []Section{
	SectionExperience,
	SectionSkill,
	SectionEducation,
	SectionCertification,
	SectionLeadership,
}

// SectionNames mirrors Sections as plain strings, used for validation.
var SectionNames = []string{
	string(SectionExperience), string(SectionSkill), string(SectionEducation),
	string(SectionCertification), string(SectionLeadership),
}

// Entry is the view-model shape for one row of a profile section.
//
// Static snapshot entries carry no identity and are read-only by
// construction.
type Entry struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Period    string `json:"period"`
	Detail    string `json:"detail"`
	SortOrder int    `json:"sort_order"`
}

// Row is the flat record shape stored by the relational store and the
// static snapshot. It matches Entry field for field; the pair is kept so
// storage code and display code evolve independently.
type Row struct {
	ID        string
	Title     string
	Subtitle  string
	Period    string
	Detail    string
	SortOrder int
}

const (
	FieldSection   = "section"
	FieldTitle     = "title"
	FieldSortOrder = "sort_order"
)

func FromRow(row Row) Entry {
	return Entry{
		ID:        row.ID,
		Title:     row.Title,
		Subtitle:  row.Subtitle,
		Period:    row.Period,
		Detail:    row.Detail,
		SortOrder: row.SortOrder,
	}
}

func ToRow(entry Entry) Row {
	return Row{
		ID:        entry.ID,
		Title:     entry.Title,
		Subtitle:  entry.Subtitle,
		Period:    entry.Period,
		Detail:    entry.Detail,
		SortOrder: entry.SortOrder,
	}
}

// Profile is the aggregate served to the public site: every section in one
// payload, each sorted for display.
type Profile struct {
	Experience     []Entry `json:"experience"`
	Skills         []Entry `json:"skills"`
	Education      []Entry `json:"education"`
	Certifications []Entry `json:"certifications"`
	Leadership     []Entry `json:"leadership"`
}
