// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longpd/folio/internal/platform/database/schema"
	"github.com/longpd/folio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// tableFor resolves the section to its schema definition. Sections are
// validated before storage code runs, so an unknown value is a programming
// error.
func tableFor(section Section) schema.ProfileEntryTable {
	switch section {
	case SectionExperience:
		return schema.ProfileExperience
	case SectionSkill:
		return schema.ProfileSkill
	case SectionEducation:
		return schema.ProfileEducation
	case SectionCertification:
		return schema.ProfileCertification
	case SectionLeadership:
		return schema.ProfileLeadership
	default:
		panic(fmt.Sprintf("profile: unknown section %q", section))
	}
}

func (repository *PostgresRepository) ListEntries(context context.Context, section Section) ([]Row, error) {
	t := tableFor(section)
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(t.Columns(), ", "), t.Table, t.SortOrder)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profile_entries")
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.Title, &row.Subtitle, &row.Period, &row.Detail, &row.SortOrder); err != nil {
			return nil, dberr.Wrap(err, "scan_profile_entry")
		}
		result = append(result, row)
	}

	return result, dberr.Wrap(rows.Err(), "list_profile_entries")
}

func (repository *PostgresRepository) CreateEntry(context context.Context, section Section, row *Row) error {
	t := tableFor(section)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.Table, strings.Join(t.Columns(), ", "))

	_, err := repository.db.Exec(context, query,
		row.ID, row.Title, row.Subtitle, row.Period, row.Detail, row.SortOrder,
	)
	return dberr.Wrap(err, "create_profile_entry")
}

func (repository *PostgresRepository) UpdateEntry(context context.Context, section Section, row *Row) error {
	t := tableFor(section)
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		t.Table, t.Title, t.Subtitle, t.Period, t.Detail, t.SortOrder,
		t.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		row.ID, row.Title, row.Subtitle, row.Period, row.Detail, row.SortOrder,
	)
	if err != nil {
		return dberr.Wrap(err, "update_profile_entry")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteEntry(context context.Context, section Section, id string) error {
	t := tableFor(section)
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_profile_entry")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
