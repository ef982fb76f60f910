package database

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgtype"

	"tscat/internal/domain/entities"
)

// catalogRow is one row of the catalogs table.
type catalogRow struct {
	ID             int64
	Language       string
	Version        string
	SourceLanguage string
}

// messageRow is one row of the contexts/messages join. Message columns are
// null for contexts without entries.
type messageRow struct {
	Context     string
	Source      *string
	Comment     string
	Translation string
	Status      string
}

func pgtypeTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func pgtypeTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func nullStringToPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func rowsToCatalog(c catalogRow, rows []messageRow) *entities.Catalog {
	b := entities.NewBuilder(c.Version, c.Language).SetSourceLanguage(c.SourceLanguage)
	for _, r := range rows {
		if r.Source == nil {
			b.AddContext(r.Context)
			continue
		}
		b.Add(r.Context, entities.Entry{
			Source:      *r.Source,
			Comment:     r.Comment,
			Translation: r.Translation,
			Status:      entities.Status(r.Status),
		})
	}
	return b.Build()
}

const selectMessages = `
SELECT c.name, m.source, m.comment, m.translation, m.status
FROM catalog_contexts c
LEFT JOIN catalog_messages m ON m.context_id = c.id
WHERE c.catalog_id = %s
ORDER BY c.position, m.position`
