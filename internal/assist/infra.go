package assist

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Vovarama1992/assistbot/internal/database"
)

type faqRepo struct {
	db *database.DB
}

func NewFAQRepo(db *database.DB) FAQRepo {
	return &faqRepo{db: db}
}

func normalize(question string) string {
	return strings.ToLower(question)
}

func (r *faqRepo) UpsertFAQ(ctx context.Context, question, answer string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO faqs (question, answer)
		VALUES (?, ?)
		ON CONFLICT (question) DO UPDATE SET answer = excluded.answer
	`), normalize(question), answer)
	return err
}

func (r *faqRepo) RecordUnanswered(ctx context.Context, question string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO faqs (question, answer)
		VALUES (?, NULL)
		ON CONFLICT (question) DO NOTHING
	`), normalize(question))
	return err
}

// LookupAnswer reports found only for a stored, non-empty answer.
func (r *faqRepo) LookupAnswer(ctx context.Context, question string) (string, bool, error) {
	var answer sql.NullString
	err := r.db.QueryRowContext(ctx, r.db.Rebind(`
		SELECT answer FROM faqs WHERE question = ?
	`), normalize(question)).Scan(&answer)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	if !answer.Valid || answer.String == "" {
		return "", false, nil
	}
	return answer.String, true, nil
}

func (r *faqRepo) ListUnanswered(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT question FROM faqs
		WHERE answer IS NULL
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, rows.Err()
}
