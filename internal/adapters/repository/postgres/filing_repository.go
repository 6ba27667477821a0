package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	pgdb "github.com/ogurasousui/formation-docs/internal/platform/db/postgres"
)

const (
	filingUniqueViolationCode = "23505"
	filingInvalidTextCode     = "22P02"
)

// ErrFilingAlreadyExists は ID が重複した場合に返却されます。
var ErrFilingAlreadyExists = errors.New("filing already exists")

// FilingRepository は PostgreSQL を利用した生成記録の永続化実装です。
type FilingRepository struct {
	pool pgdb.Queryer
}

// NewFilingRepository は FilingRepository を生成します。
func NewFilingRepository(pool pgdb.Queryer) *FilingRepository {
	return &FilingRepository{pool: pool}
}

// Create は生成記録を保存します。
func (r *FilingRepository) Create(ctx context.Context, f *filing.Filing) (*filing.Filing, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO filings (id, company_name, state_of_formation, company_type, incorporator_name, document_kind, checksum, content, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, company_name, state_of_formation, company_type, incorporator_name, document_kind, checksum, content, created_at
    `, f.ID, f.CompanyName, f.StateOfFormation, string(f.CompanyType), f.IncorporatorName, string(f.Kind), f.Checksum, f.Content, f.CreatedAt)

	created, err := scanFiling(row, true)
	if err != nil {
		return nil, translateFilingPgError(err)
	}
	return created, nil
}

// FindByID は ID で生成記録を取得します。
func (r *FilingRepository) FindByID(ctx context.Context, id string) (*filing.Filing, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, company_name, state_of_formation, company_type, incorporator_name, document_kind, checksum, content, created_at
          FROM filings
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanFiling(row, true)
	if err != nil {
		return nil, translateFilingPgError(err)
	}
	return found, nil
}

// List は生成記録の一覧を新しい順に取得します。PDF 本体は含みません。
func (r *FilingRepository) List(ctx context.Context, filter filing.ListFilingsFilter) ([]*filing.Filing, string, error) {
	if filter.Limit <= 0 {
		return nil, "", filing.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", filing.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 3)
	conditions := make([]string, 0, 1)

	if filter.State != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "state_of_formation = "+placeholder)
		args = append(args, *filter.State)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT id, company_name, state_of_formation, company_type, incorporator_name, document_kind, checksum, created_at
          FROM filings` + whereClause + `
         ORDER BY created_at DESC, id DESC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateFilingPgError(err)
	}
	defer rows.Close()

	var filings []*filing.Filing
	for rows.Next() {
		found, err := scanFiling(rows, false)
		if err != nil {
			return nil, "", translateFilingPgError(err)
		}
		filings = append(filings, found)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateFilingPgError(err)
	}

	var nextToken string
	if len(filings) > filter.Limit {
		nextToken = strconv.Itoa(filter.Offset + filter.Limit)
		filings = filings[:filter.Limit]
	}

	return filings, nextToken, nil
}

func scanFiling(row pgx.Row, withContent bool) (*filing.Filing, error) {
	var (
		id, companyName, state, companyType string
		incorporator, kind, checksum        string
		content                             []byte
		createdAt                           time.Time
	)

	dest := []any{&id, &companyName, &state, &companyType, &incorporator, &kind, &checksum}
	if withContent {
		dest = append(dest, &content)
	}
	dest = append(dest, &createdAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, filing.ErrFilingNotFound
		}
		return nil, err
	}

	return &filing.Filing{
		ID:               id,
		CompanyName:      companyName,
		StateOfFormation: strings.TrimSpace(state),
		CompanyType:      formation.CompanyType(companyType),
		IncorporatorName: incorporator,
		Kind:             document.Kind(kind),
		Checksum:         strings.TrimSpace(checksum),
		Content:          content,
		CreatedAt:        createdAt,
	}, nil
}

func translateFilingPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case filingUniqueViolationCode:
			return ErrFilingAlreadyExists
		case filingInvalidTextCode:
			return filing.ErrInvalidID
		}
	}
	return err
}
