package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/filing"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

var filingColumns = []string{"id", "company_name", "state_of_formation", "company_type", "incorporator_name", "document_kind", "checksum", "content", "created_at"}

var filingSummaryColumns = []string{"id", "company_name", "state_of_formation", "company_type", "incorporator_name", "document_kind", "checksum", "created_at"}

type stubFilingRow struct {
	scanFn func(dest ...any) error
}

func (s stubFilingRow) Scan(dest ...any) error {
	return s.scanFn(dest...)
}

func TestScanFiling_NoRows(t *testing.T) {
	t.Parallel()

	row := stubFilingRow{scanFn: func(dest ...any) error {
		return pgx.ErrNoRows
	}}

	if _, err := scanFiling(row, true); !errors.Is(err, filing.ErrFilingNotFound) {
		t.Fatalf("expected ErrFilingNotFound, got %v", err)
	}
}

func TestScanFiling_TrimsFixedWidthColumns(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()
	row := stubFilingRow{scanFn: func(dest ...any) error {
		if len(dest) != 8 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "00000000-0000-4000-8000-000000000001"
		*(dest[1].(*string)) = "Test Company"
		*(dest[2].(*string)) = "NY"
		*(dest[3].(*string)) = "LLC"
		*(dest[4].(*string)) = "Testy McTestface"
		*(dest[5].(*string)) = string(document.KindNewYorkLLCCertificate)
		*(dest[6].(*string)) = "abc "
		*(dest[7].(*time.Time)) = createdAt
		return nil
	}}

	f, err := scanFiling(row, false)
	if err != nil {
		t.Fatalf("scanFiling returned error: %v", err)
	}

	if f.CompanyType != formation.CompanyTypeLLC || f.Kind != document.KindNewYorkLLCCertificate {
		t.Fatalf("unexpected filing %+v", f)
	}
	if f.Checksum != "abc" {
		t.Fatalf("expected trimmed checksum, got %q", f.Checksum)
	}
	if f.Content != nil {
		t.Fatalf("summary scan must not load content")
	}
}

func TestTranslateFilingPgError(t *testing.T) {
	t.Parallel()

	if !errors.Is(translateFilingPgError(&pgconn.PgError{Code: filingUniqueViolationCode}), ErrFilingAlreadyExists) {
		t.Fatalf("expected already exists mapping")
	}

	if !errors.Is(translateFilingPgError(&pgconn.PgError{Code: filingInvalidTextCode}), filing.ErrInvalidID) {
		t.Fatalf("expected invalid id mapping")
	}

	otherErr := errors.New("random")
	if translateFilingPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestFilingRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewFilingRepository(mock)

	now := time.Now().UTC()
	in := &filing.Filing{
		ID:               "00000000-0000-4000-8000-000000000001",
		CompanyName:      "Basic Test Company",
		StateOfFormation: "DE",
		CompanyType:      formation.CompanyTypeCorporation,
		IncorporatorName: "Testy McTestface",
		Kind:             document.KindDelawareArticles,
		Checksum:         "deadbeef",
		Content:          []byte("%PDF-1.3"),
		CreatedAt:        now,
	}

	rows := pgxmock.NewRows(filingColumns).
		AddRow(in.ID, in.CompanyName, "DE", "corporation", in.IncorporatorName, "delaware-articles", "deadbeef", []byte("%PDF-1.3"), now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO filings")).
		WithArgs(in.ID, in.CompanyName, "DE", "corporation", in.IncorporatorName, "delaware-articles", "deadbeef", in.Content, now).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != in.ID || string(created.Content) != "%PDF-1.3" || created.Kind != document.KindDelawareArticles {
		t.Fatalf("unexpected created filing %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilingRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewFilingRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM filings")).
		WithArgs("00000000-0000-4000-8000-000000000009").
		WillReturnRows(pgxmock.NewRows(filingColumns))

	if _, err := repo.FindByID(context.Background(), "00000000-0000-4000-8000-000000000009"); !errors.Is(err, filing.ErrFilingNotFound) {
		t.Fatalf("expected ErrFilingNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilingRepository_List_WithNextToken(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewFilingRepository(mock)

	now := time.Now().UTC()
	rows := pgxmock.NewRows(filingSummaryColumns).
		AddRow("id-3", "Three", "NY", "LLC", "Testy", "new-york-llc-certificate", "c3", now).
		AddRow("id-2", "Two", "CA", "corporation", "Testy", "california-articles", "c2", now).
		AddRow("id-1", "One", "DE", "corporation", "Testy", "delaware-articles", "c1", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM filings\n         ORDER BY created_at DESC, id DESC")).
		WithArgs(3, 0).
		WillReturnRows(rows)

	filings, nextToken, err := repo.List(context.Background(), filing.ListFilingsFilter{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(filings) != 2 {
		t.Fatalf("expected 2 filings, got %d", len(filings))
	}

	if nextToken != "2" {
		t.Fatalf("expected next token '2', got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilingRepository_List_WithStateFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewFilingRepository(mock)
	state := "CA"

	now := time.Now().UTC()
	rows := pgxmock.NewRows(filingSummaryColumns).
		AddRow("id-2", "Two", "CA", "LLC", "Testy", "california-llc-certificate", "c2", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM filings WHERE state_of_formation = $1")).
		WithArgs(state, 3, 0).
		WillReturnRows(rows)

	filings, nextToken, err := repo.List(context.Background(), filing.ListFilingsFilter{Limit: 2, Offset: 0, State: &state})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(filings) != 1 || filings[0].StateOfFormation != "CA" {
		t.Fatalf("unexpected filings %+v", filings)
	}

	if nextToken != "" {
		t.Fatalf("expected empty next token, got %s", nextToken)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFilingRepository_List_InvalidArguments(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewFilingRepository(mock)

	if _, _, err := repo.List(context.Background(), filing.ListFilingsFilter{Limit: 0}); !errors.Is(err, filing.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}

	if _, _, err := repo.List(context.Background(), filing.ListFilingsFilter{Limit: 1, Offset: -1}); !errors.Is(err, filing.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}
