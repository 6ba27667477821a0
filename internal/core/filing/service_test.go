package filing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type seqIDs struct {
	seq int
}

func (s *seqIDs) NewID() string {
	s.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.seq)
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(doc document.Document) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 " + doc.Text()), nil
}

type stubMetrics struct {
	generated []string
	failed    []string
}

func (m *stubMetrics) DocumentGenerated(kind, state string, _ time.Duration) {
	m.generated = append(m.generated, kind+"/"+state)
}

func (m *stubMetrics) ValidationFailed(field string) {
	m.failed = append(m.failed, field)
}

type fakeRepo struct {
	filings   map[string]*Filing
	order     []string
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{filings: make(map[string]*Filing)}
}

func (r *fakeRepo) Create(_ context.Context, f *Filing) (*Filing, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := cloneFiling(f)
	r.filings[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneFiling(clone), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Filing, error) {
	f, ok := r.filings[id]
	if !ok {
		return nil, ErrFilingNotFound
	}
	return cloneFiling(f), nil
}

func (r *fakeRepo) List(_ context.Context, filter ListFilingsFilter) ([]*Filing, string, error) {
	var filtered []*Filing
	for i := len(r.order) - 1; i >= 0; i-- {
		f := r.filings[r.order[i]]
		if filter.State != nil && f.StateOfFormation != *filter.State {
			continue
		}
		summary := cloneFiling(f)
		summary.Content = nil
		filtered = append(filtered, summary)
	}

	if filter.Offset > len(filtered) {
		return []*Filing{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	var nextToken string
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return filtered[filter.Offset:end], nextToken, nil
}

func cloneFiling(f *Filing) *Filing {
	if f == nil {
		return nil
	}
	copy := *f
	copy.Content = append([]byte(nil), f.Content...)
	return &copy
}

func newTestService(repo Repository, renderer document.Renderer, opts ...Option) *Service {
	base := []Option{
		WithClock(&stubClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}),
		WithIDGenerator(&seqIDs{}),
	}
	return NewService(repo, document.NewGenerator(renderer), append(base, opts...)...)
}

func fields(state, companyType string) map[string]string {
	return map[string]string{
		formation.FieldCompanyName:      "Test Company",
		formation.FieldStateOfFormation: state,
		formation.FieldCompanyType:      companyType,
		formation.FieldIncorporatorName: "Testy McTestface",
	}
}

func TestService_GenerateDocument_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	metrics := &stubMetrics{}
	svc := newTestService(repo, stubRenderer{}, WithMetrics(metrics))

	created, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("ny", "llc")})
	if err != nil {
		t.Fatalf("GenerateDocument returned error: %v", err)
	}

	if created.ID != "00000000-0000-4000-8000-000000000001" {
		t.Fatalf("unexpected id %s", created.ID)
	}

	if created.Kind != document.KindNewYorkLLCCertificate {
		t.Fatalf("expected kind %s, got %s", document.KindNewYorkLLCCertificate, created.Kind)
	}

	if created.StateOfFormation != "NY" || created.CompanyType != formation.CompanyTypeLLC {
		t.Fatalf("expected normalized state and type, got %s %s", created.StateOfFormation, created.CompanyType)
	}

	sum := sha256.Sum256(created.Content)
	if created.Checksum != hex.EncodeToString(sum[:]) {
		t.Fatalf("checksum does not match content")
	}

	if !created.CreatedAt.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected timestamp from clock, got %v", created.CreatedAt)
	}

	if len(repo.order) != 1 {
		t.Fatalf("expected 1 stored filing, got %d", len(repo.order))
	}

	if len(metrics.generated) != 1 || metrics.generated[0] != "new-york-llc-certificate/NY" {
		t.Fatalf("unexpected metrics: %v", metrics.generated)
	}
}

func TestService_GenerateDocument_ValidationError(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	metrics := &stubMetrics{}
	svc := newTestService(repo, stubRenderer{}, WithMetrics(metrics))

	_, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("XX", "corporation")})
	if !errors.Is(err, formation.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if len(repo.order) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.order))
	}

	if len(metrics.failed) != 1 || metrics.failed[0] != formation.FieldStateOfFormation {
		t.Fatalf("unexpected validation metrics: %v", metrics.failed)
	}
}

func TestService_GenerateDocument_Unsupported(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := newTestService(repo, stubRenderer{})

	_, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("TX", "corporation")})
	if !errors.Is(err, document.ErrUnsupportedFormation) {
		t.Fatalf("expected ErrUnsupportedFormation, got %v", err)
	}

	if len(repo.order) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.order))
	}
}

func TestService_GenerateDocument_RenderFailure(t *testing.T) {
	t.Parallel()

	backendErr := errors.New("backend fault")
	svc := newTestService(newFakeRepo(), stubRenderer{err: backendErr})

	if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("DE", "corporation")}); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestService_GenerateDocument_UnrenderableText(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	unrenderable := fmt.Errorf("%w: 'Ł'", document.ErrUnrenderableText)
	svc := newTestService(repo, stubRenderer{err: unrenderable})

	_, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("CA", "LLC")})
	if !errors.Is(err, document.ErrUnrenderableText) {
		t.Fatalf("expected ErrUnrenderableText, got %v", err)
	}

	if len(repo.order) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(repo.order))
	}
}

func TestNewService_NilOptionsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, document.NewGenerator(stubRenderer{}),
		WithClock(nil),
		WithIDGenerator(nil),
		WithTransactionManager(nil),
		WithMetrics(nil),
		WithLogger(nil),
	)

	created, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("DE", "corporation")})
	if err != nil {
		t.Fatalf("GenerateDocument returned error: %v", err)
	}

	if _, err := uuid.Parse(created.ID); err != nil {
		t.Fatalf("expected generated uuid, got %q", created.ID)
	}

	if created.CreatedAt.IsZero() {
		t.Fatalf("expected timestamp from default clock")
	}

	if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("XX", "corporation")}); !errors.Is(err, formation.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestService_GenerateDocument_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	svc := newTestService(repo, stubRenderer{})

	if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("CA", "corporation")}); !errors.Is(err, repo.createErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestService_GetFiling(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	created, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("DE", "corporation")})
	if err != nil {
		t.Fatalf("GenerateDocument error: %v", err)
	}

	found, err := svc.GetFiling(context.Background(), GetFilingInput{ID: " " + created.ID + " "})
	if err != nil {
		t.Fatalf("GetFiling returned error: %v", err)
	}

	if found.ID != created.ID || string(found.Content) != string(created.Content) {
		t.Fatalf("unexpected filing %+v", found)
	}
}

func TestService_GetFiling_InvalidID(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	for _, id := range []string{"", "   ", "filing-1"} {
		if _, err := svc.GetFiling(context.Background(), GetFilingInput{ID: id}); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("GetFiling(%q): expected ErrInvalidID, got %v", id, err)
		}
	}
}

func TestService_GetFiling_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	_, err := svc.GetFiling(context.Background(), GetFilingInput{ID: "00000000-0000-4000-8000-000000000099"})
	if !errors.Is(err, ErrFilingNotFound) {
		t.Fatalf("expected ErrFilingNotFound, got %v", err)
	}
}

func TestService_ListFilings_Pagination(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	for _, state := range []string{"DE", "CA", "NY"} {
		if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields(state, "corporation")}); err != nil {
			t.Fatalf("GenerateDocument error: %v", err)
		}
	}

	result, err := svc.ListFilings(context.Background(), ListFilingsInput{PageSize: 2})
	if err != nil {
		t.Fatalf("ListFilings returned error: %v", err)
	}

	if len(result.Filings) != 2 {
		t.Fatalf("expected 2 filings, got %d", len(result.Filings))
	}

	if result.Filings[0].StateOfFormation != "NY" {
		t.Fatalf("expected newest first, got %s", result.Filings[0].StateOfFormation)
	}

	if result.NextPageToken != "2" {
		t.Fatalf("expected next token 2, got %s", result.NextPageToken)
	}
}

func TestService_ListFilings_FilterByState(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	for _, companyType := range []string{"corporation", "LLC"} {
		if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("CA", companyType)}); err != nil {
			t.Fatalf("GenerateDocument error: %v", err)
		}
	}
	if _, err := svc.GenerateDocument(context.Background(), GenerateDocumentInput{Fields: fields("NY", "LLC")}); err != nil {
		t.Fatalf("GenerateDocument error: %v", err)
	}

	result, err := svc.ListFilings(context.Background(), ListFilingsInput{State: "ca"})
	if err != nil {
		t.Fatalf("ListFilings returned error: %v", err)
	}

	if len(result.Filings) != 2 {
		t.Fatalf("expected 2 filings, got %d", len(result.Filings))
	}

	for _, f := range result.Filings {
		if f.StateOfFormation != "CA" {
			t.Fatalf("unexpected state %s", f.StateOfFormation)
		}
	}
}

func TestService_ListFilings_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRepo(), stubRenderer{})

	if _, err := svc.ListFilings(context.Background(), ListFilingsInput{PageSize: maxListPageSize + 1}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}

	if _, err := svc.ListFilings(context.Background(), ListFilingsInput{PageToken: "abc"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}

	if _, err := svc.ListFilings(context.Background(), ListFilingsInput{State: "XX"}); !errors.Is(err, formation.ErrInvalidJurisdiction) {
		t.Fatalf("expected ErrInvalidJurisdiction, got %v", err)
	}
}
