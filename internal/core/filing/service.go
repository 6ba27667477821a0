package filing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
	"go.uber.org/zap"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator は記録の ID を払い出します。
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Metrics は生成結果の計測先です。
type Metrics interface {
	DocumentGenerated(kind, state string, elapsed time.Duration)
	ValidationFailed(field string)
}

type noopMetrics struct{}

func (noopMetrics) DocumentGenerated(string, string, time.Duration) {}
func (noopMetrics) ValidationFailed(string)                          {}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は設立書類の生成と記録に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	generator *document.Generator
	clock     Clock
	ids       IDGenerator
	tx        TransactionManager
	metrics   Metrics
	log       *zap.Logger
}

// UseCase は書類ユースケースの公開インターフェースです。
type UseCase interface {
	GenerateDocument(ctx context.Context, in GenerateDocumentInput) (*Filing, error)
	GetFiling(ctx context.Context, in GetFilingInput) (*Filing, error)
	ListFilings(ctx context.Context, in ListFilingsInput) (*ListFilingsResult, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithClock は時刻の取得元を差し替えます。
func WithClock(clock Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithIDGenerator は ID の払い出し元を差し替えます。
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Service) { s.ids = ids }
}

// WithTransactionManager はトランザクション制御を設定します。
func WithTransactionManager(tx TransactionManager) Option {
	return func(s *Service) { s.tx = tx }
}

// WithMetrics は計測先を設定します。
func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger はロガーを設定します。
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService は Service を生成します。
func NewService(repo Repository, generator *document.Generator, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		generator: generator,
		clock:     realClock{},
		ids:       uuidGenerator{},
		tx:        noopTransactionManager{},
		metrics:   noopMetrics{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.ids == nil {
		s.ids = uuidGenerator{}
	}
	if s.tx == nil {
		s.tx = noopTransactionManager{}
	}
	if s.metrics == nil {
		s.metrics = noopMetrics{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GenerateDocumentInput は書類生成時の入力です。Fields は formation.Parse と同じキーを使います。
type GenerateDocumentInput struct {
	Fields map[string]string
}

// GetFilingInput は記録取得時の入力です。
type GetFilingInput struct {
	ID string
}

// ListFilingsInput は一覧取得時の入力です。
type ListFilingsInput struct {
	PageSize  int
	PageToken string
	State     string
}

// ListFilingsResult は一覧取得結果を表します。
type ListFilingsResult struct {
	Filings       []*Filing
	NextPageToken string
}

// GenerateDocument は入力を検証し、対応する書類を生成して記録します。
func (s *Service) GenerateDocument(ctx context.Context, in GenerateDocumentInput) (*Filing, error) {
	f, err := formation.Parse(in.Fields)
	if err != nil {
		s.recordValidationFailure(err)
		return nil, err
	}

	started := time.Now()
	kind, content, err := s.generator.Generate(f)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedFormation) || errors.Is(err, document.ErrUnrenderableText) {
			s.log.Debug("document not generated", zap.Error(err))
			return nil, err
		}
		s.log.Error("document generation failed",
			zap.String("state", f.StateOfFormation),
			zap.String("company_type", string(f.CompanyType)),
			zap.Error(err))
		return nil, err
	}
	elapsed := time.Since(started)

	sum := sha256.Sum256(content)
	record := &Filing{
		ID:               s.ids.NewID(),
		CompanyName:      f.CompanyName,
		StateOfFormation: f.StateOfFormation,
		CompanyType:      f.CompanyType,
		IncorporatorName: f.IncorporatorName,
		Kind:             kind,
		Checksum:         hex.EncodeToString(sum[:]),
		Content:          content,
		CreatedAt:        s.clock.Now(),
	}

	var created *Filing
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, record)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, fmt.Errorf("filing: store %s: %w", kind, err)
	}

	s.metrics.DocumentGenerated(string(kind), f.StateOfFormation, elapsed)
	s.log.Info("document generated",
		zap.String("filing_id", created.ID),
		zap.String("kind", string(kind)),
		zap.String("state", f.StateOfFormation),
		zap.Int("bytes", len(content)),
		zap.Duration("elapsed", elapsed))

	return created, nil
}

// GetFiling は ID で記録を取得します。
func (s *Service) GetFiling(ctx context.Context, in GetFilingInput) (*Filing, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Filing
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListFilings は記録の一覧を新しい順に取得します。
func (s *Service) ListFilings(ctx context.Context, in ListFilingsInput) (*ListFilingsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var statePtr *string
	if raw := strings.TrimSpace(in.State); raw != "" {
		state := strings.ToUpper(raw)
		if !formation.IsJurisdiction(state) {
			return nil, &formation.ValidationError{Fields: []formation.FieldError{
				{Field: formation.FieldStateOfFormation, Value: in.State, Err: formation.ErrInvalidJurisdiction},
			}}
		}
		statePtr = &state
	}

	var (
		filings   []*Filing
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, token, err := s.repo.List(txCtx, ListFilingsFilter{
			Limit:  limit,
			Offset: offset,
			State:  statePtr,
		})
		if err != nil {
			return err
		}
		filings = result
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListFilingsResult{
		Filings:       filings,
		NextPageToken: nextToken,
	}, nil
}

func (s *Service) recordValidationFailure(err error) {
	var vErr *formation.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	for _, f := range vErr.Fields {
		s.metrics.ValidationFailed(f.Field)
	}
	s.log.Debug("formation input rejected", zap.Error(err))
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
