package filing

import "context"

// Repository は生成記録の永続化を行うインターフェースです。
type Repository interface {
	Create(ctx context.Context, filing *Filing) (*Filing, error)
	FindByID(ctx context.Context, id string) (*Filing, error)
	List(ctx context.Context, filter ListFilingsFilter) ([]*Filing, string, error)
}

// ListFilingsFilter は一覧取得時の検索条件を表します。一覧では Content を読み込みません。
type ListFilingsFilter struct {
	Limit  int
	Offset int
	State  *string
}
