package filing

import (
	"time"

	"github.com/ogurasousui/formation-docs/internal/core/document"
	"github.com/ogurasousui/formation-docs/internal/core/formation"
)

// Filing は生成済み設立書類の記録です。
type Filing struct {
	ID               string
	CompanyName      string
	StateOfFormation string
	CompanyType      formation.CompanyType
	IncorporatorName string
	Kind             document.Kind
	Checksum         string
	Content          []byte
	CreatedAt        time.Time
}
