package document

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/formation-docs/internal/core/formation"
)

// ErrUnsupportedFormation は管轄と事業体種別の組み合わせに対応する書類がない場合に返却されます。
var ErrUnsupportedFormation = errors.New("unsupported formation")

// Kind は書類テンプレートの識別子です。
type Kind string

const (
	KindDelawareArticles         Kind = "delaware-articles"
	KindCaliforniaArticles       Kind = "california-articles"
	KindCaliforniaLLCCertificate Kind = "california-llc-certificate"
	KindNewYorkArticles          Kind = "new-york-articles"
	KindNewYorkLLCCertificate    Kind = "new-york-llc-certificate"
)

// Template は検証済み入力から書類を組み立てる純粋関数です。
type Template func(formation.CompanyFormation) Document

// Key は書類選択に用いる管轄と事業体種別の組です。
type Key struct {
	State string
	Type  formation.CompanyType
}

var kinds = map[Key]Kind{
	{State: "DE", Type: formation.CompanyTypeCorporation}: KindDelawareArticles,
	{State: "CA", Type: formation.CompanyTypeCorporation}: KindCaliforniaArticles,
	{State: "CA", Type: formation.CompanyTypeLLC}:         KindCaliforniaLLCCertificate,
	{State: "NY", Type: formation.CompanyTypeCorporation}: KindNewYorkArticles,
	{State: "NY", Type: formation.CompanyTypeLLC}:         KindNewYorkLLCCertificate,
}

var templates = map[Kind]Template{
	KindDelawareArticles:         DelawareArticles,
	KindCaliforniaArticles:       CaliforniaArticles,
	KindCaliforniaLLCCertificate: CaliforniaLLCCertificate,
	KindNewYorkArticles:          NewYorkArticles,
	KindNewYorkLLCCertificate:    NewYorkLLCCertificate,
}

// Lookup は入力に対応する書類の種類を返します。
func Lookup(f formation.CompanyFormation) (Kind, error) {
	kind, ok := kinds[Key{State: f.StateOfFormation, Type: f.CompanyType}]
	if !ok {
		return "", fmt.Errorf("%w: no document for %s %s", ErrUnsupportedFormation, f.StateOfFormation, f.CompanyType)
	}
	return kind, nil
}

// TemplateFor は種類に対応するテンプレートを返します。
func TemplateFor(kind Kind) (Template, error) {
	tmpl, ok := templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown document kind %q", ErrUnsupportedFormation, kind)
	}
	return tmpl, nil
}

// Build は選択されたテンプレートで書類を組み立てます。
func Build(f formation.CompanyFormation) (Document, error) {
	kind, err := Lookup(f)
	if err != nil {
		return Document{}, err
	}
	tmpl, err := TemplateFor(kind)
	if err != nil {
		return Document{}, err
	}
	return tmpl(f), nil
}
