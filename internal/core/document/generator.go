package document

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/formation-docs/internal/core/formation"
)

// ErrUnrenderableText はレンダラーのフォントで表現できない文字が含まれる場合に返却されます。
// 名称を置き換えて出力することはしません。
var ErrUnrenderableText = errors.New("text cannot be rendered")

// Renderer は Document を PDF のバイト列へ変換する外部コンポーネントです。
// 実装は呼び出しごとに独立したバッファを確保し、並行呼び出しに安全である必要があります。
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// Generator はテンプレートとレンダラーを結び付け、書類 PDF を生成します。
// 状態を持たないため並行して利用できます。
type Generator struct {
	renderer Renderer
}

// NewGenerator は Generator を生成します。
func NewGenerator(renderer Renderer) *Generator {
	return &Generator{renderer: renderer}
}

// Generate は管轄と事業体種別から書類を選択して PDF を生成します。
func (g *Generator) Generate(f formation.CompanyFormation) (Kind, []byte, error) {
	doc, err := Build(f)
	if err != nil {
		return "", nil, err
	}
	pdf, err := g.render(doc)
	if err != nil {
		return "", nil, err
	}
	return doc.Kind, pdf, nil
}

// DelawareArticles はデラウェア州の会社設立証書 PDF を生成します。
func (g *Generator) DelawareArticles(f formation.CompanyFormation) ([]byte, error) {
	return g.render(DelawareArticles(f))
}

// CaliforniaArticles はカリフォルニア州の株式会社定款 PDF を生成します。
func (g *Generator) CaliforniaArticles(f formation.CompanyFormation) ([]byte, error) {
	return g.render(CaliforniaArticles(f))
}

// CaliforniaLLCCertificate はカリフォルニア州の LLC 設立書 PDF を生成します。
func (g *Generator) CaliforniaLLCCertificate(f formation.CompanyFormation) ([]byte, error) {
	return g.render(CaliforniaLLCCertificate(f))
}

// NewYorkArticles はニューヨーク州の会社設立証書 PDF を生成します。
func (g *Generator) NewYorkArticles(f formation.CompanyFormation) ([]byte, error) {
	return g.render(NewYorkArticles(f))
}

// NewYorkLLCCertificate はニューヨーク州の LLC 設立書 PDF を生成します。
func (g *Generator) NewYorkLLCCertificate(f formation.CompanyFormation) ([]byte, error) {
	return g.render(NewYorkLLCCertificate(f))
}

func (g *Generator) render(doc Document) ([]byte, error) {
	out, err := g.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("document: render %s: %w", doc.Kind, err)
	}
	return out, nil
}
