package document

import "strings"

// Style はブロックの体裁です。
type Style int

const (
	// StyleClause は番号付き条項など折り返しのある本文です。
	StyleClause Style = iota
	// StyleSignature は署名欄です。各行を改行して出力します。
	StyleSignature
)

// Block は本文の一単位です。
type Block struct {
	Style Style
	Lines []string
}

// Metadata は PDF の文書情報です。
type Metadata struct {
	Title   string
	Subject string
	Author  string
}

// Document はレンダラーに依存しない書類の表現です。
type Document struct {
	Kind     Kind
	Title    []string
	Subtitle []string
	Blocks   []Block
	Metadata Metadata
}

// Text は書類のテキスト内容を単一の空白で連結して返します。
// 同じ入力からは常に同じ値になります。
func (d Document) Text() string {
	lines := make([]string, 0, len(d.Title)+len(d.Subtitle)+len(d.Blocks)*2)
	lines = append(lines, d.Title...)
	lines = append(lines, d.Subtitle...)
	for _, b := range d.Blocks {
		lines = append(lines, b.Lines...)
	}
	return strings.Join(lines, " ")
}

func clause(text string) Block {
	return Block{Style: StyleClause, Lines: []string{text}}
}

func signature(lines ...string) Block {
	return Block{Style: StyleSignature, Lines: lines}
}

func signed(name string) string {
	return "/s/ " + name
}
