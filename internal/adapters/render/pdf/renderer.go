package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ogurasousui/formation-docs/internal/core/document"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	pageMargin     = 72.0
	titleFontSize  = 14.0
	titleLeading   = 18.0
	subtitleSize   = 12.0
	subtitleLead   = 16.0
	bodyFontSize   = 11.0
	bodyLeading    = 14.0
	blockSpacing   = 10.0
	headerSpacing  = 18.0
	fontFamily     = "Times"
	defaultCreator = "formation-docs"
)

// Options は Renderer の設定です。
type Options struct {
	Creator  string
	Compress bool
	Now      func() time.Time
}

// Renderer は fpdf を用いて Document を PDF に変換します。
// 呼び出しごとに新しい fpdf 文書を生成するため並行して利用できます。
type Renderer struct {
	creator  string
	compress bool
	now      func() time.Time
}

var _ document.Renderer = (*Renderer)(nil)

// NewRenderer は Renderer を生成します。
func NewRenderer(opts Options) *Renderer {
	creator := opts.Creator
	if creator == "" {
		creator = defaultCreator
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Renderer{creator: creator, compress: opts.Compress, now: now}
}

// Render は Document を Letter サイズの PDF に描画します。
func (r *Renderer) Render(doc document.Document) ([]byte, error) {
	enc := newTranscoder()

	p := fpdf.New("P", "pt", "Letter", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.SetCellMargin(0)
	p.SetCompression(r.compress)
	p.SetCreationDate(r.now())
	p.SetTitle(doc.Metadata.Title, true)
	p.SetSubject(doc.Metadata.Subject, true)
	p.SetAuthor(doc.Metadata.Author, true)
	p.SetCreator(r.creator, true)
	p.AddPage()

	pageWidth, _ := p.GetPageSize()
	w := &writer{pdf: p, enc: enc, width: pageWidth - 2*pageMargin}

	p.SetFont(fontFamily, "B", titleFontSize)
	for _, line := range doc.Title {
		w.lines(line, titleLeading, "C")
	}

	p.SetFont(fontFamily, "", subtitleSize)
	for _, line := range doc.Subtitle {
		w.lines(line, subtitleLead, "C")
	}
	p.Ln(headerSpacing)

	p.SetFont(fontFamily, "", bodyFontSize)
	for _, block := range doc.Blocks {
		for _, line := range block.Lines {
			w.lines(line, bodyLeading, "L")
		}
		p.Ln(blockSpacing)
	}

	if w.err != nil {
		return nil, w.err
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("pdf: layout %s: %w", doc.Kind, err)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output %s: %w", doc.Kind, err)
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf   *fpdf.Fpdf
	enc   *encoding.Encoder
	width float64
	err   error
}

// lines は text を折り返して 1 行ずつセルに出力します。
// 各行の末尾に空白を残し、テキスト抽出時に行をまたぐ語が連結されないようにします。
func (w *writer) lines(text string, leading float64, align string) {
	if w.err != nil {
		return
	}
	encoded, err := w.transcode(text)
	if err != nil {
		w.err = err
		return
	}
	for _, line := range wrap(encoded, w.width, w.pdf.GetStringWidth) {
		w.pdf.CellFormat(w.width, leading, line+" ", "", 1, align, false, 0, "")
	}
}

func (w *writer) transcode(text string) (string, error) {
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return "", fmt.Errorf("%w: %q in %q is outside Windows-1252", document.ErrUnrenderableText, r, text)
		}
	}
	out, err := w.enc.String(text)
	if err != nil {
		return "", fmt.Errorf("pdf: transcode %q: %w", text, err)
	}
	return out, nil
}

// newTranscoder はコアフォント用に UTF-8 を Windows-1252 へ変換します。
func newTranscoder() *encoding.Encoder {
	return charmap.Windows1252.NewEncoder()
}

const spaceChars = " \t\r\n"

// wrap は語単位で text を width に収まる行へ分割します。
// 行内の連続した空白はそのまま残し、折り返し位置の空白だけを落とします。
// 1 語で幅を超える場合はその語だけの行にします。
func wrap(text string, width float64, measure func(string) float64) []string {
	words, gaps := splitWords(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current = words[0]
	)
	for i, word := range words[1:] {
		candidate := current + gaps[i] + word
		if measure(candidate) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// splitWords は text を語と語間の空白に分けます。gaps[i] は words[i] と words[i+1] の間です。
// タブや改行は同じ幅の空白に置き換えます。
func splitWords(text string) (words, gaps []string) {
	text = strings.Trim(text, spaceChars)
	for text != "" {
		end := strings.IndexAny(text, spaceChars)
		if end < 0 {
			words = append(words, text)
			break
		}
		words = append(words, text[:end])
		rest := strings.TrimLeft(text[end:], spaceChars)
		gaps = append(gaps, strings.Repeat(" ", len(text)-end-len(rest)))
		text = rest
	}
	return words, gaps
}
