package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Parser reads markdown content files. The inspiration catalog keeps
// its structured data (idea lists, quotes) in YAML frontmatter, so
// frontmatter extraction is the main entry point; the body can still
// be rendered for free-form introduction text.
type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&frontmatter.Extender{},
		),
	)

	return &Parser{md: md}
}

// ExtractFrontmatter decodes the frontmatter block into a generic map.
// Files without frontmatter, or with frontmatter that fails to decode,
// yield an empty map rather than an error.
func (p *Parser) ExtractFrontmatter(source []byte) map[string]any {
	ctx := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	data := frontmatter.Get(ctx)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil {
		return make(map[string]any)
	}
	return meta
}

// Render converts the markdown body to HTML, skipping the frontmatter
// block.
func (p *Parser) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
