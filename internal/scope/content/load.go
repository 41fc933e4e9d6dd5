package content

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/yuin/goldmark"
)

//go:embed data/*.toml
var embedded embed.FS

// Content formats accepted in document files
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type fileDoc struct {
	Sections []fileSection `toml:"sections"`
}

type fileSection struct {
	ID          string           `toml:"id"`
	Title       string           `toml:"title"`
	Tier        int              `toml:"tier"`
	Format      string           `toml:"format"`
	Content     string           `toml:"content"`
	Checklist   []ChecklistItem  `toml:"checklist"`
	Examples    []fileExample    `toml:"examples"`
	Subsections []fileSubsection `toml:"subsections"`
}

type fileSubsection struct {
	ID        string          `toml:"id"`
	Title     string          `toml:"title"`
	Format    string          `toml:"format"`
	Content   string          `toml:"content"`
	Checklist []ChecklistItem `toml:"checklist"`
	Examples  []fileExample   `toml:"examples"`
}

type fileExample struct {
	Title   string `toml:"title"`
	Format  string `toml:"format"`
	Content string `toml:"content"`
}

// Load builds the document compiled into the binary
func Load() (*Document, error) {
	return LoadFS(embedded, "data/*.toml")
}

// LoadFS builds a document from every file matching pattern, in lexical
// file order. Sections keep their declaration order within each file.
func LoadFS(fsys fs.FS, pattern string) (*Document, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no document files match %s", pattern)
	}
	sort.Strings(names)

	var sections []*Section
	for _, name := range names {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		parsed, err := parse(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sections = append(sections, parsed...)
	}

	return New(sections)
}

// Parse builds a document from a single TOML stream
func Parse(r io.Reader) (*Document, error) {
	sections, err := parse(r)
	if err != nil {
		return nil, err
	}
	return New(sections)
}

func parse(r io.Reader) ([]*Section, error) {
	var doc fileDoc
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown field %q", undecoded[0].String())
	}

	sections := make([]*Section, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		s, err := sec.build()
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.ID, err)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func (f fileSection) build() (*Section, error) {
	body, err := richText(f.Format, f.Content)
	if err != nil {
		return nil, err
	}
	examples, err := buildExamples(f.Examples)
	if err != nil {
		return nil, err
	}

	s := &Section{
		ID:        f.ID,
		Title:     f.Title,
		Tier:      Tier(f.Tier),
		Content:   body,
		Checklist: f.Checklist,
		Examples:  examples,
	}
	for _, fsub := range f.Subsections {
		sub, err := fsub.build()
		if err != nil {
			return nil, fmt.Errorf("subsection %q: %w", fsub.ID, err)
		}
		s.Subsections = append(s.Subsections, sub)
	}
	return s, nil
}

func (f fileSubsection) build() (*Subsection, error) {
	body, err := richText(f.Format, f.Content)
	if err != nil {
		return nil, err
	}
	examples, err := buildExamples(f.Examples)
	if err != nil {
		return nil, err
	}
	return &Subsection{
		ID:        f.ID,
		Title:     f.Title,
		Content:   body,
		Checklist: f.Checklist,
		Examples:  examples,
	}, nil
}

func buildExamples(in []fileExample) ([]Example, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Example, 0, len(in))
	for _, fe := range in {
		body, err := richText(fe.Format, fe.Content)
		if err != nil {
			return nil, fmt.Errorf("example %q: %w", fe.Title, err)
		}
		out = append(out, Example{Title: fe.Title, Content: body})
	}
	return out, nil
}

// richText renders authored content to the rich-text (HTML) form used at runtime
func richText(format, src string) (string, error) {
	switch format {
	case "", FormatHTML:
		return src, nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(src), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("unsupported content format %q", format)
	}
}
