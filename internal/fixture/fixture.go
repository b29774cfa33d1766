package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/attrtext/internal/attrstr"
	"github.com/dshills/attrtext/internal/logging"
	"github.com/dshills/attrtext/internal/owner"
)

// ErrInvalidSpan indicates a span that cannot be applied to the text.
var ErrInvalidSpan = errors.New("invalid span")

// Document is the decoded form of a fixture file.
type Document struct {
	Text  string `toml:"text"`
	Spans []Span `toml:"span"`
}

// Span assigns or removes attributes over [Start, End).
type Span struct {
	Start      int            `toml:"start"`
	End        int            `toml:"end"`
	Attributes map[string]any `toml:"attributes"`
	Remove     []string       `toml:"remove"`
}

// OSFS implements fs.FS on the real file system. Unlike os.DirFS it accepts
// absolute and relative paths as given.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Loader reads fixtures.
type Loader struct {
	fsys fs.FS
	log  *logging.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the file system fixtures are read from.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger.
func WithLogger(log *logging.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fsys: OSFS{},
		log:  logging.Null,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.WithComponent("fixture")
	return l
}

// Load reads and decodes the fixture at path.
func (l *Loader) Load(path string) (*attrstr.String, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture %s: %w", path, err)
	}
	file := owner.New[fs.File, owner.Close[fs.File]](f)
	defer file.Reset()

	data, err := io.ReadAll(file.Value())
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return l.Parse(path, data)
}

// LoadFromReader reads and decodes a fixture from r.
func (l *Loader) LoadFromReader(r io.Reader) (*attrstr.String, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return l.Parse("<reader>", data)
}

// Parse decodes fixture data. source names the data in errors.
func (l *Loader) Parse(source string, data []byte) (*attrstr.String, error) {
	var doc Document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, newParseError(source, err)
	}

	s, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	l.log.WithField("source", source).Debug("loaded %d runes, %d spans, %d runs",
		s.Len(), len(doc.Spans), s.RunCount())
	return s, nil
}

// Build applies doc's spans to its text.
func Build(doc Document) (*attrstr.String, error) {
	b := attrstr.NewBuilder(doc.Text)
	for i, sp := range doc.Spans {
		r := attrstr.NewRange(sp.Start, sp.End)
		attrs := make(attrstr.Attributes, len(sp.Attributes))
		for k, v := range sp.Attributes {
			attrs[attrstr.Key(k)] = v
		}
		b.SetAttributes(attrs, r)
		for _, k := range sp.Remove {
			b.RemoveAttribute(attrstr.Key(k), r)
		}
		if err := b.Err(); err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidSpan, i, err)
		}
	}
	return b.Build()
}

// ParseError represents an error while decoding a fixture file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
