// Package tsfile reads and writes Qt Linguist translation source (.ts) files.
package tsfile

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogExporter = Exporter{}

// SupportedVersions lists the TS schema versions accepted by Decode.
var SupportedVersions = []string{"1.1", "2.0", "2.1"}

const header = `<?xml version="1.0" encoding="utf-8"?>` + "\n" + `<!DOCTYPE TS>` + "\n"

type document struct {
	XMLName        xml.Name      `xml:"TS"`
	Version        string        `xml:"version,attr"`
	Language       string        `xml:"language,attr"`
	SourceLanguage string        `xml:"sourcelanguage,attr,omitempty"`
	Contexts       []contextElem `xml:"context"`
}

type contextElem struct {
	Name     *string       `xml:"name"`
	Messages []messageElem `xml:"message"`
}

type messageElem struct {
	Source      *string         `xml:"source"`
	Comment     string          `xml:"comment,omitempty"`
	Translation translationElem `xml:"translation"`
}

type translationElem struct {
	Type  string   `xml:"type,attr,omitempty"`
	Text  string   `xml:",chardata"`
	Forms []string `xml:"numerusform,omitempty"`
}

// Decode parses a TS document. source names the document in errors.
// Numerus messages keep their first form only.
func Decode(r io.Reader, source string) (*entities.Catalog, error) {
	var doc document
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ParseError{Source: source, Err: err}
	}
	if err := expectEOF(dec); err != nil {
		return nil, &domain.ParseError{Source: source, Err: err}
	}
	if doc.Version == "" {
		return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("%w: TS@version", domain.ErrMissingAttribute)}
	}
	if !supported(doc.Version) {
		return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("%w %q", domain.ErrUnsupportedVersion, doc.Version)}
	}
	if doc.Language == "" {
		return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("%w: TS@language", domain.ErrMissingAttribute)}
	}

	b := entities.NewBuilder(doc.Version, doc.Language).SetSourceLanguage(doc.SourceLanguage)
	for i, ctx := range doc.Contexts {
		if ctx.Name == nil {
			return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("%w: name of context #%d", domain.ErrMissingAttribute, i+1)}
		}
		b.AddContext(*ctx.Name)
		for j, msg := range ctx.Messages {
			if msg.Source == nil {
				return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("%w: source of message #%d in context %q", domain.ErrMissingAttribute, j+1, *ctx.Name)}
			}
			status := entities.Status(msg.Translation.Type)
			if !status.Valid() {
				return nil, &domain.ParseError{Source: source, Err: fmt.Errorf("unknown translation type %q in context %q", msg.Translation.Type, *ctx.Name)}
			}
			text := msg.Translation.Text
			if len(msg.Translation.Forms) > 0 {
				text = msg.Translation.Forms[0]
			}
			b.Add(*ctx.Name, entities.Entry{
				Source:      *msg.Source,
				Comment:     msg.Comment,
				Translation: text,
				Status:      status,
			})
		}
	}
	return b.Build(), nil
}

// expectEOF consumes what follows the root element. Only whitespace,
// comments and processing instructions may appear there.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("text after root element: %q", bytes.TrimSpace(t))
			}
		case xml.StartElement:
			return fmt.Errorf("second root element <%s>", t.Name.Local)
		default:
			return fmt.Errorf("unexpected %T after root element", t)
		}
	}
}

// Encode writes c as a TS document.
func Encode(w io.Writer, c *entities.Catalog) error {
	doc := document{
		Version:        c.Version(),
		Language:       c.Language(),
		SourceLanguage: c.SourceLanguage(),
	}
	for _, ctx := range c.Contexts() {
		name := ctx.Name()
		out := contextElem{Name: &name}
		for _, e := range ctx.Entries() {
			src := e.Source
			out.Messages = append(out.Messages, messageElem{
				Source:      &src,
				Comment:     e.Comment,
				Translation: translationElem{Type: string(e.Status), Text: e.Translation},
			})
		}
		doc.Contexts = append(doc.Contexts, out)
	}

	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, header); err != nil {
		return fmt.Errorf("write ts header: %w", err)
	}
	enc := xml.NewEncoder(bw)
	enc.Indent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode ts: %w", err)
	}
	if _, err := io.WriteString(bw, "\n"); err != nil {
		return fmt.Errorf("write ts: %w", err)
	}
	return bw.Flush()
}

// ReadFile decodes the TS file at path.
func ReadFile(path string) (*entities.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f, filepath.Base(path))
}

// Exporter writes catalogs in the TS format.
type Exporter struct{}

func (Exporter) Format() string { return "ts" }

func (Exporter) Export(w io.Writer, c *entities.Catalog) error { return Encode(w, c) }

func supported(version string) bool {
	for _, v := range SupportedVersions {
		if v == version {
			return true
		}
	}
	return false
}
