package i18n

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogExporter = (*MessageFileExporter)(nil)

// MessageFileExporter writes a catalog as a go-i18n message file. Each
// translated entry becomes a message whose ID is MessageID, whose description
// is the source text and whose "other" form is the translation.
type MessageFileExporter struct {
	format  string
	marshal func(any) ([]byte, error)
}

func NewTOMLExporter() *MessageFileExporter {
	return &MessageFileExporter{format: "toml", marshal: toml.Marshal}
}

func NewYAMLExporter() *MessageFileExporter {
	return &MessageFileExporter{format: "yaml", marshal: yaml.Marshal}
}

func NewJSONExporter() *MessageFileExporter {
	return &MessageFileExporter{format: "json", marshal: func(v any) ([]byte, error) {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}}
}

func (e *MessageFileExporter) Format() string { return e.format }

// Export fails with domain.ErrDuplicateMessageID when two entries map to
// the same MessageID, since one of them would be lost.
func (e *MessageFileExporter) Export(w io.Writer, c *entities.Catalog) error {
	messages := map[string]map[string]string{}
	owners := map[string]string{}
	for _, ctx := range c.Contexts() {
		for _, entry := range ctx.Entries() {
			if !entry.Translated() {
				continue
			}
			id := MessageID(ctx.Name(), entry.Source, entry.Comment)
			if prev, ok := owners[id]; ok {
				return fmt.Errorf("%w: %q from %s and %s/%q", domain.ErrDuplicateMessageID, id, prev, ctx.Name(), entry.Source)
			}
			owners[id] = fmt.Sprintf("%s/%q", ctx.Name(), entry.Source)
			messages[id] = map[string]string{
				"description": entry.Source,
				"other":       entry.Translation,
			}
		}
	}
	b, err := e.marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal %s messages: %w", e.format, err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write %s messages: %w", e.format, err)
	}
	return nil
}

// MessageID is the go-i18n message ID of an entry: "Context.Source", with
// "#comment" appended for disambiguated entries.
func MessageID(contextName, source, comment string) string {
	id := contextName + "." + source
	if comment != "" {
		id += "#" + comment
	}
	return id
}

// FileName returns the message file name go-i18n reads the language from,
// e.g. "zh-CN.toml" for zh_CN.
func FileName(lang, format string) string {
	return strings.ReplaceAll(lang, "_", "-") + "." + format
}

// ParseMessageFile reads an exported message file back into go-i18n messages.
func ParseMessageFile(buf []byte, path string) (*i18n.MessageFile, error) {
	mf, err := newBundle(language.English).ParseMessageFileBytes(buf, path)
	if err != nil {
		return nil, fmt.Errorf("parse message file %s: %w", path, err)
	}
	return mf, nil
}
