package entities

// DefaultVersion is the TS schema version written for catalogs built from scratch.
const DefaultVersion = "2.1"

type entryKey struct {
	source  string
	comment string
}

// Context is a named, ordered group of entries, usually one UI component.
type Context struct {
	name    string
	entries []Entry
	index   map[entryKey]int
}

// Name returns the context name.
func (c *Context) Name() string { return c.name }

// Len returns the number of entries, obsolete ones included.
func (c *Context) Len() int { return len(c.entries) }

// Entries returns a copy of the entries in document order.
func (c *Context) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry returns the entry stored for (source, comment), whatever its status.
func (c *Context) Entry(source, comment string) (Entry, bool) {
	i, ok := c.index[entryKey{source, comment}]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Lookup returns the translation of (source, comment). Obsolete, vanished and
// empty translations are reported as not found.
func (c *Context) Lookup(source, comment string) (string, bool) {
	e, ok := c.Entry(source, comment)
	if !ok || !e.Translated() {
		return "", false
	}
	return e.Translation, true
}

// Duplicate records an entry that replaced an earlier one with the same key.
type Duplicate struct {
	Context     string
	Source      string
	Comment     string
	Previous    string
	Translation string
}

// Catalog is an immutable set of translations for one language.
// It is safe for concurrent use once built.
type Catalog struct {
	version        string
	language       string
	sourceLanguage string
	contexts       []*Context
	index          map[string]*Context
	duplicates     []Duplicate
}

// NewEmptyCatalog returns a catalog without contexts. Every lookup misses.
func NewEmptyCatalog(language string) *Catalog {
	return NewBuilder(DefaultVersion, language).Build()
}

func (c *Catalog) Version() string        { return c.version }
func (c *Catalog) Language() string       { return c.language }
func (c *Catalog) SourceLanguage() string { return c.sourceLanguage }

// Contexts returns the contexts in document order.
func (c *Catalog) Contexts() []*Context {
	out := make([]*Context, len(c.contexts))
	copy(out, c.contexts)
	return out
}

// Context returns the context called name.
func (c *Catalog) Context(name string) (*Context, bool) {
	ctx, ok := c.index[name]
	return ctx, ok
}

// Lookup returns the translation of source in the named context.
func (c *Catalog) Lookup(context, source string) (string, bool) {
	return c.LookupDisambiguated(context, source, "")
}

// LookupDisambiguated is Lookup for entries carrying a disambiguation comment.
func (c *Catalog) LookupDisambiguated(context, source, comment string) (string, bool) {
	ctx, ok := c.index[context]
	if !ok {
		return "", false
	}
	return ctx.Lookup(source, comment)
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	n := 0
	for _, ctx := range c.contexts {
		n += len(ctx.entries)
	}
	return n
}

// IsEmpty reports whether the catalog holds no entries.
func (c *Catalog) IsEmpty() bool { return c.Len() == 0 }

// Duplicates returns the entries that overrode earlier ones while building.
func (c *Catalog) Duplicates() []Duplicate {
	out := make([]Duplicate, len(c.duplicates))
	copy(out, c.duplicates)
	return out
}

// Builder assembles a Catalog. A later entry with the same (context, source,
// comment) replaces the earlier translation in place and is recorded as a
// duplicate. Contexts sharing a name are merged into the first one.
type Builder struct {
	c *Catalog
}

func NewBuilder(version, language string) *Builder {
	return &Builder{c: &Catalog{
		version:  version,
		language: language,
		index:    map[string]*Context{},
	}}
}

func (b *Builder) SetSourceLanguage(lang string) *Builder {
	b.c.sourceLanguage = lang
	return b
}

// AddContext makes sure a context called name exists, even without entries.
func (b *Builder) AddContext(name string) *Context {
	if ctx, ok := b.c.index[name]; ok {
		return ctx
	}
	ctx := &Context{name: name, index: map[entryKey]int{}}
	b.c.contexts = append(b.c.contexts, ctx)
	b.c.index[name] = ctx
	return ctx
}

// Add appends e to the named context.
func (b *Builder) Add(context string, e Entry) *Builder {
	ctx := b.AddContext(context)
	key := entryKey{e.Source, e.Comment}
	if i, ok := ctx.index[key]; ok {
		b.c.duplicates = append(b.c.duplicates, Duplicate{
			Context:     context,
			Source:      e.Source,
			Comment:     e.Comment,
			Previous:    ctx.entries[i].Translation,
			Translation: e.Translation,
		})
		ctx.entries[i] = e
		return b
	}
	ctx.index[key] = len(ctx.entries)
	ctx.entries = append(ctx.entries, e)
	return b
}

// Build returns the catalog. The builder must not be used afterwards.
func (b *Builder) Build() *Catalog {
	c := b.c
	b.c = nil
	return c
}
