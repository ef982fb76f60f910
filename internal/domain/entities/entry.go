package entities

// Status mirrors the type attribute of a TS <translation> element.
type Status string

const (
	StatusFinished   Status = ""
	StatusUnfinished Status = "unfinished"
	StatusObsolete   Status = "obsolete"
	StatusVanished   Status = "vanished"
)

// Active reports whether entries with this status take part in lookups.
func (s Status) Active() bool {
	return s != StatusObsolete && s != StatusVanished
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusFinished, StatusUnfinished, StatusObsolete, StatusVanished:
		return true
	}
	return false
}

// Entry is one source/translation pair of a context.
type Entry struct {
	Source      string
	Comment     string // disambiguation, part of the lookup key
	Translation string
	Status      Status
}

// Translated reports whether the entry yields a translation on lookup.
func (e Entry) Translated() bool {
	return e.Status.Active() && e.Translation != ""
}
