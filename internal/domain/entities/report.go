package entities

// IssueKind classifies a finding of a catalog check.
type IssueKind string

const (
	IssuePlaceholderMismatch IssueKind = "placeholder_mismatch"
	IssueDuplicate           IssueKind = "duplicate"
	IssueUnfinished          IssueKind = "unfinished"
	IssueUntranslated        IssueKind = "untranslated"
	IssueObsolete            IssueKind = "obsolete"
)

// Blocking reports whether the issue makes the catalog unfit for release.
func (k IssueKind) Blocking() bool {
	return k == IssuePlaceholderMismatch || k == IssueDuplicate
}

// Issue is one finding about an entry.
type Issue struct {
	Kind    IssueKind
	Context string
	Source  string
	Comment string
	Detail  string
}

// Report summarizes a catalog check.
type Report struct {
	Language   string
	Contexts   int
	Messages   int
	Translated int
	Issues     []Issue
}

// Blocking returns the issues that make the catalog unfit for release.
func (r Report) Blocking() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Kind.Blocking() {
			out = append(out, i)
		}
	}
	return out
}

// OK reports whether the check found no blocking issue.
func (r Report) OK() bool { return len(r.Blocking()) == 0 }

// Count returns the number of issues of kind k.
func (r Report) Count(k IssueKind) int {
	n := 0
	for _, i := range r.Issues {
		if i.Kind == k {
			n++
		}
	}
	return n
}

// ContextSummary describes one context of a catalog.
type ContextSummary struct {
	Name       string
	Messages   int
	Translated int
}
