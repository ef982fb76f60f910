package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is one %N (or localized %LN) marker inside a message, N in 1..99.
type Placeholder struct {
	Number    int
	Localized bool
	Start     int
	End       int
}

// ScanPlaceholders returns the markers of text in order of appearance.
func ScanPlaceholders(text string) []Placeholder {
	var out []Placeholder
	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			continue
		}
		j := i + 1
		localized := false
		if j < len(text) && text[j] == 'L' {
			localized = true
			j++
		}
		if j >= len(text) || !isDigit(text[j]) {
			continue
		}
		n := int(text[j] - '0')
		j++
		if j < len(text) && isDigit(text[j]) {
			n = n*10 + int(text[j]-'0')
			j++
		}
		if n == 0 {
			continue
		}
		out = append(out, Placeholder{Number: n, Localized: localized, Start: i, End: j})
		i = j - 1
	}
	return out
}

// Placeholders returns the distinct placeholder numbers of text, ascending.
func Placeholders(text string) []int {
	seen := map[int]bool{}
	var out []int
	for _, p := range ScanPlaceholders(text) {
		if !seen[p.Number] {
			seen[p.Number] = true
			out = append(out, p.Number)
		}
	}
	sort.Ints(out)
	return out
}

// PlaceholderCounts returns how many times each placeholder number occurs in text.
func PlaceholderCounts(text string) map[int]int {
	counts := map[int]int{}
	for _, p := range ScanPlaceholders(text) {
		counts[p.Number]++
	}
	return counts
}

// Format substitutes the placeholders of text the way QString::arg does: the
// lowest-numbered marker takes the first argument, the next one the second,
// and so on. Every occurrence of a number receives the same value. Argument
// text is inserted verbatim and never scanned for markers. %LN markers are
// rendered with English number formatting.
func Format(text string, args ...any) (string, error) {
	return FormatIn(language.English, text, args...)
}

// FormatIn is Format with %LN markers rendered for lang, digit grouping included.
func FormatIn(lang language.Tag, text string, args ...any) (string, error) {
	marks := ScanPlaceholders(text)
	numbers := Placeholders(text)
	if len(numbers) != len(args) {
		return "", &FormatError{Text: text, Placeholders: len(numbers), Args: len(args)}
	}
	if len(marks) == 0 {
		return text, nil
	}

	rank := make(map[int]int, len(numbers))
	for i, n := range numbers {
		rank[n] = i
	}
	values := make([]string, len(args))
	localized := make([]string, len(args))
	var printer *message.Printer
	for _, m := range marks {
		i := rank[m.Number]
		if !m.Localized {
			values[i] = fmt.Sprint(args[i])
			continue
		}
		if printer == nil {
			printer = message.NewPrinter(lang)
		}
		localized[i] = printer.Sprint(args[i])
	}

	var b strings.Builder
	last := 0
	for _, m := range marks {
		b.WriteString(text[last:m.Start])
		if m.Localized {
			b.WriteString(localized[rank[m.Number]])
		} else {
			b.WriteString(values[rank[m.Number]])
		}
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// CheckPlaceholders verifies that translation uses the same placeholders as
// source, with the same number of occurrences each.
func CheckPlaceholders(source, translation string) error {
	want := PlaceholderCounts(source)
	got := PlaceholderCounts(translation)
	if equalCounts(want, got) {
		return nil
	}
	return fmt.Errorf("%w: source has %s, translation has %s", ErrPlaceholderMismatch, describeCounts(want), describeCounts(got))
}

func equalCounts(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for n, c := range a {
		if b[n] != c {
			return false
		}
	}
	return true
}

func describeCounts(counts map[int]int) string {
	if len(counts) == 0 {
		return "none"
	}
	numbers := make([]int, 0, len(counts))
	for n := range counts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = "%" + strconv.Itoa(n) + "x" + strconv.Itoa(counts[n])
	}
	return strings.Join(parts, " ")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
