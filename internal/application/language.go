package application

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language preferences understood besides plain language tags.
const (
	PreferenceSystem  = "System"
	PreferenceEnglish = "English"
	PreferenceChinese = "Chinese"
)

// SelectLanguage picks the catalog language to load among available ones.
//
// "Chinese" selects the available zh catalog and nothing else. Any other
// value, "English" and the stored default "en" included, takes the first
// system UI language with a matching catalog. A language tag with its own
// catalog is tried before the system languages. The boolean is false when no
// catalog applies and the source strings are shown.
func SelectLanguage(preference string, system, available []string) (string, bool) {
	p := strings.TrimSpace(preference)
	if strings.EqualFold(p, PreferenceChinese) {
		return matchLanguage("zh", available)
	}
	if p != "" && !strings.EqualFold(p, PreferenceSystem) && !strings.EqualFold(p, PreferenceEnglish) {
		if lang, ok := matchLanguage(p, available); ok {
			return lang, true
		}
	}
	for _, s := range system {
		if lang, ok := matchLanguage(s, available); ok {
			return lang, true
		}
	}
	return "", false
}

// SystemLanguages reads the POSIX locale variables in priority order.
func SystemLanguages(getenv func(string) string) []string {
	var out []string
	seen := map[string]bool{}
	add := func(v string) {
		v = cleanLocale(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}
	for _, v := range strings.Split(getenv("LANGUAGE"), ":") {
		add(v)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		add(getenv(key))
	}
	return out
}

// DisplayName renders a language code in English and in the language itself,
// e.g. "Chinese (China) / 中文 (中国)".
func DisplayName(code string) string {
	tag, err := parseTag(code)
	if err != nil {
		return code
	}
	en := display.Tags(language.English).Name(tag)
	self := display.Self.Name(tag)
	if self == "" || self == en {
		return en
	}
	return en + " / " + self
}

// matchLanguage prefers an exact tag match, then the first available catalog
// with the same base language.
func matchLanguage(requested string, available []string) (string, bool) {
	want, err := parseTag(requested)
	if err != nil {
		return "", false
	}
	wantBase, _ := want.Base()
	baseMatch := ""
	for _, a := range available {
		tag, err := parseTag(a)
		if err != nil {
			continue
		}
		if tag.String() == want.String() {
			return a, true
		}
		if base, _ := tag.Base(); base == wantBase && baseMatch == "" {
			baseMatch = a
		}
	}
	return baseMatch, baseMatch != ""
}

func parseTag(code string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(cleanLocale(code), "_", "-"))
}

// cleanLocale strips the codeset and modifier of a POSIX locale ("zh_CN.UTF-8@x").
func cleanLocale(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "C" || v == "POSIX" {
		return ""
	}
	return v
}
