package domain

import "strings"

// Locale is one of the two languages the site is published in
type Locale string

func (l Locale) String() string {
	return string(l)
}

const (
	LocaleJapanese Locale = "ja" // primary
	LocaleEnglish  Locale = "en" // secondary

	DefaultLocale = LocaleJapanese
)

var Locales = []Locale{LocaleJapanese, LocaleEnglish}

// ParseLocale accepts "ja" or "en" in any case, surrounding whitespace ignored.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleJapanese:
		return LocaleJapanese, true
	case LocaleEnglish:
		return LocaleEnglish, true
	default:
		return "", false
	}
}

// Other returns the opposite locale. Unknown locales are treated as the default.
func (l Locale) Other() Locale {
	if l == LocaleEnglish {
		return LocaleJapanese
	}
	return LocaleEnglish
}

// LocalizedText holds both language variants of a single field.
type LocalizedText struct {
	Ja string `json:"ja"`
	En string `json:"en"`
}

// Get returns the raw variant for l without any fallback
func (t LocalizedText) Get(l Locale) string {
	if l == LocaleEnglish {
		return t.En
	}
	return t.Ja
}

// Resolve returns the variant for l, falling back to the other locale when
// that variant is blank, and to "" when both are blank. It never fails.
func (t LocalizedText) Resolve(l Locale) string {
	if l != LocaleEnglish {
		l = DefaultLocale
	}
	if v := t.Get(l); strings.TrimSpace(v) != "" {
		return v
	}
	if v := t.Get(l.Other()); strings.TrimSpace(v) != "" {
		return v
	}
	return ""
}

func (t LocalizedText) IsBlank() bool {
	return strings.TrimSpace(t.Ja) == "" && strings.TrimSpace(t.En) == ""
}
