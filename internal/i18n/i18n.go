// Package i18n provides the display-string lookup used by every screen.
// Lookup is a pure function of (language, key, params); drill decisions
// never depend on it.
package i18n

import "strings"

// Lang selects the UI language.
type Lang string

const (
	// EN is English UI text.
	EN Lang = "en"
	// ZH is Simplified Chinese UI text.
	ZH Lang = "zh"
)

// Translator resolves display strings for one language.
type Translator struct {
	lang Lang
}

// New creates a Translator. Unknown languages fall back to English.
func New(lang Lang) *Translator {
	if lang != ZH {
		lang = EN
	}
	return &Translator{lang: lang}
}

// Lang returns the active language.
func (t *Translator) Lang() Lang { return t.lang }

// Toggle returns a Translator for the other language.
func (t *Translator) Toggle() *Translator {
	if t.lang == EN {
		return New(ZH)
	}
	return New(EN)
}

// T looks up key and interpolates {name} placeholders from params. Missing
// keys fall back to English, then to the key itself so a typo is visible
// rather than silent.
func (t *Translator) T(key string, params ...map[string]string) string {
	table := en
	if t.lang == ZH {
		table = zh
	}

	s, ok := table[key]
	if !ok {
		if s, ok = en[key]; !ok {
			return key
		}
	}

	for _, p := range params {
		for name, val := range p {
			s = strings.ReplaceAll(s, "{"+name+"}", val)
		}
	}
	return s
}
