// Package i18n serves the Thai and English texts of the back office.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Thai is the default language of the back office
var (
	Thai    = language.Thai
	English = language.English
)

var matcher = language.NewMatcher([]language.Tag{Thai, English})

// Negotiate picks the page language. An explicit override ("th", "en") wins over the
// Accept-Language header; anything unmatched falls back to Thai.
func Negotiate(override, acceptLanguage string) language.Tag {
	if override != "" {
		if tag, err := language.Parse(override); err == nil {
			matched, _, confidence := matcher.Match(tag)
			if confidence != language.No {
				return base(matched)
			}
		}
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Thai
	}
	matched, _, _ := matcher.Match(tags...)
	return base(matched)
}

func base(tag language.Tag) language.Tag {
	b, _ := tag.Base()
	if b.String() == "en" {
		return English
	}
	return Thai
}

// T returns the message for key in lang, formatted with args. Unknown keys render as the
// key itself so a missing translation is visible on the page.
func T(lang language.Tag, key string, args ...any) string {
	table := thai
	if lang == English {
		table = english
	}
	msg, ok := table[key]
	if !ok {
		if msg, ok = english[key]; !ok {
			return key
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Code returns the short language code used in links and the html lang attribute
func Code(lang language.Tag) string {
	if lang == English {
		return "en"
	}
	return "th"
}
