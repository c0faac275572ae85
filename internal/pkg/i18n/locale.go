// Package i18n holds the locale a request is served in. A Locale is an
// explicit value handed to every formatter; nothing here is process-wide
// mutable state.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

var (
	supportedTags = []language.Tag{language.Vietnamese, language.English}
	matcher       = language.NewMatcher(supportedTags)

	// vietnamTime is the storefront's business time zone (UTC+7, no DST).
	vietnamTime = time.FixedZone("ICT", 7*60*60)
)

// Locale bundles a language and a time zone.
type Locale struct {
	tag      language.Tag
	location *time.Location
}

// NewLocale returns a Locale for tag, falling back to the closest supported
// language. A nil location means the storefront's business time zone.
func NewLocale(tag language.Tag, location *time.Location) Locale {
	if location == nil {
		location = vietnamTime
	}
	return Locale{tag: Match(tag), location: location}
}

// Default is Vietnamese in the storefront's business time zone.
func Default() Locale {
	return NewLocale(language.Vietnamese, nil)
}

// Supported lists the languages the catalog has messages for.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Match picks the best supported language for the given preferences.
func Match(tags ...language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tags...)
	return supportedTags[idx]
}

// ParseTag parses a BCP 47 tag and reports whether it is supported.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	_, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return Match(tag), true
}

// ResolveTag picks a language from an explicit lang value first, then from an
// Accept-Language header, then the default.
func ResolveTag(lang, acceptLanguage string) language.Tag {
	if lang != "" {
		if tag, ok := ParseTag(lang); ok {
			return tag
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			return Match(tags...)
		}
	}
	return language.Vietnamese
}

func (l Locale) Tag() language.Tag {
	if l.tag == language.Und {
		return language.Vietnamese
	}
	return l.tag
}

func (l Locale) Location() *time.Location {
	if l.location == nil {
		return vietnamTime
	}
	return l.location
}

// Printer returns a printer backed by the storefront catalog. Printers are
// cheap; callers create one per formatting call.
func (l Locale) Printer() *message.Printer {
	return message.NewPrinter(l.Tag(), message.Catalog(storefrontCatalog))
}

// Sprintf looks key up in the catalog and formats it with args.
func (l Locale) Sprintf(key string, args ...any) string {
	return l.Printer().Sprintf(key, args...)
}

// Collator returns a fresh collator for the locale. Collators are not safe for
// concurrent use, so one is created per sort.
func (l Locale) Collator() *collate.Collator {
	return collate.New(l.Tag())
}

// CompareStrings orders a and b the way a speaker of the locale would.
func (l Locale) CompareStrings(a, b string) int {
	return l.Collator().CompareString(a, b)
}
