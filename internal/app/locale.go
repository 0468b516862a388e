package app

import (
	"golang.org/x/text/language"
)

var (
	supportedLocales = []language.Tag{language.BrazilianPortuguese, language.AmericanEnglish}
	localeMatcher    = language.NewMatcher(supportedLocales)
	timestampLayouts = map[language.Tag]string{
		language.BrazilianPortuguese: "02/01/2006, 15:04:05",
		language.AmericanEnglish:     "1/2/2006, 3:04:05 PM",
	}
)

// TimestampLayout returns the date-time layout for a BCP 47 locale. Unknown
// or malformed locales fall back to Brazilian Portuguese.
func TimestampLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return timestampLayouts[language.BrazilianPortuguese]
	}
	_, index, _ := localeMatcher.Match(tag)
	return timestampLayouts[supportedLocales[index]]
}
