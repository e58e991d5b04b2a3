package locale

import (
	"golang.org/x/text/language"

	"morinolab/site/internal/domain"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Japanese,
	language.English,
})

// Detect picks the site locale for an Accept-Language style preference list.
// Japanese speakers get ja, everyone else en; an empty or unparsable list
// gets fallback.
func Detect(acceptLanguage string, fallback domain.Locale) domain.Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return domain.LocaleEnglish
	}
	if index == 0 {
		return domain.LocaleJapanese
	}
	return domain.LocaleEnglish
}
