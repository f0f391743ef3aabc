package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/vovakirdan/f2b/internal/core"
)

// languages lists the data file languages and whether voice files exist.
var languages = []struct {
	lang  core.Language
	voice bool
}{
	{core.LangEN, true},
	{core.LangFR, true},
	{core.LangGR, true},
	{core.LangSP, false},
	{core.LangIT, false},
}

// localeMatcher matches locales against the languages table, in order.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.Italian,
})

// LanguageFromLocale returns the language closest to a POSIX locale such
// as "fr_FR.UTF-8". Locales close to none of them select English.
func LanguageFromLocale(locale string) core.Language {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return core.LangEN
	}
	_, i, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return core.LangEN
	}
	return languages[i].lang
}

// SystemLocale returns the message locale from the environment.
func SystemLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// LanguageCodes returns the accepted language codes in table order.
func LanguageCodes() []string {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.lang.String()
	}
	return codes
}

func lookupLanguage(code string) (core.Language, bool, bool) {
	for _, l := range languages {
		if strings.EqualFold(l.lang.String(), code) {
			return l.lang, l.voice, true
		}
	}
	return core.LangEN, false, false
}

// ParseLanguage returns the text language for code. Unknown or empty codes
// select English.
func ParseLanguage(code string) core.Language {
	lang, _, _ := lookupLanguage(code)
	return lang
}

// HasVoice reports whether voice files exist for lang.
func HasVoice(lang core.Language) bool {
	for _, l := range languages {
		if l.lang == lang {
			return l.voice
		}
	}
	return false
}

// ParseVoice resolves the voice language. Languages without their own voice
// files may pick any voiced language and default to English. Every other
// language is spoken in its own voice, whatever code says.
func ParseVoice(code string, text core.Language) core.Language {
	if HasVoice(text) {
		return text
	}
	if voice, voiced, ok := lookupLanguage(code); ok && voiced {
		return voice
	}
	return core.LangEN
}

// LevelAliases names the levels in start order. Index i is level i.
var LevelAliases = []string{
	"1", "2a", "2b", "2c", "3", "4a", "4b", "4c", "5a", "5b", "5c", "6a", "6b",
}

// ParseLevelAlias returns the level index for an alias such as "4b".
func ParseLevelAlias(alias string) (int, error) {
	for i, a := range LevelAliases {
		if strings.EqualFold(a, alias) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("config: unknown level alias %q", alias)
}

// ParseLevel accepts a level index or an alias. Bare integers are indexes,
// so "1" selects the second level; use --alt-level for alias "1".
func ParseLevel(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return ParseLevelAlias(value)
	}
	if n < 0 || n >= len(LevelAliases) {
		return 0, fmt.Errorf("config: level %d out of range [0,%d)", n, len(LevelAliases))
	}
	return n, nil
}

// ParseDisplayMode accepts "windowed", "fullscreen" and "fullscreen-ar".
// An empty name selects windowed.
func ParseDisplayMode(name string) (core.DisplayMode, error) {
	switch strings.ToLower(name) {
	case "", "windowed":
		return core.DisplayWindowed, nil
	case "fullscreen":
		return core.DisplayFullscreenStretch, nil
	case "fullscreen-ar":
		return core.DisplayFullscreenAspect, nil
	default:
		return core.DisplayWindowed, fmt.Errorf("config: unknown display mode %q", name)
	}
}

// AspectRatio returns the width/height ratio the host should keep, or 0
// to stretch.
func AspectRatio(mode core.DisplayMode) float64 {
	if mode == core.DisplayFullscreenAspect {
		return 4.0 / 3.0
	}
	return 0
}
