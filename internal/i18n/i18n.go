package i18n

import (
	"embed"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	mu         sync.RWMutex
	translator *i18n.Localizer
)

var supported = []language.Tag{
	language.English,
	language.MustParse("zh-TW"),
	language.MustParse("zh-CN"),
}

// Init loads the embedded catalogs and makes locale the active language.
// An empty locale is detected from TW2S_LANGUAGE, LC_ALL, LC_MESSAGES and LANG.
func Init(locale string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, err
		}
		if _, err = bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, err
		}
	}

	if locale == "" {
		locale = detectLocale()
	}
	loc := i18n.NewLocalizer(bundle, normalize(locale), language.English.String())

	mu.Lock()
	translator = loc
	mu.Unlock()
	return loc, nil
}

// T returns the message for messageID in the active language, or the id
// itself when the catalog has no such entry.
func T(messageID string) string {
	mu.RLock()
	loc := translator
	mu.RUnlock()
	if loc == nil {
		var err error
		if loc, err = Init(""); err != nil {
			return messageID
		}
	}
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

func detectLocale() string {
	for _, key := range []string{"TW2S_LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return language.English.String()
}

// normalize turns POSIX locale names such as zh_TW.UTF-8 into the closest
// supported BCP 47 tag.
func normalize(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English.String()
	}
	matcher := language.NewMatcher(supported)
	_, idx, _ := matcher.Match(tag)
	return supported[idx].String()
}
