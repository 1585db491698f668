package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang - язык по умолчанию, он же последний уровень fallback.
const DefaultLang = "en"

//go:embed locales/*.json
var localeFS embed.FS

var (
	locales   = map[string]map[string]string{}
	matcher   language.Matcher
	supported []Language
)

// Language - поддерживаемый язык для меню /lang.
type Language struct {
	Code  string
	Label string
}

var labels = map[string]string{
	"en": "🇺🇸 English",
	"ru": "🇷🇺 Русский",
}

func init() {
	entries, err := fs.Glob(localeFS, "locales/*.json")
	if err != nil || len(entries) == 0 {
		log.Fatalf("no embedded locales: %v", err)
	}

	var tags []language.Tag
	for _, name := range entries {
		raw, err := localeFS.ReadFile(name)
		if err != nil {
			log.Fatalf("read locale %s: %v", name, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			log.Fatalf("parse locale %s: %v", name, err)
		}
		code := strings.TrimSuffix(path.Base(name), ".json")
		locales[code] = table

		label, ok := labels[code]
		if !ok {
			label = code
		}
		supported = append(supported, Language{Code: code, Label: label})
		tags = append(tags, language.Make(code))
	}
	matcher = language.NewMatcher(tags)
}

// Supported возвращает список языков для клавиатуры выбора.
func Supported() []Language {
	return supported
}

// Normalize приводит пользовательский код языка к поддерживаемому
// ("ru-RU" -> "ru"). Неизвестные коды схлопываются в DefaultLang.
func Normalize(code string) string {
	if _, ok := locales[code]; ok {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLang
	}
	return supported[idx].Code
}

// T ищет строку по ключу: выбранный язык -> DefaultLang -> сам ключ.
// Плейсхолдеры вида {name} подставляются из params.
func T(lang, key string, params map[string]any) string {
	text, ok := locales[lang][key]
	if !ok {
		text, ok = locales[DefaultLang][key]
	}
	if !ok {
		text = key
	}
	for ph, v := range params {
		text = strings.ReplaceAll(text, "{"+ph+"}", fmt.Sprint(v))
	}
	return text
}
