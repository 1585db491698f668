package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	t.Run("подстановка параметров", func(t *testing.T) {
		got := T("en", "joined", map[string]any{"title": "Camp", "hp": 100})
		assert.Equal(t, "✅ You joined *Camp*! Starting HP: 100.", got)
	})

	t.Run("неизвестный язык падает в английский", func(t *testing.T) {
		assert.Equal(t, T("en", "cancelled", nil), T("xx", "cancelled", nil))
	})

	t.Run("неизвестный ключ возвращается как есть", func(t *testing.T) {
		assert.Equal(t, "no_such_key", T("en", "no_such_key", nil))
	})

	t.Run("русская локаль живая", func(t *testing.T) {
		assert.NotEqual(t, T("en", "winner", nil), T("ru", "winner", nil))
	})
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"ru":    "ru",
		"ru-RU": "ru",
		"en":    "en",
		"en-GB": "en",
		"":      "en",
		"###":   "en",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, ждали %q", in, got, want)
		}
	}
}

func TestLocalesComplete(t *testing.T) {
	// Все локали несут тот же набор ключей, что и английская.
	base := locales[DefaultLang]
	for code, table := range locales {
		if code == DefaultLang {
			continue
		}
		for key := range base {
			if _, ok := table[key]; !ok {
				t.Errorf("в локали %s нет ключа %s", code, key)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	var codes []string
	for _, l := range Supported() {
		codes = append(codes, l.Code)
	}
	joined := strings.Join(codes, ",")
	assert.Contains(t, joined, "en")
	assert.Contains(t, joined, "ru")
}
