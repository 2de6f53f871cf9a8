// Package i18n holds the demo's user-facing strings.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	MsgTitle          = "Title"
	MsgEmpty          = "Empty"
	MsgItemCount      = "ItemCount"
	MsgSelected       = "Selected"
	MsgHelp           = "Help"
	MsgReadInputError = "ReadInputError"
	MsgBackendError   = "BackendError"
)

//go:embed locales/*.toml
var locales embed.FS

// Translator localizes messages for one language.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads every embedded message file. English is the fallback.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return bundle, nil
}

// New returns a translator for lang, a BCP 47 tag or a POSIX locale such as
// "pt_BR.UTF-8". Unknown or empty languages fall back to English.
func New(lang string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := match(bundle.LanguageTags(), normalize(lang))
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Language returns the language messages are rendered in.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T renders the message id with data. A message that cannot be rendered
// comes back as its id.
func (t *Translator) T(id string, data map[string]any) string {
	s, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return s
}

// N renders the plural message id for count. data may be nil, Count is
// always available to the template.
func (t *Translator) N(id string, count int, data map[string]any) string {
	merged := map[string]any{"Count": count}
	for k, v := range data {
		merged[k] = v
	}

	s, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: merged,
		PluralCount:  count,
	})
	if err != nil {
		return id
	}
	return s
}

// Detect returns the preferred language from VLIST_LANG, falling back to LANG.
func Detect() string {
	if lang := os.Getenv(constants.LanguageEnvVar); lang != "" {
		return lang
	}
	return os.Getenv("LANG")
}

// normalize turns a POSIX locale into a BCP 47 tag.
func normalize(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}

func match(supported []language.Tag, lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	desired, err := language.Parse(lang)
	if err != nil {
		return language.English
	}

	_, i, confidence := language.NewMatcher(supported).Match(desired)
	if confidence == language.No {
		return language.English
	}
	return supported[i]
}
