// Package locale resolves user-visible strings from the embedded message
// files.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Catalog looks up messages for one language, falling back to English.
type Catalog struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads every embedded message file and selects lang (a BCP 47 tag).
func New(lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(messageFS, "messages")
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFS, path.Join("messages", e.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Tag returns the requested language.
func (c *Catalog) Tag() language.Tag { return c.tag }

// Text returns the message for id rendered with data. Unknown IDs come
// back unchanged so a missing message is visible rather than blank.
func (c *Catalog) Text(id string, data map[string]any) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || s == "" {
		return id
	}
	return s
}
