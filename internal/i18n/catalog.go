// Package i18n holds the user facing strings and date formats for the
// supported locales (en, tr).
package i18n

import (
	"strings"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type dateLayouts struct {
	date     string
	dateTime string
}

var layouts = map[language.Base]dateLayouts{
	mustBase(language.English): {date: "1/2/2006", dateTime: "1/2/2006, 3:04:05 PM"},
	mustBase(language.Turkish): {date: "02.01.2006", dateTime: "02.01.2006 15:04:05"},
}

var bundle = newBundle()

func newBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.English)
	if err := b.AddMessages(language.English, english...); err != nil {
		panic(err)
	}
	if err := b.AddMessages(language.Turkish, turkish...); err != nil {
		panic(err)
	}
	return b
}

func mustBase(tag language.Tag) language.Base {
	base, _ := tag.Base()
	return base
}

type Catalog struct {
	tag       language.Tag
	localizer *goi18n.Localizer
	layouts   dateLayouts
	loc       *time.Location
}

// New returns the catalog for lang (a BCP 47 tag such as "tr" or "en-US").
// Unknown or malformed tags fall back to English.
func New(lang string) *Catalog {
	tag := language.English
	if parsed, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		tag = parsed
	}
	ls, ok := layouts[mustBase(tag)]
	if !ok {
		tag = language.English
		ls = layouts[mustBase(language.English)]
	}
	return &Catalog{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		layouts:   ls,
		loc:       time.Local,
	}
}

// WithLocation returns a copy that formats times in loc.
func (c *Catalog) WithLocation(loc *time.Location) *Catalog {
	out := *c
	if loc != nil {
		out.loc = loc
	}
	return &out
}

func (c *Catalog) Location() *time.Location {
	return c.loc
}

func (c *Catalog) Lang() string {
	return mustBase(c.tag).String()
}

// T localizes id. Extra arguments are alternating template keys and values.
// Unknown ids are returned unchanged.
func (c *Catalog) T(id string, kv ...any) string {
	var data map[string]any
	if len(kv) > 1 {
		data = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			if k, ok := kv[i].(string); ok {
				data[k] = kv[i+1]
			}
		}
	}
	out, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || out == "" {
		return id
	}
	return out
}

// Detail returns the server message when present, else the localized
// fallback id.
func (c *Catalog) Detail(serverDetail, fallbackID string) string {
	if s := strings.TrimSpace(serverDetail); s != "" {
		return s
	}
	return c.T(fallbackID)
}

var priorityMessages = map[string]string{
	"low":    MsgPriorityLow,
	"medium": MsgPriorityMedium,
	"high":   MsgPriorityHigh,
}

// PriorityLabel maps low/medium/high to the localized label. Any other
// value is returned verbatim.
func (c *Catalog) PriorityLabel(priority string) string {
	id, ok := priorityMessages[priority]
	if !ok {
		return priority
	}
	return c.T(id)
}

func (c *Catalog) FormatDate(t time.Time) string {
	return t.In(c.loc).Format(c.layouts.date)
}

func (c *Catalog) FormatDateTime(t time.Time) string {
	return t.In(c.loc).Format(c.layouts.dateTime)
}
