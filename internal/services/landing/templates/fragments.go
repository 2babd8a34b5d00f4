package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/services/landing/content"
)

// FeatureCard renders one feature entry.
func FeatureCard(entry content.FeatureEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<article class="feature-card glass-panel" data-fragment="feature">`)
		m.raw(`<div class="feature-card__icon">`)
		m.component(Icon(entry.Icon, "icon--lg text-flask"))
		m.raw(`</div><h3 class="feature-card__title">`)
		m.text(entry.Title)
		m.raw(`</h3><p class="feature-card__description">`)
		m.text(entry.Description)
		m.raw(`</p></article>`)
		return m.done()
	})
}

// StatTile renders one statistic. The stylesheet shows the value above the
// label; markup keeps dt before dd.
func StatTile(entry content.StatEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<div class="stat-tile" data-fragment="stat"><dt class="stat-tile__label">`)
		m.text(entry.Label)
		m.raw(`</dt><dd class="stat-tile__value">`)
		m.text(entry.Value)
		m.raw(`</dd></div>`)
		return m.done()
	})
}

// NavLink renders one inert navigation item.
func NavLink(label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<a class="nav-link" href="#" data-fragment="nav">`)
		m.text(label)
		m.raw(`</a>`)
		return m.done()
	})
}
