package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/platform/icons"
)

// Icon references one symbol of the inline Lucide sprite.
func Icon(id icons.ID, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<svg`)
		m.attr("class", joinClasses("icon", class))
		m.raw(` aria-hidden="true" focusable="false"><use`)
		m.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
		m.raw(`></use></svg>`)
		return m.done()
	})
}

// IconSprite emits the hidden sprite every Icon points into.
func IconSprite() templ.Component {
	return templ.Raw(icons.LucideSprite())
}

func joinClasses(base string, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
