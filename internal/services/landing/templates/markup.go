// Package templates holds the landing page views. Every view is a
// templ.Component so fragments, sections, and the layout compose uniformly.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name string, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markup) components(cs []templ.Component) {
	for _, c := range cs {
		m.component(c)
	}
}

func (m *markup) done() error {
	return m.err
}
