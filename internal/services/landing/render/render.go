// Package render projects the static content collections into page fragments
// and composes them into the landing page.
//
// Projection is positional: fragment i always renders entry i. Nothing is
// filtered, sorted, or deduplicated, and an empty collection projects to an
// empty fragment list.
package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/services/landing/content"
	"github.com/flaskhub/landing/internal/services/landing/i18n"
	"github.com/flaskhub/landing/internal/services/landing/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/flaskhub/landing/internal/services/landing/render"

// Project maps each entry to exactly one fragment, preserving order.
func Project[T any](entries []T, view func(T) templ.Component) []templ.Component {
	fragments := make([]templ.Component, 0, len(entries))
	for _, entry := range entries {
		fragments = append(fragments, view(entry))
	}
	return fragments
}

// FeatureFragments projects feature entries into feature cards.
func FeatureFragments(entries []content.FeatureEntry) []templ.Component {
	return Project(entries, templates.FeatureCard)
}

// StatFragments projects stat entries into stat tiles.
func StatFragments(entries []content.StatEntry) []templ.Component {
	return Project(entries, templates.StatTile)
}

// NavFragments projects navigation labels into nav links.
func NavFragments(items []string) []templ.Component {
	return Project(items, templates.NavLink)
}

// Page composes the landing page body from localized copy and collections.
func Page(copy i18n.Copy, collections content.Collections) templ.Component {
	body := templ.Join(
		templates.Nav(copy, NavFragments(collections.NavItems)),
		mainContent(copy, collections),
		templates.Footer(copy),
	)
	return traced(body,
		attribute.String("landing.lang", copy.Lang),
		attribute.Int("landing.features", len(collections.Features)),
		attribute.Int("landing.stats", len(collections.Stats)),
	)
}

// NotFoundPage composes the 404 page body.
func NotFoundPage(copy i18n.Copy) templ.Component {
	return templ.Join(
		templates.Nav(copy, NavFragments(content.NavItems())),
		templates.NotFound(copy),
		templates.Footer(copy),
	)
}

func mainContent(copy i18n.Copy, collections content.Collections) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		sections := templ.Join(
			templates.Hero(copy),
			templates.StatsSection(copy, StatFragments(collections.Stats)),
			templates.FeaturesSection(copy, FeatureFragments(collections.Features)),
			templates.CallToAction(copy),
		)
		if err := sections.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`)
		return err
	})
}

// traced renders c inside a "landing.render" span.
func traced(c templ.Component, attrs ...attribute.KeyValue) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "landing.render", trace.WithAttributes(attrs...))
		defer span.End()
		if err := c.Render(ctx, w); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	})
}
