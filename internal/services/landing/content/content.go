// Package content declares the static collections rendered on the landing
// page. Collections are compiled in, ordered by display position, and never
// mutated; accessors hand out copies.
package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/flaskhub/landing/internal/platform/icons"
)

// FeatureEntry is one feature card.
type FeatureEntry struct {
	Icon        icons.ID
	Title       string
	Description string
}

// StatEntry is one headline statistic. Value is display text and may carry
// units or symbols.
type StatEntry struct {
	Label string
	Value string
}

// Collections groups every repeated collection the page renders.
type Collections struct {
	NavItems []string
	Features []FeatureEntry
	Stats    []StatEntry
}

var features = []FeatureEntry{
	{
		Icon:        icons.Zap,
		Title:       "Ultra-Fast Routing",
		Description: "Built on top of a highly optimized internal engine for sub-millisecond route resolution.",
	},
	{
		Icon:        icons.Shield,
		Title:       "Auto-Security",
		Description: "Zero-config protection against XSS, CSRF, and SQL injection out of the box.",
	},
	{
		Icon:        icons.Globe,
		Title:       "Global CDN Edge",
		Description: "Deploy your Python APIs globally with one click and edge-cached responses.",
	},
}

var stats = []StatEntry{
	{Label: "Request/Sec", Value: "250K+"},
	{Label: "Cold Start", Value: "< 12ms"},
	{Label: "Uptime", Value: "99.99%"},
}

var navItems = []string{"Runtime", "Engine", "Docs", "Pricing"}

// Features returns the feature cards in display order.
func Features() []FeatureEntry {
	return slices.Clone(features)
}

// Stats returns the statistics in display order.
func Stats() []StatEntry {
	return slices.Clone(stats)
}

// NavItems returns the navigation labels in display order.
func NavItems() []string {
	return slices.Clone(navItems)
}

// Default returns every compiled-in collection.
func Default() Collections {
	return Collections{
		NavItems: NavItems(),
		Features: Features(),
		Stats:    Stats(),
	}
}

// Validate reports authoring defects in the compiled-in collections.
func Validate() error {
	return Default().Validate()
}

// Validate reports every empty field or unknown icon token in c.
func (c Collections) Validate() error {
	var errs []error
	for i, item := range c.NavItems {
		if strings.TrimSpace(item) == "" {
			errs = append(errs, fmt.Errorf("nav item %d: label is required", i))
		}
	}
	for i, entry := range c.Features {
		if err := entry.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("feature %d: %w", i, err))
		}
	}
	for i, entry := range c.Stats {
		if err := entry.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("stat %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that every field is set and the icon is cataloged.
func (f FeatureEntry) Validate() error {
	var errs []error
	if strings.TrimSpace(string(f.Icon)) == "" {
		errs = append(errs, errors.New("icon is required"))
	} else if !icons.Known(f.Icon) {
		errs = append(errs, fmt.Errorf("icon %q is not cataloged", f.Icon))
	}
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(f.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	return errors.Join(errs...)
}

// Validate checks that label and value are set.
func (s StatEntry) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Label) == "" {
		errs = append(errs, errors.New("label is required"))
	}
	if strings.TrimSpace(s.Value) == "" {
		errs = append(errs, errors.New("value is required"))
	}
	return errors.Join(errs...)
}
