// Package i18n resolves the request locale and the localized page copy.
package i18n

import (
	"fmt"
	"strings"

	"github.com/flaskhub/landing/internal/platform/branding"
	platformi18n "github.com/flaskhub/landing/internal/platform/i18n"
	_ "github.com/flaskhub/landing/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Copy holds translatable chrome copy for the landing page. Feature and stat
// entries are brand data and are not part of it.
type Copy struct {
	Lang             string
	MetaDescription  string
	LandingTitle     string
	NotFoundTitle    string
	NavLabel         string
	NavCTA           string
	LanguageLabel    string
	HeroBadge        string
	HeroHeadlineLead string
	HeroHeadlineMark string
	HeroHeadlineTail string
	HeroLead         string
	HeroDeploy       string
	HeroViewDocs     string
	HeroSSLVerified  string
	HeroEndpoint     string
	StatsLabel       string
	FeaturesHeading  string
	FeaturesMark     string
	CTAHeadingLead   string
	CTAHeadingMark   string
	CTAHeadingTail   string
	CTABody          string
	CTAStart         string
	CTAFork          string
	FooterLine       string
	NotFoundHeading  string
	NotFoundBody     string
	NotFoundBackHome string
	LanguageOptions  []LanguageOption
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// For returns localized copy for tag, falling back to English per message.
func For(tag language.Tag) Copy {
	tag = normalizeTag(tag)
	loc := message.NewPrinter(tag)

	return Copy{
		Lang:             tag.String(),
		MetaDescription:  localizeWithFallback(loc, "meta.description", "The high-performance API hub for Python developers who demand extreme speed, rock-solid security, and instant global scale."),
		LandingTitle:     withProductSuffix(localizeWithFallback(loc, "title.landing", "Accelerate your Backend Performance")),
		NotFoundTitle:    withProductSuffix(localizeWithFallback(loc, "title.not_found", "Page not found")),
		NavLabel:         localizeWithFallback(loc, "nav.primary", "Primary"),
		NavCTA:           localizeWithFallback(loc, "nav.get_trial", "Get Trial"),
		LanguageLabel:    localizeWithFallback(loc, "nav.language", "Language"),
		HeroBadge:        localizeWithFallback(loc, "hero.badge", "Now supporting Async v.4.2"),
		HeroHeadlineLead: localizeWithFallback(loc, "hero.headline_lead", "Accelerate your"),
		HeroHeadlineMark: localizeWithFallback(loc, "hero.headline_accent", "Backend"),
		HeroHeadlineTail: localizeWithFallback(loc, "hero.headline_tail", "Performance."),
		HeroLead:         localizeWithFallback(loc, "hero.lead", "The high-performance API hub for Python developers who demand extreme speed, rock-solid security, and instant global scale."),
		HeroDeploy:       localizeWithFallback(loc, "hero.deploy", "Deploy API"),
		HeroViewDocs:     localizeWithFallback(loc, "hero.view_docs", "View Docs"),
		HeroSSLVerified:  localizeWithFallback(loc, "hero.ssl_verified", "SSL Verified"),
		HeroEndpoint:     localizeWithFallback(loc, "hero.endpoint", "Endpoint"),
		StatsLabel:       localizeWithFallback(loc, "stats.label", "Platform statistics"),
		FeaturesHeading:  localizeWithFallback(loc, "features.heading", "Core Engine"),
		FeaturesMark:     localizeWithFallback(loc, "features.heading_accent", "Components"),
		CTAHeadingLead:   localizeWithFallback(loc, "cta.heading_lead", "Ready to Scale your"),
		CTAHeadingMark:   localizeWithFallback(loc, "cta.heading_accent", "Production"),
		CTAHeadingTail:   localizeWithFallback(loc, "cta.heading_tail", "Infrastructure?"),
		CTABody:          localizeWithFallback(loc, "cta.body", "Join 15,000+ teams who build on FlaskHub for their most critical API workloads."),
		CTAStart:         localizeWithFallback(loc, "cta.start", "Start Building Now"),
		CTAFork:          localizeWithFallback(loc, "cta.fork", "Fork on GitHub"),
		FooterLine:       localizeWithFallback(loc, "footer.line", "© 2026 FLASK_HUB // ENGINE • 23/30 DISPATCHED"),
		NotFoundHeading:  localizeWithFallback(loc, "error.not_found_heading", "Nothing deployed here"),
		NotFoundBody:     localizeWithFallback(loc, "error.not_found_body", "The page you requested does not exist."),
		NotFoundBackHome: localizeWithFallback(loc, "error.back_home", "Back to home"),
		LanguageOptions:  languageOptions(loc, tag),
	}
}

func normalizeTag(tag language.Tag) language.Tag {
	return platformi18n.MatchTags([]language.Tag{tag})
}

func languageOptions(loc *message.Printer, active language.Tag) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		key := "lang." + strings.ToLower(strings.ReplaceAll(tag.String(), "-", "_"))
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  localizeWithFallback(loc, key, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

func withProductSuffix(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return branding.AppName
	}
	return fmt.Sprintf("%s | %s", trimmed, branding.AppName)
}

// localizeWithFallback returns the catalog message for key, or fallback when
// the key has no translation. Neither key nor fallback is a format string.
func localizeWithFallback(loc *message.Printer, key string, fallback string) string {
	if loc != nil {
		if value := strings.TrimSpace(loc.Sprintf(message.Key(key, ""))); value != "" {
			return value
		}
	}
	return fallback
}
