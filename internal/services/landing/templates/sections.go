package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/flaskhub/landing/internal/platform/branding"
	"github.com/flaskhub/landing/internal/platform/icons"
	"github.com/flaskhub/landing/internal/services/landing/i18n"
)

// Wordmark renders the rocket mark and product name.
func Wordmark(class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		plain, accent := branding.Wordmark()
		m := newMarkup(ctx, w)
		m.raw(`<span`)
		m.attr("class", joinClasses("wordmark", class))
		m.raw(`><span class="wordmark__mark">`)
		m.component(Icon(icons.Rocket, "text-flask"))
		m.raw(`</span><span class="wordmark__name">`)
		m.text(plain)
		m.raw(`<span class="text-flask">`)
		m.text(accent)
		m.raw(`</span></span></span>`)
		return m.done()
	})
}

// Nav renders the sticky top bar around the projected nav links.
func Nav(copy i18n.Copy, links []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<nav class="site-nav"`)
		m.attr("aria-label", copy.NavLabel)
		m.raw(`><div class="container site-nav__inner"><a class="site-nav__brand" href="/">`)
		m.component(Wordmark(""))
		m.raw(`</a><div class="site-nav__links">`)
		m.components(links)
		m.raw(`</div><div class="site-nav__actions">`)
		m.component(LanguageSwitcher(copy))
		m.raw(`<button type="button" class="btn btn--primary btn--pill">`)
		m.text(copy.NavCTA)
		m.raw(`</button></div></div></nav>`)
		return m.done()
	})
}

// LanguageSwitcher links to the page in every supported locale.
func LanguageSwitcher(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<ul class="lang-switcher"`)
		m.attr("aria-label", copy.LanguageLabel)
		m.raw(`>`)
		for _, option := range copy.LanguageOptions {
			m.raw(`<li><a`)
			m.attr("href", i18n.LanguageURL("/", option.Tag))
			m.attr("hreflang", option.Tag)
			if option.Active {
				m.raw(` aria-current="true"`)
			}
			m.raw(`>`)
			m.text(option.Label)
			m.raw(`</a></li>`)
		}
		m.raw(`</ul>`)
		return m.done()
	})
}

// Hero renders the headline, calls to action, and decorative code card.
func Hero(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="hero"><div class="hero__copy animate-slide-in">`)
		m.raw(`<div class="badge glass-panel"><span class="pulse-dot" aria-hidden="true"></span><span>`)
		m.text(copy.HeroBadge)
		m.raw(`</span></div><h1 class="hero__headline">`)
		m.text(copy.HeroHeadlineLead)
		m.raw(`<br><span class="text-flask">`)
		m.text(copy.HeroHeadlineMark)
		m.raw(`</span><br>`)
		m.text(copy.HeroHeadlineTail)
		m.raw(`</h1><p class="hero__lead">`)
		m.text(copy.HeroLead)
		m.raw(`</p><div class="hero__actions"><button type="button" class="btn btn--primary btn--lg">`)
		m.text(copy.HeroDeploy)
		m.component(Icon(icons.Send, "icon--sm"))
		m.raw(`</button><button type="button" class="btn btn--ghost btn--lg glass-panel">`)
		m.component(Icon(icons.Terminal, "icon--sm"))
		m.text(copy.HeroViewDocs)
		m.raw(`</button></div></div>`)
		m.component(CodeCard(copy))
		m.raw(`</section>`)
		return m.done()
	})
}

// CodeCard is the decorative terminal window beside the hero copy.
func CodeCard(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<div class="code-card animate-scale-in" aria-hidden="true"><div class="glass-panel neon-border">`)
		m.raw(`<div class="code-card__chrome"><span class="dot dot--red"></span><span class="dot dot--yellow"></span><span class="dot dot--green"></span></div>`)
		m.raw(`<pre class="code-card__body"><code>`)
		m.raw(`<span class="tok-comment"># main.py</span>` + "\n")
		m.raw(`<span class="tok-keyword">from</span> flask_hub <span class="tok-keyword">import</span> Flask, API` + "\n\n")
		m.raw(`app = Flask(__name__)` + "\n")
		m.raw(`api = API(app, version=<span class="tok-string">"v4.0"</span>)` + "\n\n")
		m.raw(`<span class="tok-keyword">@api.route</span>(<span class="tok-string">'/v1/metrics'</span>)` + "\n")
		m.raw(`<span class="tok-keyword">async def</span> <span class="tok-string">get_metrics</span>():` + "\n")
		m.raw(`    stats = <span class="tok-keyword">await</span> api.get_telemetry()` + "\n")
		m.raw(`    <span class="tok-keyword">return</span> stats` + "\n\n")
		m.raw(`<span class="tok-comment">// Processing metrics in 0.04ms</span>`)
		m.raw(`</code></pre></div><div class="floating-card glass-panel neon-border animate-bounce">`)
		m.raw(`<div class="floating-card__status"><span class="floating-card__check">`)
		m.component(Icon(icons.Check, "icon--sm text-emerald"))
		m.raw(`</span><span>`)
		m.text(copy.HeroSSLVerified)
		m.raw(`</span></div><div class="floating-card__endpoint">`)
		m.text(copy.HeroEndpoint + ": " + branding.SiteHost + "/v4/auth")
		m.raw(`</div></div></div>`)
		return m.done()
	})
}

// StatsSection lays out the projected stat tiles.
func StatsSection(copy i18n.Copy, tiles []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="stats"`)
		m.attr("aria-label", copy.StatsLabel)
		m.raw(`><dl class="stats__grid">`)
		m.components(tiles)
		m.raw(`</dl></section>`)
		return m.done()
	})
}

// FeaturesSection lays out the projected feature cards under a heading.
func FeaturesSection(copy i18n.Copy, cards []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="features"><header class="section-heading"><h2>`)
		m.text(copy.FeaturesHeading)
		m.raw(` <span class="text-flask">`)
		m.text(copy.FeaturesMark)
		m.raw(`</span></h2><div class="section-heading__rule"></div></header><div class="features__grid">`)
		m.components(cards)
		m.raw(`</div></section>`)
		return m.done()
	})
}

// CallToAction renders the closing sign-up panel.
func CallToAction(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<section class="cta"><div class="cta__panel glass-panel"><div class="cta__glow" aria-hidden="true"></div><h2 class="cta__heading">`)
		m.text(copy.CTAHeadingLead)
		m.raw(`<br><span class="text-flask underline-flask">`)
		m.text(copy.CTAHeadingMark)
		m.raw(`</span> `)
		m.text(copy.CTAHeadingTail)
		m.raw(`</h2><p class="cta__body">`)
		m.text(copy.CTABody)
		m.raw(`</p><div class="cta__actions"><button type="button" class="btn btn--primary btn--lg btn--caps">`)
		m.text(copy.CTAStart)
		m.raw(`</button><button type="button" class="btn btn--ghost btn--lg glass-panel">`)
		m.component(Icon(icons.GitHub, ""))
		m.text(copy.CTAFork)
		m.raw(`</button></div></div></section>`)
		return m.done()
	})
}

// Footer renders the brand and status line.
func Footer(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<footer class="site-footer"><div class="container site-footer__inner">`)
		m.component(Wordmark("wordmark--muted"))
		m.raw(`<p class="site-footer__line">`)
		m.text(copy.FooterLine)
		m.raw(`</p></div></footer>`)
		return m.done()
	})
}

// NotFound is the body of the 404 page.
func NotFound(copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		m.raw(`<main class="container not-found"><section class="glass-panel not-found__panel"><h1>`)
		m.text(copy.NotFoundHeading)
		m.raw(`</h1><p>`)
		m.text(copy.NotFoundBody)
		m.raw(`</p><a class="btn btn--primary" href="/">`)
		m.text(copy.NotFoundBackHome)
		m.raw(`</a></section></main>`)
		return m.done()
	})
}
