package i18n

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestForReturnsEnglishCopy(t *testing.T) {
	t.Parallel()

	copy := For(language.MustParse("en-US"))
	if copy.LandingTitle != "Accelerate your Backend Performance | FlaskHub" {
		t.Fatalf("LandingTitle = %q", copy.LandingTitle)
	}
	if copy.CTAStart != "Start Building Now" {
		t.Fatalf("CTAStart = %q", copy.CTAStart)
	}
	if copy.FooterLine != "© 2026 FLASK_HUB // ENGINE • 23/30 DISPATCHED" {
		t.Fatalf("FooterLine = %q", copy.FooterLine)
	}
	if copy.Lang != "en-US" {
		t.Fatalf("Lang = %q, want %q", copy.Lang, "en-US")
	}
}

func TestForReturnsPortugueseCopyForPTBR(t *testing.T) {
	t.Parallel()

	copy := For(language.MustParse("pt-BR"))
	if copy.HeroDeploy != "Publicar API" {
		t.Fatalf("HeroDeploy = %q", copy.HeroDeploy)
	}
	if copy.Lang != "pt-BR" {
		t.Fatalf("Lang = %q, want %q", copy.Lang, "pt-BR")
	}
}

func TestForMapsPortugueseBaseLanguageToPTBR(t *testing.T) {
	t.Parallel()

	copy := For(language.MustParse("pt-PT"))
	if copy.CTAStart != "Comece agora" {
		t.Fatalf("CTAStart = %q", copy.CTAStart)
	}
}

func TestForFallsBackToEnglishForUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	copy := For(language.Japanese)
	if copy.NavCTA != "Get Trial" {
		t.Fatalf("NavCTA = %q", copy.NavCTA)
	}
}

func TestLanguageOptionsMarkActiveLocale(t *testing.T) {
	t.Parallel()

	options := For(language.MustParse("pt-BR")).LanguageOptions
	if len(options) != 2 {
		t.Fatalf("len(LanguageOptions) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("LanguageOptions = %+v, want pt-BR active", options)
	}
	if options[1].Label != "Português (Brasil)" {
		t.Fatalf("pt-BR label = %q", options[1].Label)
	}
}

func TestLocalizeWithFallbackTreatsPercentLiterally(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.MustParse("en-US"))
	if got := localizeWithFallback(loc, "missing.key", "100% uptime"); got != "100% uptime" {
		t.Fatalf("missing key = %q, want %q", got, "100% uptime")
	}
	if got := localizeWithFallback(loc, "lang.%d_broken", "en-US"); got != "en-US" {
		t.Fatalf("percent key = %q, want %q", got, "en-US")
	}
	if got := localizeWithFallback(loc, "cta.start", "fallback"); got != "Start Building Now" {
		t.Fatalf("known key = %q, want %q", got, "Start Building Now")
	}
	if got := localizeWithFallback(nil, "cta.start", "fallback"); got != "fallback" {
		t.Fatalf("nil printer = %q, want %q", got, "fallback")
	}
}
