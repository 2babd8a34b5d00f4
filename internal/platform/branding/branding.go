// Package branding holds product naming shared by every rendered surface.
package branding

// AppName is the product display name.
const AppName = "FlaskHub"

// AppNameAccent is the highlighted suffix of the wordmark ("Flask" + "Hub").
const AppNameAccent = "Hub"

// SiteHost is the decorative API host shown on the landing page.
const SiteHost = "api.flaskhub.co"

// Wordmark splits AppName into its plain and accented parts.
func Wordmark() (plain string, accent string) {
	return AppName[:len(AppName)-len(AppNameAccent)], AppNameAccent
}
