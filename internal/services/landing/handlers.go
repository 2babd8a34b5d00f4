package landing

import (
	"net/http"
	"strings"

	"github.com/flaskhub/landing/internal/services/landing/content"
	"github.com/flaskhub/landing/internal/services/landing/i18n"
	apperrors "github.com/flaskhub/landing/internal/services/landing/platform/errors"
	"github.com/flaskhub/landing/internal/services/landing/platform/httpx"
	"github.com/flaskhub/landing/internal/services/landing/platform/pagerender"
	"github.com/flaskhub/landing/internal/services/landing/render"
	"github.com/flaskhub/landing/internal/services/landing/routepath"
	"github.com/flaskhub/landing/internal/services/landing/static"
	"github.com/flaskhub/landing/internal/services/landing/templates"
)

var allowPage = httpx.AllowMethods(http.MethodGet, http.MethodHead)

var errPageNotFound = apperrors.E(apperrors.KindNotFound, "page not found")

func (h *handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		h.handleNotFound(w, r)
		return
	}
	allowPage(http.HandlerFunc(h.handleLanding)).ServeHTTP(w, r)
}

func (h *handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	copy := i18n.ResolveCopy(w, r)
	pagerender.WritePage(w, r, landingPage(copy, h.config.AssetBaseURL, h.collections))
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	copy := i18n.ResolveCopy(w, r)
	pagerender.WritePage(w, r, notFoundPage(copy, h.config.AssetBaseURL))
}

// DefaultAPIVersion is reported by /health when no version is configured.
const DefaultAPIVersion = "v1"

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	version := strings.TrimSpace(h.config.APIVersion)
	if version == "" {
		version = DefaultAPIVersion
	}
	_ = httpx.WriteJSON(w, http.StatusOK, healthStatus{Status: "healthy", Version: version})
}

func (h *handler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// staticHandler serves embedded files and sends directory requests to the
// localized 404 instead of a listing.
func (h *handler) staticHandler() http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, routepath.StaticPrefix)
		if name == "" || strings.HasSuffix(name, "/") {
			h.handleNotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// landingPage is shared by the HTTP handler and the static export so both
// produce the same document.
func landingPage(copy i18n.Copy, assetBaseURL string, collections content.Collections) pagerender.Page {
	return pagerender.Page{
		Layout: templates.LayoutOptions{
			Title:           copy.LandingTitle,
			MetaDescription: copy.MetaDescription,
			Lang:            copy.Lang,
			AssetBaseURL:    assetBaseURL,
		},
		Body: render.Page(copy, collections),
	}
}

func notFoundPage(copy i18n.Copy, assetBaseURL string) pagerender.Page {
	return pagerender.Page{
		Layout: templates.LayoutOptions{
			Title:        copy.NotFoundTitle,
			Lang:         copy.Lang,
			AssetBaseURL: assetBaseURL,
		},
		StatusCode: apperrors.HTTPStatus(errPageNotFound),
		Body:       render.NotFoundPage(copy),
	}
}
