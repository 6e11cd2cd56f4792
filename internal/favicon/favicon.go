// Package favicon resolves the icon to display for an app.
package favicon

import (
	"fmt"
	"net/url"

	"github.com/simeonrst/apphub/internal/model"
)

// Placeholder is the static glyph shown when no favicon can be derived.
const Placeholder = `data:image/svg+xml,<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64"><rect width="100%" height="100%" fill="%2314182a"/><text x="50%" y="54%" font-size="36" text-anchor="middle" fill="%239ca3af">⚙️</text></svg>`

// serviceURL is the favicon lookup endpoint, keyed by site origin.
const serviceURL = "https://www.google.com/s2/favicons?sz=64&domain=%s"

// IconURL returns the icon for an app: an explicit icon wins, otherwise a
// 64px favicon derived from the URL's origin, otherwise the placeholder.
func IconURL(app model.App) string {
	if app.Icon != "" {
		return app.Icon
	}
	return ForURL(app.URL)
}

// ForURL derives the favicon service URL for rawURL's origin. Unparseable
// URLs fall back to the placeholder glyph.
func ForURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Placeholder
	}
	origin := u.Scheme + "://" + u.Host
	return fmt.Sprintf(serviceURL, url.QueryEscape(origin))
}
