// Package navigation builds and launches the external intents of the store sheet.
package navigation

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const (
	nativeMapsScheme = "comgooglemaps://"
	webMapsBase      = "https://www.google.com/maps/search/"
	defaultLabel     = "Location"
)

// Directions holds the deep links for one destination.
type Directions struct {
	NativeURL string `json:"native_url"`
	WebURL    string `json:"web_url"`
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeLabel encodes the label as one query value, spaces as %20.
func escapeLabel(label string) string {
	return strings.ReplaceAll(url.QueryEscape(label), "+", "%20")
}

// DirectionsFor builds the native maps link with a web fallback.
func DirectionsFor(coord entity.Coordinate, label string) Directions {
	if label == "" {
		label = defaultLabel
	}
	query := formatCoord(coord.Latitude) + "," + formatCoord(coord.Longitude)

	return Directions{
		NativeURL: nativeMapsScheme + "?q=" + query + "(" + escapeLabel(label) + ")",
		WebURL:    webMapsBase + "?api=1&query=" + query,
	}
}

// DialURL builds the tel: link, dropping whitespace that dialers reject.
func DialURL(phone string) string {
	return "tel:" + strings.Join(strings.Fields(phone), "")
}

// OpenDirections launches the native maps app when some handler accepts the
// scheme and the web map otherwise. A failed native launch also falls back.
// It returns the URL that was opened.
func OpenDirections(ctx context.Context, launcher service.IntentLauncher, coord entity.Coordinate, label string) (string, error) {
	links := DirectionsFor(coord, label)

	if launcher.CanOpen(ctx, links.NativeURL) {
		if err := launcher.Open(ctx, links.NativeURL); err == nil {
			return links.NativeURL, nil
		}
	}

	if err := launcher.Open(ctx, links.WebURL); err != nil {
		return "", err
	}

	return links.WebURL, nil
}

// Dial opens the dialer after a capability check. Without a phone number, or
// without a dialer, nothing is launched and opened is false.
func Dial(ctx context.Context, launcher service.IntentLauncher, phone string) (opened bool, err error) {
	if strings.TrimSpace(phone) == "" {
		return false, nil
	}

	target := DialURL(phone)
	if !launcher.CanOpen(ctx, target) {
		return false, nil
	}
	if err := launcher.Open(ctx, target); err != nil {
		return false, err
	}

	return true, nil
}
