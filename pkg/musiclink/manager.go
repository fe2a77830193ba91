package musiclink

import (
	"net/url"
	"strings"

	"odesli/pkg/odesli"
)

// Manager coordinates the per-platform resolvers.
type Manager struct {
	resolvers []Resolver
}

// NewManager creates a manager with a resolver for every platform that has
// recognizable public links. More specific hosts come first.
func NewManager() *Manager {
	return &Manager{
		resolvers: []Resolver{
			&hostResolver{odesli.Spotify, domains("open.spotify.com", "play.spotify.com", "spotify.link")},
			&hostResolver{odesli.AppleMusic, domains("music.apple.com")},
			&hostResolver{odesli.ITunes, domains("itunes.apple.com")},
			&hostResolver{odesli.YouTubeMusic, exact("music.youtube.com")},
			&hostResolver{odesli.YouTube, domains("youtube.com", "youtu.be")},
			&hostResolver{odesli.GoogleStore, exact("play.google.com")},
			&hostResolver{odesli.Pandora, domains("pandora.com", "pandora.app.link")},
			&hostResolver{odesli.Deezer, domains("deezer.com", "deezer.page.link", "link.deezer.com")},
			&hostResolver{odesli.Tidal, domains("tidal.com")},
			&hostResolver{odesli.AmazonMusic, anyTLD("music.amazon")},
			&hostResolver{odesli.AmazonStore, anyTLD("amazon")},
			&hostResolver{odesli.SoundCloud, domains("soundcloud.com")},
			&hostResolver{odesli.Napster, domains("napster.com")},
			&hostResolver{odesli.Yandex, anyTLD("music.yandex")},
			&hostResolver{odesli.Spinrilla, domains("spinrilla.com")},
			&hostResolver{odesli.Audius, domains("audius.co")},
			&hostResolver{odesli.Anghami, domains("anghami.com")},
			&hostResolver{odesli.Boomplay, domains("boomplay.com")},
			&hostResolver{odesli.Audiomack, domains("audiomack.com")},
			&hostResolver{odesli.Bandcamp, domains("bandcamp.com")},
		},
	}
}

// Detect returns the platform serving rawURL. Spotify URIs such as
// "spotify:track:<id>" are recognized as well.
func (m *Manager) Detect(rawURL string) (odesli.Platform, bool) {
	if u, err := url.Parse(strings.TrimSpace(rawURL)); err == nil && strings.EqualFold(u.Scheme, "spotify") {
		return odesli.Spotify, true
	}

	for _, resolver := range m.resolvers {
		if resolver.CanResolve(rawURL) {
			return resolver.Platform(), true
		}
	}
	return 0, false
}

// CanResolve checks if any resolver can handle the given URL.
func (m *Manager) CanResolve(rawURL string) bool {
	_, ok := m.Detect(rawURL)
	return ok
}
