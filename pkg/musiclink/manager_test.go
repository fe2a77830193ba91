package musiclink

import (
	"testing"

	"odesli/pkg/odesli"
)

func TestManager_Detect(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		name     string
		url      string
		expected odesli.Platform
	}{
		{"Spotify track", "https://open.spotify.com/track/4cOdK2wGLETKBW3PvgPWqT", odesli.Spotify},
		{"Spotify URI", "spotify:track:4cOdK2wGLETKBW3PvgPWqT", odesli.Spotify},
		{"Spotify short link", "https://spotify.link/abc", odesli.Spotify},
		{"Apple Music album", "https://music.apple.com/us/album/test/123?i=456", odesli.AppleMusic},
		{"Legacy iTunes", "https://itunes.apple.com/us/album/id123", odesli.ITunes},
		{"YouTube Music", "https://music.youtube.com/watch?v=dQw4w9WgXcQ", odesli.YouTubeMusic},
		{"YouTube standard", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", odesli.YouTube},
		{"YouTube mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", odesli.YouTube},
		{"YouTube short", "https://youtu.be/dQw4w9WgXcQ", odesli.YouTube},
		{"Google Play", "https://play.google.com/store/music/album?id=B1", odesli.GoogleStore},
		{"Deezer", "https://www.deezer.com/track/3135556", odesli.Deezer},
		{"Tidal listen", "https://listen.tidal.com/track/12345678", odesli.Tidal},
		{"Tidal browse", "https://tidal.com/browse/track/87654321", odesli.Tidal},
		{"Amazon Music UK", "https://music.amazon.co.uk/albums/B08X123456", odesli.AmazonMusic},
		{"Amazon store", "https://www.amazon.com/dp/B08X123456", odesli.AmazonStore},
		{"SoundCloud", "https://soundcloud.com/artist/track", odesli.SoundCloud},
		{"SoundCloud short", "https://on.soundcloud.com/xyz", odesli.SoundCloud},
		{"Yandex", "https://music.yandex.ru/album/1/track/2", odesli.Yandex},
		{"Audius", "https://audius.co/artist/track", odesli.Audius},
		{"Anghami", "https://play.anghami.com/song/123", odesli.Anghami},
		{"Boomplay", "https://www.boomplay.com/songs/123", odesli.Boomplay},
		{"Audiomack", "https://audiomack.com/artist/song/x", odesli.Audiomack},
		{"Bandcamp subdomain", "https://artist.bandcamp.com/track/song", odesli.Bandcamp},
		{"Uppercase host", "HTTPS://OPEN.SPOTIFY.COM/track/1", odesli.Spotify},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := manager.Detect(tt.url)
			if !ok {
				t.Fatalf("Detect(%q) found no platform", tt.url)
			}
			if got != tt.expected {
				t.Errorf("Detect(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestManager_CanResolve(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"Known platform", "https://open.spotify.com/track/123", true},
		{"Unknown domain", "https://example.com", false},
		{"Lookalike domain", "https://notspotify.com/track/1", false},
		{"Amazon lookalike", "https://amazonian.example/x", false},
		{"Empty string", "", false},
		{"Malformed URL", "not-a-url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := manager.CanResolve(tt.url); got != tt.expected {
				t.Errorf("CanResolve() = %v, want %v", got, tt.expected)
			}
		})
	}
}
