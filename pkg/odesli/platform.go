package odesli

// Platform is a consumer-facing storefront or streaming surface known to Odesli.
type Platform int

// Platforms as defined in the Odesli API documentation.
const (
	Spotify Platform = iota
	ITunes
	AppleMusic
	YouTube
	YouTubeMusic
	Google
	GoogleStore
	Pandora
	Deezer
	Tidal
	AmazonStore
	AmazonMusic
	SoundCloud
	Napster
	Yandex
	Spinrilla
	Audius
	Anghami
	Boomplay
	Audiomack
	Bandcamp
)

type enumEntry struct {
	wire string
	name string
}

// platformTable maps each Platform to its wire token and display name.
// Wire tokens follow the API's casing, which does not match Go naming.
var platformTable = [...]enumEntry{
	Spotify:      {"spotify", "Spotify"},
	ITunes:       {"itunes", "iTunes"},
	AppleMusic:   {"appleMusic", "AppleMusic"},
	YouTube:      {"youtube", "YouTube"},
	YouTubeMusic: {"youtubeMusic", "YouTubeMusic"},
	Google:       {"google", "Google"},
	GoogleStore:  {"googleStore", "GoogleStore"},
	Pandora:      {"pandora", "Pandora"},
	Deezer:       {"deezer", "Deezer"},
	Tidal:        {"tidal", "Tidal"},
	AmazonStore:  {"amazonStore", "AmazonStore"},
	AmazonMusic:  {"amazonMusic", "AmazonMusic"},
	SoundCloud:   {"soundcloud", "SoundCloud"},
	Napster:      {"napster", "Napster"},
	Yandex:       {"yandex", "Yandex"},
	Spinrilla:    {"spinrilla", "Spinrilla"},
	Audius:       {"audius", "Audius"},
	Anghami:      {"anghami", "Anghami"},
	Boomplay:     {"boomplay", "Boomplay"},
	Audiomack:    {"audiomack", "Audiomack"},
	Bandcamp:     {"bandcamp", "Bandcamp"},
}

var platformsByWire = func() map[string]Platform {
	m := make(map[string]Platform, len(platformTable))
	for i, e := range platformTable {
		m[e.wire] = Platform(i)
	}
	return m
}()

// Platforms returns every supported platform in declaration order.
func Platforms() []Platform {
	out := make([]Platform, len(platformTable))
	for i := range platformTable {
		out[i] = Platform(i)
	}
	return out
}

// ParsePlatform converts a wire token such as "appleMusic" into a Platform.
func ParsePlatform(s string) (Platform, error) {
	if p, ok := platformsByWire[s]; ok {
		return p, nil
	}
	return 0, &UnknownPlatformError{Value: s}
}

// IsValid reports whether p is a member of the enumeration.
func (p Platform) IsValid() bool {
	return p >= 0 && int(p) < len(platformTable)
}

// String returns the wire token used by the API.
func (p Platform) String() string {
	if !p.IsValid() {
		return "Platform(invalid)"
	}
	return platformTable[p].wire
}

// Name returns the display name, e.g. "iTunes" for ITunes.
func (p Platform) Name() string {
	if !p.IsValid() {
		return "Platform(invalid)"
	}
	return platformTable[p].name
}

// MarshalText implements encoding.TextMarshaler. It lets Platform serve as a JSON map key.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, &UnknownPlatformError{Value: p.String()}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// APIProvider is the backend content source powering one or more platforms.
type APIProvider int

// API providers as defined in the Odesli API documentation.
const (
	ProviderSpotify APIProvider = iota
	ProviderITunes
	ProviderYouTube
	ProviderGoogle
	ProviderPandora
	ProviderDeezer
	ProviderTidal
	ProviderAmazon
	ProviderSoundCloud
	ProviderNapster
	ProviderYandex
	ProviderSpinrilla
	ProviderAudius
	ProviderAnghami
	ProviderBoomplay
	ProviderAudiomack
	ProviderBandcamp
)

var providerTable = [...]enumEntry{
	ProviderSpotify:    {"spotify", "Spotify"},
	ProviderITunes:     {"itunes", "iTunes"},
	ProviderYouTube:    {"youtube", "YouTube"},
	ProviderGoogle:     {"google", "Google"},
	ProviderPandora:    {"pandora", "Pandora"},
	ProviderDeezer:     {"deezer", "Deezer"},
	ProviderTidal:      {"tidal", "Tidal"},
	ProviderAmazon:     {"amazon", "Amazon"},
	ProviderSoundCloud: {"soundcloud", "SoundCloud"},
	ProviderNapster:    {"napster", "Napster"},
	ProviderYandex:     {"yandex", "Yandex"},
	ProviderSpinrilla:  {"spinrilla", "Spinrilla"},
	ProviderAudius:     {"audius", "Audius"},
	ProviderAnghami:    {"anghami", "Anghami"},
	ProviderBoomplay:   {"boomplay", "Boomplay"},
	ProviderAudiomack:  {"audiomack", "Audiomack"},
	ProviderBandcamp:   {"bandcamp", "Bandcamp"},
}

var providersByWire = func() map[string]APIProvider {
	m := make(map[string]APIProvider, len(providerTable))
	for i, e := range providerTable {
		m[e.wire] = APIProvider(i)
	}
	return m
}()

// APIProviders returns every supported API provider in declaration order.
func APIProviders() []APIProvider {
	out := make([]APIProvider, len(providerTable))
	for i := range providerTable {
		out[i] = APIProvider(i)
	}
	return out
}

// ParseAPIProvider converts a wire token such as "amazon" into an APIProvider.
func ParseAPIProvider(s string) (APIProvider, error) {
	if p, ok := providersByWire[s]; ok {
		return p, nil
	}
	return 0, &UnknownAPIProviderError{Value: s}
}

// IsValid reports whether p is a member of the enumeration.
func (p APIProvider) IsValid() bool {
	return p >= 0 && int(p) < len(providerTable)
}

// String returns the wire token used by the API.
func (p APIProvider) String() string {
	if !p.IsValid() {
		return "APIProvider(invalid)"
	}
	return providerTable[p].wire
}

// Name returns the display name.
func (p APIProvider) Name() string {
	if !p.IsValid() {
		return "APIProvider(invalid)"
	}
	return providerTable[p].name
}

// MarshalText implements encoding.TextMarshaler.
func (p APIProvider) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, &UnknownAPIProviderError{Value: p.String()}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *APIProvider) UnmarshalText(text []byte) error {
	parsed, err := ParseAPIProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
