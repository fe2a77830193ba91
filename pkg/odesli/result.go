package odesli

// Link is the match for one platform.
type Link struct {
	// EntityUniqueID is the key of the backing entity in EntitiesByUniqueID.
	EntityUniqueID string `json:"entityUniqueId"`
	URL            string `json:"url"`
	// NativeAppURIMobile opens the entity in the platform's mobile app, if available.
	NativeAppURIMobile string `json:"nativeAppUriMobile,omitempty"`
	// NativeAppURIDesktop opens the entity in the platform's desktop app, if available.
	NativeAppURIDesktop string `json:"nativeAppUriDesktop,omitempty"`
}

// Entity is a song or album as known to one API provider. Optional metadata
// is left at the zero value when the API does not return it.
type Entity struct {
	// ID is the identifier on the provider, not the unique ID used as map key.
	ID              string      `json:"id"`
	Type            EntityType  `json:"type"`
	Title           string      `json:"title,omitempty"`
	ArtistName      string      `json:"artistName,omitempty"`
	ThumbnailURL    string      `json:"thumbnailUrl,omitempty"`
	ThumbnailWidth  uint64      `json:"thumbnailWidth,omitempty"`
	ThumbnailHeight uint64      `json:"thumbnailHeight,omitempty"`
	APIProvider     APIProvider `json:"apiProvider"`
	// Platforms lists the platforms powered by this entity. An iTunes entity
	// usually backs both AppleMusic and ITunes.
	Platforms []Platform `json:"platforms"`
}

// HasThumbnail reports whether URL and dimensions are all known.
func (e Entity) HasThumbnail() bool {
	return e.ThumbnailURL != "" && e.ThumbnailWidth > 0 && e.ThumbnailHeight > 0
}

// LinksAPIResult is the response of the links endpoint.
type LinksAPIResult struct {
	// EntityUniqueID identifies the entity that was queried.
	EntityUniqueID string `json:"entityUniqueId"`
	// UserCountry is the country used to resolve availability. The API
	// defaults it to "US" and may fall back to matches from other locales.
	UserCountry string `json:"userCountry"`
	// PageURL renders the song.link page for this entity.
	PageURL            string            `json:"pageUrl"`
	LinksByPlatform    map[Platform]Link `json:"linksByPlatform"`
	EntitiesByUniqueID map[string]Entity `json:"entitiesByUniqueId"`
}

// PlatformLink returns the link for platform, if the API found a match.
func (r *LinksAPIResult) PlatformLink(platform Platform) (Link, bool) {
	link, ok := r.LinksByPlatform[platform]
	return link, ok
}

// PlatformEntity resolves the entity backing platform's link. A link whose
// entity is missing from the result is reported as not found.
func (r *LinksAPIResult) PlatformEntity(platform Platform) (Entity, bool) {
	link, ok := r.PlatformLink(platform)
	if !ok {
		return Entity{}, false
	}
	entity, ok := r.EntitiesByUniqueID[link.EntityUniqueID]
	return entity, ok
}

// InputEntity returns the entity that was queried.
func (r *LinksAPIResult) InputEntity() (Entity, bool) {
	entity, ok := r.EntitiesByUniqueID[r.EntityUniqueID]
	return entity, ok
}

// SortedPlatforms returns the platforms with a link, in declaration order.
func (r *LinksAPIResult) SortedPlatforms() []Platform {
	out := make([]Platform, 0, len(r.LinksByPlatform))
	for _, p := range Platforms() {
		if _, ok := r.LinksByPlatform[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
