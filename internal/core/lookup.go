package core

import (
	"context"
	"errors"
	"strings"

	"odesli/pkg/odesli"
)

// Lookup modes, used as log fields and metric labels.
const (
	ModeURL = "url"
	ModeID  = "id"
)

// Lookup is one request to the links endpoint, either by URL or by
// platform-specific ID.
type Lookup struct {
	URL      string
	ID       string
	Platform odesli.Platform
	Type     odesli.EntityType
}

// NewURLLookup creates a lookup by streaming URL.
func NewURLLookup(rawURL string) *Lookup {
	return &Lookup{URL: strings.TrimSpace(rawURL)}
}

// NewIDLookup creates a lookup by ID, parsing the platform and entity type
// from their wire tokens.
func NewIDLookup(id, platform, entityType string) (*Lookup, error) {
	p, err := odesli.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}
	t, err := odesli.ParseEntityType(entityType)
	if err != nil {
		return nil, err
	}
	return &Lookup{ID: strings.TrimSpace(id), Platform: p, Type: t}, nil
}

// Mode reports whether the lookup is by URL or by ID.
func (l *Lookup) Mode() string {
	if l.URL != "" {
		return ModeURL
	}
	return ModeID
}

// Validate checks that exactly one of URL and ID is set and that an ID
// lookup names a known platform and entity type.
func (l *Lookup) Validate() error {
	switch {
	case l.URL != "" && l.ID != "":
		return errors.New("either url or id must be given, not both")
	case l.URL == "" && l.ID == "":
		return errors.New("either url or id is required")
	case l.URL != "":
		return nil
	}

	if !l.Platform.IsValid() {
		return &odesli.UnknownPlatformError{Value: l.Platform.String()}
	}
	if !l.Type.IsValid() {
		return &odesli.UnknownEntityTypeError{Value: l.Type.String()}
	}
	return nil
}

// Do validates the lookup and performs it with client.
func (l *Lookup) Do(ctx context.Context, client *odesli.Client) (*odesli.LinksAPIResult, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Mode() == ModeURL {
		return client.GetByURL(ctx, l.URL)
	}
	return client.GetByID(ctx, l.ID, l.Platform, l.Type)
}
