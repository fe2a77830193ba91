// Package render writes lookup results and errors for terminal output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"odesli/internal/core"
	"odesli/internal/i18n"
	"odesli/pkg/musiclink"
	"odesli/pkg/odesli"
)

const separator = "---"

// Input echoes what was looked up, ahead of the human-readable result.
func Input(w io.Writer, lookup *core.Lookup, localizer *i18n.Localizer) error {
	var b strings.Builder

	if lookup.Mode() == core.ModeURL {
		b.WriteString(localizer.T("output.input_url", lookup.URL) + "\n")
		if platform, ok := musiclink.NewManager().Detect(lookup.URL); ok {
			b.WriteString(localizer.T("output.detected_platform", platform.Name()) + "\n")
		}
	} else {
		b.WriteString(localizer.T("output.input_details") + "\n")
		b.WriteString(localizer.T("format.input_id", lookup.ID) + "\n")
		b.WriteString(localizer.T("format.input_platform", lookup.Platform.Name()) + "\n")
		b.WriteString(localizer.T("format.input_type", cases.Title(language.English).String(lookup.Type.String())) + "\n")
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Human writes result as the page URL, one line per platform link and a
// details block per returned entity. Platforms follow declaration order.
func Human(w io.Writer, result *odesli.LinksAPIResult, localizer *i18n.Localizer) error {
	var b strings.Builder
	na := localizer.T("output.not_available")

	b.WriteString(localizer.T("output.page_url", result.PageURL) + "\n")

	b.WriteString("\n" + separator + "\n")
	b.WriteString(localizer.T("output.links_header") + "\n")
	for _, platform := range result.SortedPlatforms() {
		link := result.LinksByPlatform[platform]
		fmt.Fprintf(&b, "  %s (%s): %s\n", platform.Name(), link.EntityUniqueID, link.URL)
	}
	b.WriteString(separator + "\n")

	b.WriteString("\n" + separator + "\n")
	b.WriteString(localizer.T("output.details_header") + "\n")
	for _, entity := range orderedEntities(result) {
		fmt.Fprintf(&b, "\n  %s:\n", entity.APIProvider.Name())
		b.WriteString(localizer.T("format.title", orNA(entity.Title, na)) + "\n")
		b.WriteString(localizer.T("format.artists", orNA(entity.ArtistName, na)) + "\n")
		if entity.HasThumbnail() {
			b.WriteString(localizer.T("format.thumbnail",
				entity.ThumbnailWidth, entity.ThumbnailHeight, entity.ThumbnailURL) + "\n")
		} else {
			b.WriteString(localizer.T("format.thumbnail", 0, 0, na) + "\n")
		}
	}
	b.WriteString(separator + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes result as indented JSON using the API's field names.
func JSON(w io.Writer, result *odesli.LinksAPIResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Error reports a failed lookup. In JSON mode the message goes to stderr and
// the raw upstream body, when one was captured, to stdout so it can be piped.
// Otherwise the message goes to stdout.
func Error(stdout, stderr io.Writer, lookupErr error, jsonMode bool, localizer *i18n.Localizer) error {
	message := localizer.T("error.lookup_failed", lookupErr.Error()) + "\n"

	if !jsonMode {
		_, err := io.WriteString(stdout, message)
		return err
	}

	if _, err := io.WriteString(stderr, message); err != nil {
		return err
	}
	if body, ok := odesli.RawBody(lookupErr); ok {
		_, err := io.WriteString(stdout, body+"\n")
		return err
	}
	return nil
}

// Platforms writes the numbered list of supported platforms.
func Platforms(w io.Writer, localizer *i18n.Localizer) error {
	var b strings.Builder

	b.WriteString(localizer.T("output.platforms_header") + "\n\n")
	for i, platform := range odesli.Platforms() {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, platform.Name(), platform.String())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// orderedEntities lists entities referenced by links first, in platform
// order, followed by any unreferenced ones sorted by unique ID.
func orderedEntities(result *odesli.LinksAPIResult) []odesli.Entity {
	seen := make(map[string]bool, len(result.EntitiesByUniqueID))
	entities := make([]odesli.Entity, 0, len(result.EntitiesByUniqueID))

	for _, platform := range result.SortedPlatforms() {
		id := result.LinksByPlatform[platform].EntityUniqueID
		entity, ok := result.EntitiesByUniqueID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entities = append(entities, entity)
	}

	var rest []string
	for id := range result.EntitiesByUniqueID {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		entities = append(entities, result.EntitiesByUniqueID[id])
	}

	return entities
}

func orNA(value, na string) string {
	if value == "" {
		return na
	}
	return value
}
