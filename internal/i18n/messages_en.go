package i18n

// englishMessages contains all English translations.
var englishMessages = map[string]string{
	// Error messages
	"error.lookup_failed": "Failed to get results: %s",

	// Result output
	"output.input_url":         "Input URL: %s",
	"output.detected_platform": "Detected Platform: %s",
	"output.input_details":     "Input Details:",
	"format.input_id":          "  ID: %s",
	"format.input_platform":    "  Platform: %s",
	"format.input_type":        "  Type: %s",
	"output.page_url":          "SongLink Page: %s",
	"output.links_header":      "Links From various platforms:",
	"output.details_header":    "Details from various platforms:",
	"output.not_available":     "<NA>",
	"output.platforms_header":  "Here are all the platforms supported by Odesli:",

	// Entity details
	"format.title":     "    Title: %s",
	"format.artists":   "    Artist(s): %s",
	"format.thumbnail": "    Thumbnail(%dx%d): %s",
}
