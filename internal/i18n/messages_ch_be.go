package i18n

// berneseGermanMessages contains all Bernese Swiss German (Bärndütsch) translations
var berneseGermanMessages = map[string]string{
	// Error messages
	"error.lookup_failed": "Ha d Resultat nid chönne hole: %s",

	// Result output
	"output.input_url":         "Igabe-URL: %s",
	"output.detected_platform": "Erkannti Plattform: %s",
	"output.input_details":     "Igabe-Details:",
	"format.input_id":          "  ID: %s",
	"format.input_platform":    "  Plattform: %s",
	"format.input_type":        "  Typ: %s",
	"output.page_url":          "SongLink-Syte: %s",
	"output.links_header":      "Links vo verschidene Plattforme:",
	"output.details_header":    "Details vo verschidene Plattforme:",
	"output.not_available":     "<NA>",
	"output.platforms_header":  "Das si aui Plattforme, wo Odesli unterstützt:",

	// Entity details
	"format.title":     "    Titu: %s",
	"format.artists":   "    Künschtler: %s",
	"format.thumbnail": "    Vorschoubiud(%dx%d): %s",
}
