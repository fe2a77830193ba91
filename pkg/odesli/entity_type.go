package odesli

// EntityType tells whether an entity is a song or an album.
type EntityType int

const (
	Song EntityType = iota
	Album
)

var entityTypeTable = [...]string{
	Song:  "song",
	Album: "album",
}

// EntityTypes returns every entity type in declaration order.
func EntityTypes() []EntityType {
	return []EntityType{Song, Album}
}

// ParseEntityType accepts "song" or "album".
func ParseEntityType(s string) (EntityType, error) {
	for i, wire := range entityTypeTable {
		if wire == s {
			return EntityType(i), nil
		}
	}
	return 0, &UnknownEntityTypeError{Value: s}
}

// IsValid reports whether t is a member of the enumeration.
func (t EntityType) IsValid() bool {
	return t >= 0 && int(t) < len(entityTypeTable)
}

func (t EntityType) String() string {
	if !t.IsValid() {
		return "EntityType(invalid)"
	}
	return entityTypeTable[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t EntityType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, &UnknownEntityTypeError{Value: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EntityType) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
