package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry represents one DevFest redirect record. The slug doubles as the
// store key; stored payloads may omit it, in which case it is backfilled
// from the key the value was retrieved under (see DecodeEntry).
type Entry struct {
	Slug           string   `json:"slug"`
	DestinationURL string   `json:"destinationUrl"`
	DevfestName    string   `json:"devfestName,omitempty"`
	DevfestDate    string   `json:"devfestDate,omitempty"`
	City           string   `json:"city,omitempty"`
	CountryName    string   `json:"countryName,omitempty"`
	CountryCode    string   `json:"countryCode,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	GDGChapter     string   `json:"gdgChapter,omitempty"`
	GDGURL         string   `json:"gdgUrl,omitempty"`
	UpdatedBy      string   `json:"updatedBy,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// DisplayName returns the event name, falling back to "DevFest <city>" or
// "DevFest <slug>" when no name was stored.
func (e *Entry) DisplayName() string {
	if e.DevfestName != "" {
		return e.DevfestName
	}
	if e.City != "" {
		return "DevFest " + e.City
	}
	return "DevFest " + e.Slug
}

// IsLocated reports whether the entry carries a usable coordinate pair.
// Out-of-range coordinates count as absent so a bad record degrades to
// unlocated instead of skewing the map.
func (e *Entry) IsLocated() bool {
	if e.Latitude == nil || e.Longitude == nil {
		return false
	}
	return *e.Latitude >= -90 && *e.Latitude <= 90 &&
		*e.Longitude >= -180 && *e.Longitude <= 180
}

// Coordinate returns the entry's location. Only meaningful when IsLocated
// is true.
func (e *Entry) Coordinate() Coordinate {
	var c Coordinate
	if e.Latitude != nil {
		c.Lat = *e.Latitude
	}
	if e.Longitude != nil {
		c.Lng = *e.Longitude
	}
	return c
}

// DecodeEntry parses a raw stored value into an Entry. Values are accepted
// in two shapes: a JSON object, or a JSON string containing that object
// (older seed tooling stringified the record before storing it). A record
// without a slug inherits the store key as its identity. Records without a
// destination URL are malformed and rejected with ErrMalformedRecord.
func DecodeEntry(raw []byte, key string) (*Entry, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrMalformedRecord)
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		data = []byte(inner)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if e.Slug == "" {
		e.Slug = key
	}
	if e.DestinationURL == "" {
		return nil, fmt.Errorf("%w: missing destinationUrl for %q", ErrMalformedRecord, e.Slug)
	}
	return &e, nil
}
