package domain

import (
	"math"
	"sort"
)

// Coordinate is a WGS-84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// RankedEntry is an entry with its great-circle distance from the observer,
// kept for display and debugging.
type RankedEntry struct {
	Entry      *Entry  `json:"entry"`
	DistanceKm float64 `json:"distanceKm"`
}

const earthRadiusKm = 6371

// DefaultNearestK is how many events the map highlights around the observer.
const DefaultNearestK = 5

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers, on a sphere of radius 6371 km.
func HaversineKm(from, to Coordinate) float64 {
	dLat := toRadians(to.Lat - from.Lat)
	dLng := toRadians(to.Lng - from.Lng)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Lat))*math.Cos(toRadians(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Nearest returns the k located entries closest to the observer, ascending
// by distance. Ties keep input order. Unlocated entries are skipped. k <= 0
// falls back to DefaultNearestK.
func Nearest(observer Coordinate, entries []*Entry, k int) []RankedEntry {
	if k <= 0 {
		k = DefaultNearestK
	}
	ranked := make([]RankedEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsLocated() {
			continue
		}
		ranked = append(ranked, RankedEntry{
			Entry:      e,
			DistanceKm: HaversineKm(observer, e.Coordinate()),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// BoundingCenter returns the arithmetic mean of the located entries'
// coordinates, used to center a map when no observer coordinate exists.
// The second return is false when no entry is located.
func BoundingCenter(entries []*Entry) (Coordinate, bool) {
	var sumLat, sumLng float64
	n := 0
	for _, e := range entries {
		if !e.IsLocated() {
			continue
		}
		c := e.Coordinate()
		sumLat += c.Lat
		sumLng += c.Lng
		n++
	}
	if n == 0 {
		return Coordinate{}, false
	}
	return Coordinate{Lat: sumLat / float64(n), Lng: sumLng / float64(n)}, true
}
