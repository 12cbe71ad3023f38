// Package geo builds map overlays from domain coordinates.
package geo

import (
	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Point converts a coordinate into orb's lon/lat order.
func Point(c entity.Coordinate) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Distance is the great-circle distance in meters.
func Distance(a, b entity.Coordinate) float64 {
	return orbgeo.Distance(Point(a), Point(b))
}

// Circle approximates a great-circle disc around center with steps vertices.
// The ring is closed: the first vertex is repeated at the end.
func Circle(center entity.Coordinate, radiusMeters float64, steps int) orb.Polygon {
	if steps < 3 {
		steps = 3
	}

	origin := Point(center)
	ring := make(orb.Ring, 0, steps+1)
	for i := 0; i < steps; i++ {
		bearing := 360 * float64(i) / float64(steps)
		ring = append(ring, orbgeo.PointAtBearingAndDistance(origin, bearing, radiusMeters))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// RadiusFeature is the "you are here" radius overlay.
func RadiusFeature(center entity.Coordinate, radiusMeters float64, steps int) *geojson.Feature {
	feature := geojson.NewFeature(Circle(center, radiusMeters, steps))
	feature.Properties["kind"] = "radius"
	feature.Properties["radius_m"] = radiusMeters

	return feature
}

// PinFeatures renders pins as point features, preserving order.
func PinFeatures(pins []entity.Pin) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, pin := range pins {
		feature := geojson.NewFeature(Point(pin.Coordinate()))
		feature.ID = pin.ID
		feature.Properties["title"] = pin.Title
		if pin.Store != nil {
			feature.Properties["owner_name"] = pin.Store.OwnerName
			feature.Properties["photo_url"] = pin.Store.OwnerPhotoURL
		}
		fc.Append(feature)
	}

	return fc
}
