// Package document converts between raw store documents and domain entities.
// Every document crossing the collection boundary is parsed here. Documents
// that carry a field of the wrong type fail with a *MalformedDocumentError.
package document

import (
	"math"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// Store document fields
const (
	FieldOwnerID       = "UID"
	FieldShopName      = "shopName"
	FieldOwnerName     = "ownerName"
	FieldOwnerPhone    = "ownerPhone"
	FieldShopAddress   = "shopAddress"
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldShopStatus    = "shopstatus" // canonical open flag
	FieldOpenShop      = "openshop"   // legacy open flag, read only
	FieldOwnerPhotoURL = "ownerPhotoUrl"
	FieldStorefrontURL = "storefrontUrl"
	FieldProducts      = "products"
	FieldCreatedAt     = "createdAt"
	FieldUpdatedAt     = "updatedAt"
	FieldRelocatedAt   = "relocatedAt"
)

// Product fields
const (
	FieldProductID          = "id"
	FieldProductName        = "name"
	FieldProductPrice       = "price"
	FieldProductDescription = "description"
	FieldProductCreatedAt   = "createdAt"
	fieldProductCreatedMs   = "createdAtMillis"
)

// Favorite document fields
const (
	FieldUserID      = "userId"
	FieldStoreID     = "storeId"
	FieldStoreName   = "storeName"
	FieldOwnerNumber = "ownerNumber"
)

type parser struct {
	collection string
	id         string
	data       map[string]any
}

func (p parser) malformed(field, reason string) error {
	return domainerrors.NewMalformedDocumentError(p.collection, p.id, field, reason)
}

// lookup treats a null field the same as a missing one.
func (p parser) lookup(field string) (any, bool) {
	v, ok := p.data[field]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

func (p parser) str(field string) (string, error) {
	v, ok := p.lookup(field)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", p.malformed(field, "must be a string")
	}

	return s, nil
}

func (p parser) boolean(field string) (value, present bool, err error) {
	v, ok := p.lookup(field)
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, true, p.malformed(field, "must be a boolean")
	}

	return b, true, nil
}

func (p parser) timestamp(field string) (*time.Time, error) {
	v, ok := p.lookup(field)
	if !ok {
		return nil, nil
	}

	t, ok := asTime(v)
	if !ok {
		return nil, p.malformed(field, "must be a timestamp")
	}

	return &t, nil
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}

		return *t, true
	default:
		if ms, ok := asFloat(v); ok {
			return time.UnixMilli(int64(ms)), true
		}

		return time.Time{}, false
	}
}

// asFloat accepts every numeric representation a document store may hand back.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

// position returns nil unless both coordinates are finite numbers in range.
func (p parser) position() *entity.Coordinate {
	latRaw, okLat := p.lookup(FieldLatitude)
	lonRaw, okLon := p.lookup(FieldLongitude)
	if !okLat || !okLon {
		return nil
	}

	lat, okLat := asFloat(latRaw)
	lon, okLon := asFloat(lonRaw)
	if !okLat || !okLon || !validCoordinate(lat, lon) {
		return nil
	}

	return &entity.Coordinate{Latitude: lat, Longitude: lon}
}

func validCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
