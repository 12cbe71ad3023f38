package document

import (
	"storefront/internal/domain/entity"
)

// ParseFavorite converts a favorite document into an entity.
func ParseFavorite(collection, id string, data map[string]any) (*entity.Favorite, error) {
	p := parser{collection: collection, id: id, data: data}
	fav := &entity.Favorite{ID: id}

	var err error
	if fav.UserID, err = p.str(FieldUserID); err != nil {
		return nil, err
	}
	if fav.StoreID, err = p.str(FieldStoreID); err != nil {
		return nil, err
	}
	if fav.StoreName, err = p.str(FieldStoreName); err != nil {
		return nil, err
	}
	if fav.OwnerNumber, err = p.str(FieldOwnerNumber); err != nil {
		return nil, err
	}
	if fav.CreatedAt, err = p.timestamp(FieldCreatedAt); err != nil {
		return nil, err
	}

	if pos := p.position(); pos != nil {
		fav.Latitude = &pos.Latitude
		fav.Longitude = &pos.Longitude
	}

	return fav, nil
}

// FavoriteFields renders a favorite document without its creation time,
// which the store assigns.
func FavoriteFields(fav *entity.Favorite) map[string]any {
	fields := map[string]any{
		FieldUserID:      fav.UserID,
		FieldStoreID:     fav.StoreID,
		FieldStoreName:   fav.StoreName,
		FieldOwnerNumber: fav.OwnerNumber,
	}
	if fav.Latitude != nil && fav.Longitude != nil {
		fields[FieldLatitude] = *fav.Latitude
		fields[FieldLongitude] = *fav.Longitude
	}

	return fields
}
