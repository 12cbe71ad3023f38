package document

import (
	"fmt"

	"storefront/internal/domain/entity"
)

// ParseStore converts a store document into an entity.
func ParseStore(collection, id string, data map[string]any) (*entity.Store, error) {
	p := parser{collection: collection, id: id, data: data}
	store := &entity.Store{ID: id}

	var err error
	strFields := []struct {
		field string
		dst   *string
	}{
		{FieldOwnerID, &store.OwnerID},
		{FieldShopName, &store.ShopName},
		{FieldOwnerName, &store.OwnerName},
		{FieldOwnerPhone, &store.OwnerPhone},
		{FieldShopAddress, &store.ShopAddress},
		{FieldOwnerPhotoURL, &store.OwnerPhotoURL},
		{FieldStorefrontURL, &store.StorefrontURL},
	}
	for _, f := range strFields {
		if *f.dst, err = p.str(f.field); err != nil {
			return nil, err
		}
	}

	if store.ShopOpen, err = p.shopOpen(); err != nil {
		return nil, err
	}

	store.Position = p.position()

	if store.Products, err = p.products(); err != nil {
		return nil, err
	}

	if store.CreatedAt, err = p.timestamp(FieldCreatedAt); err != nil {
		return nil, err
	}
	if store.UpdatedAt, err = p.timestamp(FieldUpdatedAt); err != nil {
		return nil, err
	}
	if store.RelocatedAt, err = p.timestamp(FieldRelocatedAt); err != nil {
		return nil, err
	}

	return store, nil
}

// shopOpen reads the canonical flag and falls back to the legacy one only when
// the canonical flag is absent.
func (p parser) shopOpen() (bool, error) {
	open, present, err := p.boolean(FieldShopStatus)
	if err != nil || present {
		return open, err
	}

	legacy, _, err := p.boolean(FieldOpenShop)

	return legacy, err
}

func (p parser) products() ([]entity.Product, error) {
	raw, ok := p.lookup(FieldProducts)
	if !ok {
		return []entity.Product{}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		if typed, isTyped := raw.([]map[string]any); isTyped {
			items = make([]any, len(typed))
			for i := range typed {
				items[i] = typed[i]
			}
		} else {
			return nil, p.malformed(FieldProducts, "must be an array")
		}
	}

	products := make([]entity.Product, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, p.malformed(fmt.Sprintf("%s[%d]", FieldProducts, i), "must be an object")
		}

		product, err := p.product(i, m)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (p parser) product(index int, m map[string]any) (entity.Product, error) {
	field := func(name string) string {
		return fmt.Sprintf("%s[%d].%s", FieldProducts, index, name)
	}
	item := parser{collection: p.collection, id: p.id, data: m}
	product := entity.Product{}

	var err error
	if product.ID, err = item.str(FieldProductID); err != nil {
		return product, p.malformed(field(FieldProductID), "must be a string")
	}
	if product.Name, err = item.str(FieldProductName); err != nil || product.Name == "" {
		return product, p.malformed(field(FieldProductName), "must be a non-empty string")
	}
	if product.Description, err = item.str(FieldProductDescription); err != nil {
		return product, p.malformed(field(FieldProductDescription), "must be a string")
	}

	priceRaw, _ := item.lookup(FieldProductPrice)
	price, ok := asFloat(priceRaw)
	if !ok || price < 0 {
		return product, p.malformed(field(FieldProductPrice), "must be a non-negative number")
	}
	product.Price = price

	createdField := FieldProductCreatedAt
	if _, has := item.lookup(createdField); !has {
		createdField = fieldProductCreatedMs
	}
	if product.CreatedAt, err = item.timestamp(createdField); err != nil {
		return product, p.malformed(field(createdField), "must be a timestamp")
	}

	return product, nil
}

// StoreFields renders a whole store document for creation.
func StoreFields(s *entity.Store) map[string]any {
	fields := map[string]any{
		FieldOwnerID:       s.OwnerID,
		FieldShopName:      s.ShopName,
		FieldOwnerName:     s.OwnerName,
		FieldOwnerPhone:    s.OwnerPhone,
		FieldShopAddress:   s.ShopAddress,
		FieldShopStatus:    s.ShopOpen,
		FieldOwnerPhotoURL: s.OwnerPhotoURL,
		FieldStorefrontURL: s.StorefrontURL,
		FieldProducts:      productList(s.Products),
	}
	if s.Position != nil {
		fields[FieldLatitude] = s.Position.Latitude
		fields[FieldLongitude] = s.Position.Longitude
	}
	if s.CreatedAt != nil {
		fields[FieldCreatedAt] = *s.CreatedAt
	}
	if s.UpdatedAt != nil {
		fields[FieldUpdatedAt] = *s.UpdatedAt
	}
	if s.RelocatedAt != nil {
		fields[FieldRelocatedAt] = *s.RelocatedAt
	}

	return fields
}

func productList(products []entity.Product) []any {
	list := make([]any, 0, len(products))
	for _, product := range products {
		list = append(list, ProductFields(product))
	}

	return list
}

// ProductFields renders one catalogue entry.
func ProductFields(product entity.Product) map[string]any {
	fields := map[string]any{
		FieldProductID:    product.ID,
		FieldProductName:  product.Name,
		FieldProductPrice: product.Price,
	}
	if product.Description != "" {
		fields[FieldProductDescription] = product.Description
	}
	if product.CreatedAt != nil {
		fields[FieldProductCreatedAt] = *product.CreatedAt
	}

	return fields
}

// Update is one field path assignment of a partial update.
type Update struct {
	Path  string
	Value any
}

// PatchUpdates lists the field assignments of a patch in a stable order.
func PatchUpdates(patch entity.StorePatch) []Update {
	var updates []Update
	add := func(path string, value any) {
		updates = append(updates, Update{Path: path, Value: value})
	}

	if patch.ShopName != nil {
		add(FieldShopName, *patch.ShopName)
	}
	if patch.OwnerName != nil {
		add(FieldOwnerName, *patch.OwnerName)
	}
	if patch.OwnerPhone != nil {
		add(FieldOwnerPhone, *patch.OwnerPhone)
	}
	if patch.ShopAddress != nil {
		add(FieldShopAddress, *patch.ShopAddress)
	}
	if patch.OwnerPhotoURL != nil {
		add(FieldOwnerPhotoURL, *patch.OwnerPhotoURL)
	}
	if patch.StorefrontURL != nil {
		add(FieldStorefrontURL, *patch.StorefrontURL)
	}
	if patch.ShopOpen != nil {
		add(FieldShopStatus, *patch.ShopOpen)
	}
	if patch.Position != nil {
		add(FieldLatitude, patch.Position.Latitude)
		add(FieldLongitude, patch.Position.Longitude)
	}
	if patch.UpdatedAt != nil {
		add(FieldUpdatedAt, *patch.UpdatedAt)
	}
	if patch.RelocatedAt != nil {
		add(FieldRelocatedAt, *patch.RelocatedAt)
	}

	return updates
}

// IsTimestampField reports whether the path holds a server-assigned time.
func IsTimestampField(path string) bool {
	switch path {
	case FieldCreatedAt, FieldUpdatedAt, FieldRelocatedAt:
		return true
	default:
		return false
	}
}
