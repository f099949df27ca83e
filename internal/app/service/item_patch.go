package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ikkim/shop-api/internal/app/model"
)

const (
	patchFieldName    = "name"
	patchFieldPrice   = "price"
	patchFieldDeleted = "deleted"
)

// ParseItemPatch decodes a PATCH body into an ItemPatch. Only name and price
// may be present; "deleted" is refused with ErrForbiddenField and any other key
// with ErrUnknownField. Keys are checked before values so the outcome does not
// depend on whether the item exists.
func ParseItemPatch(body []byte) (model.ItemPatch, error) {
	var patch model.ItemPatch

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return patch, fmt.Errorf("%w: patch body must be a JSON object", ErrInvalidArgument)
	}

	if _, ok := fields[patchFieldDeleted]; ok {
		return patch, fmt.Errorf("%w '%s'", ErrForbiddenField, patchFieldDeleted)
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if key != patchFieldName && key != patchFieldPrice {
			return patch, fmt.Errorf("%w %s", ErrUnknownField, key)
		}
	}

	if raw, ok := fields[patchFieldName]; ok {
		var name string
		if isNull(raw) || json.Unmarshal(raw, &name) != nil {
			return patch, fmt.Errorf("%w: name must be a string", ErrInvalidArgument)
		}
		patch.Name = &name
	}

	if raw, ok := fields[patchFieldPrice]; ok {
		var price float64
		if isNull(raw) || json.Unmarshal(raw, &price) != nil {
			return patch, fmt.Errorf("%w: price must be a number", ErrInvalidArgument)
		}
		if price < 0 {
			return patch, fmt.Errorf("%w: price must be non-negative", ErrInvalidArgument)
		}
		patch.Price = &price
	}

	return patch, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
