package repository

import (
	"errors"
	"sync"

	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/ikkim/shop-api/pkg/logger"
)

// ErrRecordNotFound is returned when no record has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// ItemFilter selects items by backing position. Nil bounds are unconstrained.
type ItemFilter struct {
	Offset         int
	Limit          int
	MinPrice       *float64
	MaxPrice       *float64
	IncludeDeleted bool
}

func (f ItemFilter) matches(item *model.Item) bool {
	if item.Deleted && !f.IncludeDeleted {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	return true
}

type ItemRepository interface {
	Create(item *model.Item) error
	FindByID(id uint) (*model.Item, error)
	FindWithFilter(filter ItemFilter) ([]model.Item, error)
	FindAll() ([]model.Item, error)
	Update(item *model.Item) error
	Count() int
}

// itemRepository keeps the catalog in insertion order. Ids come from nextID,
// not from the slice length.
type itemRepository struct {
	mu     sync.RWMutex
	items  []model.Item
	nextID uint
}

func NewItemRepository() ItemRepository {
	return &itemRepository{nextID: 1}
}

func (r *itemRepository) Create(item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)

	logger.Debug("Item stored", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
		"price":   item.Price,
	})
	return nil
}

// indexOf assumes ids are assigned 1..n in insertion order and records are
// never removed, so position is id-1. The id check keeps that honest.
func (r *itemRepository) indexOf(id uint) int {
	if id == 0 || int(id) > len(r.items) {
		return -1
	}
	if idx := int(id) - 1; r.items[idx].ID == id {
		return idx
	}
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *itemRepository) FindByID(id uint) (*model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		logger.Debug("Item not found", map[string]interface{}{
			"item_id": id,
		})
		return nil, ErrRecordNotFound
	}
	item := r.items[idx]
	return &item, nil
}

func (r *itemRepository) FindWithFilter(filter ItemFilter) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Item{}
	for i := filter.Offset; i < len(r.items); i++ {
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
		if filter.matches(&r.items[i]) {
			result = append(result, r.items[i])
		}
	}

	logger.Debug("Items filtered", map[string]interface{}{
		"offset":          filter.Offset,
		"limit":           filter.Limit,
		"include_deleted": filter.IncludeDeleted,
		"count":           len(result),
	})
	return result, nil
}

func (r *itemRepository) FindAll() ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Item, len(r.items))
	copy(result, r.items)
	return result, nil
}

// Update replaces the stored record with the same id.
func (r *itemRepository) Update(item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.ID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.items[idx] = *item

	logger.Debug("Item replaced", map[string]interface{}{
		"item_id": item.ID,
		"deleted": item.Deleted,
	})
	return nil
}

func (r *itemRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
