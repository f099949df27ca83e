package repository

import (
	"sync"

	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/ikkim/shop-api/pkg/logger"
)

// CartFilter selects carts by backing position. Quantity bounds apply to the
// sum of line quantities. Nil bounds are unconstrained.
type CartFilter struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	MaxQuantity *int
}

func (f CartFilter) matches(cart *model.Cart) bool {
	if f.MinPrice != nil && cart.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && cart.Price > *f.MaxPrice {
		return false
	}
	if f.MinQuantity == nil && f.MaxQuantity == nil {
		return true
	}
	quantity := cart.TotalQuantity()
	if f.MinQuantity != nil && quantity < *f.MinQuantity {
		return false
	}
	if f.MaxQuantity != nil && quantity > *f.MaxQuantity {
		return false
	}
	return true
}

type CartRepository interface {
	Create(cart *model.Cart) error
	FindByID(id uint) (*model.Cart, error)
	FindWithFilter(filter CartFilter) ([]model.Cart, error)
	FindAll() ([]model.Cart, error)
	Update(cart *model.Cart) error
	Count() int
}

type cartRepository struct {
	mu     sync.RWMutex
	carts  []*model.Cart
	nextID uint
}

func NewCartRepository() CartRepository {
	return &cartRepository{nextID: 1}
}

func (r *cartRepository) Create(cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.ID = r.nextID
	r.nextID++
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	r.carts = append(r.carts, cart.Clone())

	logger.Debug("Cart stored", map[string]interface{}{
		"cart_id": cart.ID,
	})
	return nil
}

func (r *cartRepository) indexOf(id uint) int {
	if id == 0 || int(id) > len(r.carts) {
		return -1
	}
	if idx := int(id) - 1; r.carts[idx].ID == id {
		return idx
	}
	for i, cart := range r.carts {
		if cart.ID == id {
			return i
		}
	}
	return -1
}

func (r *cartRepository) FindByID(id uint) (*model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		logger.Debug("Cart not found", map[string]interface{}{
			"cart_id": id,
		})
		return nil, ErrRecordNotFound
	}
	return r.carts[idx].Clone(), nil
}

func (r *cartRepository) FindWithFilter(filter CartFilter) ([]model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []model.Cart{}
	for i := filter.Offset; i < len(r.carts); i++ {
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
		if filter.matches(r.carts[i]) {
			result = append(result, *r.carts[i].Clone())
		}
	}

	logger.Debug("Carts filtered", map[string]interface{}{
		"offset": filter.Offset,
		"limit":  filter.Limit,
		"count":  len(result),
	})
	return result, nil
}

func (r *cartRepository) FindAll() ([]model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Cart, 0, len(r.carts))
	for _, cart := range r.carts {
		result = append(result, *cart.Clone())
	}
	return result, nil
}

func (r *cartRepository) Update(cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(cart.ID)
	if idx < 0 {
		return ErrRecordNotFound
	}
	r.carts[idx] = cart.Clone()

	logger.Debug("Cart updated", map[string]interface{}{
		"cart_id": cart.ID,
		"lines":   len(cart.Items),
		"price":   cart.Price,
	})
	return nil
}

func (r *cartRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
