package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ikkim/shop-api/internal/app/model"
	"github.com/ikkim/shop-api/internal/app/repository"
	"github.com/ikkim/shop-api/pkg/logger"
)

const DefaultListLimit = 10

// ItemQuery lists items from backing position Offset. Nil bounds are unset.
type ItemQuery struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	ShowDeleted bool
}

// CartQuery lists carts from backing position Offset. Quantity bounds apply to
// the total quantity of a cart. Nil bounds are unset.
type CartQuery struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	MaxQuantity *int
}

// CatalogSnapshot is the full state in backing order, deleted items included.
type CatalogSnapshot struct {
	Items   []model.Item
	Carts   []model.Cart
	TakenAt time.Time
}

type ShopService interface {
	CreateItem(name string, price float64) (*model.Item, error)
	GetItem(id uint) (*model.Item, error)
	ListItems(query ItemQuery) ([]model.Item, error)
	UpdateItem(id uint, name string, price float64) (*model.Item, error)
	PatchItem(id uint, patch model.ItemPatch) (*model.Item, error)
	DeleteItem(id uint) error

	CreateCart() (*model.Cart, error)
	GetCart(id uint) (*model.Cart, error)
	ListCarts(query CartQuery) ([]model.Cart, error)
	AddItemToCart(cartID, itemID uint) (*model.Cart, error)

	Snapshot() (*CatalogSnapshot, error)
}

// shopService owns the catalog and the carts. mu serializes every mutation so
// that reads and writes spanning both repositories are atomic.
type shopService struct {
	mu         sync.RWMutex
	itemRepo   repository.ItemRepository
	cartRepo   repository.CartRepository
	publishers []EventPublisher
	now        func() time.Time
}

func NewShopService(
	itemRepo repository.ItemRepository,
	cartRepo repository.CartRepository,
	publishers ...EventPublisher,
) ShopService {
	return &shopService{
		itemRepo:   itemRepo,
		cartRepo:   cartRepo,
		publishers: publishers,
		now:        time.Now,
	}
}

func (s *shopService) publish(eventType EventType, item *model.Item, cart *model.Cart) {
	if len(s.publishers) == 0 {
		return
	}
	event := Event{Type: eventType, OccurredAt: s.now()}
	if item != nil {
		itemCopy := *item
		event.Item = &itemCopy
	}
	if cart != nil {
		event.Cart = cart.Clone()
	}
	for _, p := range s.publishers {
		p.Publish(event)
	}
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidArgument)
	}
	return nil
}

func validatePaging(offset, limit int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset must be non-negative", ErrInvalidArgument)
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be greater than 0", ErrInvalidArgument)
	}
	return nil
}

func validateFloatBound(name string, bound *float64) error {
	if bound != nil && *bound < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidArgument, name)
	}
	return nil
}

func validateIntBound(name string, bound *int) error {
	if bound != nil && *bound < 0 {
		return fmt.Errorf("%w: %s must be non-negative", ErrInvalidArgument, name)
	}
	return nil
}

func (s *shopService) CreateItem(name string, price float64) (*model.Item, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := &model.Item{Name: name, Price: price}
	if err := s.itemRepo.Create(item); err != nil {
		logger.Error("Failed to create item", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Item created", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
		"price":   item.Price,
	})
	s.publish(EventItemCreated, item, nil)
	return item, nil
}

// findItem returns the stored item, deleted or not.
func (s *shopService) findItem(id uint) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Warn("Item not found", map[string]interface{}{
				"item_id": id,
			})
			return nil, ErrItemNotFound
		}
		logger.Error("Failed to fetch item", err, map[string]interface{}{
			"item_id": id,
		})
		return nil, err
	}
	return item, nil
}

func (s *shopService) findCart(id uint) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Warn("Cart not found", map[string]interface{}{
				"cart_id": id,
			})
			return nil, ErrCartNotFound
		}
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"cart_id": id,
		})
		return nil, err
	}
	return cart, nil
}

func (s *shopService) GetItem(id uint) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.findItem(id)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		logger.Warn("Item is deleted", map[string]interface{}{
			"item_id": id,
		})
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *shopService) ListItems(query ItemQuery) ([]model.Item, error) {
	if err := validatePaging(query.Offset, query.Limit); err != nil {
		return nil, err
	}
	if err := validateFloatBound("min_price", query.MinPrice); err != nil {
		return nil, err
	}
	if err := validateFloatBound("max_price", query.MaxPrice); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items, err := s.itemRepo.FindWithFilter(repository.ItemFilter{
		Offset:         query.Offset,
		Limit:          query.Limit,
		MinPrice:       query.MinPrice,
		MaxPrice:       query.MaxPrice,
		IncludeDeleted: query.ShowDeleted,
	})
	if err != nil {
		logger.Error("Failed to list items", err)
		return nil, err
	}
	return items, nil
}

// UpdateItem replaces the whole record, which also clears the deleted flag.
func (s *shopService) UpdateItem(id uint, name string, price float64) (*model.Item, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findItem(id); err != nil {
		return nil, err
	}

	item := &model.Item{ID: id, Name: name, Price: price}
	if err := s.itemRepo.Update(item); err != nil {
		logger.Error("Failed to update item", err, map[string]interface{}{
			"item_id": id,
		})
		return nil, err
	}

	logger.Info("Item replaced", map[string]interface{}{
		"item_id": id,
		"name":    name,
		"price":   price,
	})
	s.publish(EventItemUpdated, item, nil)
	return item, nil
}

func (s *shopService) PatchItem(id uint, patch model.ItemPatch) (*model.Item, error) {
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.findItem(id)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		logger.Warn("Refusing to patch deleted item", map[string]interface{}{
			"item_id": id,
		})
		return nil, ErrItemDeleted
	}
	if patch.IsEmpty() {
		return item, nil
	}

	patch.Apply(item)
	if err := s.itemRepo.Update(item); err != nil {
		logger.Error("Failed to patch item", err, map[string]interface{}{
			"item_id": id,
		})
		return nil, err
	}

	logger.Info("Item patched", map[string]interface{}{
		"item_id": id,
		"name":    item.Name,
		"price":   item.Price,
	})
	s.publish(EventItemPatched, item, nil)
	return item, nil
}

// DeleteItem soft-deletes an item. Deleting a deleted item succeeds.
func (s *shopService) DeleteItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.findItem(id)
	if err != nil {
		return err
	}
	if item.Deleted {
		return nil
	}

	item.Deleted = true
	if err := s.itemRepo.Update(item); err != nil {
		logger.Error("Failed to delete item", err, map[string]interface{}{
			"item_id": id,
		})
		return err
	}

	logger.Info("Item deleted", map[string]interface{}{
		"item_id": id,
	})
	s.publish(EventItemDeleted, item, nil)
	return nil
}

func (s *shopService) CreateCart() (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := model.NewCart()
	if err := s.cartRepo.Create(cart); err != nil {
		logger.Error("Failed to create cart", err)
		return nil, err
	}

	logger.Info("Cart created", map[string]interface{}{
		"cart_id": cart.ID,
	})
	s.publish(EventCartCreated, nil, cart)
	return cart, nil
}

func (s *shopService) GetCart(id uint) (*model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findCart(id)
}

func (s *shopService) ListCarts(query CartQuery) ([]model.Cart, error) {
	if err := validatePaging(query.Offset, query.Limit); err != nil {
		return nil, err
	}
	if err := validateFloatBound("min_price", query.MinPrice); err != nil {
		return nil, err
	}
	if err := validateFloatBound("max_price", query.MaxPrice); err != nil {
		return nil, err
	}
	if err := validateIntBound("min_quantity", query.MinQuantity); err != nil {
		return nil, err
	}
	if err := validateIntBound("max_quantity", query.MaxQuantity); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	carts, err := s.cartRepo.FindWithFilter(repository.CartFilter{
		Offset:      query.Offset,
		Limit:       query.Limit,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		MinQuantity: query.MinQuantity,
		MaxQuantity: query.MaxQuantity,
	})
	if err != nil {
		logger.Error("Failed to list carts", err)
		return nil, err
	}
	return carts, nil
}

// AddItemToCart adds one unit of an item. The cart price grows by the item's
// current price; existing totals and line names are left as they were.
func (s *shopService) AddItemToCart(cartID, itemID uint) (*model.Cart, error) {
	logger.Info("Adding item to cart", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.findCart(cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.findItem(itemID)
	if err != nil {
		return nil, err
	}
	if item.Deleted {
		logger.Warn("Cannot add deleted item to cart", map[string]interface{}{
			"cart_id": cartID,
			"item_id": itemID,
		})
		return nil, ErrItemNotFound
	}

	if line := cart.FindLine(itemID); line != nil {
		line.Quantity++
	} else {
		cart.Items = append(cart.Items, model.CartItem{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  1,
			Available: true,
		})
	}
	cart.Price += item.Price

	if err := s.cartRepo.Update(cart); err != nil {
		logger.Error("Failed to update cart", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"cart_id": cartID,
		"item_id": itemID,
		"lines":   len(cart.Items),
		"price":   cart.Price,
	})
	s.publish(EventCartItemAdded, item, cart)
	return cart, nil
}

func (s *shopService) Snapshot() (*CatalogSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, err
	}
	carts, err := s.cartRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return &CatalogSnapshot{Items: items, Carts: carts, TakenAt: s.now()}, nil
}
