package store

import (
	"context"
	"errors"
	"sync"

	"catdogeats/models"
)

var errBackend = errors.New("backend unavailable")

// fakeCartAPI is an in-memory backend that counts calls
type fakeCartAPI struct {
	mu    sync.Mutex
	cart  models.Cart
	recs  []models.Recommendation
	calls map[string]int

	failGet, failAdd, failUpdate, failRemove, failClear, failRecs bool

	// block, when set, is waited on inside UpdateQuantity
	block chan struct{}
}

func newFakeCartAPI(items ...models.CartItem) *fakeCartAPI {
	return &fakeCartAPI{
		cart:  models.Cart{ID: "cart-1", Items: items},
		calls: map[string]int{},
	}
}

func (f *fakeCartAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeCartAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeCartAPI) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeCartAPI) GetCart(context.Context) (models.Cart, error) {
	f.hit("GetCart")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return models.Cart{}, errBackend
	}
	out := f.cart
	out.Items = append([]models.CartItem(nil), f.cart.Items...)
	return out, nil
}

func (f *fakeCartAPI) AddItem(_ context.Context, productID string, quantity int) (models.Cart, error) {
	f.hit("AddItem")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAdd {
		return models.Cart{}, errBackend
	}
	found := false
	for i := range f.cart.Items {
		if f.cart.Items[i].ProductID == productID {
			f.cart.Items[i].Quantity += quantity
			found = true
		}
	}
	if !found {
		f.cart.Items = append(f.cart.Items, models.CartItem{
			ID:        "item-" + productID,
			ProductID: productID,
			Price:     1000,
			Quantity:  quantity,
		})
	}
	out := f.cart
	out.Items = append([]models.CartItem(nil), f.cart.Items...)
	return out, nil
}

func (f *fakeCartAPI) UpdateQuantity(_ context.Context, cartItemID string, quantity int) (models.CartItem, error) {
	f.hit("UpdateQuantity")
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return models.CartItem{}, errBackend
	}
	for i := range f.cart.Items {
		if f.cart.Items[i].ID == cartItemID {
			f.cart.Items[i].Quantity = quantity
			return f.cart.Items[i], nil
		}
	}
	return models.CartItem{}, errBackend
}

func (f *fakeCartAPI) RemoveItem(_ context.Context, cartItemID string) error {
	f.hit("RemoveItem")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRemove {
		return errBackend
	}
	for i := range f.cart.Items {
		if f.cart.Items[i].ID == cartItemID {
			f.cart.Items = append(f.cart.Items[:i], f.cart.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartAPI) ClearCart(context.Context) error {
	f.hit("ClearCart")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failClear {
		return errBackend
	}
	f.cart.Items = nil
	return nil
}

func (f *fakeCartAPI) GetRecommendations(_ context.Context, limit int) ([]models.Recommendation, error) {
	f.hit("GetRecommendations")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRecs {
		return nil, errBackend
	}
	return append([]models.Recommendation(nil), f.recs...), nil
}

func item(id string, price int64, qty int) models.CartItem {
	return models.CartItem{
		ID:          id,
		ProductID:   "p-" + id,
		ProductName: "상품 " + id,
		SellerName:  "멍냥상회",
		Price:       price,
		Quantity:    qty,
	}
}

// scriptedSelectionRepo wraps the memory repository with injectable failures
type scriptedSelectionRepo struct {
	*MemorySelectionRepository

	mu        sync.Mutex
	failLoads int
	saves     int

	// hold, when set, parks the next Save until closed; entered is signalled first
	hold    chan struct{}
	entered chan struct{}
}

func newScriptedSelectionRepo() *scriptedSelectionRepo {
	return &scriptedSelectionRepo{
		MemorySelectionRepository: NewMemorySelectionRepository(),
		entered:                   make(chan struct{}, 1),
	}
}

func (r *scriptedSelectionRepo) Load(ctx context.Context, userID string) (Selection, error) {
	r.mu.Lock()
	fail := r.failLoads > 0
	if fail {
		r.failLoads--
	}
	r.mu.Unlock()
	if fail {
		return nil, errBackend
	}
	return r.MemorySelectionRepository.Load(ctx, userID)
}

func (r *scriptedSelectionRepo) Save(ctx context.Context, userID string, sel Selection) error {
	r.mu.Lock()
	r.saves++
	hold := r.hold
	r.hold = nil
	r.mu.Unlock()
	if hold != nil {
		r.entered <- struct{}{}
		<-hold
	}
	return r.MemorySelectionRepository.Save(ctx, userID, sel)
}

func (r *scriptedSelectionRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *scriptedSelectionRepo) stored(userID string) Selection {
	sel, _ := r.MemorySelectionRepository.Load(context.Background(), userID)
	return sel
}
