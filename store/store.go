// Package store holds the client-side mirror of a user's cart.
//
// A Store mediates every cart mutation through the backend and applies the
// response to its mirror. Selection (which lines are checked for checkout)
// is owned here, keyed by cart item id, and survives a refetch of the cart.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"catdogeats/models"

	"go.uber.org/zap"
)

// User-facing messages recorded in the error field
const (
	MsgLoadFailed            = "장바구니를 불러오지 못했습니다."
	MsgAddFailed             = "장바구니에 상품을 담지 못했습니다."
	MsgUpdateFailed          = "수량 변경에 실패했습니다."
	MsgRemoveFailed          = "상품 삭제에 실패했습니다."
	MsgClearFailed           = "장바구니를 비우지 못했습니다."
	MsgRecommendationsFailed = "추천 상품을 불러오지 못했습니다."
)

var (
	ErrInvalidQuantity = errors.New("store: quantity must be at least 1")
	ErrItemNotFound    = errors.New("store: cart item not found")
	ErrBusy            = errors.New("store: another request for this item is in flight")
)

// DefaultRecommendationLimit is the size of the up-sell list
const DefaultRecommendationLimit = 4

// CartAPI is the subset of the backend client the store needs
type CartAPI interface {
	GetCart(ctx context.Context) (models.Cart, error)
	AddItem(ctx context.Context, productID string, quantity int) (models.Cart, error)
	UpdateQuantity(ctx context.Context, cartItemID string, quantity int) (models.CartItem, error)
	RemoveItem(ctx context.Context, cartItemID string) error
	ClearCart(ctx context.Context) error
	GetRecommendations(ctx context.Context, limit int) ([]models.Recommendation, error)
}

// Option configures a Store
type Option func(*Store)

// WithUserID scopes persisted selection and cached recommendations to a user
func WithUserID(userID string) Option {
	return func(s *Store) { s.userID = userID }
}

// WithSelectionRepository persists selection outside the process
func WithSelectionRepository(repo SelectionRepository) Option {
	return func(s *Store) { s.selectionRepo = repo }
}

// WithRecommendationCache serves recommendations from a cache before calling the backend
func WithRecommendationCache(cache RecommendationCache, ttl time.Duration) Option {
	return func(s *Store) {
		s.recCache = cache
		s.recTTL = ttl
	}
}

// WithRecommendationLimit overrides DefaultRecommendationLimit
func WithRecommendationLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.recLimit = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Store is the single source of truth for one user's cart within a session.
// It is safe for concurrent use; backend calls are made without holding the lock.
type Store struct {
	api           CartAPI
	userID        string
	selectionRepo SelectionRepository
	recCache      RecommendationCache
	recTTL        time.Duration
	recLimit      int
	log           *zap.Logger
	now           func() time.Time

	// saveMu orders selection writes; savedVersion is guarded by it
	saveMu       sync.Mutex
	savedVersion uint64

	mu              sync.Mutex
	items           []models.CartItem
	selection       Selection
	selVersion      uint64
	selectionLoaded bool
	defaulted       map[string]struct{}
	loaded          bool
	inFlight        map[string]struct{}
	loads           int
	clearing        bool
	errMsg          string
	recs            []models.Recommendation
	recErrMsg       string
	lastUsed        time.Time
}

// New creates an empty Store backed by api
func New(api CartAPI, opts ...Option) *Store {
	s := &Store{
		api:       api,
		recLimit:  DefaultRecommendationLimit,
		log:       zap.NewNop(),
		now:       time.Now,
		selection: Selection{},
		defaulted: map[string]struct{}{},
		inFlight:  map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selectionLoaded = s.selectionRepo == nil
	s.lastUsed = s.now()
	return s
}

// Load fetches the cart and replaces the mirror
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loads++
	s.errMsg = ""
	s.touch()
	needSelection := !s.selectionLoaded && s.selectionRepo != nil
	s.mu.Unlock()

	var persisted Selection
	var selErr error
	if needSelection {
		persisted, selErr = s.selectionRepo.Load(ctx, s.userID)
		if selErr != nil {
			s.log.Warn("load cart selection", zap.String("user_id", s.userID), zap.Error(selErr))
		}
	}

	cart, err := s.api.GetCart(ctx)

	s.mu.Lock()
	s.loads--
	if needSelection && selErr == nil && !s.selectionLoaded {
		s.mergePersistedLocked(persisted)
	}
	if err != nil {
		s.errMsg = MsgLoadFailed
		s.mu.Unlock()
		s.log.Error("load cart", zap.String("user_id", s.userID), zap.Error(err))
		return err
	}
	s.applyCartLocked(cart)
	s.loaded = true
	s.mu.Unlock()

	s.persistSelection(ctx)
	return nil
}

// mergePersistedLocked restores the saved selection. Saved choices replace the
// selected-by-default state but never a choice made in this session.
func (s *Store) mergePersistedLocked(persisted Selection) {
	for id, v := range persisted {
		_, known := s.selection[id]
		_, defaulted := s.defaulted[id]
		if !known || defaulted {
			s.selection[id] = v
		}
	}
	s.selectionLoaded = true
	s.defaulted = nil
	s.selVersion++
}

// EnsureLoaded loads the cart unless a load has already succeeded
func (s *Store) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// AddItem puts quantity units of productID into the cart. The new line starts selected.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	key := "product:" + productID
	if err := s.begin(key); err != nil {
		return err
	}

	cart, err := s.api.AddItem(ctx, productID, quantity)

	s.mu.Lock()
	delete(s.inFlight, key)
	if err != nil {
		s.errMsg = MsgAddFailed
		s.mu.Unlock()
		s.log.Error("add cart item", zap.String("product_id", productID), zap.Int("quantity", quantity), zap.Error(err))
		return err
	}
	s.applyCartLocked(cart)
	s.mu.Unlock()

	s.persistSelection(ctx)
	return nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity below 1 is rejected
// locally and never reaches the backend.
func (s *Store) UpdateQuantity(ctx context.Context, cartItemID string, newQuantity int) error {
	if newQuantity < 1 {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	if s.indexLocked(cartItemID) < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	s.mu.Unlock()
	if err := s.begin(cartItemID); err != nil {
		return err
	}

	updated, err := s.api.UpdateQuantity(ctx, cartItemID, newQuantity)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cartItemID)
	if err != nil {
		s.errMsg = MsgUpdateFailed
		s.log.Error("update cart quantity", zap.String("cart_item_id", cartItemID), zap.Int("quantity", newQuantity), zap.Error(err))
		return err
	}

	// the line may have been removed or cleared while the request was out
	if i := s.indexLocked(cartItemID); i >= 0 {
		q := updated.Quantity
		if q < 1 {
			q = newQuantity
		}
		s.items[i].Quantity = q
	}
	return nil
}

// RemoveItem deletes a cart line and forgets its selection
func (s *Store) RemoveItem(ctx context.Context, cartItemID string) error {
	s.mu.Lock()
	if s.indexLocked(cartItemID) < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	s.mu.Unlock()
	if err := s.begin(cartItemID); err != nil {
		return err
	}

	err := s.api.RemoveItem(ctx, cartItemID)

	s.mu.Lock()
	delete(s.inFlight, cartItemID)
	if err != nil {
		s.errMsg = MsgRemoveFailed
		s.mu.Unlock()
		s.log.Error("remove cart item", zap.String("cart_item_id", cartItemID), zap.Error(err))
		return err
	}
	if i := s.indexLocked(cartItemID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	delete(s.selection, cartItemID)
	delete(s.defaulted, cartItemID)
	s.selVersion++
	s.mu.Unlock()

	s.persistSelection(ctx)
	return nil
}

// ClearCart empties the cart. It is refused while any line has a request in flight.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	if s.clearing || len(s.inFlight) > 0 {
		s.mu.Unlock()
		return ErrBusy
	}
	s.clearing = true
	s.errMsg = ""
	s.touch()
	s.mu.Unlock()

	err := s.api.ClearCart(ctx)

	s.mu.Lock()
	s.clearing = false
	if err != nil {
		s.errMsg = MsgClearFailed
		s.mu.Unlock()
		s.log.Error("clear cart", zap.String("user_id", s.userID), zap.Error(err))
		return err
	}
	s.items = nil
	s.selection = Selection{}
	if !s.selectionLoaded {
		s.defaulted = map[string]struct{}{}
	}
	s.selVersion++
	s.loaded = true
	s.mu.Unlock()

	s.persistSelection(ctx)
	return nil
}

// FetchRecommendations loads the up-sell list. Its failure is recorded separately
// and never touches the cart error field.
func (s *Store) FetchRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	if s.recCache != nil {
		recs, ok, err := s.recCache.Get(ctx, s.userID)
		if err != nil {
			s.log.Warn("read recommendation cache", zap.String("user_id", s.userID), zap.Error(err))
		}
		if ok {
			s.setRecommendations(recs, "")
			return recs, nil
		}
	}

	recs, err := s.api.GetRecommendations(ctx, s.recLimit)
	if err != nil {
		s.setRecommendations(nil, MsgRecommendationsFailed)
		s.log.Warn("fetch recommendations", zap.String("user_id", s.userID), zap.Error(err))
		return nil, err
	}
	if len(recs) > s.recLimit {
		recs = recs[:s.recLimit]
	}
	s.setRecommendations(recs, "")

	if s.recCache != nil {
		if err := s.recCache.Set(ctx, s.userID, recs, s.recTTL); err != nil {
			s.log.Warn("write recommendation cache", zap.String("user_id", s.userID), zap.Error(err))
		}
	}
	return recs, nil
}

// UpdateItemSelection checks or unchecks one line and dismisses the error banner.
// No backend call is made.
func (s *Store) UpdateItemSelection(ctx context.Context, cartItemID string, selected bool) error {
	s.mu.Lock()
	if s.indexLocked(cartItemID) < 0 {
		s.mu.Unlock()
		return ErrItemNotFound
	}
	s.selection[cartItemID] = selected
	delete(s.defaulted, cartItemID)
	s.selVersion++
	s.errMsg = ""
	s.touch()
	s.mu.Unlock()

	s.persistSelection(ctx)
	return nil
}

// SetAllSelected checks or unchecks every line and dismisses the error banner.
// No backend call is made.
func (s *Store) SetAllSelected(ctx context.Context, selected bool) {
	s.mu.Lock()
	for _, it := range s.items {
		s.selection[it.ID] = selected
		delete(s.defaulted, it.ID)
	}
	s.selVersion++
	s.errMsg = ""
	s.touch()
	s.mu.Unlock()

	s.persistSelection(ctx)
}

// Snapshot copies the whole store state under one lock
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Items:             s.itemsLocked(),
		Loading:           s.loads > 0 || s.clearing,
		Err:               s.errMsg,
		Recommendations:   make([]models.Recommendation, len(s.recs)),
		RecommendationErr: s.recErrMsg,
	}
	copy(snap.Recommendations, s.recs)
	if len(s.inFlight) > 0 {
		snap.inFlight = make(map[string]struct{}, len(s.inFlight))
		for k := range s.inFlight {
			snap.inFlight[k] = struct{}{}
		}
	}
	return snap
}

// Items returns a copy of the mirror with Selected filled in
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

// SelectedItems returns the checked lines
func (s *Store) SelectedItems() []models.CartItem {
	return s.Snapshot().SelectedItems()
}

// TotalPrice sums price*quantity over the selected lines
func (s *Store) TotalPrice() int64 {
	return s.Snapshot().TotalPrice()
}

// TotalItemCount sums quantity over the selected lines
func (s *Store) TotalItemCount() int {
	return s.Snapshot().TotalItemCount()
}

// IsBusy reports whether cartItemID has a request in flight or the whole cart is loading
func (s *Store) IsBusy(cartItemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[cartItemID]
	return ok || s.loads > 0 || s.clearing
}

// Loading reports whether a cart-wide request (load or clear) is in flight
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads > 0 || s.clearing
}

// Err returns the last user-facing error message, or "" if the last request succeeded
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the error banner
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// Recommendations returns the last fetched up-sell list and its error message
func (s *Store) Recommendations() ([]models.Recommendation, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recommendation, len(s.recs))
	copy(out, s.recs)
	return out, s.recErrMsg
}

func (s *Store) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	busy := len(s.inFlight) > 0 || s.loads > 0 || s.clearing
	return s.lastUsed, busy
}

func (s *Store) begin(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok || s.clearing {
		return ErrBusy
	}
	s.inFlight[key] = struct{}{}
	s.errMsg = ""
	s.touch()
	return nil
}

func (s *Store) setRecommendations(recs []models.Recommendation, errMsg string) {
	s.mu.Lock()
	s.recs = recs
	s.recErrMsg = errMsg
	s.mu.Unlock()
}

// applyCartLocked replaces the mirror. Unknown lines default to selected; selection of
// lines that left the cart is dropped.
func (s *Store) applyCartLocked(cart models.Cart) {
	items := make([]models.CartItem, 0, len(cart.Items))
	present := make(map[string]struct{}, len(cart.Items))
	for _, it := range cart.Items {
		it.Selected = false
		items = append(items, it)
		present[it.ID] = struct{}{}
		if _, ok := s.selection[it.ID]; !ok {
			s.selection[it.ID] = true
			if !s.selectionLoaded {
				s.defaulted[it.ID] = struct{}{}
			}
		}
	}
	for id := range s.selection {
		if _, ok := present[id]; !ok {
			delete(s.selection, id)
			delete(s.defaulted, id)
		}
	}
	s.items = items
	s.selVersion++
}

func (s *Store) itemsLocked() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	for i, it := range s.items {
		it.Selected = s.selection.isSelected(it.ID)
		out[i] = it
	}
	return out
}

func (s *Store) indexLocked(cartItemID string) int {
	for i, it := range s.items {
		if it.ID == cartItemID {
			return i
		}
	}
	return -1
}

func (s *Store) touch() {
	s.lastUsed = s.now()
}

// persistSelection writes the current selection. Writes run one at a time and each
// copies the selection only after the previous write finished. Nothing is written
// until the saved selection has been read back.
func (s *Store) persistSelection(ctx context.Context) {
	if s.selectionRepo == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.selectionLoaded || s.selVersion == s.savedVersion {
		s.mu.Unlock()
		return
	}
	version := s.selVersion
	sel := s.selection.clone()
	s.mu.Unlock()

	if err := s.selectionRepo.Save(ctx, s.userID, sel); err != nil {
		s.log.Warn("save cart selection", zap.String("user_id", s.userID), zap.Error(err))
		return
	}
	s.savedVersion = version
}
