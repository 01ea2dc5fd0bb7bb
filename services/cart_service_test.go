package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-store/models"
	"fashion-store/repositories"
)

// fakeCartStore mirrors the cart_items table, including the
// (user, product, color, size) uniqueness that backs the upsert. Calls
// records every remote operation so tests can assert that anonymous
// mutations never reach the store.
type fakeCartStore struct {
	rows  map[string]models.CartRow
	calls int
	seq   int
	fail  error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{rows: map[string]models.CartRow{}}
}

func (f *fakeCartStore) variantKey(userID, productID, color, size string) string {
	return fmt.Sprintf("%s|%s|%s|%s", userID, productID, color, size)
}

func (f *fakeCartStore) Upsert(_ context.Context, userID, productID string, quantity int, color, size string) error {
	f.calls++
	if f.fail != nil {
		return f.fail
	}
	key := f.variantKey(userID, productID, color, size)
	for id, row := range f.rows {
		if f.variantKey(row.UserID, row.ProductID, row.SelectedColor, row.SelectedSize) == key {
			row.Quantity = quantity
			row.UpdatedAt = time.Now()
			f.rows[id] = row
			return nil
		}
	}
	f.seq++
	id := fmt.Sprintf("cart-%d", f.seq)
	f.rows[id] = models.CartRow{
		ID: id, UserID: userID, ProductID: productID, Quantity: quantity,
		SelectedColor: color, SelectedSize: size,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	return nil
}

func (f *fakeCartStore) ListByUser(_ context.Context, userID string) ([]models.CartRow, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	out := []models.CartRow{}
	for i := 1; i <= f.seq; i++ {
		if row, ok := f.rows[fmt.Sprintf("cart-%d", i)]; ok && row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeCartStore) GetByID(_ context.Context, userID, itemID string) (*models.CartRow, error) {
	f.calls++
	row, ok := f.rows[itemID]
	if !ok || row.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (f *fakeCartStore) UpdateQuantity(_ context.Context, userID, itemID string, quantity int) error {
	f.calls++
	row, ok := f.rows[itemID]
	if !ok || row.UserID != userID {
		return repositories.ErrNotFound
	}
	row.Quantity = quantity
	f.rows[itemID] = row
	return nil
}

func (f *fakeCartStore) Delete(_ context.Context, userID, itemID string) error {
	f.calls++
	if f.fail != nil {
		return f.fail
	}
	if row, ok := f.rows[itemID]; ok && row.UserID == userID {
		delete(f.rows, itemID)
	}
	return nil
}

func (f *fakeCartStore) DeleteByUser(_ context.Context, userID string) error {
	f.calls++
	for id, row := range f.rows {
		if row.UserID == userID {
			delete(f.rows, id)
		}
	}
	return nil
}

// fakeWishlistStore mirrors wishlist_items with its (user, product)
// unique constraint.
type fakeWishlistStore struct {
	rows  map[string]models.WishlistRow
	calls int
	seq   int
}

func newFakeWishlistStore() *fakeWishlistStore {
	return &fakeWishlistStore{rows: map[string]models.WishlistRow{}}
}

func (f *fakeWishlistStore) Insert(_ context.Context, userID, productID string) error {
	f.calls++
	for _, row := range f.rows {
		if row.UserID == userID && row.ProductID == productID {
			return repositories.ErrDuplicate
		}
	}
	f.seq++
	id := fmt.Sprintf("wish-%d", f.seq)
	f.rows[id] = models.WishlistRow{ID: id, UserID: userID, ProductID: productID, CreatedAt: time.Now()}
	return nil
}

func (f *fakeWishlistStore) ListByUser(_ context.Context, userID string) ([]models.WishlistRow, error) {
	f.calls++
	out := []models.WishlistRow{}
	for i := 1; i <= f.seq; i++ {
		if row, ok := f.rows[fmt.Sprintf("wish-%d", i)]; ok && row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeWishlistStore) Delete(_ context.Context, userID, itemID string) error {
	f.calls++
	if row, ok := f.rows[itemID]; ok && row.UserID == userID {
		delete(f.rows, itemID)
	}
	return nil
}

type fakeProductIndex map[string]*models.Product

func (f fakeProductIndex) ByID(id string) *models.Product { return f[id] }

func testIndex() fakeProductIndex {
	op := 250.0
	return fakeProductIndex{
		"p1": {ID: "p1", Name: "Oxford Shirt", Price: 100, OriginalPrice: &op, Brand: "ComfortWear", ImageURL: "/assets/p1.jpg", Rating: 4.5, InStock: true},
		"p2": {ID: "p2", Name: "Denim Jeans", Price: 50, Brand: "DenimCo", ImageURL: "/assets/p2.jpg", Rating: 4.0, InStock: true},
	}
}

func newTestService() (*CartService, *fakeCartStore, *fakeWishlistStore) {
	carts := newFakeCartStore()
	wishlists := newFakeWishlistStore()
	return NewCartService(carts, wishlists, testIndex()), carts, wishlists
}

const user = "user-1"

func TestAddToCart_UpsertSameVariant(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, user, "p1", 1, "Black", "M")
	require.NoError(t, err)
	items, err := svc.AddToCart(ctx, user, "p1", 1, "Black", "M")
	require.NoError(t, err)

	// Exactly one row for the (product, color, size) variant.
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Len(t, carts.rows, 1)
}

func TestAddToCart_DistinctVariantsAreDistinctRows(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, user, "p1", 1, "Black", "M")
	require.NoError(t, err)
	items, err := svc.AddToCart(ctx, user, "p1", 1, "White", "L")
	require.NoError(t, err)

	assert.Len(t, items, 2)
}

func TestAddToCart_DefaultQuantityIsOne(t *testing.T) {
	svc, _, _ := newTestService()

	items, err := svc.AddToCart(context.Background(), user, "p1", 0, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc, carts, _ := newTestService()

	_, err := svc.AddToCart(context.Background(), user, "no-such-product", 1, "", "")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Zero(t, carts.calls)
}

func TestAddToCart_DenormalizedSnapshot(t *testing.T) {
	svc, _, _ := newTestService()

	items, err := svc.AddToCart(context.Background(), user, "p1", 2, "Black", "M")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Oxford Shirt", item.Name)
	assert.Equal(t, 100.0, item.Price)
	require.NotNil(t, item.OriginalPrice)
	assert.Equal(t, 250.0, *item.OriginalPrice)
	assert.Equal(t, "ComfortWear", item.Brand)
	assert.Equal(t, "/assets/p1.jpg", item.ImageURL)
	assert.Equal(t, "Black", item.SelectedColor)
	assert.Equal(t, "M", item.SelectedSize)
}

func TestAnonymousMutationsAreNoOps(t *testing.T) {
	svc, carts, wishlists := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "", "p1", 1, "", "")
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = svc.RemoveFromCart(ctx, "", "cart-1")
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = svc.UpdateCartQuantity(ctx, "", "cart-1", 2)
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = svc.ClearCart(ctx, "")
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = svc.AddToWishlist(ctx, "", "p1")
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = svc.RemoveFromWishlist(ctx, "", "wish-1")
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, _, err = svc.MoveToWishlist(ctx, "", "cart-1")
	assert.ErrorIs(t, err, ErrAuthRequired)

	// The store never saw a single call.
	assert.Zero(t, carts.calls)
	assert.Zero(t, wishlists.calls)
}

func TestAnonymousReadsReturnEmpty(t *testing.T) {
	svc, carts, wishlists := newTestService()
	ctx := context.Background()

	cartItems, err := svc.FetchCartItems(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, cartItems)

	wishlistItems, err := svc.FetchWishlistItems(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, wishlistItems)

	assert.Zero(t, carts.calls)
	assert.Zero(t, wishlists.calls)
}

func TestUpdateCartQuantity_RejectsBelowOne(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, user, "p1", 3, "", "")
	require.NoError(t, err)
	itemID := items[0].ID

	_, err = svc.UpdateCartQuantity(ctx, user, itemID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Rejected, not clamped or deleted: the stored quantity is unchanged.
	assert.Equal(t, 3, carts.rows[itemID].Quantity)
}

func TestUpdateCartQuantity_UnknownItem(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateCartQuantity(context.Background(), user, "no-such-item", 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAddToCart_WriteFailureLeavesStateUnchanged(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, user, "p1", 1, "", "")
	require.NoError(t, err)
	require.Len(t, items, 1)

	carts.fail = errors.New("remote write failed")
	_, err = svc.AddToCart(ctx, user, "p2", 1, "", "")
	require.Error(t, err)

	// No optimistic update was applied, so nothing to roll back.
	carts.fail = nil
	after, err := svc.FetchCartItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "p1", after[0].ProductID)
}

func TestRemoveFromCart(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, user, "p1", 1, "", "")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, user, "p2", 1, "", "")
	require.NoError(t, err)

	after, err := svc.RemoveFromCart(ctx, user, items[0].ID)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "p2", after[0].ProductID)
}

func TestClearCart(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, user, "p1", 2, "", "")
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, user, "p2", 1, "", "")
	require.NoError(t, err)

	listCallsBefore := carts.calls
	items, err := svc.ClearCart(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, carts.rows)

	// Clearing does not read back; the result is known to be empty.
	assert.Equal(t, listCallsBefore+1, carts.calls)
}

func TestAddToWishlist_DuplicateIsBenign(t *testing.T) {
	svc, _, wishlists := newTestService()
	ctx := context.Background()

	items, err := svc.AddToWishlist(ctx, user, "p1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	again, err := svc.AddToWishlist(ctx, user, "p1")
	assert.ErrorIs(t, err, ErrAlreadyInWishlist)

	// The wishlist size is unchanged and the condition is distinct from
	// a generic failure.
	assert.Len(t, again, 1)
	assert.Len(t, wishlists.rows, 1)
}

func TestRemoveFromWishlist(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	items, err := svc.AddToWishlist(ctx, user, "p1")
	require.NoError(t, err)

	after, err := svc.RemoveFromWishlist(ctx, user, items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestMoveToWishlist(t *testing.T) {
	svc, carts, wishlists := newTestService()
	ctx := context.Background()

	items, err := svc.AddToCart(ctx, user, "p1", 2, "Black", "M")
	require.NoError(t, err)

	cartItems, wishlistItems, err := svc.MoveToWishlist(ctx, user, items[0].ID)
	require.NoError(t, err)

	assert.Empty(t, cartItems)
	require.Len(t, wishlistItems, 1)
	assert.Equal(t, "p1", wishlistItems[0].ProductID)
	assert.Empty(t, carts.rows)
	assert.Len(t, wishlists.rows, 1)
}

func TestMoveToWishlist_ProductAlreadyWishlisted(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddToWishlist(ctx, user, "p1")
	require.NoError(t, err)
	items, err := svc.AddToCart(ctx, user, "p1", 1, "", "")
	require.NoError(t, err)

	// The duplicate wishlist insert is swallowed; the move still removes
	// the cart row, so retries converge.
	cartItems, wishlistItems, err := svc.MoveToWishlist(ctx, user, items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, cartItems)
	assert.Len(t, wishlistItems, 1)
}

func TestMoveToWishlist_UnknownCartItem(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.MoveToWishlist(context.Background(), user, "no-such-item")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestFetch_SkipsOrphanedRows(t *testing.T) {
	svc, carts, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, carts.Upsert(ctx, user, "p1", 1, "", ""))
	require.NoError(t, carts.Upsert(ctx, user, "gone-product", 1, "", ""))

	items, err := svc.FetchCartItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestWishlistSnapshotFields(t *testing.T) {
	svc, _, _ := newTestService()

	items, err := svc.AddToWishlist(context.Background(), user, "p2")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Denim Jeans", item.Name)
	assert.Equal(t, 50.0, item.Price)
	assert.Nil(t, item.OriginalPrice)
	assert.Equal(t, "DenimCo", item.Brand)
	assert.Equal(t, 4.0, item.Rating)
	assert.True(t, item.InStock)
}

func TestTotals(t *testing.T) {
	items := []models.CartItem{
		{Price: 100, Quantity: 2},
		{Price: 50, Quantity: 1},
	}

	assert.Equal(t, 3, TotalItems(items))
	assert.Equal(t, 250.0, TotalPrice(items))

	summary := Summary(items)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 250.0, summary.TotalPrice)

	assert.Zero(t, TotalItems(nil))
	assert.Zero(t, TotalPrice(nil))
}
