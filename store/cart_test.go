package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Strangessssss/QPick-Backend/models"
)

func TestUpsertCartLineCreatesLine(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Headphones", "10.00")
	user := seedUser(t, db)

	line, err := UpsertCartLine(db, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)
	require.NotNil(t, line.Product, "stored line must come back with its product resolved")
	assert.True(t, line.Product.Price.Equal(mustDecimal(t, "10.00")))

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.True(t, cart.CartTotal.Equal(mustDecimal(t, "30.00")), "got total %s", cart.CartTotal)
}

func TestUpsertCartLineUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpsertCartLineProvisionsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Mouse", "5.50")
	userID := uuid.New()

	_, err := FindUser(db, userID)
	require.ErrorIs(t, err, ErrUserNotFound)

	line, err := UpsertCartLine(db, userID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, userID, line.UserID)

	_, err = FindUser(db, userID)
	assert.NoError(t, err, "upsert must have provisioned the user")
}

func TestUpsertCartLineZeroOnMissingLineIsNoOp(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Keyboard", "25.00")
	user := seedUser(t, db)

	line, err := UpsertCartLine(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity, "caller still observes a consistent line shape")

	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).Count(&count).Error)
	assert.Zero(t, count, "zero-quantity lines are never persisted")
}

func TestUpsertCartLineZeroDeletesExisting(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Monitor", "199.99")
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	line, err := UpsertCartLine(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity)

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.CartTotal.IsZero())
}

func TestUpsertCartLineOverwritesQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Cable", "2.00")
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	// Absolute set, not an increment.
	line, err := UpsertCartLine(db, user.ID, product.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, line.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).
		Where("user_id = ? AND product_id = ?", user.ID, product.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "at most one line per (user, product)")
}

func TestUpsertCartLineIdempotent(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Charger", "15.00")
	user := seedUser(t, db)

	for i := 0; i < 5; i++ {
		_, err := UpsertCartLine(db, user.ID, product.ID, 4)
		require.NoError(t, err)
	}

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.True(t, cart.CartTotal.Equal(mustDecimal(t, "60.00")))
}

func TestUpsertCartLineLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Speaker", "40.00")
	user := seedUser(t, db)

	for _, q := range []int{1, 5, 3, 9} {
		_, err := UpsertCartLine(db, user.ID, product.ID, q)
		require.NoError(t, err)
	}

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 9, cart.Lines[0].Quantity)

	// A trailing non-positive write removes the line entirely.
	_, err = UpsertCartLine(db, user.ID, product.ID, -1)
	require.NoError(t, err)

	cart, err = GetCart(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestUpsertCartLineDoubleDeleteTolerated(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Stand", "12.00")
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	// Two requests both set quantity to zero; the second sees the line
	// already gone and must not fail.
	_, err = UpsertCartLine(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	line, err := UpsertCartLine(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity)
}

func TestUpsertCartLineDeleteThenUpdateRace(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Webcam", "60.00")
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	// One request deletes the line, a racing one sets quantity=5 after the
	// row vanished. The update must degrade to a fresh insert.
	_, err = UpsertCartLine(db, user.ID, product.ID, 0)
	require.NoError(t, err)
	line, err := UpsertCartLine(db, user.ID, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestUpsertCartLineSurvivesDeleteAfterWrite(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Router", "80.00")
	user := seedUser(t, db)

	// A concurrent remove request can land between the conflict-clause write
	// and the read-back. Replay that interleaving deterministically: the
	// first cart-line insert is immediately followed by a delete.
	fired := false
	err := db.Callback().Create().After("gorm:create").Register("cart_test_racing_delete", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "cart_lines" {
			return
		}
		fired = true
		tx.Session(&gorm.Session{NewDB: true}).
			Where("user_id = ? AND product_id = ?", user.ID, product.ID).
			Delete(&models.CartLine{})
	})
	require.NoError(t, err)

	// The write happened, so the caller gets the line it set, not an error.
	line, err := UpsertCartLine(db, user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	require.NotNil(t, line.Product)
	assert.True(t, line.Product.Price.Equal(mustDecimal(t, "80.00")))

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines, "the racing delete won the row itself")
}

func TestGetCartProvisionsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	cart, err := GetCart(db, userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.CartTotal.IsZero())

	_, err = FindUser(db, userID)
	assert.NoError(t, err, "reading the cart must have created the user record")
}

func TestGetCartSumsMultipleLines(t *testing.T) {
	db := newTestDB(t)
	tea := seedProduct(t, db, "Tea", "3.25")
	coffee := seedProduct(t, db, "Coffee", "8.10")
	user := seedUser(t, db)

	_, err := UpsertCartLine(db, user.ID, tea.ID, 4)
	require.NoError(t, err)
	_, err = UpsertCartLine(db, user.ID, coffee.ID, 2)
	require.NoError(t, err)

	cart, err := GetCart(db, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.True(t, cart.CartTotal.Equal(mustDecimal(t, "29.20")), "got total %s", cart.CartTotal)
}
