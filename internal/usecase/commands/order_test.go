//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"suppstore/internal/domain/order"
	"suppstore/internal/pkg/clock"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/commands"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderCommands(state *fakeState) commands.OrderCommands {
	uow := &fakeUoW{state: state}
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewOrderCommands(uow, order.NewPricingEngine(), mockClock)
}

func checkoutInput(items ...commands.CheckoutItem) commands.CreateOrderInput {
	return commands.CreateOrderInput{
		CustomerName:  "Jane Customer",
		CustomerEmail: "jane@example.com",
		AddressLine:   "12 Oak Street",
		City:          "Springfield",
		State:         "Illinois",
		Phone:         "+13125550147",
		ZipCode:       "62704",
		Items:         items,
	}
}

// ================================================
// CreateOrder
// ================================================

func TestCreateOrder_ReservesStockAndAllocatesNumber(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	productID := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	uc := newOrderCommands(state)

	result, err := uc.CreateOrder(context.Background(), checkoutInput(
		commands.CheckoutItem{ProductID: productID, Quantity: 2},
	))

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.OrderNumber)
	assert.Equal(t, int64(2*4999+700), result.TotalCents)
	assert.Equal(t, 2, state.decrements[productID])
	assert.Equal(t, 8, state.products[productID].Quantity())
	require.Len(t, state.createdOrders, 1)
	assert.Equal(t, result.OrderID, state.createdOrders[0].ID())

	// Every committed checkout queues a view invalidation job.
	require.Len(t, state.jobs, 1)
	assert.Equal(t, fakeJob{kind: "cache", topic: "views_invalidated"}, state.jobs[0])
}

func TestCreateOrder_OrderNumbersStrictlyIncrease(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	productID := state.addProduct(t, "Creatine Monohydrate", 2499, 50)
	uc := newOrderCommands(state)

	var numbers []int64
	for range 3 {
		result, err := uc.CreateOrder(context.Background(), checkoutInput(
			commands.CheckoutItem{ProductID: productID, Quantity: 1},
		))
		require.NoError(t, err)
		numbers = append(numbers, result.OrderNumber)
	}

	assert.Equal(t, []int64{1, 2, 3}, numbers)
}

func TestCreateOrder_OutOfStockAbortsWholeCart(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	plenty := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	scarce := state.addProduct(t, "Pre-Workout", 3499, 1)
	uc := newOrderCommands(state)

	_, err := uc.CreateOrder(context.Background(), checkoutInput(
		commands.CheckoutItem{ProductID: plenty, Quantity: 2},
		commands.CheckoutItem{ProductID: scarce, Quantity: 3},
	))

	require.True(t, errs.Is(err, commands.ErrOutOfStock))

	// The shortfall on one line must leave the other untouched.
	assert.Empty(t, state.decrements)
	assert.Equal(t, 10, state.products[plenty].Quantity())
	assert.Equal(t, 1, state.products[scarce].Quantity())
	assert.Empty(t, state.createdOrders)
	assert.Zero(t, state.counter)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	uc := newOrderCommands(state)

	_, err := uc.CreateOrder(context.Background(), checkoutInput(
		commands.CheckoutItem{ProductID: uuid.New(), Quantity: 1},
	))

	require.True(t, errs.Is(err, commands.ErrProductNotFound))
	assert.Empty(t, state.createdOrders)
}

func TestCreateOrder_UnknownShippingZone(t *testing.T) {
	state := newFakeState()
	productID := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	uc := newOrderCommands(state)

	input := checkoutInput(commands.CheckoutItem{ProductID: productID, Quantity: 1})
	input.State = "Atlantis"
	input.City = "Underwater"

	_, err := uc.CreateOrder(context.Background(), input)

	require.True(t, errs.Is(err, commands.ErrUnknownShippingZone))
	assert.Empty(t, state.decrements)
}

func TestCreateOrder_RetryBudgetExhausted(t *testing.T) {
	state := newFakeState()
	uow := &fakeUoW{state: state, fail: shared.ErrConflictRetryExceeded}
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := commands.NewOrderCommands(uow, order.NewPricingEngine(), mockClock)

	_, err := uc.CreateOrder(context.Background(), checkoutInput(
		commands.CheckoutItem{ProductID: uuid.New(), Quantity: 1},
	))

	require.True(t, errs.Is(err, commands.ErrAllocationConflict))
}

// ================================================
// Promo redemption
// ================================================

func TestCreateOrder_PromoIsSingleUse(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	productID := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	promoID := state.addPromo("WELCOME10", 1000)
	uc := newOrderCommands(state)

	code := "WELCOME10"
	input := checkoutInput(commands.CheckoutItem{ProductID: productID, Quantity: 1})
	input.PromoCode = &code

	result, err := uc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(4999-1000+700), result.TotalCents)
	assert.True(t, state.promos[code].Used)
	assert.Equal(t, 1, state.redeemed[promoID])

	_, err = uc.CreateOrder(context.Background(), input)
	require.True(t, errs.Is(err, commands.ErrInvalidPromo))

	assert.Equal(t, 1, state.redeemed[promoID])
	require.Len(t, state.createdOrders, 1)
	assert.Equal(t, 9, state.products[productID].Quantity())
}

func TestCreateOrder_PromoRedemptionLostRace(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	productID := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	promoID := state.addPromo("ONCE", 500)

	// The snapshot still reads unused, but the guarded update already
	// ran in another transaction.
	state.redeemed[promoID] = 1
	uc := newOrderCommands(state)

	code := "ONCE"
	input := checkoutInput(commands.CheckoutItem{ProductID: productID, Quantity: 1})
	input.PromoCode = &code

	_, err := uc.CreateOrder(context.Background(), input)

	require.True(t, errs.Is(err, commands.ErrInvalidPromo))
	assert.Empty(t, state.createdOrders)
}

func TestCreateOrder_UnknownPromoCode(t *testing.T) {
	state := newFakeState()
	state.addZone("Illinois", "Springfield", 700)
	productID := state.addProduct(t, "Whey Isolate 2kg", 4999, 10)
	uc := newOrderCommands(state)

	code := "NOPE"
	input := checkoutInput(commands.CheckoutItem{ProductID: productID, Quantity: 1})
	input.PromoCode = &code

	_, err := uc.CreateOrder(context.Background(), input)

	require.True(t, errs.Is(err, commands.ErrPromoNotFound))
}

// ================================================
// UpdateOrderStatus
// ================================================

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("moves a live order forward", func(t *testing.T) {
		state := newFakeState()
		orderID := uuid.New()
		state.orders[orderID] = &shared.OrderSnapshot{ID: orderID, OrderNumber: 1, Status: "pending"}
		uc := newOrderCommands(state)

		err := uc.UpdateOrderStatus(context.Background(), orderID, "shipped")

		require.NoError(t, err)
		assert.Equal(t, "shipped", state.orders[orderID].Status)
		require.Len(t, state.jobs, 1)
		assert.Equal(t, "views_invalidated", state.jobs[0].topic)
	})

	t.Run("terminal statuses are final", func(t *testing.T) {
		state := newFakeState()
		orderID := uuid.New()
		state.orders[orderID] = &shared.OrderSnapshot{ID: orderID, OrderNumber: 1, Status: "delivered"}
		uc := newOrderCommands(state)

		err := uc.UpdateOrderStatus(context.Background(), orderID, "pending")

		require.True(t, errs.Is(err, commands.ErrValidation))
		assert.True(t, errs.Is(err, order.ErrStatusFinal))
		assert.Equal(t, "delivered", state.orders[orderID].Status)
	})

	t.Run("rejects an unknown status outright", func(t *testing.T) {
		uc := newOrderCommands(newFakeState())

		err := uc.UpdateOrderStatus(context.Background(), uuid.New(), "teleported")

		require.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("missing order", func(t *testing.T) {
		uc := newOrderCommands(newFakeState())

		err := uc.UpdateOrderStatus(context.Background(), uuid.New(), "shipped")

		require.True(t, errs.Is(err, commands.ErrOrderNotFound))
	})
}
