package commands

import (
	"context"
	"encoding/json"

	"suppstore/internal/domain/catalog"
	"suppstore/internal/domain/order"
	"suppstore/internal/domain/promo"
	"suppstore/internal/domain/shipping"
	"suppstore/internal/infra"
	"suppstore/internal/pkg/clock"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errs.New("product not found")
	ErrOutOfStock          = errs.New("out of stock")
	ErrAllocationConflict  = errs.New("order transaction conflicted; retry")
	ErrOrderNotFound       = errs.New("order not found")
	ErrPromoNotFound       = errs.New("promo code not found")
	ErrInvalidPromo        = errs.New("invalid promo code")
	ErrUnknownShippingZone = errs.New("no shipping zone for state/city")
)

type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
	Size      *string
	Color     *string
	Flavor    *string
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	AddressLine   string
	City          string
	State         string
	Phone         string
	ZipCode       string
	Items         []CheckoutItem
	PromoCode     *string
}

type CreateOrderResult struct {
	OrderID     uuid.UUID
	OrderNumber int64
	TotalCents  int64
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	uow     shared.UnitOfWork
	pricing *order.PricingEngine
	clock   clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, pricing *order.PricingEngine, clock clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:     uow,
		pricing: pricing,
		clock:   clock,
	}
}

// CreateOrder runs the whole checkout in a single transaction: stock
// reservation, server-side pricing, promo redemption, order number
// allocation and order persistence commit together or not at all.
func (c *orderCommandsImpl) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	customer, err := order.NewCustomer(input.CustomerName, input.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	address, err := order.NewAddress(input.AddressLine, input.City, input.State, input.Phone, input.ZipCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	cartLines := make([]order.CartLine, len(input.Items))
	for i, item := range input.Items {
		cartLines[i] = order.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Selection: order.Selection{
				Size:   item.Size,
				Color:  item.Color,
				Flavor: item.Flavor,
			},
		}
	}

	productIDs, demand, err := order.CoalesceDemand(cartLines)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var result *CreateOrderResult

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		zone, zoneErr := c.resolveZone(ctx, tx, input.State, input.City)
		if zoneErr != nil {
			return zoneErr
		}

		promoEntity, promoErr := c.resolvePromo(ctx, tx, input.PromoCode)
		if promoErr != nil {
			return promoErr
		}

		products, reserveErr := c.reserveStock(ctx, tx, productIDs, demand)
		if reserveErr != nil {
			return reserveErr
		}

		items := buildLineItems(cartLines, products)

		amounts, applied := c.pricing.ComputeTotals(items, promoEntity, order.NewMoney(zone.FeeCents()))

		if promoEntity != nil {
			if redeemErr := tx.PromoCodes().Redeem(ctx, promoEntity.ID()); redeemErr != nil {
				if infra.IsKind(redeemErr, infra.KindConflict) {
					return errs.Mark(redeemErr, ErrInvalidPromo)
				}
				return errs.Mark(redeemErr, ErrDatabaseOperationFailed)
			}
		}

		orderNumber, seqErr := tx.OrderNumbers().Next(ctx)
		if seqErr != nil {
			return errs.Mark(seqErr, ErrDatabaseOperationFailed)
		}

		orderEntity, buildErr := order.NewOrder(orderNumber, customer, address, items, applied, amounts)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrDomainValidation)
		}

		orderID, createErr := tx.Orders().Create(ctx, orderEntity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}

		if notifyErr := c.invalidateViews(ctx, tx, orderID); notifyErr != nil {
			return errs.Mark(notifyErr, ErrDatabaseOperationFailed)
		}

		result = &CreateOrderResult{
			OrderID:     orderID,
			OrderNumber: orderNumber,
			TotalCents:  amounts.Total.Cents(),
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, shared.ErrConflictRetryExceeded) {
			return nil, errs.Mark(err, ErrAllocationConflict)
		}
		return nil, err
	}

	return result, nil
}

func (c *orderCommandsImpl) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := order.Status(status)
	if !next.IsValid() {
		return errs.Mark(order.ErrInvalidStatus, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().OrderByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if order.Status(snapshot.Status).IsTerminal() {
			return errs.Mark(order.ErrStatusFinal, ErrValidation)
		}

		if err := tx.Orders().UpdateStatus(ctx, id, next); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.invalidateViews(ctx, tx, id)
	})
}

func (c *orderCommandsImpl) resolveZone(ctx context.Context, tx shared.Tx, state, city string) (*shipping.Zone, error) {
	snapshot, err := tx.Reads().ZoneByStateCity(ctx, state, city)
	if err != nil {
		// Unmatched zones used to ship for free; they are rejected now.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Newf("no shipping zone for %s/%s", state, city), ErrUnknownShippingZone)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	zone, err := shipping.NewZone(snapshot.ID, snapshot.State, snapshot.City, snapshot.FeeCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return zone, nil
}

func (c *orderCommandsImpl) resolvePromo(ctx context.Context, tx shared.Tx, code *string) (*promo.PromoCode, error) {
	if code == nil {
		return nil, nil
	}

	snapshot, err := tx.Reads().PromoByCode(ctx, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromoNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	promoEntity, err := promo.NewPromoCode(
		snapshot.ID,
		snapshot.Code,
		snapshot.AmountOffCents,
		snapshot.PercentOff,
		snapshot.Used,
		snapshot.ValidFrom,
		snapshot.ValidTo,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPromo)
	}

	if err := promoEntity.ValidateUsage(c.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidPromo)
	}

	return promoEntity, nil
}

// reserveStock locks every referenced product, validates the coalesced
// demand and applies the decrements. Any shortfall aborts the caller's
// transaction, so partial reservation is impossible.
func (c *orderCommandsImpl) reserveStock(
	ctx context.Context,
	tx shared.Tx,
	productIDs []uuid.UUID,
	demand map[uuid.UUID]int,
) (map[uuid.UUID]*catalog.Product, error) {
	locked, err := tx.Products().LockForUpdate(ctx, productIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	products := make(map[uuid.UUID]*catalog.Product, len(locked))
	for _, p := range locked {
		products[p.ID()] = p
	}

	for _, id := range productIDs {
		p, ok := products[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("product %s not found", id), ErrProductNotFound)
		}
		if !p.CanFulfill(demand[id]) {
			return nil, errs.Mark(
				errs.Newf("%s: requested %d, available %d", p.Name(), demand[id], p.Quantity()),
				ErrOutOfStock,
			)
		}
	}

	for _, id := range productIDs {
		if err := tx.Products().DecrementStock(ctx, id, demand[id]); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return nil, errs.Mark(err, ErrOutOfStock)
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// Keep the locked aggregate in step with the row it came from.
		if err := products[id].Decrement(demand[id]); err != nil {
			return nil, errs.Mark(err, ErrOutOfStock)
		}
	}

	return products, nil
}

// buildLineItems snapshots the authoritative product data onto each
// requested line; client-submitted prices never reach the order.
func buildLineItems(lines []order.CartLine, products map[uuid.UUID]*catalog.Product) []order.LineItem {
	items := make([]order.LineItem, len(lines))
	for i, line := range lines {
		p := products[line.ProductID]
		items[i] = order.LineItem{
			ProductID:   p.ID(),
			Name:        p.Name(),
			Category:    p.Category(),
			UnitPrice:   order.NewMoney(p.PriceCents()),
			BuyingPrice: order.NewMoney(p.BuyingCents()),
			Quantity:    line.Quantity,
			Selection:   line.Selection,
		}
	}
	return items
}

func (c *orderCommandsImpl) invalidateViews(ctx context.Context, tx shared.Tx, orderID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"order_id": orderID,
		"views":    []string{"storefront", "orders", "products", "finance"},
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, "cache", "views_invalidated", payload, c.clock.Now())
}
