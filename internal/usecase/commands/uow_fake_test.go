//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"suppstore/internal/domain/catalog"
	"suppstore/internal/domain/finance"
	"suppstore/internal/domain/order"
	"suppstore/internal/infra"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeState is an in-memory stand-in for the write side. It has no
// rollback: tests assert on mutations a command left behind on
// success, and on errors only for failed commands.
type fakeState struct {
	products   map[uuid.UUID]*catalog.Product
	decrements map[uuid.UUID]int

	createdOrders []*order.Order
	orders        map[uuid.UUID]*shared.OrderSnapshot
	counter       int64

	zones    map[string]*shared.ZoneSnapshot
	promos   map[string]*shared.PromoSnapshot
	redeemed map[uuid.UUID]int

	ledgers  map[uuid.UUID]*finance.CoachLedger
	payments map[uuid.UUID]*finance.ClientPayment
	payouts  map[uuid.UUID]*finance.CoachPayout

	jobs []fakeJob
}

type fakeJob struct {
	kind  string
	topic string
}

func newFakeState() *fakeState {
	return &fakeState{
		products:   make(map[uuid.UUID]*catalog.Product),
		decrements: make(map[uuid.UUID]int),
		orders:     make(map[uuid.UUID]*shared.OrderSnapshot),
		zones:      make(map[string]*shared.ZoneSnapshot),
		promos:     make(map[string]*shared.PromoSnapshot),
		redeemed:   make(map[uuid.UUID]int),
		ledgers:    make(map[uuid.UUID]*finance.CoachLedger),
		payments:   make(map[uuid.UUID]*finance.ClientPayment),
		payouts:    make(map[uuid.UUID]*finance.CoachPayout),
	}
}

func (s *fakeState) addZone(state, city string, feeCents int64) {
	s.zones[state+"/"+city] = &shared.ZoneSnapshot{
		ID:       uuid.New(),
		State:    state,
		City:     city,
		FeeCents: feeCents,
	}
}

func (s *fakeState) addProduct(t *testing.T, name string, priceCents int64, quantity int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	p, err := catalog.NewProduct(id, name, priceCents, priceCents/2, quantity, "protein", catalog.OptionSet{})
	require.NoError(t, err)
	s.products[id] = p
	return id
}

func (s *fakeState) addPromo(code string, amountOffCents int64) uuid.UUID {
	id := uuid.New()
	s.promos[code] = &shared.PromoSnapshot{
		ID:             id,
		Code:           code,
		AmountOffCents: &amountOffCents,
	}
	return id
}

// fakeUoW runs the callback against fakeState. A non-nil fail is
// returned without invoking the callback, standing in for a write
// transaction that exhausted its retries.
type fakeUoW struct {
	state *fakeState
	fail  error
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.fail != nil {
		return u.fail
	}
	return fn(ctx, &fakeTx{s: u.state})
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return fakeReads{s: u.state} }

type fakeTx struct{ s *fakeState }

func (t *fakeTx) Products() shared.ProductRepository           { return fakeProducts{s: t.s} }
func (t *fakeTx) Orders() shared.OrderRepository               { return fakeOrders{s: t.s} }
func (t *fakeTx) OrderNumbers() shared.OrderNumberRepository   { return fakeOrderNumbers{s: t.s} }
func (t *fakeTx) PromoCodes() shared.PromoRepository           { return fakePromos{s: t.s} }
func (t *fakeTx) Ledgers() shared.LedgerRepository             { return fakeLedgers{s: t.s} }
func (t *fakeTx) Payments() shared.PaymentRepository           { return fakePayments{s: t.s} }
func (t *fakeTx) Payouts() shared.PayoutRepository             { return fakePayouts{s: t.s} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return fakeNotifications{s: t.s} }
func (t *fakeTx) Reads() shared.CommandReads                   { return fakeReads{s: t.s} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeProducts struct{ s *fakeState }

func (r fakeProducts) LockForUpdate(_ context.Context, ids []uuid.UUID) ([]*catalog.Product, error) {
	locked := make([]*catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			locked = append(locked, p)
		}
	}
	return locked, nil
}

// DecrementStock records the guarded write; mutating the loaded
// aggregate is the caller's job.
func (r fakeProducts) DecrementStock(_ context.Context, productID uuid.UUID, quantity int) error {
	p, ok := r.s.products[productID]
	if !ok || !p.CanFulfill(quantity) {
		return infra.WrapRepoErr("decrement stock", errs.New("stock below requested quantity"), infra.KindConflict)
	}
	r.s.decrements[productID] += quantity
	return nil
}

type fakeOrders struct{ s *fakeState }

func (r fakeOrders) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	r.s.createdOrders = append(r.s.createdOrders, o)
	r.s.orders[o.ID()] = &shared.OrderSnapshot{
		ID:          o.ID(),
		OrderNumber: o.OrderNumber(),
		Status:      string(o.Status()),
	}
	return o.ID(), nil
}

func (r fakeOrders) UpdateStatus(_ context.Context, id uuid.UUID, status order.Status) error {
	snapshot, ok := r.s.orders[id]
	if !ok {
		return infra.WrapRepoErr("update order status", errs.New("no rows affected"), infra.KindNotFound)
	}
	snapshot.Status = string(status)
	return nil
}

type fakeOrderNumbers struct{ s *fakeState }

func (r fakeOrderNumbers) Next(_ context.Context) (int64, error) {
	r.s.counter++
	return r.s.counter, nil
}

type fakePromos struct{ s *fakeState }

func (r fakePromos) Redeem(_ context.Context, id uuid.UUID) error {
	if r.s.redeemed[id] > 0 {
		return infra.WrapRepoErr("redeem promo code", errs.New("code already used"), infra.KindConflict)
	}
	r.s.redeemed[id]++
	for _, snapshot := range r.s.promos {
		if snapshot.ID == id {
			snapshot.Used = true
		}
	}
	return nil
}

type fakeLedgers struct{ s *fakeState }

func (r fakeLedgers) FindForUpdate(_ context.Context, coachID uuid.UUID) (*finance.CoachLedger, error) {
	ledger, ok := r.s.ledgers[coachID]
	if !ok {
		return nil, infra.WrapRepoErr("find coach ledger", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return ledger, nil
}

func (r fakeLedgers) Create(_ context.Context, ledger *finance.CoachLedger) error {
	r.s.ledgers[ledger.CoachID()] = ledger
	return nil
}

func (r fakeLedgers) Save(_ context.Context, ledger *finance.CoachLedger) error {
	r.s.ledgers[ledger.CoachID()] = ledger
	return nil
}

type fakePayments struct{ s *fakeState }

func (r fakePayments) Create(_ context.Context, payment *finance.ClientPayment) (uuid.UUID, error) {
	r.s.payments[payment.ID()] = payment
	return payment.ID(), nil
}

func (r fakePayments) FindForUpdate(_ context.Context, id uuid.UUID) (*finance.ClientPayment, error) {
	payment, ok := r.s.payments[id]
	if !ok {
		return nil, infra.WrapRepoErr("find client payment", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return payment, nil
}

func (r fakePayments) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.payments[id]; !ok {
		return infra.WrapRepoErr("delete client payment", errs.New("no rows affected"), infra.KindNotFound)
	}
	delete(r.s.payments, id)
	return nil
}

type fakePayouts struct{ s *fakeState }

func (r fakePayouts) Create(_ context.Context, payout *finance.CoachPayout) (uuid.UUID, error) {
	r.s.payouts[payout.ID()] = payout
	return payout.ID(), nil
}

func (r fakePayouts) FindForUpdate(_ context.Context, id uuid.UUID) (*finance.CoachPayout, error) {
	payout, ok := r.s.payouts[id]
	if !ok {
		return nil, infra.WrapRepoErr("find coach payout", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return payout, nil
}

func (r fakePayouts) UpdateStatus(_ context.Context, id uuid.UUID, _ finance.PayoutStatus) error {
	if _, ok := r.s.payouts[id]; !ok {
		return infra.WrapRepoErr("update payout status", errs.New("no rows affected"), infra.KindNotFound)
	}
	return nil
}

type fakeNotifications struct{ s *fakeState }

func (r fakeNotifications) CreateJob(_ context.Context, kind, topic string, _ []byte, _ time.Time) error {
	r.s.jobs = append(r.s.jobs, fakeJob{kind: kind, topic: topic})
	return nil
}

type fakeReads struct{ s *fakeState }

func (r fakeReads) ZoneByStateCity(_ context.Context, state, city string) (*shared.ZoneSnapshot, error) {
	zone, ok := r.s.zones[state+"/"+city]
	if !ok {
		return nil, infra.WrapRepoErr("find shipping zone", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return zone, nil
}

func (r fakeReads) PromoByCode(_ context.Context, code string) (*shared.PromoSnapshot, error) {
	promo, ok := r.s.promos[code]
	if !ok {
		return nil, infra.WrapRepoErr("find promo code", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return promo, nil
}

func (r fakeReads) OrderByID(_ context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	snapshot, ok := r.s.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("find order", errs.New("no rows in result set"), infra.KindNotFound)
	}
	return snapshot, nil
}
