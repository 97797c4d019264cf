package shared

import (
	"context"
	"time"

	"suppstore/internal/domain/catalog"
	"suppstore/internal/domain/finance"
	"suppstore/internal/domain/order"
	"suppstore/internal/infra/db"
	"suppstore/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrConflictRetryExceeded marks a write transaction that kept hitting
// serialization conflicts past the retry budget.
var ErrConflictRetryExceeded = errs.New("transaction failed after max retries")

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes the write-side repositories bound to one transaction.
// Everything touched through it commits or rolls back together.
type Tx interface {
	Products() ProductRepository
	Orders() OrderRepository
	OrderNumbers() OrderNumberRepository
	PromoCodes() PromoRepository
	Ledgers() LedgerRepository
	Payments() PaymentRepository
	Payouts() PayoutRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ZoneByStateCity(ctx context.Context, state, city string) (*ZoneSnapshot, error)
	PromoByCode(ctx context.Context, code string) (*PromoSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
}

type ProductRepository interface {
	// LockForUpdate loads the requested products with row locks held for
	// the rest of the transaction. Missing ids are simply absent from
	// the result.
	LockForUpdate(ctx context.Context, ids []uuid.UUID) ([]*catalog.Product, error)
	// DecrementStock applies a guarded decrement; it fails with a
	// conflict kind when stock no longer covers the quantity.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

// OrderNumberRepository is the sequence service behind order numbers:
// strictly increasing, one per committed order, allocated inside the
// order transaction so an aborted checkout never publishes a number.
type OrderNumberRepository interface {
	Next(ctx context.Context) (int64, error)
}

type PromoRepository interface {
	// Redeem flips the used flag; it fails with a conflict kind when the
	// code was already redeemed.
	Redeem(ctx context.Context, id uuid.UUID) error
}

type LedgerRepository interface {
	FindForUpdate(ctx context.Context, coachID uuid.UUID) (*finance.CoachLedger, error)
	Create(ctx context.Context, ledger *finance.CoachLedger) error
	Save(ctx context.Context, ledger *finance.CoachLedger) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *finance.ClientPayment) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*finance.ClientPayment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PayoutRepository interface {
	Create(ctx context.Context, payout *finance.CoachPayout) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*finance.CoachPayout, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status finance.PayoutStatus) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
