package commands

import (
	"context"

	"suppstore/internal/domain/finance"
	"suppstore/internal/infra"
	"suppstore/internal/pkg/clock"
	"suppstore/internal/pkg/config"
	"suppstore/internal/pkg/errs"
	"suppstore/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLedgerMissing    = errs.New("coach has no financial ledger")
	ErrPayoutNotFound   = errs.New("payout not found")
	ErrPayoutNotPending = errs.New("payout is not pending")
	ErrPaymentNotFound  = errs.New("client payment not found")
	ErrPendingMismatch  = errs.New("pending payout balance mismatch")
)

type RecordClientPaymentInput struct {
	CoachID     uuid.UUID
	ClientName  string
	PlanTitle   string
	AmountCents int64
	Status      string
}

type RecordCoachPayoutInput struct {
	CoachID     uuid.UUID
	ClientName  string
	PlanTitle   string
	AmountCents int64
}

type FinanceCommands interface {
	RecordClientPayment(ctx context.Context, input RecordClientPaymentInput) (uuid.UUID, error)
	SetCommissionRate(ctx context.Context, coachID uuid.UUID, rate int) error
	RecordCoachPayout(ctx context.Context, input RecordCoachPayoutInput) (uuid.UUID, error)
	ProcessPayout(ctx context.Context, payoutID uuid.UUID) error
	DeleteClientPayment(ctx context.Context, paymentID uuid.UUID) error
}

type financeCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	defaultRate int
}

func NewFinanceCommands(uow shared.UnitOfWork, clock clock.Clock, cfg config.Config) FinanceCommands {
	return &financeCommandsImpl{
		uow:         uow,
		clock:       clock,
		defaultRate: cfg.Store.DefaultCommissionRate,
	}
}

// RecordClientPayment persists the payment and, iff it is paid, credits
// the coach's pending balance in the same transaction. The ledger is
// lazily created at the default commission rate on first contact.
func (c *financeCommandsImpl) RecordClientPayment(ctx context.Context, input RecordClientPaymentInput) (uuid.UUID, error) {
	var paymentID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ledger, err := c.getOrCreateLedger(ctx, tx, input.CoachID)
		if err != nil {
			return err
		}

		share := ledger.Share(input.AmountCents)

		payment, err := finance.NewClientPayment(
			input.CoachID,
			input.ClientName,
			input.PlanTitle,
			input.AmountCents,
			share,
			finance.PaymentStatus(input.Status),
			c.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, ErrValidation)
		}

		id, err := tx.Payments().Create(ctx, payment)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if payment.CreditsLedger() {
			if err := ledger.CreditPending(share); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Ledgers().Save(ctx, ledger); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		paymentID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return paymentID, nil
}

// SetCommissionRate upserts the coach's rate; past payments keep the
// share they were recorded with.
func (c *financeCommandsImpl) SetCommissionRate(ctx context.Context, coachID uuid.UUID, rate int) error {
	if rate < 0 || rate > 100 {
		return errs.Mark(finance.ErrInvalidCommissionRate, ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ledger, err := c.getOrCreateLedger(ctx, tx, coachID)
		if err != nil {
			return err
		}

		if err := ledger.SetCommissionRate(rate); err != nil {
			return errs.Mark(err, ErrValidation)
		}

		return tx.Ledgers().Save(ctx, ledger)
	})
}

func (c *financeCommandsImpl) RecordCoachPayout(ctx context.Context, input RecordCoachPayoutInput) (uuid.UUID, error) {
	payout, err := finance.NewCoachPayout(
		input.CoachID,
		input.ClientName,
		input.PlanTitle,
		input.AmountCents,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	var payoutID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Payouts().Create(ctx, payout)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		payoutID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return payoutID, nil
}

// ProcessPayout completes a pending payout and settles the amount on
// the coach's ledger atomically. Re-processing a completed payout fails
// with ErrPayoutNotPending and cannot double-credit paidOut.
func (c *financeCommandsImpl) ProcessPayout(ctx context.Context, payoutID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		payout, err := tx.Payouts().FindForUpdate(ctx, payoutID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPayoutNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := payout.MarkCompleted(); err != nil {
			return errs.Mark(err, ErrPayoutNotPending)
		}

		if err := tx.Payouts().UpdateStatus(ctx, payoutID, payout.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// A payout can only exist for a coach whose ledger was created by
		// an earlier payment; a missing ledger is an invariant violation.
		ledger, err := tx.Ledgers().FindForUpdate(ctx, payout.CoachID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLedgerMissing
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := ledger.SettlePending(payout.Amount()); err != nil {
			return errs.Mark(err, ErrPendingMismatch)
		}

		return tx.Ledgers().Save(ctx, ledger)
	})
}

// DeleteClientPayment removes the payment and reverses the pending
// credit it caused, in one transaction. A reversal the balance cannot
// cover aborts instead of clamping.
func (c *financeCommandsImpl) DeleteClientPayment(ctx context.Context, paymentID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		payment, err := tx.Payments().FindForUpdate(ctx, paymentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if payment.CreditsLedger() {
			ledger, err := tx.Ledgers().FindForUpdate(ctx, payment.CoachID())
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrLedgerMissing
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}

			if err := ledger.ReversePending(payment.CoachShare()); err != nil {
				return errs.Mark(err, ErrPendingMismatch)
			}

			if err := tx.Ledgers().Save(ctx, ledger); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Payments().Delete(ctx, paymentID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
}

func (c *financeCommandsImpl) getOrCreateLedger(ctx context.Context, tx shared.Tx, coachID uuid.UUID) (*finance.CoachLedger, error) {
	ledger, err := tx.Ledgers().FindForUpdate(ctx, coachID)
	if err == nil {
		return ledger, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ledger, err = finance.NewCoachLedger(coachID, c.defaultRate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := tx.Ledgers().Create(ctx, ledger); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return ledger, nil
}
