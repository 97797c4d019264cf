//go:build e2e

package finance_test

import (
	"net/http"
	"testing"

	"suppstore/internal/handler/dto/response"
	"suppstore/internal/handler/middleware"
	"suppstore/tests/common/authtest"
	"suppstore/tests/common/builder"
	"suppstore/tests/common/httptest"
	"suppstore/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	paymentsURL = "/api/admin/finance/payments"
	payoutsURL  = "/api/admin/finance/payouts"
	coachesURL  = "/api/admin/finance/coaches"
)

type FinanceSuite struct {
	e2e.SharedSuite
}

func (s *FinanceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestFinanceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FinanceSuite))
}

func (s *FinanceSuite) adminToken() string {
	helper := authtest.NewJWTHelper(s.Config.JWT)
	return helper.GenerateToken(s.T(), uuid.New(), middleware.RoleAdmin)
}

func (s *FinanceSuite) staffToken() string {
	helper := authtest.NewJWTHelper(s.Config.JWT)
	return helper.GenerateToken(s.T(), uuid.New(), middleware.RoleStaff)
}

func (s *FinanceSuite) dashboard(coachID uuid.UUID, token string) (response.CoachFinanceResponse, int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, coachesURL+"/"+coachID.String(), nil, token)
	var view response.CoachFinanceResponse
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &view))
	}
	return view, w.Code
}

// =============================================================================
// TestClientPayments - commission ledger credits
// =============================================================================

func (s *FinanceSuite) TestClientPayments() {
	s.Run("Normal case: paid payment creates the ledger and credits the default share", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)

		expected := response.CoachFinanceResponse{
			CoachID:            fb.CoachID.String(),
			CommissionRate:     70,
			TotalEarningsCents: 14000, // 70% of 20000
			PaidOutCents:       0,
			PendingPayoutCents: 14000,
		}
		if diff := cmp.Diff(expected, view,
			cmpopts.IgnoreFields(response.CoachFinanceResponse{}, "Payments", "Payouts")); diff != "" {
			t.Errorf("ledger mismatch (-expected +actual):\n%s", diff)
		}
		require.Len(t, view.Payments, 1)
		require.Equal(t, int64(14000), view.Payments[0].CoachShareCents)
	})

	s.Run("Normal case: pending payment records but does not credit", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder().With(func(b *builder.FinanceBuilder) {
			b.PaymentStatus = "pending"
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), view.PendingPayoutCents)
		require.Len(t, view.Payments, 1, "payment history still records it")
	})

	s.Run("Normal case: commission rate changes apply to later payments only", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, first.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPut,
			coachesURL+"/"+fb.CoachID.String()+"/commission-rate", map[string]any{"rate": 50}, token)
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, second.Code)

		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		// 70% of 20000, then 50% of 20000
		require.Equal(t, int64(24000), view.PendingPayoutCents)
		require.Equal(t, 50, view.CommissionRate)
	})

	s.Run("Normal case: deleting a paid payment reverses its credit", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, paymentsURL+"/"+created["id"], nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), view.PendingPayoutCents)
		require.Len(t, view.Payments, 0)
	})

	s.Run("Error case: dashboard for coach without ledger returns 404", func() {
		t := s.T()

		_, code := s.dashboard(uuid.New(), s.adminToken())
		require.Equal(t, http.StatusNotFound, code)
	})

	s.Run("Error case: finance endpoints are admin only", func() {
		t := s.T()

		fb := builder.NewFinanceBuilder()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), s.staffToken())
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestPayouts - settlement of pending balances
// =============================================================================

func (s *FinanceSuite) TestPayouts() {
	s.Run("Normal case: processing a payout settles the pending balance", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, pw.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL, fb.BuildPayoutRequestDTO(), token)
		require.Equal(t, http.StatusCreated, ow.Code, ow.Body.String())

		var payout map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &payout))

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL+"/"+payout["id"]+"/process", nil, token)
		require.Equal(t, http.StatusNoContent, sw.Code, sw.Body.String())

		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), view.PendingPayoutCents)
		require.Equal(t, fb.CoachShareCents(), view.PaidOutCents)
		require.Equal(t, fb.CoachShareCents(), view.TotalEarningsCents, "lifetime earnings survive the payout")
		require.Len(t, view.Payouts, 1)
		require.Equal(t, "completed", view.Payouts[0].Status)
	})

	s.Run("Error case: a payout cannot be processed twice", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, pw.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL, fb.BuildPayoutRequestDTO(), token)
		require.Equal(t, http.StatusCreated, ow.Code)
		var payout map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &payout))

		processURL := payoutsURL + "/" + payout["id"] + "/process"
		first := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, nil, token)
		require.Equal(t, http.StatusNoContent, first.Code)

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, processURL, nil, token)
		require.Equal(t, http.StatusConflict, second.Code, second.Body.String())

		// Balance settled exactly once
		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int64(0), view.PendingPayoutCents)
		require.Equal(t, fb.CoachShareCents(), view.PaidOutCents)
	})

	s.Run("Error case: payout larger than pending balance fails to process", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, pw.Code)

		over := fb.BuildPayoutRequestDTO()
		over.AmountCents = fb.CoachShareCents() + 1

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL, over, token)
		require.Equal(t, http.StatusCreated, ow.Code)
		var payout map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &payout))

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL+"/"+payout["id"]+"/process", nil, token)
		require.Equal(t, http.StatusConflict, sw.Code, sw.Body.String())

		// Nothing settled
		view, code := s.dashboard(fb.CoachID, token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, fb.CoachShareCents(), view.PendingPayoutCents)
	})

	s.Run("Error case: deleting a payment already paid out is rejected", func() {
		t := s.T()
		token := s.adminToken()

		fb := builder.NewFinanceBuilder()
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, fb.BuildPaymentRequestDTO(), token)
		require.Equal(t, http.StatusCreated, pw.Code)
		var payment map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &payment))

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL, fb.BuildPayoutRequestDTO(), token)
		require.Equal(t, http.StatusCreated, ow.Code)
		var payout map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &payout))

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, payoutsURL+"/"+payout["id"]+"/process", nil, token)
		require.Equal(t, http.StatusNoContent, sw.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, paymentsURL+"/"+payment["id"], nil, token)
		require.Equal(t, http.StatusConflict, dw.Code, dw.Body.String())
	})
}
