package domain_test

import (
	"testing"

	"github.com/opusline/royaltyd/internal/transaction/domain"
	"github.com/shopspring/decimal"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name       string
		payment    string
		commission int64
		creator    string
		rep        string
	}{
		{"ten percent", "100", 10, "90", "10"},
		{"ten percent partial", "55.55", 10, "49.99", "5.56"},
		{"full commission", "200", 100, "0", "200"},
		{"one percent cents", "0.99", 1, "0.98", "0.01"},
		{"rounding remainder to creator", "33.33", 33, "22.33", "11"},
		{"zero payment", "0", 10, "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payment := decimal.RequireFromString(tc.payment)
			creatorShare, repShare := domain.Split(payment, tc.commission)

			if !creatorShare.Equal(decimal.RequireFromString(tc.creator)) {
				t.Fatalf("creator share = %s, want %s", creatorShare, tc.creator)
			}
			if !repShare.Equal(decimal.RequireFromString(tc.rep)) {
				t.Fatalf("representative share = %s, want %s", repShare, tc.rep)
			}
			if !creatorShare.Add(repShare).Equal(payment) {
				t.Fatalf("shares %s + %s do not sum to payment %s", creatorShare, repShare, payment)
			}
		})
	}
}
