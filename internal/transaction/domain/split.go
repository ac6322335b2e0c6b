package domain

import "github.com/shopspring/decimal"

// Split divides a payment between creator and representative. The
// representative side is rounded to cents; the creator side absorbs the
// remainder, so the two shares always sum to exactly the payment.
func Split(payment decimal.Decimal, commissionPercent int64) (creatorShare, representativeShare decimal.Decimal) {
	representativeShare = payment.
		Mul(decimal.NewFromInt(commissionPercent)).
		Div(decimal.NewFromInt(100)).
		Round(2)
	creatorShare = payment.Sub(representativeShare)
	return creatorShare, representativeShare
}
