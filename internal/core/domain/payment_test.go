package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shopledger/shopledger/internal/core/domain"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, domain.MethodCash.IsValid())
	assert.True(t, domain.MethodBankTransfer.IsValid())
	assert.True(t, domain.MethodCard.IsValid())
	assert.True(t, domain.MethodCheque.IsValid())
	assert.False(t, domain.PaymentMethod("cash").IsValid())
	assert.False(t, domain.PaymentMethod("Wire").IsValid())
}

func TestPaymentDescription(t *testing.T) {
	desc := domain.PaymentDescription(decimal.RequireFromString("150.75"), domain.MethodBankTransfer)
	assert.Equal(t, "Payment of 150.75 via Bank Transfer", desc)

	desc = domain.PaymentDescription(decimal.NewFromInt(20), domain.MethodCash)
	assert.Equal(t, "Payment of 20 via Cash", desc)
}
