package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := map[string]PaymentMethod{
		"CreditCard":  MethodCreditCard,
		"Credit Card": MethodCreditCard,
		"debit card":  MethodDebitCard,
		"UPI":         MethodUPI,
		"Net Banking": MethodNetBanking,
		" NetBanking": MethodNetBanking,
	}

	for in, want := range tests {
		got, err := ParsePaymentMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePaymentMethod("Cash")
	assert.Error(t, err)
}

func TestNavigation(t *testing.T) {
	assert.Equal(t, DestinationPaymentSuccess, NextAfterPayment(OutcomeSuccess))
	assert.Equal(t, DestinationPaymentFailed, NextAfterPayment(OutcomeFailure))
	assert.Equal(t, DestinationPayment, RetryDestination(DestinationPaymentFailed))
	assert.Equal(t, DestinationHotel, RetryDestination(DestinationPaymentSuccess))
}
