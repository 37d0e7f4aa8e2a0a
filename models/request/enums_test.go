package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoadingMethodCanonicalizes(t *testing.T) {
	for _, input := range []string{"forklift", "Forklift", "FORKLIFT", "  forklift  "} {
		m, ok := ParseLoadingMethod(input)
		require.True(t, ok, "input %q should parse", input)
		assert.Equal(t, LoadingForklift, m)
	}
}

func TestParseLoadingMethodRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "TELEPORT", "forklift2"} {
		_, ok := ParseLoadingMethod(input)
		assert.False(t, ok, "input %q should be rejected", input)
	}
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("in_transit")
	require.True(t, ok)
	assert.Equal(t, StatusInTransit, st)

	_, ok = ParseStatus("DELIVERED")
	assert.False(t, ok)
}

func TestGetAllStatusesAreValid(t *testing.T) {
	statuses := GetAllStatuses()
	assert.Len(t, statuses, 6)
	for _, st := range statuses {
		assert.True(t, st.IsValid())
	}
}

func TestVehicleGroupValidity(t *testing.T) {
	assert.True(t, VehicleOneTonPlus.IsValid())
	assert.False(t, VehicleGroup("TWO_TON").IsValid())
}

func TestPaymentMethodValidity(t *testing.T) {
	assert.True(t, PaymentBankTransfer.IsValid())
	assert.False(t, PaymentMethod("CRYPTO").IsValid())
}

func TestRequestTypeValidity(t *testing.T) {
	assert.True(t, TypeNormal.IsValid())
	assert.True(t, TypeUrgent.IsValid())
	assert.False(t, RequestType("EXPRESS").IsValid())
}
