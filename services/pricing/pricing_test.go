package pricing

import (
	"testing"

	requestModel "dispatch-backend/models/request"

	"github.com/stretchr/testify/assert"
)

func TestQuoteDefaultsToOneTon(t *testing.T) {
	// 30000 + 10 * 1200 * 1.0 = 42000
	assert.Equal(t, 42000.0, Quote(10, nil, requestModel.TypeNormal))
}

func TestQuoteAppliesVehicleMultiplier(t *testing.T) {
	group := "FIVE_TON"
	// 30000 + 10 * 1200 * 2.0 = 54000
	assert.Equal(t, 54000.0, Quote(10, &group, requestModel.TypeNormal))
}

func TestQuoteUnknownGroupPricesAsOneTon(t *testing.T) {
	group := "HOVERCRAFT"
	assert.Equal(t, Quote(10, nil, requestModel.TypeNormal), Quote(10, &group, requestModel.TypeNormal))
}

func TestQuoteUrgentSurcharge(t *testing.T) {
	normal := Quote(10, nil, requestModel.TypeNormal)
	urgent := Quote(10, nil, requestModel.TypeUrgent)
	assert.Equal(t, normal+20000, urgent)
}

func TestQuoteRoundsToHundred(t *testing.T) {
	// 30000 + 10.37 * 1200 = 42444 -> 42400
	assert.Equal(t, 42400.0, Quote(10.37, nil, requestModel.TypeNormal))
}
