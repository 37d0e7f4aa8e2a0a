package request

import (
	"testing"
	"time"

	requestModel "dispatch-backend/models/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Pickup: &Leg{
			PlaceName: "Seoul Warehouse",
			Address:   "123 Gangnam-daero",
			Method:    "forklift",
		},
		Dropoff: &Leg{
			PlaceName: "Busan Depot",
			Address:   "45 Haeundae-ro",
			Method:    "MANUAL",
		},
	}
}

func TestCreateRequestValidate(t *testing.T) {
	assert.NoError(t, validCreateRequest().Validate())

	missingLeg := validCreateRequest()
	missingLeg.Dropoff = nil
	assert.Error(t, missingLeg.Validate())

	missingField := validCreateRequest()
	missingField.Pickup.Address = ""
	assert.Error(t, missingField.Validate())

	badMethod := validCreateRequest()
	badMethod.Pickup.Method = "TELEPORT"
	assert.Error(t, badMethod.Validate())
}

func TestToModelCanonicalizesEnums(t *testing.T) {
	req := validCreateRequest()
	group := "one_ton"
	payMethod := "card"
	reqType := "urgent"
	req.Vehicle = &Vehicle{Group: &group}
	req.Payment = &Payment{Method: &payMethod}
	req.Options = &Options{RequestType: &reqType}

	m := req.ToModel(7)

	assert.Equal(t, uint(7), m.CreatedByID)
	assert.Equal(t, requestModel.LoadingForklift, m.PickupMethod)
	assert.Equal(t, requestModel.LoadingManual, m.DropoffMethod)
	require.NotNil(t, m.VehicleGroup)
	assert.Equal(t, "ONE_TON", *m.VehicleGroup)
	require.NotNil(t, m.PaymentMethod)
	assert.Equal(t, "CARD", *m.PaymentMethod)
	assert.Equal(t, requestModel.TypeUrgent, m.RequestType)
	assert.Equal(t, requestModel.StatusPending, m.Status)
}

func TestToModelDefaultsRequestType(t *testing.T) {
	m := validCreateRequest().ToModel(1)
	assert.Equal(t, requestModel.TypeNormal, m.RequestType)
}

func TestToModelParsesDatetimes(t *testing.T) {
	req := validCreateRequest()
	iso := "2025-08-01T09:30:00Z"
	garbage := "next tuesday"
	req.Pickup.Datetime = &iso
	req.Dropoff.Datetime = &garbage

	m := req.ToModel(1)

	require.NotNil(t, m.PickupDatetime)
	assert.Equal(t, time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC), m.PickupDatetime.UTC())
	assert.Nil(t, m.DropoffDatetime)
}

func TestParseListQueryDefaults(t *testing.T) {
	q, err := ParseListQuery("", "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, q.Status)
	assert.Nil(t, q.From)
	assert.Nil(t, q.To)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, 0, q.Offset())
}

func TestParseListQueryStatusAll(t *testing.T) {
	q, err := ParseListQuery("ALL", "", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, q.Status)

	q, err = ParseListQuery("pending", "", "", "", "")
	require.NoError(t, err)
	require.NotNil(t, q.Status)
	assert.Equal(t, requestModel.StatusPending, *q.Status)

	_, err = ParseListQuery("DELIVERED", "", "", "", "")
	assert.Error(t, err)
}

func TestParseListQueryClampsPagination(t *testing.T) {
	// Negative and zero values clamp to 1; only empty or non-numeric input
	// falls back to the defaults.
	q, err := ParseListQuery("", "", "", "0", "-5")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 1, q.PageSize)

	q, err = ParseListQuery("", "", "", "-2", "zero")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)

	q, err = ParseListQuery("", "", "", "3", "10")
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, 20, q.Offset())
}

func TestParseListQueryDateBoundaries(t *testing.T) {
	q, err := ParseListQuery("", "2025-08-01", "2025-08-31", "", "")
	require.NoError(t, err)
	require.NotNil(t, q.From)
	require.NotNil(t, q.To)

	assert.Equal(t, 0, q.From.Hour())
	assert.Equal(t, 0, q.From.Minute())
	assert.Equal(t, 23, q.To.Hour())
	assert.Equal(t, 59, q.To.Minute())
	assert.Equal(t, 59, q.To.Second())

	// The full day of the to-date is included.
	lastMoment := time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, q.To.Before(lastMoment))

	_, err = ParseListQuery("", "August 1st", "", "", "")
	assert.Error(t, err)
}

func TestParseRecentLimit(t *testing.T) {
	assert.Equal(t, 5, ParseRecentLimit(""))
	assert.Equal(t, 5, ParseRecentLimit("abc"))
	assert.Equal(t, 5, ParseRecentLimit("0"))
	assert.Equal(t, 5, ParseRecentLimit("51"))
	assert.Equal(t, 50, ParseRecentLimit("50"))
	assert.Equal(t, 12, ParseRecentLimit("12"))
}
