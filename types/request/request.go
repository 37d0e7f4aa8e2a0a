package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	requestModel "dispatch-backend/models/request"

	"github.com/jinzhu/now"
)

// Leg is the pickup or dropoff half of a create payload.
type Leg struct {
	PlaceName     string  `json:"placeName"`
	Address       string  `json:"address"`
	AddressDetail *string `json:"addressDetail"`
	ContactName   *string `json:"contactName"`
	ContactPhone  *string `json:"contactPhone"`
	Method        string  `json:"method"`
	IsImmediate   bool    `json:"isImmediate"`
	Datetime      *string `json:"datetime"`
}

type Vehicle struct {
	Group    *string  `json:"group"`
	Tonnage  *float64 `json:"tonnage"`
	BodyType *string  `json:"bodyType"`
}

type Cargo struct {
	Description *string `json:"description"`
}

type Options struct {
	RequestType *string `json:"requestType"`
	DriverNote  *string `json:"driverNote"`
}

type Payment struct {
	Method      *string  `json:"method"`
	DistanceKm  *float64 `json:"distanceKm"`
	QuotedPrice *float64 `json:"quotedPrice"`
}

// CreateRequest represents the nested payload for creating a dispatch request.
type CreateRequest struct {
	Pickup  *Leg     `json:"pickup"`
	Dropoff *Leg     `json:"dropoff"`
	Vehicle *Vehicle `json:"vehicle"`
	Cargo   *Cargo   `json:"cargo"`
	Options *Options `json:"options"`
	Payment *Payment `json:"payment"`
}

func (r CreateRequest) Validate() error {
	if r.Pickup == nil || r.Pickup.PlaceName == "" || r.Pickup.Address == "" || r.Pickup.Method == "" ||
		r.Dropoff == nil || r.Dropoff.PlaceName == "" || r.Dropoff.Address == "" || r.Dropoff.Method == "" {
		return fmt.Errorf("pickup.placeName, pickup.address, pickup.method, dropoff.placeName, dropoff.address and dropoff.method are required")
	}
	if _, ok := requestModel.ParseLoadingMethod(r.Pickup.Method); !ok {
		return fmt.Errorf("pickup.method must be one of %s", loadingMethodList())
	}
	if _, ok := requestModel.ParseLoadingMethod(r.Dropoff.Method); !ok {
		return fmt.Errorf("dropoff.method must be one of %s", loadingMethodList())
	}
	return nil
}

func loadingMethodList() string {
	return strings.Join([]string{
		requestModel.LoadingForklift.String(),
		requestModel.LoadingManual.String(),
		requestModel.LoadingSudouSuhaejung.String(),
		requestModel.LoadingHoist.String(),
		requestModel.LoadingCrane.String(),
		requestModel.LoadingConveyor.String(),
	}, ", ")
}

// ToModel builds the Request row from a validated payload. Vehicle group and
// payment method are uppercased but intentionally not checked against their
// enumerations; requestType falls back to NORMAL.
func (r CreateRequest) ToModel(createdByID uint) requestModel.Request {
	pickupMethod, _ := requestModel.ParseLoadingMethod(r.Pickup.Method)
	dropoffMethod, _ := requestModel.ParseLoadingMethod(r.Dropoff.Method)

	m := requestModel.Request{
		CreatedByID: createdByID,

		PickupPlaceName:     r.Pickup.PlaceName,
		PickupAddress:       r.Pickup.Address,
		PickupAddressDetail: r.Pickup.AddressDetail,
		PickupContactName:   r.Pickup.ContactName,
		PickupContactPhone:  r.Pickup.ContactPhone,
		PickupMethod:        pickupMethod,
		PickupIsImmediate:   r.Pickup.IsImmediate,
		PickupDatetime:      parseDatetime(r.Pickup.Datetime),

		DropoffPlaceName:     r.Dropoff.PlaceName,
		DropoffAddress:       r.Dropoff.Address,
		DropoffAddressDetail: r.Dropoff.AddressDetail,
		DropoffContactName:   r.Dropoff.ContactName,
		DropoffContactPhone:  r.Dropoff.ContactPhone,
		DropoffMethod:        dropoffMethod,
		DropoffIsImmediate:   r.Dropoff.IsImmediate,
		DropoffDatetime:      parseDatetime(r.Dropoff.Datetime),

		RequestType: requestModel.TypeNormal,
		Status:      requestModel.StatusPending,
	}

	if r.Vehicle != nil {
		m.VehicleGroup = upper(r.Vehicle.Group)
		m.VehicleTonnage = r.Vehicle.Tonnage
		m.VehicleBodyType = r.Vehicle.BodyType
	}
	if r.Cargo != nil {
		m.CargoDescription = r.Cargo.Description
	}
	if r.Options != nil {
		if r.Options.RequestType != nil && *r.Options.RequestType != "" {
			m.RequestType = requestModel.RequestType(strings.ToUpper(*r.Options.RequestType))
		}
		m.DriverNote = r.Options.DriverNote
	}
	if r.Payment != nil {
		m.PaymentMethod = upper(r.Payment.Method)
		m.DistanceKm = r.Payment.DistanceKm
		m.QuotedPrice = r.Payment.QuotedPrice
	}

	return m
}

func upper(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	u := strings.ToUpper(*s)
	return &u
}

// parseDatetime accepts ISO-parseable strings; anything else is stored null.
func parseDatetime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

// StatusUpdateRequest represents the payload for overwriting a status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ListQuery is the parsed, clamped filter for the request list.
type ListQuery struct {
	Status   *requestModel.Status
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ParseListQuery applies the list defaults: status ALL or absent means
// unfiltered, from/to are inclusive calendar days against created_at, page and
// pageSize default to 1 and 20 and are clamped to at least 1.
func ParseListQuery(status, from, to, page, pageSize string) (ListQuery, error) {
	q := ListQuery{
		Page:     parsePositive(page, 1),
		PageSize: parsePositive(pageSize, 20),
	}

	if status != "" && !strings.EqualFold(status, "ALL") {
		st, ok := requestModel.ParseStatus(status)
		if !ok {
			return q, fmt.Errorf("status is not a valid value: %s", status)
		}
		q.Status = &st
	}

	if from != "" {
		day, err := time.ParseInLocation("2006-01-02", from, time.UTC)
		if err != nil {
			return q, fmt.Errorf("from must be a YYYY-MM-DD date")
		}
		start := now.With(day).BeginningOfDay()
		q.From = &start
	}

	if to != "" {
		day, err := time.ParseInLocation("2006-01-02", to, time.UTC)
		if err != nil {
			return q, fmt.Errorf("to must be a YYYY-MM-DD date")
		}
		end := now.With(day).EndOfDay()
		q.To = &end
	}

	return q, nil
}

func parsePositive(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	if n < 1 {
		return 1
	}
	return n
}

// ParseRecentLimit clamps the recent-list limit: default 5, accepted only in
// (0, 50].
func ParseRecentLimit(s string) int {
	limit := 5
	if s == "" {
		return limit
	}
	n, err := strconv.Atoi(s)
	if err == nil && n > 0 && n <= 50 {
		limit = n
	}
	return limit
}
