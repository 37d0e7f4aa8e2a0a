package request

import (
	"time"

	"dispatch-backend/models/user"
)

// Request represents a dispatch request: a pickup leg, a dropoff leg, and the
// vehicle, cargo and payment details needed to carry the job out.
type Request struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	CreatedByID uint      `gorm:"not null;index" json:"created_by_id"`
	CreatedBy   user.User `gorm:"foreignKey:CreatedByID" json:"-"`

	// Pickup leg
	PickupPlaceName     string        `gorm:"type:varchar(255);not null" json:"pickup_place_name"`
	PickupAddress       string        `gorm:"type:text;not null" json:"pickup_address"`
	PickupAddressDetail *string       `gorm:"type:varchar(255)" json:"pickup_address_detail,omitempty"`
	PickupContactName   *string       `gorm:"type:varchar(255)" json:"pickup_contact_name,omitempty"`
	PickupContactPhone  *string       `gorm:"type:varchar(20)" json:"pickup_contact_phone,omitempty"`
	PickupMethod        LoadingMethod `gorm:"type:varchar(30);not null" json:"pickup_method"`
	PickupIsImmediate   bool          `gorm:"not null;default:false" json:"pickup_is_immediate"`
	PickupDatetime      *time.Time    `json:"pickup_datetime,omitempty"`

	// Dropoff leg
	DropoffPlaceName     string        `gorm:"type:varchar(255);not null" json:"dropoff_place_name"`
	DropoffAddress       string        `gorm:"type:text;not null" json:"dropoff_address"`
	DropoffAddressDetail *string       `gorm:"type:varchar(255)" json:"dropoff_address_detail,omitempty"`
	DropoffContactName   *string       `gorm:"type:varchar(255)" json:"dropoff_contact_name,omitempty"`
	DropoffContactPhone  *string       `gorm:"type:varchar(20)" json:"dropoff_contact_phone,omitempty"`
	DropoffMethod        LoadingMethod `gorm:"type:varchar(30);not null" json:"dropoff_method"`
	DropoffIsImmediate   bool          `gorm:"not null;default:false" json:"dropoff_is_immediate"`
	DropoffDatetime      *time.Time    `json:"dropoff_datetime,omitempty"`

	// Vehicle
	VehicleGroup    *string  `gorm:"type:varchar(30)" json:"vehicle_group,omitempty"`
	VehicleTonnage  *float64 `json:"vehicle_tonnage,omitempty"`
	VehicleBodyType *string  `gorm:"type:varchar(50)" json:"vehicle_body_type,omitempty"`

	// Cargo / options
	CargoDescription *string     `gorm:"type:text" json:"cargo_description,omitempty"`
	RequestType      RequestType `gorm:"type:varchar(20);not null;default:NORMAL" json:"request_type"`
	DriverNote       *string     `gorm:"type:text" json:"driver_note,omitempty"`

	// Payment / distance / quote
	PaymentMethod *string  `gorm:"type:varchar(30)" json:"payment_method,omitempty"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	QuotedPrice   *float64 `json:"quoted_price,omitempty"`

	Status    Status    `gorm:"type:varchar(20);not null;default:PENDING;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Request model
func (Request) TableName() string {
	return "requests"
}

// Summary is the lightweight list projection of a request.
type Summary struct {
	ID               uint      `json:"id"`
	PickupPlaceName  string    `json:"pickup_place_name"`
	DropoffPlaceName string    `json:"dropoff_place_name"`
	DistanceKm       *float64  `json:"distance_km"`
	QuotedPrice      *float64  `json:"quoted_price"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
