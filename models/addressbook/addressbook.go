package addressbook

import (
	"strings"
	"time"

	"dispatch-backend/models/user"
)

// Type tags whether an entry is usable as a pickup, a dropoff, or either.
type Type string

const (
	TypePickup  Type = "PICKUP"
	TypeDropoff Type = "DROPOFF"
	TypeBoth    Type = "BOTH"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePickup, TypeDropoff, TypeBoth:
		return true
	default:
		return false
	}
}

// ParseType accepts case-insensitive input and returns the canonical member.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// AddressBook is a reusable saved place. The creating user exclusively owns
// the entry for update/delete; read visibility extends to the owner's company.
type AddressBook struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	PlaceName     string  `gorm:"type:varchar(255);not null" json:"place_name"`
	Address       string  `gorm:"type:text;not null" json:"address"`
	AddressDetail *string `gorm:"type:varchar(255)" json:"address_detail,omitempty"`
	ContactName   *string `gorm:"type:varchar(255)" json:"contact_name,omitempty"`
	ContactPhone  *string `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	Type          Type    `gorm:"type:varchar(20);not null" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the AddressBook model
func (AddressBook) TableName() string {
	return "address_books"
}
