package request

import (
	"strings"
)

// LoadingMethod is how cargo gets on or off the vehicle.
type LoadingMethod string

const (
	LoadingForklift       LoadingMethod = "FORKLIFT"
	LoadingManual         LoadingMethod = "MANUAL"
	LoadingSudouSuhaejung LoadingMethod = "SUDOU_SUHAEJUNG"
	LoadingHoist          LoadingMethod = "HOIST"
	LoadingCrane          LoadingMethod = "CRANE"
	LoadingConveyor       LoadingMethod = "CONVEYOR"
)

func (m LoadingMethod) String() string {
	return string(m)
}

func (m LoadingMethod) IsValid() bool {
	switch m {
	case LoadingForklift, LoadingManual, LoadingSudouSuhaejung, LoadingHoist, LoadingCrane, LoadingConveyor:
		return true
	default:
		return false
	}
}

// ParseLoadingMethod accepts case-insensitive input and returns the canonical
// upper-case member.
func ParseLoadingMethod(s string) (LoadingMethod, bool) {
	m := LoadingMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// VehicleGroup is the requested vehicle class.
type VehicleGroup string

const (
	VehicleMotorcycle VehicleGroup = "MOTORCYCLE"
	VehicleDamas      VehicleGroup = "DAMAS"
	VehicleOneTon     VehicleGroup = "ONE_TON"
	VehicleOneTonPlus VehicleGroup = "ONE_TON_PLUS"
	VehicleFiveTon    VehicleGroup = "FIVE_TON"
	VehicleElevenTon  VehicleGroup = "ELEVEN_TON"
)

func (g VehicleGroup) String() string {
	return string(g)
}

func (g VehicleGroup) IsValid() bool {
	switch g {
	case VehicleMotorcycle, VehicleDamas, VehicleOneTon, VehicleOneTonPlus, VehicleFiveTon, VehicleElevenTon:
		return true
	default:
		return false
	}
}

// Status is the dispatch lifecycle state of a request.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusDispatching Status = "DISPATCHING"
	StatusAssigned    Status = "ASSIGNED"
	StatusInTransit   Status = "IN_TRANSIT"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDispatching, StatusAssigned, StatusInTransit, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus accepts case-insensitive input and returns the canonical member.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// GetAllStatuses returns all valid request statuses.
func GetAllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusDispatching,
		StatusAssigned,
		StatusInTransit,
		StatusCompleted,
		StatusCancelled,
	}
}

// PaymentMethod is how the job gets paid for.
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "CARD"
	PaymentCash         PaymentMethod = "CASH"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentCash, PaymentBankTransfer:
		return true
	default:
		return false
	}
}

// RequestType distinguishes ordinary jobs from urgent ones.
type RequestType string

const (
	TypeNormal RequestType = "NORMAL"
	TypeUrgent RequestType = "URGENT"
)

func (t RequestType) String() string {
	return string(t)
}

func (t RequestType) IsValid() bool {
	return t == TypeNormal || t == TypeUrgent
}
