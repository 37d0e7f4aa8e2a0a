package pricing

import (
	"math"

	requestModel "dispatch-backend/models/request"
)

// Fare parameters in won. Vehicle multipliers scale the per-km rate by class;
// urgent jobs carry a flat surcharge.
const (
	baseFare        = 30000.0
	perKmRate       = 1200.0
	urgentSurcharge = 20000.0
)

var vehicleMultipliers = map[requestModel.VehicleGroup]float64{
	requestModel.VehicleMotorcycle: 0.5,
	requestModel.VehicleDamas:      0.7,
	requestModel.VehicleOneTon:     1.0,
	requestModel.VehicleOneTonPlus: 1.2,
	requestModel.VehicleFiveTon:    2.0,
	requestModel.VehicleElevenTon:  3.0,
}

// Quote computes a distance-based price estimate. Unknown or absent vehicle
// groups price as ONE_TON. The result is rounded to the nearest 100 won.
func Quote(distanceKm float64, vehicleGroup *string, requestType requestModel.RequestType) float64 {
	multiplier := 1.0
	if vehicleGroup != nil {
		if m, ok := vehicleMultipliers[requestModel.VehicleGroup(*vehicleGroup)]; ok {
			multiplier = m
		}
	}

	price := baseFare + distanceKm*perKmRate*multiplier
	if requestType == requestModel.TypeUrgent {
		price += urgentSurcharge
	}

	return math.Round(price/100) * 100
}
