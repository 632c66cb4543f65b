package services

import (
	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
)

var (
	// BaseRatePerKm is charged for every kilometre regardless of cargo.
	BaseRatePerKm = decimal.RequireFromString("1.20")
	// WeightRatePerTonPerKm is charged for every ton carried over every kilometre.
	WeightRatePerTonPerKm = decimal.RequireFromString("0.50")
)

// CostCalculator prices a shipment from its distance and cargo weight:
//
//	cost = distance × BaseRatePerKm + distance × weight × WeightRatePerTonPerKm
//
// rounded to two places, half away from zero. Arithmetic is exact decimal;
// float inputs are converted with their shortest decimal representation, so 8.5
// is 8.5 and not 8.4999….
type CostCalculator struct{}

func NewCostCalculator() CostCalculator {
	return CostCalculator{}
}

// Calculate is pure and deterministic.
func (CostCalculator) Calculate(distanceKm, weightTons float64) kernel.Money {
	distance := decimal.NewFromFloat(distanceKm)
	weight := decimal.NewFromFloat(weightTons)

	base := distance.Mul(BaseRatePerKm)
	load := distance.Mul(weight).Mul(WeightRatePerTonPerKm)

	return kernel.NewMoney(base.Add(load))
}
