// internal/handlers/calculators/calculators.go
package calculators

import (
	"errors"
	"math"
)

// EMIInput describes an education-loan repayment query. Rate is the annual
// interest percentage; tenure is in months.
type EMIInput struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annualRate"`
	TenureMonths int     `json:"tenureMonths"`
}

type EMIResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// CalculateEMI computes the standard amortized monthly installment. A zero
// interest rate degenerates to straight division.
func CalculateEMI(in EMIInput) (EMIResult, error) {
	if in.Principal <= 0 {
		return EMIResult{}, errors.New("principal must be positive")
	}
	if in.AnnualRate < 0 {
		return EMIResult{}, errors.New("annual rate must not be negative")
	}
	if in.TenureMonths <= 0 {
		return EMIResult{}, errors.New("tenure must be at least one month")
	}

	var monthly float64
	if in.AnnualRate == 0 {
		monthly = in.Principal / float64(in.TenureMonths)
	} else {
		r := in.AnnualRate / 12 / 100
		n := float64(in.TenureMonths)
		factor := math.Pow(1+r, n)
		monthly = in.Principal * r * factor / (factor - 1)
	}

	total := monthly * float64(in.TenureMonths)
	return EMIResult{
		MonthlyPayment: round2(monthly),
		TotalPayment:   round2(total),
		TotalInterest:  round2(total - in.Principal),
	}, nil
}

// CGPAInput converts a CGPA on a given scale to a percentage and a US-style
// 4.0 GPA.
type CGPAInput struct {
	CGPA  float64 `json:"cgpa"`
	Scale float64 `json:"scale"`
}

type CGPAResult struct {
	Percentage float64 `json:"percentage"`
	GPA4       float64 `json:"gpa4"`
}

// CalculateCGPA uses the common multiply-by-9.5 convention for the 10-point
// scale and plain proportion for other scales.
func CalculateCGPA(in CGPAInput) (CGPAResult, error) {
	if in.Scale == 0 {
		in.Scale = 10
	}
	if in.Scale != 4 && in.Scale != 5 && in.Scale != 10 {
		return CGPAResult{}, errors.New("scale must be 4, 5 or 10")
	}
	if in.CGPA < 0 || in.CGPA > in.Scale {
		return CGPAResult{}, errors.New("cgpa must be between 0 and the scale maximum")
	}

	var percentage float64
	if in.Scale == 10 {
		percentage = in.CGPA * 9.5
	} else {
		percentage = in.CGPA / in.Scale * 100
	}
	if percentage > 100 {
		percentage = 100
	}

	return CGPAResult{
		Percentage: round2(percentage),
		GPA4:       round2(in.CGPA / in.Scale * 4),
	}, nil
}

// CostOfLivingInput estimates a monthly and annual budget for a destination
// city tier.
type CostOfLivingInput struct {
	Country       string `json:"country"`
	CityTier      string `json:"cityTier"`
	Accommodation string `json:"accommodation"`
}

type CostOfLivingResult struct {
	MonthlyEstimate float64            `json:"monthlyEstimate"`
	AnnualEstimate  float64            `json:"annualEstimate"`
	Currency        string             `json:"currency"`
	Breakdown       map[string]float64 `json:"breakdown"`
}

// countryBaselines are coarse monthly budgets in local currency for a
// mid-tier city with shared accommodation.
var countryBaselines = map[string]struct {
	currency string
	rent     float64
	food     float64
	transit  float64
	other    float64
}{
	"USA":         {"USD", 900, 400, 100, 250},
	"UK":          {"GBP", 700, 300, 120, 200},
	"Canada":      {"CAD", 800, 400, 110, 220},
	"Australia":   {"AUD", 950, 450, 140, 240},
	"Germany":     {"EUR", 500, 250, 80, 170},
	"Ireland":     {"EUR", 750, 300, 100, 200},
	"Netherlands": {"EUR", 650, 300, 90, 190},
	"Singapore":   {"SGD", 1000, 450, 110, 240},
	"New Zealand": {"NZD", 750, 400, 120, 210},
	"Switzerland": {"CHF", 1200, 550, 120, 300},
}

var cityTierMultiplier = map[string]float64{
	"major": 1.35,
	"mid":   1.0,
	"small": 0.8,
}

var accommodationMultiplier = map[string]float64{
	"shared":   1.0,
	"studio":   1.5,
	"campus":   0.9,
	"homestay": 0.85,
}

// CalculateCostOfLiving applies tier and accommodation multipliers to the
// country baseline. Unknown tiers and accommodation types use the baseline.
func CalculateCostOfLiving(in CostOfLivingInput) (CostOfLivingResult, error) {
	base, ok := countryBaselines[in.Country]
	if !ok {
		return CostOfLivingResult{}, errors.New("unsupported country")
	}

	tier, ok := cityTierMultiplier[in.CityTier]
	if !ok {
		tier = 1.0
	}
	accom, ok := accommodationMultiplier[in.Accommodation]
	if !ok {
		accom = 1.0
	}

	rent := base.rent * tier * accom
	food := base.food * tier
	transit := base.transit * tier
	other := base.other * tier
	monthly := rent + food + transit + other

	return CostOfLivingResult{
		MonthlyEstimate: round2(monthly),
		AnnualEstimate:  round2(monthly * 12),
		Currency:        base.currency,
		Breakdown: map[string]float64{
			"rent":      round2(rent),
			"food":      round2(food),
			"transport": round2(transit),
			"other":     round2(other),
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
