package analytics

import (
	"fmt"
	"math"
)

// ForecastPeriods is how many future months the forecast projects.
const ForecastPeriods = 3

// ForecastPoint is one projected future period.
type ForecastPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Forecast bool    `json:"forecast"`
}

// ForecastRevenue fits an ordinary least-squares line to the monthly revenue
// series, treating the buckets positionally as periods 1..n, and projects the
// next ForecastPeriods periods. Projected values are rounded to 2 decimals.
//
// When the regression slope is undefined (fewer than two periods, where the
// denominator n·Σx² − (Σx)² is zero) the projection falls back to a flat line
// at the series mean instead of propagating NaN.
func ForecastRevenue(monthly []MonthBucket) []ForecastPoint {
	n := len(monthly)

	var sumX, sumY, sumXY, sumX2 float64

	for i, bucket := range monthly {
		x := float64(i + 1)
		sumX += x
		sumY += bucket.Revenue
		sumXY += x * bucket.Revenue
		sumX2 += x * x
	}

	var slope, intercept float64

	if denom := float64(n)*sumX2 - sumX*sumX; denom != 0 {
		slope = (float64(n)*sumXY - sumX*sumY) / denom
		intercept = (sumY - slope*sumX) / float64(n)
	} else if n > 0 {
		intercept = sumY / float64(n)
	}

	points := make([]ForecastPoint, 0, ForecastPeriods)

	for i := 1; i <= ForecastPeriods; i++ {
		period := n + i
		points = append(points, ForecastPoint{
			Month:    fmt.Sprintf("Month %d", period),
			Revenue:  round2(intercept + slope*float64(period)),
			Forecast: true,
		})
	}

	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
