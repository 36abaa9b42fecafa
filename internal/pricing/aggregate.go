package pricing

import "outlands-pricer/internal/services/outlands"

// Result is the per-term summary. Count is the number of listings averaged,
// not the stack quantity on the vendors.
type Result struct {
	Name         string  `json:"name"`
	AveragePrice float64 `json:"average_price"`
	Count        int     `json:"count"`
}

// Valid reports whether the result should become a row in the output.
func (r Result) Valid() bool {
	return r.Name != "" && r.AveragePrice != 0 && r.Count != 0
}

// Aggregate takes the simple mean of the listing prices and names the result
// after the first (cheapest) listing. An empty page yields the zero Result.
func Aggregate(items []outlands.Listing) Result {
	if len(items) == 0 {
		return Result{}
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	return Result{
		Name:         items[0].Name,
		AveragePrice: total / float64(len(items)),
		Count:        len(items),
	}
}
