package outlands

import "fmt"

const (
	searchPage     = 0
	searchPageSize = 20
	sortByPrice    = "Price"
)

// SearchRequest is the vendor search body. Only the first page is ever requested.
type SearchRequest struct {
	Page          int          `json:"page"`
	PageSize      int          `json:"pageSize"`
	SortName      string       `json:"sortName"`
	SortAscending bool         `json:"sortAscending"`
	FilterParams  FilterParams `json:"filterParams"`
}

type FilterParams struct {
	Name            string           `json:"name"`
	PropertyFilters []PropertyFilter `json:"propertyFilters"`
}

// PropertyFilter is always sent empty.
type PropertyFilter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewSearchRequest(term string) SearchRequest {
	return SearchRequest{
		Page:          searchPage,
		PageSize:      searchPageSize,
		SortName:      sortByPrice,
		SortAscending: true,
		FilterParams: FilterParams{
			Name:            term,
			PropertyFilters: []PropertyFilter{},
		},
	}
}

type SearchResponse struct {
	Items []Listing `json:"items"`
}

// Listing is one vendor entry. Amount is the stack size on the vendor.
type Listing struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Amount int     `json:"amount"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vendor search returned status %d: %s", e.StatusCode, e.Body)
}
