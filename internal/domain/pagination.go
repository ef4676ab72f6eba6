package domain

// Pagination is an estimate, not ground truth. The campus backend returns
// a page of documents and no total count, so TotalCount and TotalPages
// are recomputed from each response and will fluctuate as the user pages
// forward. HasMore == (CurrentPage < TotalPages) holds after every fetch.
type Pagination struct {
	TotalCount  int  `json:"totalCount"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasMore     bool `json:"hasMore"`
}

// SinglePage is the neutral state a page collapses to when fallback data
// replaces a failed fetch.
func SinglePage(count int) Pagination {
	return Pagination{
		TotalCount:  count,
		CurrentPage: 1,
		TotalPages:  1,
		HasMore:     false,
	}
}

type PagedResult[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
