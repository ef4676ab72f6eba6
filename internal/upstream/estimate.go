package upstream

import "github.com/campusconnect/portal-bff/internal/domain"

// Estimate computes pagination metadata from a single page of results,
// because the campus backend never reports a true total count.
//
// The estimate is deliberately rough: while more pages may exist the
// total is projected as itemsReturned*(page+1), so TotalPages fluctuates
// as the user pages forward. That is observed portal behavior, kept
// as-is; tests assert the recurrence, not a "correct" total.
//
// retryPrev is true when the caller overshot the end of the data
// (zero items beyond page 1). The resource client then re-fetches once
// at page-1 so the user never lands on an empty page. The retry is
// bounded: it never cascades and never goes below page 1.
func Estimate(itemsReturned, page, limit int) (p domain.Pagination, retryPrev bool) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	if itemsReturned == 0 && page > 1 {
		return domain.Pagination{
			TotalCount:  (page - 1) * limit,
			CurrentPage: page,
			TotalPages:  page - 1,
			HasMore:     false,
		}, true
	}

	isLastPage := itemsReturned < limit

	var totalCount int
	if isLastPage {
		totalCount = (page-1)*limit + itemsReturned
	} else {
		totalCount = itemsReturned * (page + 1)
	}

	totalPages := (totalCount + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return domain.Pagination{
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasMore:     !isLastPage && itemsReturned > 0,
	}, false
}
