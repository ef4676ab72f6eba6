package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateFullFirstPage(t *testing.T) {
	p, retry := Estimate(6, 1, 6)

	assert.False(t, retry)
	assert.Equal(t, 12, p.TotalCount)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasMore)
}

func TestEstimatePartialPageIsLast(t *testing.T) {
	p, retry := Estimate(4, 2, 6)

	assert.False(t, retry)
	assert.Equal(t, 10, p.TotalCount)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasMore)
}

func TestEstimateEmptyFirstPage(t *testing.T) {
	p, retry := Estimate(0, 1, 6)

	assert.False(t, retry)
	assert.Equal(t, 0, p.TotalCount)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasMore)
}

func TestEstimateOvershootSignalsRetry(t *testing.T) {
	p, retry := Estimate(0, 3, 6)

	assert.True(t, retry)
	assert.Equal(t, 12, p.TotalCount)
	assert.Equal(t, 3, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasMore)
}

// The projected total grows with the page number while full pages keep
// coming, so TotalPages fluctuates as the user pages forward. That is
// the production recurrence, asserted as-is.
func TestEstimateProjectionGrowsWithPage(t *testing.T) {
	p1, _ := Estimate(6, 1, 6)
	p2, _ := Estimate(6, 2, 6)
	p3, _ := Estimate(6, 3, 6)

	assert.Equal(t, 12, p1.TotalCount)
	assert.Equal(t, 18, p2.TotalCount)
	assert.Equal(t, 24, p3.TotalCount)
	assert.True(t, p3.HasMore)
}

func TestEstimateNormalizesDegenerateInputs(t *testing.T) {
	p, retry := Estimate(3, 0, 0)

	assert.False(t, retry)
	assert.Equal(t, 1, p.CurrentPage)
	assert.GreaterOrEqual(t, p.TotalPages, 1)
}
