package entity

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal_RandomPriceSets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		count := 1 + rng.Intn(8)
		products := make([]*Product, 0, count)
		var sumCents int64
		for j := 0; j < count; j++ {
			cents := int64(rng.Intn(1_000_000))
			sumCents += cents
			products = append(products, &Product{
				ID:    uuid.New(),
				Price: decimal.New(cents, -2),
			})
		}

		total := ComputeTotal(products)

		// The decimal sum must match integer cent arithmetic exactly
		expected := decimal.New(sumCents, -2)
		require.True(t, total.Equal(expected),
			"total %s != expected %s over %d products", total, expected, count)
	}
}

func TestComputeTotal_Empty(t *testing.T) {
	assert.True(t, ComputeTotal(nil).IsZero())
}

func TestComputeTotal_ExactCentSums(t *testing.T) {
	// Values that drift under binary floating point
	products := []*Product{
		{Price: decimal.RequireFromString("0.10")},
		{Price: decimal.RequireFromString("0.20")},
		{Price: decimal.RequireFromString("0.30")},
	}

	assert.Equal(t, "0.60", ComputeTotal(products).StringFixed(2))
}
