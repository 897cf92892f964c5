package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesCatalog(t *testing.T) {
	svcs := Services()
	require.Len(t, svcs, 4)
	assert.Equal(t, "Car Wash", svcs[0].Name)
	assert.True(t, svcs[0].Price.Equal(decimal.NewFromInt(10)))
}

func TestCatalogCopiesAreIsolated(t *testing.T) {
	first := Services()
	first[0].Name = "mutated"
	assert.Equal(t, "Car Wash", Services()[0].Name)

	banners := Ads()
	require.NotEmpty(t, banners)
	banners[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Ads()[0].Title)
}
