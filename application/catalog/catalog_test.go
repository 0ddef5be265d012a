package catalog_test

import (
	"context"
	"errors"
	"testing"

	appcatalog "github.com/solmarket/marketplace-client/application/catalog"
	"github.com/solmarket/marketplace-client/constant"
	listingmocks "github.com/solmarket/marketplace-client/mocks/repository/listing"
	"github.com/solmarket/marketplace-client/model"
	cerr "github.com/solmarket/marketplace-client/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogApp_Fetch(t *testing.T) {
	listings := []model.Listing{
		{ID: "l1", Title: "iPhone", Price: "3.20", OwnerID: "u1"},
		{ID: "l2", Title: "Camry", Price: "95.00", OwnerID: "u1"},
	}

	t.Run("success: replaces the raw set", func(t *testing.T) {
		repo := listingmocks.NewListingRepository(t)
		repo.On("Search", mock.Anything, model.ListingQuery{}).Return(listings, nil).Once()

		app := appcatalog.NewCatalogApp(repo)
		got, err := app.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, listings, got)
	})

	t.Run("failure: previous view retained, explicit error returned", func(t *testing.T) {
		repo := listingmocks.NewListingRepository(t)
		repo.On("Search", mock.Anything, model.ListingQuery{}).Return(listings, nil).Once()
		repo.On("Search", mock.Anything, model.ListingQuery{Q: "phone"}).
			Return(nil, errors.New("connection refused")).Once()

		app := appcatalog.NewCatalogApp(repo)
		_, err := app.Fetch(context.Background())
		require.NoError(t, err)

		_, err = app.SetCriterion(appcatalog.FieldQuery, "phone")
		require.NoError(t, err)

		_, err = app.Fetch(context.Background())
		require.Error(t, err)
		assert.True(t, cerr.IsType(err, constant.ErrQueryFailed))

		// The last good set still renders.
		assert.Len(t, app.View(), 2)
	})
}

func TestCatalogApp_SetCriterion(t *testing.T) {
	tests := []struct {
		name      string
		field     appcatalog.CriterionField
		value     string
		wantFetch bool
		wantErr   bool
	}{
		{name: "query implies round-trip", field: appcatalog.FieldQuery, value: "phone", wantFetch: true},
		{name: "min price implies round-trip", field: appcatalog.FieldMinPrice, value: "0.5", wantFetch: true},
		{name: "max price implies round-trip", field: appcatalog.FieldMaxPrice, value: "10", wantFetch: true},
		{name: "category stays client-side", field: appcatalog.FieldCategory, value: "Fashion", wantFetch: false},
		{name: "sort stays client-side", field: appcatalog.FieldSort, value: "price-low", wantFetch: false},
		{name: "unknown sort key rejected", field: appcatalog.FieldSort, value: "alphabetical", wantErr: true},
		{name: "unknown field rejected", field: "color", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appcatalog.NewCatalogApp(listingmocks.NewListingRepository(t))
			needsFetch, err := app.SetCriterion(tt.field, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFetch, needsFetch)
		})
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	listings := []model.Listing{
		{ID: "l1", Title: "iPhone 14", Description: "electronics in mint condition"},
		{ID: "l2", Title: "Toyota Camry", Description: "reliable vehicles deal"},
		{ID: "l3", Title: "ELECTRONICS bundle", Description: ""},
		{ID: "l4", Title: "Sofa", Description: "brown leather"},
	}

	t.Run("All is the identity", func(t *testing.T) {
		got := appcatalog.ApplyCategoryFilter(listings, constant.CategoryAll)
		assert.Equal(t, listings, got)
	})

	t.Run("case-insensitive substring on title or description", func(t *testing.T) {
		got := appcatalog.ApplyCategoryFilter(listings, "Electronics")
		require.Len(t, got, 2)
		assert.Equal(t, "l1", got[0].ID)
		assert.Equal(t, "l3", got[1].ID)
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := appcatalog.ApplyCategoryFilter(listings, "Real Estate")
		assert.Empty(t, got)
	})
}

func TestApplySort(t *testing.T) {
	t.Run("price-low is stable for equal prices", func(t *testing.T) {
		listings := []model.Listing{
			{ID: "a", Price: "1"},
			{ID: "b", Price: "1"},
		}
		got := appcatalog.ApplySort(listings, constant.SortPriceLow)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("malformed price sorts as zero", func(t *testing.T) {
		listings := []model.Listing{
			{ID: "a", Price: "2.50"},
			{ID: "b", Price: "not-a-number"},
			{ID: "c", Price: "0.10"},
		}
		got := appcatalog.ApplySort(listings, constant.SortPriceLow)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("missing timestamp sorts earliest under oldest", func(t *testing.T) {
		listings := []model.Listing{
			{ID: "a", CreatedAt: "2024-03-01T10:00:00Z"},
			{ID: "b", CreatedAt: ""},
			{ID: "c", CreatedAt: "2024-01-01T10:00:00Z"},
		}
		got := appcatalog.ApplySort(listings, constant.SortOldest)
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))

		got = appcatalog.ApplySort(listings, constant.SortNewest)
		assert.Equal(t, []string{"a", "c", "b"}, ids(got))
	})

	t.Run("input slice never mutated", func(t *testing.T) {
		listings := []model.Listing{
			{ID: "a", Price: "9"},
			{ID: "b", Price: "1"},
		}
		_ = appcatalog.ApplySort(listings, constant.SortPriceLow)
		assert.Equal(t, "a", listings[0].ID)
	})

	t.Run("price-high then price-low stay monotonic", func(t *testing.T) {
		listings := []model.Listing{
			{ID: "a", Price: "5.00"},
			{ID: "b", Price: "1.25"},
			{ID: "c", Price: "9.75"},
		}

		high := appcatalog.ApplySort(listings, constant.SortPriceHigh)
		for i := 1; i < len(high); i++ {
			assert.False(t, high[i-1].PriceDecimal().LessThan(high[i].PriceDecimal()))
		}

		low := appcatalog.ApplySort(high, constant.SortPriceLow)
		for i := 1; i < len(low); i++ {
			assert.False(t, low[i-1].PriceDecimal().GreaterThan(low[i].PriceDecimal()))
		}
	})
}

func TestCategoryCount(t *testing.T) {
	listings := []model.Listing{
		{ID: "l1", Title: "Electronics lot", Description: "vintage fashion accessories"},
		{ID: "l2", Title: "Fashion week pass"},
		{ID: "l3", Title: "Garden tools"},
	}

	t.Run("All counts everything", func(t *testing.T) {
		assert.Equal(t, 3, appcatalog.CategoryCount(listings, constant.CategoryAll))
	})

	t.Run("count equals filtered length", func(t *testing.T) {
		for _, category := range append([]string{constant.CategoryAll}, constant.Categories...) {
			assert.Equal(t,
				len(appcatalog.ApplyCategoryFilter(listings, category)),
				appcatalog.CategoryCount(listings, category),
				category)
		}
	})

	t.Run("a listing counts under every matching category", func(t *testing.T) {
		// l1 matches both Electronics and Fashion.
		assert.Equal(t, 1, appcatalog.CategoryCount(listings, "Electronics"))
		assert.Equal(t, 2, appcatalog.CategoryCount(listings, "Fashion"))
	})
}

func TestVolume(t *testing.T) {
	listings := []model.Listing{
		{ID: "l1", Price: "0.1"},
		{ID: "l2", Price: "0.2"},
		{ID: "l3", Price: "garbage"},
	}
	// Decimal arithmetic: no float drift, malformed contributes zero.
	assert.Equal(t, "0.3", appcatalog.Volume(listings).String())
}

func ids(listings []model.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}
