package commodity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	now := time.Now()
	prices := []Price{
		{ID: "1", CommodityType: TypeSilver, State: "Delhi", City: "New Delhi", Price: 74.5, Unit: "per gram", CreatedAt: now},
		{ID: "2", CommodityType: TypePetrol, State: "delhi", City: "NEW DELHI", Price: 96.72, Unit: "per litre", CreatedAt: now},
		{ID: "3", CommodityType: TypeDiesel, State: "Bihar", City: "Patna", Price: 92.3, Unit: "per litre", CreatedAt: now},
		{ID: "4", CommodityType: TypeDiesel, State: "Bihar", City: "Gaya", Price: 92.1, Unit: "per litre", CreatedAt: now},
	}

	groups := Group(prices)
	require.Len(t, groups, 2)

	assert.Equal(t, "Bihar", groups[0].State)
	require.Len(t, groups[0].Cities, 2)
	assert.Equal(t, "Gaya", groups[0].Cities[0].City)
	assert.Equal(t, "Patna", groups[0].Cities[1].City)

	delhi := groups[1]
	require.Len(t, delhi.Cities, 1)
	commodities := delhi.Cities[0].Commodities
	require.Len(t, commodities, 2)
	assert.Equal(t, TypePetrol, commodities[0].CommodityType)
	assert.Equal(t, TypeSilver, commodities[1].CommodityType)
	assert.Equal(t, 96.72, commodities[0].Price)
	assert.Equal(t, "per litre", commodities[0].Unit)
}

func TestGroupEmpty(t *testing.T) {
	groups := Group(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestSortByTypeStateCity(t *testing.T) {
	old := time.Now().Add(-time.Hour)
	prices := []Price{
		{ID: "a", CommodityType: TypeSilver, State: "Goa", City: "Panaji"},
		{ID: "b", CommodityType: TypeDiesel, State: "Goa", City: "Panaji", CreatedAt: old},
		{ID: "c", CommodityType: TypeDiesel, State: "Assam", City: "Guwahati"},
		{ID: "d", CommodityType: TypeDiesel, State: "goa", City: "panaji", CreatedAt: time.Now()},
	}

	sortByTypeStateCity(prices)

	var ids []string
	for _, p := range prices {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"c", "d", "b", "a"}, ids)
}
