package commodity

import (
	"sort"
	"time"
)

// StateGroup holds the prices of one state.
type StateGroup struct {
	State  string      `json:"state"`
	Cities []CityGroup `json:"cities"`
}

// CityGroup holds the prices of one city.
type CityGroup struct {
	City        string             `json:"city"`
	Commodities []GroupedCommodity `json:"commodities"`
}

// GroupedCommodity is a price inside a CityGroup.
type GroupedCommodity struct {
	ID            string    `json:"id"`
	CommodityType Type      `json:"commodityType"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Group nests prices by state and city. States and cities are matched ignoring case and
// labelled with the first spelling seen; everything is ordered by state, city, then type.
func Group(prices []Price) []StateGroup {
	sorted := make([]Price, len(prices))
	copy(sorted, prices)
	sortByStateCityType(sorted)

	out := []StateGroup{}
	stateIdx := map[string]int{}
	cityIdx := map[string]map[string]int{}

	for _, p := range sorted {
		sk, ck := fold(p.State), fold(p.City)

		si, ok := stateIdx[sk]
		if !ok {
			si = len(out)
			stateIdx[sk] = si
			cityIdx[sk] = map[string]int{}
			out = append(out, StateGroup{State: p.State, Cities: []CityGroup{}})
		}

		ci, ok := cityIdx[sk][ck]
		if !ok {
			ci = len(out[si].Cities)
			cityIdx[sk][ck] = ci
			out[si].Cities = append(out[si].Cities, CityGroup{City: p.City, Commodities: []GroupedCommodity{}})
		}

		city := &out[si].Cities[ci]
		city.Commodities = append(city.Commodities, GroupedCommodity{
			ID:            p.ID,
			CommodityType: p.CommodityType,
			Price:         p.Price,
			Unit:          p.Unit,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		})
	}
	return out
}

func sortByStateCityType(prices []Price) {
	sort.SliceStable(prices, func(i, j int) bool {
		a, b := prices[i].Key().Folded(), prices[j].Key().Folded()
		if a.State != b.State {
			return a.State < b.State
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.CommodityType < b.CommodityType
	})
}

// sortByTypeStateCity orders the admin and public listings. Ties keep the newest first.
func sortByTypeStateCity(prices []Price) {
	sort.SliceStable(prices, func(i, j int) bool {
		a, b := prices[i].Key().Folded(), prices[j].Key().Folded()
		if a.CommodityType != b.CommodityType {
			return a.CommodityType < b.CommodityType
		}
		if a.State != b.State {
			return a.State < b.State
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return prices[i].CreatedAt.After(prices[j].CreatedAt)
	})
}

func sortByStateCity(prices []Price) {
	sort.SliceStable(prices, func(i, j int) bool {
		a, b := prices[i].Key().Folded(), prices[j].Key().Folded()
		if a.State != b.State {
			return a.State < b.State
		}
		return a.City < b.City
	})
}
