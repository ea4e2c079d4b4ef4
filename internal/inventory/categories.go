package inventory

import (
	"playbox/internal/catalog"
	"playbox/internal/textutil"
)

// Display categories assets are routed to.
const (
	CategoryIllustrations = "illustrations"
	CategoryShop          = "shop"
	CategoryScience       = "science"
	CategoryRestaurant    = "restaurant"
	CategoryCooking       = "cooking"
	CategoryWords         = "words"
	CategoryEffects       = "effects"
)

// RoutingSets holds the per-domain narration membership sets used to assign
// audio assets to display categories.
type RoutingSets struct {
	Shop       map[string]struct{}
	Science    map[string]struct{}
	Restaurant map[string]struct{}
	Cooking    map[string]struct{}
	Words      map[string]struct{}
}

// DefaultRoutingSets builds the routing sets from the production catalogs.
func DefaultRoutingSets() RoutingSets {
	var wordTexts []string
	for _, lang := range catalog.Languages() {
		wordTexts = append(wordTexts, catalog.WordNarration(lang)...)
	}
	return RoutingSets{
		Shop:       catalog.NarrationSet(catalog.ShopNarration()),
		Science:    catalog.NarrationSet(catalog.ScienceNarration()),
		Restaurant: catalog.NarrationSet(catalog.RestaurantNarration()),
		Cooking:    catalog.NarrationSet(catalog.CookingNarration()),
		Words:      catalog.NarrationSet(wordTexts),
	}
}

// RouteAudio assigns one display category to an audio asset. The priority
// order is fixed: an explicit subfolder tag wins, then the domain sets are
// tested in shop, science, restaurant, cooking, words order, and anything
// left over lands in effects. Text appearing in two domains always routes to
// the earlier one; changing this order silently recategorizes assets.
func RouteAudio(text, subfolder string, sets RoutingSets) string {
	if subfolder != "" {
		return subfolder
	}
	normalized := textutil.NormalizeNarration(text)
	ordered := []struct {
		category string
		set      map[string]struct{}
	}{
		{CategoryShop, sets.Shop},
		{CategoryScience, sets.Science},
		{CategoryRestaurant, sets.Restaurant},
		{CategoryCooking, sets.Cooking},
		{CategoryWords, sets.Words},
	}
	for _, candidate := range ordered {
		if _, ok := candidate.set[normalized]; ok {
			return candidate.category
		}
	}
	return CategoryEffects
}
