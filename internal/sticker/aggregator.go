package sticker

import (
	"path"
	"sync"

	"playbox/internal/catalog"
)

// Sticker is one collectible reward unit. Image is the content-store path
// relative to the CDN base URL.
type Sticker struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"imageUrl"`
}

// Sources holds the catalog tables the aggregator merges. Tests substitute
// synthetic tables; production code uses DefaultSources.
type Sources struct {
	Prompts   []catalog.ImagePrompt
	Shop      []catalog.ShopItem
	Science   []catalog.ScienceItem
	Menu      []catalog.MenuItem
	Customers []catalog.Customer
	Recipes   []catalog.Recipe
}

// DefaultSources returns the production catalog tables.
func DefaultSources() Sources {
	return Sources{
		Prompts:   catalog.ImagePrompts(),
		Shop:      catalog.ShopItems(),
		Science:   catalog.ScienceItems(),
		Menu:      catalog.RestaurantMenu(),
		Customers: catalog.RestaurantCustomers(),
		Recipes:   catalog.Recipes(),
	}
}

// Aggregate merges the catalogs into the ordered, de-duplicated sticker pool.
// Output order follows catalog iteration order: illustrations, shop, science,
// restaurant menu, restaurant customers, recipes. Pure function; identical
// inputs yield identical output.
func Aggregate(src Sources) []Sticker {
	var pool []Sticker
	seen := make(map[string]struct{})

	add := func(id, name, image string) {
		if id == "" || image == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		pool = append(pool, Sticker{ID: id, Name: name, Image: image})
	}

	for _, p := range src.Prompts {
		// UI chrome and the big-reward sequence are not collectibles.
		if p.Category == catalog.CategoryUI || p.Category == catalog.CategoryBigReward {
			continue
		}
		add(p.ID, p.Name, path.Join("illustrations", p.ID+".png"))
	}
	for _, item := range src.Shop {
		add(item.ID, item.Name, path.Join("shop", item.ImageFile))
	}
	for _, item := range src.Science {
		add(item.ID, item.Name, path.Join("science", item.ImageFile))
	}
	for _, dish := range src.Menu {
		add(dish.ID, dish.Name, path.Join("restaurant", dish.ImageFile))
	}
	for _, guest := range src.Customers {
		add(guest.ID, guest.Name, path.Join("restaurant", guest.ImageFile))
	}
	for _, recipe := range src.Recipes {
		if len(recipe.Steps) == 0 {
			continue
		}
		final := recipe.Steps[len(recipe.Steps)-1]
		add(recipe.ID, recipe.Name, path.Join("cooking", final.ImageFile))
	}

	return pool
}

var (
	allOnce sync.Once
	allPool []Sticker
)

// All returns the canonical pool over the production catalogs. The pool is
// computed once per process; callers receive a copy they may reorder freely.
func All() []Sticker {
	allOnce.Do(func() {
		allPool = Aggregate(DefaultSources())
	})
	out := make([]Sticker, len(allPool))
	copy(out, allPool)
	return out
}
