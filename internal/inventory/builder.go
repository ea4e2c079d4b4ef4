package inventory

import (
	"fmt"

	"playbox/internal/catalog"
	"playbox/internal/textutil"
)

const audioExtension = ".mp3"

// Build constructs the full expected-asset inventory from the production
// catalogs. Every asset starts in StatusChecking until a probe or snapshot
// says otherwise. Deterministic: repeated calls yield the same keys.
func Build() *Inventory {
	sets := DefaultRoutingSets()
	inv := &Inventory{assets: make(map[string]*Asset)}

	for _, a := range buildImages() {
		inv.add(a)
	}
	for _, a := range buildUISounds() {
		inv.add(a)
	}
	for _, a := range buildNarration(sets) {
		inv.add(a)
	}
	return inv
}

// NewFromAssets builds an inventory over explicit assets, for tests and the
// generation runner's scoped views.
func NewFromAssets(assets []Asset) *Inventory {
	inv := &Inventory{assets: make(map[string]*Asset, len(assets))}
	for _, a := range assets {
		inv.add(a)
	}
	return inv
}

// add registers an asset unless the key is already taken (first write wins).
func (inv *Inventory) add(a Asset) {
	if a.Key == "" {
		return
	}
	if _, ok := inv.assets[a.Key]; ok {
		return
	}
	if a.Status == "" {
		a.Status = StatusChecking
	}
	cp := a
	inv.assets[a.Key] = &cp
}

func buildImages() []Asset {
	var out []Asset

	for _, p := range catalog.ImagePrompts() {
		out = append(out, Asset{
			Key:            p.ID,
			Name:           p.Name,
			Kind:           KindImage,
			Category:       CategoryIllustrations,
			Subfolder:      "illustrations",
			FileName:       p.ID + ".png",
			Prompt:         p.Prompt,
			ReferenceImage: p.ReferenceImage,
		})
	}
	for _, item := range catalog.ShopItems() {
		out = append(out, itemImage("shop", CategoryShop, item.ID, item.Name, item.ImageFile))
	}
	for _, item := range catalog.ScienceItems() {
		out = append(out, itemImage("science", CategoryScience, item.ID, item.Name, item.ImageFile))
	}
	for _, dish := range catalog.RestaurantMenu() {
		out = append(out, itemImage("restaurant", CategoryRestaurant, dish.ID, dish.Name, dish.ImageFile))
	}
	for _, guest := range catalog.RestaurantCustomers() {
		out = append(out, itemImage("restaurant", CategoryRestaurant, guest.ID, guest.Name, guest.ImageFile))
	}
	for _, recipe := range catalog.Recipes() {
		for i, step := range recipe.Steps {
			out = append(out, Asset{
				Key:       fmt.Sprintf("%s_step%d", recipe.ID, i+1),
				Name:      fmt.Sprintf("%s: %s", recipe.Name, step.Name),
				Kind:      KindImage,
				Category:  CategoryCooking,
				Subfolder: "cooking",
				FileName:  step.ImageFile,
				Prompt:    fmt.Sprintf("cartoon cooking illustration for children: %s, making %s", step.Name, recipe.Name),
			})
		}
	}
	return out
}

func itemImage(subfolder, category, id, name, file string) Asset {
	return Asset{
		Key:       subfolder + "_" + id,
		Name:      name,
		Kind:      KindImage,
		Category:  category,
		Subfolder: subfolder,
		FileName:  file,
		Prompt:    fmt.Sprintf("cute cartoon illustration of %s for a children's game, flat colors, white background", name),
	}
}

func buildUISounds() []Asset {
	var out []Asset
	for _, s := range catalog.UISounds() {
		key := textutil.AudioKey(s.Name, "en")
		out = append(out, Asset{
			Key:       key,
			Name:      catalog.DisplayName(s.Name),
			Kind:      KindUISound,
			Category:  RouteAudio(s.Text, s.Subfolder, RoutingSets{}),
			Subfolder: "audio/" + s.Subfolder,
			FileName:  key + audioExtension,
			Lang:      "en",
			Text:      s.Text,
		})
	}
	return out
}

// buildNarration collects every distinct display string per language. The
// per-language de-duplication is case-insensitive: "Apple" and "apple" are
// one clip.
func buildNarration(sets RoutingSets) []Asset {
	var out []Asset
	seen := make(map[string]struct{})

	addTexts := func(texts []string, lang string) {
		for _, text := range texts {
			dedupKey := lang + "|" + textutil.NormalizeNarration(text)
			if _, ok := seen[dedupKey]; ok {
				continue
			}
			seen[dedupKey] = struct{}{}

			key := textutil.AudioKey(text, lang)
			out = append(out, Asset{
				Key:       key,
				Name:      text,
				Kind:      KindAudio,
				Category:  RouteAudio(text, "", sets),
				Subfolder: "audio/" + lang,
				FileName:  key + audioExtension,
				Lang:      lang,
				Text:      text,
			})
		}
	}

	addTexts(catalog.ShopNarration(), "en")
	addTexts(catalog.ScienceNarration(), "en")
	addTexts(catalog.RestaurantNarration(), "en")
	addTexts(catalog.CookingNarration(), "en")
	for _, lang := range catalog.Languages() {
		addTexts(catalog.WordNarration(lang), lang)
	}
	return out
}
