package catalog

import "playbox/internal/textutil"

// UISound is a shared sound effect with an explicit target subfolder on the
// content store. Effects bypass the domain routing rules.
type UISound struct {
	Name      string
	Text      string
	Subfolder string
}

var uiSounds = []UISound{
	{Name: "tap", Text: "pop", Subfolder: "effects"},
	{Name: "success", Text: "Hooray!", Subfolder: "effects"},
	{Name: "try_again", Text: "Almost! Try again.", Subfolder: "effects"},
	{Name: "sticker_unlock", Text: "You earned a new sticker!", Subfolder: "effects"},
	{Name: "big_reward", Text: "Amazing! You did it!", Subfolder: "effects"},
}

// UISounds returns the shared sound effect table.
func UISounds() []UISound {
	out := make([]UISound, len(uiSounds))
	copy(out, uiSounds)
	return out
}

// ShopNarration returns every display string the shop game speaks aloud.
func ShopNarration() []string {
	texts := []string{"Welcome to the shop!", "What would you like to buy?", "Here is your change."}
	for _, item := range shopItems {
		texts = append(texts, item.Name)
	}
	return texts
}

// ScienceNarration returns every display string the lab game speaks aloud.
func ScienceNarration() []string {
	texts := []string{"Welcome to the little lab!"}
	for _, item := range scienceItems {
		texts = append(texts, item.Name, item.Fact)
	}
	return texts
}

// RestaurantNarration returns every display string the restaurant game
// speaks aloud: dish names, guest names, and their scripted greetings.
func RestaurantNarration() []string {
	texts := []string{"A new guest has arrived!", "Order up!"}
	for _, dish := range restaurantMenu {
		texts = append(texts, dish.Name)
	}
	for _, guest := range restaurantCustomers {
		texts = append(texts, guest.Name, guest.Greeting)
	}
	return texts
}

// CookingNarration returns every display string the cooking game speaks
// aloud: recipe names and each preparation step instruction.
func CookingNarration() []string {
	texts := []string{"Let's get cooking!"}
	for _, recipe := range recipes {
		if len(recipe.Steps) == 0 {
			continue
		}
		texts = append(texts, recipe.Name)
		for _, step := range recipe.Steps {
			texts = append(texts, step.Name)
		}
	}
	return texts
}

// WordNarration returns the vocabulary strings per language tag.
func WordNarration(lang string) []string {
	var texts []string
	for _, w := range Words() {
		if w.Lang == lang {
			texts = append(texts, w.Text)
		}
	}
	return texts
}

// NarrationSet builds a case-insensitive membership set from display strings.
// Inventory category routing tests membership against these sets in a fixed
// priority order.
func NarrationSet(texts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(texts))
	for _, text := range texts {
		set[textutil.NormalizeNarration(text)] = struct{}{}
	}
	return set
}
