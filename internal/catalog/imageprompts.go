package catalog

// Image prompt categories. UI chrome and the big-reward sequence are
// special-purpose: their images are never collectible stickers.
const (
	CategoryAnimals   = "animals"
	CategoryVehicles  = "vehicles"
	CategoryNature    = "nature"
	CategorySpace     = "space"
	CategoryUI        = "ui"
	CategoryBigReward = "reward_big"
)

// ImagePrompt describes one illustration the games need. ReferenceImage, when
// set, names an existing asset the generator should restyle instead of
// drawing from the prompt alone.
type ImagePrompt struct {
	ID             string
	Name           string
	Prompt         string
	Category       string
	ReferenceImage string
}

var imagePrompts = []ImagePrompt{
	{ID: "lion", Name: "Lion", Prompt: "a friendly cartoon lion cub with a fluffy mane, flat colors, white background", Category: CategoryAnimals},
	{ID: "elephant", Name: "Elephant", Prompt: "a smiling baby elephant spraying water, cartoon style for children", Category: CategoryAnimals},
	{ID: "penguin", Name: "Penguin", Prompt: "a waddling cartoon penguin chick wearing a scarf", Category: CategoryAnimals},
	{ID: "giraffe", Name: "Giraffe", Prompt: "a tall cartoon giraffe eating leaves, soft pastel colors", Category: CategoryAnimals},
	{ID: "dolphin", Name: "Dolphin", Prompt: "a jumping cartoon dolphin over a wave, bright and cheerful", Category: CategoryAnimals},
	{ID: "fire_truck", Name: "Fire Truck", Prompt: "a shiny red cartoon fire truck with a ladder, no text", Category: CategoryVehicles},
	{ID: "rocket", Name: "Rocket", Prompt: "a small cartoon rocket lifting off with sparkly exhaust", Category: CategoryVehicles},
	{ID: "sailboat", Name: "Sailboat", Prompt: "a little cartoon sailboat with a striped sail on calm water", Category: CategoryVehicles},
	{ID: "digger", Name: "Digger", Prompt: "a yellow cartoon excavator scooping sand, kid friendly", Category: CategoryVehicles},
	{ID: "rainbow", Name: "Rainbow", Prompt: "a bright rainbow over green hills, simple cartoon shapes", Category: CategoryNature},
	{ID: "oak_tree", Name: "Oak Tree", Prompt: "a big friendly oak tree with a swing, storybook style", Category: CategoryNature},
	{ID: "sunflower", Name: "Sunflower", Prompt: "a tall sunflower following the sun, cheerful cartoon", Category: CategoryNature},
	{ID: "full_moon", Name: "Full Moon", Prompt: "a glowing full moon with craters and two small stars", Category: CategorySpace},
	{ID: "saturn", Name: "Saturn", Prompt: "cartoon planet saturn with tilted rings, deep blue background", Category: CategorySpace},
	{ID: "comet", Name: "Comet", Prompt: "a streaking comet with a sparkling tail, cartoon style", Category: CategorySpace},
	{ID: "menu_background", Name: "Menu Background", Prompt: "soft gradient sky with clouds, empty play room, no characters", Category: CategoryUI},
	{ID: "button_panel", Name: "Button Panel", Prompt: "rounded wooden sign board, blank center, cartoon style", Category: CategoryUI},
	{ID: "trophy_burst", Name: "Trophy Burst", Prompt: "a golden trophy with confetti explosion and fireworks", Category: CategoryBigReward},
	{ID: "star_shower", Name: "Star Shower", Prompt: "a shower of golden stars falling over a stage", Category: CategoryBigReward},
}

// ImagePrompts returns the full illustration table in declaration order.
func ImagePrompts() []ImagePrompt {
	out := make([]ImagePrompt, len(imagePrompts))
	copy(out, imagePrompts)
	return out
}
