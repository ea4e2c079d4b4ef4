package catalog

// PrepStep is one stage of preparing a recipe. Each step has its own
// illustration; only the final step's image represents the finished dish.
type PrepStep struct {
	Name      string
	ImageFile string
}

// Recipe is one dish in the cooking game.
type Recipe struct {
	ID    string
	Name  string
	Steps []PrepStep
}

var recipes = []Recipe{
	{
		ID:   "banana_smoothie",
		Name: "Banana Smoothie",
		Steps: []PrepStep{
			{Name: "Peel the banana", ImageFile: "smoothie_step1.png"},
			{Name: "Pour in the milk", ImageFile: "smoothie_step2.png"},
			{Name: "Blend it up", ImageFile: "smoothie_done.png"},
		},
	},
	{
		ID:   "veggie_pizza",
		Name: "Veggie Pizza",
		Steps: []PrepStep{
			{Name: "Roll the dough", ImageFile: "pizza_step1.png"},
			{Name: "Spread the sauce", ImageFile: "pizza_step2.png"},
			{Name: "Add the toppings", ImageFile: "pizza_step3.png"},
			{Name: "Bake the pizza", ImageFile: "pizza_done.png"},
		},
	},
	{
		ID:   "fruit_pops",
		Name: "Fruit Pops",
		Steps: []PrepStep{
			{Name: "Chop the fruit", ImageFile: "pops_step1.png"},
			{Name: "Fill the molds", ImageFile: "pops_step2.png"},
			{Name: "Freeze overnight", ImageFile: "pops_done.png"},
		},
	},
	// Placeholder entry kept while the pancake art direction is decided;
	// aggregation skips recipes with no steps.
	{
		ID:    "mini_pancakes",
		Name:  "Mini Pancakes",
		Steps: nil,
	},
}

// Recipes returns the cookbook in page order.
func Recipes() []Recipe {
	out := make([]Recipe, len(recipes))
	copy(out, recipes)
	return out
}
