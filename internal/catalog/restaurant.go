package catalog

// MenuItem is one dish in the restaurant role-play game.
type MenuItem struct {
	ID        string
	Name      string
	ImageFile string
	Price     int
}

// Customer is a restaurant guest with a scripted greeting the narrator reads.
type Customer struct {
	ID        string
	Name      string
	ImageFile string
	Greeting  string
}

var restaurantMenu = []MenuItem{
	{ID: "pancakes", Name: "Pancakes", ImageFile: "pancakes.png", Price: 4},
	{ID: "spaghetti", Name: "Spaghetti", ImageFile: "spaghetti.png", Price: 6},
	{ID: "veggie_soup", Name: "Veggie Soup", ImageFile: "veggie_soup.png", Price: 3},
	{ID: "fruit_salad", Name: "Fruit Salad", ImageFile: "fruit_salad.png", Price: 3},
	{ID: "pizza_slice", Name: "Pizza Slice", ImageFile: "pizza_slice.png", Price: 5},
	{ID: "lemonade", Name: "Lemonade", ImageFile: "lemonade.png", Price: 2},
}

var restaurantCustomers = []Customer{
	{ID: "grandma_rosa", Name: "Grandma Rosa", ImageFile: "grandma_rosa.png", Greeting: "Hello dear, what smells so good today?"},
	{ID: "captain_finn", Name: "Captain Finn", ImageFile: "captain_finn.png", Greeting: "Ahoy! A hungry sailor needs a big lunch!"},
	{ID: "robot_beep", Name: "Robot Beep", ImageFile: "robot_beep.png", Greeting: "Beep boop. One delicious meal, please."},
	{ID: "fairy_luna", Name: "Fairy Luna", ImageFile: "fairy_luna.png", Greeting: "Something sweet and sparkly, please!"},
}

// RestaurantMenu returns the menu in card order.
func RestaurantMenu() []MenuItem {
	out := make([]MenuItem, len(restaurantMenu))
	copy(out, restaurantMenu)
	return out
}

// RestaurantCustomers returns the guest roster in arrival order.
func RestaurantCustomers() []Customer {
	out := make([]Customer, len(restaurantCustomers))
	copy(out, restaurantCustomers)
	return out
}
