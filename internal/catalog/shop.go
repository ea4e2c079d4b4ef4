package catalog

// ShopItem is one product in the pretend-shop game. Price is in play coins.
type ShopItem struct {
	ID        string
	Name      string
	ImageFile string
	Price     int
}

var shopItems = []ShopItem{
	{ID: "apple", Name: "Apple", ImageFile: "apple.png", Price: 2},
	{ID: "banana", Name: "Banana", ImageFile: "banana.png", Price: 1},
	{ID: "milk", Name: "Milk", ImageFile: "milk.png", Price: 3},
	{ID: "bread", Name: "Bread", ImageFile: "bread.png", Price: 2},
	{ID: "cheese", Name: "Cheese", ImageFile: "cheese.png", Price: 4},
	{ID: "teddy_bear", Name: "Teddy Bear", ImageFile: "teddy_bear.png", Price: 8},
	{ID: "crayons", Name: "Crayons", ImageFile: "crayons.png", Price: 5},
	{ID: "ball", Name: "Ball", ImageFile: "ball.png", Price: 3},
	{ID: "umbrella", Name: "Umbrella", ImageFile: "umbrella.png", Price: 6},
	{ID: "toothbrush", Name: "Toothbrush", ImageFile: "toothbrush.png", Price: 2},
}

// ShopItems returns the shop stock in shelf order.
func ShopItems() []ShopItem {
	out := make([]ShopItem, len(shopItems))
	copy(out, shopItems)
	return out
}
