package catalog

import "github.com/davidmoltin/command-center/internal/models"

// Grocery categories
const (
	CategoryDairy     = "Dairy"
	CategoryProduce   = "Produce"
	CategoryBakery    = "Bakery"
	CategoryPantry    = "Pantry"
	CategoryBeverages = "Beverages"
)

var pantry = []models.InventoryItem{
	{ID: "inv-1", Name: "Whole Milk", Category: CategoryDairy, StockLevel: 20, Freshness: models.FreshnessExpiring, ExpiryDays: 2, Price: 1.29, Icon: "milk"},
	{ID: "inv-2", Name: "Greek Yogurt", Category: CategoryDairy, StockLevel: 65, Freshness: models.FreshnessFresh, ExpiryDays: 9, Price: 3.49, Icon: "yogurt"},
	{ID: "inv-3", Name: "Cheddar Cheese", Category: CategoryDairy, StockLevel: 80, Freshness: models.FreshnessGood, ExpiryDays: 21, Price: 4.99, Icon: "cheese"},
	{ID: "inv-4", Name: "Bananas", Category: CategoryProduce, StockLevel: 35, Freshness: models.FreshnessGood, ExpiryDays: 3, Price: 0.59, Icon: "banana"},
	{ID: "inv-5", Name: "Spinach", Category: CategoryProduce, StockLevel: 15, Freshness: models.FreshnessExpiring, ExpiryDays: 1, Price: 2.19, Icon: "leaf"},
	{ID: "inv-6", Name: "Tomatoes", Category: CategoryProduce, StockLevel: 55, Freshness: models.FreshnessFresh, ExpiryDays: 6, Price: 2.79, Icon: "tomato"},
	{ID: "inv-7", Name: "Sourdough Bread", Category: CategoryBakery, StockLevel: 40, Freshness: models.FreshnessGood, ExpiryDays: 3, Price: 4.25, Icon: "bread"},
	{ID: "inv-8", Name: "Croissants", Category: CategoryBakery, StockLevel: 10, Freshness: models.FreshnessExpiring, ExpiryDays: 1, Price: 3.75, Icon: "croissant"},
	{ID: "inv-9", Name: "Basmati Rice", Category: CategoryPantry, StockLevel: 70, Freshness: models.FreshnessGood, ExpiryDays: 240, Price: 5.49, Icon: "rice"},
	{ID: "inv-10", Name: "Olive Oil", Category: CategoryPantry, StockLevel: 25, Freshness: models.FreshnessGood, ExpiryDays: 180, Price: 8.99, Icon: "bottle"},
	{ID: "inv-11", Name: "Orange Juice", Category: CategoryBeverages, StockLevel: 45, Freshness: models.FreshnessFresh, ExpiryDays: 5, Price: 3.29, Icon: "juice"},
	{ID: "inv-12", Name: "Sparkling Water", Category: CategoryBeverages, StockLevel: 90, Freshness: models.FreshnessGood, ExpiryDays: 365, Price: 0.99, Icon: "water"},
}
