package toolsrv

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type menuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type restaurant struct {
	Cuisine    string
	Rating     float64
	PriceRange string
	Location   string
	Hours      string
	Sections   []string
	Menu       map[string][]menuItem
}

var restaurantNames = []string{"mario's pizza", "sushi zen", "burger barn"}

var restaurants = map[string]restaurant{
	"mario's pizza": {
		Cuisine:    "italian",
		Rating:     4.5,
		PriceRange: "$$",
		Location:   "123 Main St",
		Hours:      "11:00 AM - 10:00 PM",
		Sections:   []string{"appetizers", "mains", "desserts"},
		Menu: map[string][]menuItem{
			"appetizers": {
				{"Garlic Bread", 8.99, "Fresh baked bread with garlic butter"},
				{"Caesar Salad", 12.99, "Romaine lettuce, parmesan, croutons"},
				{"Bruschetta", 10.99, "Toasted bread with tomatoes and basil"},
			},
			"mains": {
				{"Margherita Pizza", 16.99, "Tomato sauce, mozzarella, fresh basil"},
				{"Pepperoni Pizza", 18.99, "Tomato sauce, mozzarella, pepperoni"},
				{"Spaghetti Carbonara", 22.99, "Pasta with eggs, cheese, pancetta"},
				{"Lasagna", 24.99, "Layered pasta with meat sauce and cheese"},
			},
			"desserts": {
				{"Tiramisu", 8.99, "Coffee-flavored Italian dessert"},
				{"Gelato", 6.99, "Italian ice cream, various flavors"},
			},
		},
	},
	"sushi zen": {
		Cuisine:    "japanese",
		Rating:     4.8,
		PriceRange: "$$$",
		Location:   "456 Oak Ave",
		Hours:      "5:00 PM - 11:00 PM",
		Sections:   []string{"appetizers", "sushi_rolls", "sashimi"},
		Menu: map[string][]menuItem{
			"appetizers": {
				{"Edamame", 6.99, "Steamed soybeans with sea salt"},
				{"Gyoza", 8.99, "Pan-fried pork dumplings"},
				{"Miso Soup", 4.99, "Traditional soybean paste soup"},
			},
			"sushi_rolls": {
				{"California Roll", 12.99, "Crab, avocado, cucumber"},
				{"Spicy Tuna Roll", 14.99, "Spicy tuna, cucumber, avocado"},
				{"Dragon Roll", 18.99, "Eel, cucumber, avocado on top"},
				{"Rainbow Roll", 16.99, "California roll topped with assorted fish"},
			},
			"sashimi": {
				{"Salmon Sashimi", 15.99, "Fresh raw salmon slices"},
				{"Tuna Sashimi", 17.99, "Fresh raw tuna slices"},
				{"Mixed Sashimi", 24.99, "Assortment of fresh fish"},
			},
		},
	},
	"burger barn": {
		Cuisine:    "american",
		Rating:     4.2,
		PriceRange: "$",
		Location:   "789 Elm St",
		Hours:      "11:00 AM - 9:00 PM",
		Sections:   []string{"burgers", "sides", "shakes"},
		Menu: map[string][]menuItem{
			"burgers": {
				{"Classic Burger", 12.99, "Beef patty, lettuce, tomato, onion"},
				{"Cheeseburger", 14.99, "Classic burger with cheddar cheese"},
				{"BBQ Bacon Burger", 16.99, "Burger with BBQ sauce and bacon"},
				{"Veggie Burger", 13.99, "Plant-based patty with vegetables"},
			},
			"sides": {
				{"French Fries", 4.99, "Crispy golden fries"},
				{"Onion Rings", 6.99, "Beer-battered onion rings"},
				{"Coleslaw", 3.99, "Fresh cabbage salad"},
			},
			"shakes": {
				{"Vanilla Shake", 5.99, "Creamy vanilla milkshake"},
				{"Chocolate Shake", 5.99, "Rich chocolate milkshake"},
				{"Strawberry Shake", 5.99, "Fresh strawberry milkshake"},
			},
		},
	},
}

const (
	taxRate = 0.08
	tipRate = 0.18
)

// NewRestaurantServer builds the restaurant fixture with three fixed
// restaurants and their menus.
func NewRestaurantServer() *server.MCPServer {
	srv := newToolServer("restaurant")

	srv.AddTool(mcp.NewTool("search_restaurants",
		mcp.WithDescription("Search for restaurants by cuisine or price range"),
		mcp.WithString("cuisine", mcp.Description("Type of cuisine (italian, japanese, american, any)"), mcp.DefaultString("any")),
		mcp.WithString("price_range", mcp.Description("Price range ($, $$, $$$, any)"), mcp.DefaultString("any")),
	), handleSearchRestaurants)

	srv.AddTool(mcp.NewTool("get_menu",
		mcp.WithDescription("Get the full menu for a restaurant"),
		mcp.WithString("restaurant_name", mcp.Required(), mcp.Description("Name of the restaurant")),
	), handleGetMenu)

	srv.AddTool(mcp.NewTool("get_menu_section",
		mcp.WithDescription("Get a specific section of a restaurant's menu"),
		mcp.WithString("restaurant_name", mcp.Required(), mcp.Description("Name of the restaurant")),
		mcp.WithString("section", mcp.Required(), mcp.Description("Menu section (appetizers, mains, desserts, etc.)")),
	), handleGetMenuSection)

	srv.AddTool(mcp.NewTool("calculate_order_total",
		mcp.WithDescription("Calculate the total cost of an order"),
		mcp.WithString("restaurant_name", mcp.Required(), mcp.Description("Name of the restaurant")),
		mcp.WithArray("items", mcp.Required(), mcp.Description("List of item names to order")),
	), handleCalculateOrderTotal)

	srv.AddTool(mcp.NewTool("get_restaurant_info",
		mcp.WithDescription("Get basic information about a restaurant"),
		mcp.WithString("restaurant_name", mcp.Required(), mcp.Description("Name of the restaurant")),
	), handleGetRestaurantInfo)

	return srv
}

func handleSearchRestaurants(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cuisine := request.GetString("cuisine", "any")
	priceRange := request.GetString("price_range", "any")

	results := []map[string]any{}
	for _, name := range restaurantNames {
		r := restaurants[name]
		cuisineMatch := cuisine == "any" || strings.EqualFold(r.Cuisine, cuisine)
		priceMatch := priceRange == "any" || r.PriceRange == priceRange
		if cuisineMatch && priceMatch {
			results = append(results, map[string]any{
				"name":        name,
				"cuisine":     r.Cuisine,
				"rating":      r.Rating,
				"price_range": r.PriceRange,
				"location":    r.Location,
				"hours":       r.Hours,
			})
		}
	}

	return jsonResult(map[string]any{
		"query":   map[string]string{"cuisine": cuisine, "price_range": priceRange},
		"results": results,
		"count":   len(results),
	}), nil
}

func handleGetMenu(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("restaurant_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, ok := restaurants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return jsonResult(map[string]any{
			"restaurant":            name,
			"error":                 "Restaurant not found",
			"available_restaurants": restaurantNames,
		}), nil
	}

	return jsonResult(map[string]any{
		"restaurant": name,
		"cuisine":    r.Cuisine,
		"menu":       r.Menu,
		"location":   r.Location,
		"hours":      r.Hours,
	}), nil
}

func handleGetMenuSection(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("restaurant_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, ok := restaurants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return jsonResult(map[string]any{
			"restaurant": name,
			"error":      "Restaurant not found",
		}), nil
	}

	items, ok := r.Menu[strings.ToLower(strings.TrimSpace(section))]
	if !ok {
		return jsonResult(map[string]any{
			"restaurant":         name,
			"section":            section,
			"error":              "Menu section not found",
			"available_sections": r.Sections,
		}), nil
	}

	return jsonResult(map[string]any{
		"restaurant": name,
		"section":    section,
		"items":      items,
	}), nil
}

func handleCalculateOrderTotal(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("restaurant_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	items := request.GetStringSlice("items", nil)

	r, ok := restaurants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return jsonResult(map[string]any{
			"restaurant": name,
			"error":      "Restaurant not found",
		}), nil
	}

	allItems := make(map[string]menuItem)
	for _, sectionItems := range r.Menu {
		for _, item := range sectionItems {
			allItems[strings.ToLower(item.Name)] = item
		}
	}

	orderItems := []map[string]any{}
	subtotal := 0.0
	for _, itemName := range items {
		item, found := allItems[strings.ToLower(strings.TrimSpace(itemName))]
		if found {
			orderItems = append(orderItems, map[string]any{
				"name":        item.Name,
				"price":       item.Price,
				"description": item.Description,
			})
			subtotal += item.Price
		} else {
			orderItems = append(orderItems, map[string]any{
				"name":  itemName,
				"error": "Item not found",
				"price": 0.0,
			})
		}
	}

	tax := subtotal * taxRate
	tip := subtotal * tipRate

	return jsonResult(map[string]any{
		"restaurant":    name,
		"order_items":   orderItems,
		"subtotal":      round2(subtotal),
		"tax":           round2(tax),
		"suggested_tip": round2(tip),
		"total":         round2(subtotal + tax + tip),
	}), nil
}

func handleGetRestaurantInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("restaurant_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, ok := restaurants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return jsonResult(map[string]any{
			"restaurant":            name,
			"error":                 "Restaurant not found",
			"available_restaurants": restaurantNames,
		}), nil
	}

	return jsonResult(map[string]any{
		"name":        name,
		"cuisine":     r.Cuisine,
		"rating":      r.Rating,
		"price_range": r.PriceRange,
		"location":    r.Location,
		"hours":       r.Hours,
	}), nil
}
