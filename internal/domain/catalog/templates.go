package catalog

import "github.com/platewise/v1/internal/domain/mealplan"

// DefaultCatalog returns the built-in template library. Every meal type
// carries at least one vegan, gluten-free template so restrictive profiles
// never depend on the unfiltered-pool fallback.
func DefaultCatalog() *Catalog {
	return NewCatalog(builtinTemplates())
}

func builtinTemplates() []Template {
	return []Template{
		// Breakfast
		{
			Name:       "Oatmeal with Banana",
			MealType:   mealplan.MealTypeBreakfast,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Rolled Oats", QuantityG: 80, Calories: 300, ProteinG: 10.5, CarbsG: 54, FatsG: 5.5, CostEUR: 0.30},
				{Name: "Banana", QuantityG: 120, Calories: 107, ProteinG: 1.3, CarbsG: 27, FatsG: 0.4, CostEUR: 0.25},
				{Name: "Almond Milk", QuantityG: 200, Calories: 30, ProteinG: 1.0, CarbsG: 1.2, FatsG: 2.4, CostEUR: 0.35},
				{Name: "Maple Syrup", QuantityG: 15, Calories: 39, ProteinG: 0, CarbsG: 10, FatsG: 0, CostEUR: 0.30},
			},
			Instructions: []string{
				"Simmer the oats in almond milk for 5 minutes, stirring occasionally.",
				"Slice the banana over the oats.",
				"Drizzle with maple syrup and serve warm.",
			},
		},
		{
			Name:       "Scrambled Eggs on Toast",
			MealType:   mealplan.MealTypeBreakfast,
			Vegetarian: true,
			Ingredients: []TemplateIngredient{
				{Name: "Eggs", QuantityG: 120, Calories: 172, ProteinG: 15, CarbsG: 1.3, FatsG: 11.5, CostEUR: 0.60},
				{Name: "Whole Grain Bread", QuantityG: 70, Calories: 172, ProteinG: 8.5, CarbsG: 29, FatsG: 2.4, CostEUR: 0.30},
				{Name: "Butter", QuantityG: 10, Calories: 72, ProteinG: 0.1, CarbsG: 0, FatsG: 8.1, CostEUR: 0.12},
				{Name: "Chives", QuantityG: 5, Calories: 2, ProteinG: 0.2, CarbsG: 0.2, FatsG: 0, CostEUR: 0.10},
			},
			Instructions: []string{
				"Whisk the eggs with a pinch of salt.",
				"Scramble in melted butter over low heat until just set.",
				"Serve on toasted bread, topped with chopped chives.",
			},
		},
		{
			Name:       "Greek Yogurt Parfait",
			MealType:   mealplan.MealTypeBreakfast,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Greek Yogurt", QuantityG: 200, Calories: 190, ProteinG: 18, CarbsG: 8, FatsG: 10, CostEUR: 0.80},
				{Name: "Granola", QuantityG: 40, Calories: 180, ProteinG: 4, CarbsG: 26, FatsG: 7, CostEUR: 0.40},
				{Name: "Blueberries", QuantityG: 80, Calories: 46, ProteinG: 0.6, CarbsG: 12, FatsG: 0.3, CostEUR: 0.70},
				{Name: "Honey", QuantityG: 15, Calories: 46, ProteinG: 0, CarbsG: 12.5, FatsG: 0, CostEUR: 0.15},
			},
			Instructions: []string{
				"Layer yogurt, granola and blueberries in a glass.",
				"Finish with a drizzle of honey.",
			},
		},
		{
			Name:       "Tofu Scramble",
			MealType:   mealplan.MealTypeBreakfast,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Firm Tofu", QuantityG: 180, Calories: 131, ProteinG: 15.5, CarbsG: 3.5, FatsG: 7, CostEUR: 0.90},
				{Name: "Spinach", QuantityG: 60, Calories: 14, ProteinG: 1.7, CarbsG: 2.2, FatsG: 0.2, CostEUR: 0.40},
				{Name: "Tomato", QuantityG: 80, Calories: 14, ProteinG: 0.7, CarbsG: 3.1, FatsG: 0.2, CostEUR: 0.30},
				{Name: "Olive Oil", QuantityG: 10, Calories: 88, ProteinG: 0, CarbsG: 0, FatsG: 10, CostEUR: 0.10},
				{Name: "Turmeric", QuantityG: 2, Calories: 6, ProteinG: 0.2, CarbsG: 1.3, FatsG: 0.2, CostEUR: 0.05},
			},
			Instructions: []string{
				"Crumble the tofu into a hot oiled pan.",
				"Add turmeric and cook for 3 minutes.",
				"Fold in spinach and diced tomato until wilted.",
			},
		},
		{
			Name:       "Berry Chia Smoothie",
			MealType:   mealplan.MealTypeBreakfast,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Banana", QuantityG: 120, Calories: 107, ProteinG: 1.3, CarbsG: 27, FatsG: 0.4, CostEUR: 0.25},
				{Name: "Frozen Berries", QuantityG: 100, Calories: 48, ProteinG: 0.9, CarbsG: 11, FatsG: 0.4, CostEUR: 0.65},
				{Name: "Oat Milk", QuantityG: 250, Calories: 113, ProteinG: 2.5, CarbsG: 17, FatsG: 3.5, CostEUR: 0.40},
				{Name: "Chia Seeds", QuantityG: 15, Calories: 73, ProteinG: 2.5, CarbsG: 6.3, FatsG: 4.6, CostEUR: 0.35},
			},
			Instructions: []string{
				"Blend all ingredients until smooth.",
				"Rest for 2 minutes so the chia thickens, then serve.",
			},
		},
		{
			Name:       "Avocado Toast",
			MealType:   mealplan.MealTypeBreakfast,
			Vegan:      true,
			Vegetarian: true,
			Ingredients: []TemplateIngredient{
				{Name: "Sourdough Bread", QuantityG: 80, Calories: 210, ProteinG: 7, CarbsG: 40, FatsG: 1.6, CostEUR: 0.45},
				{Name: "Avocado", QuantityG: 100, Calories: 160, ProteinG: 2, CarbsG: 8.5, FatsG: 14.7, CostEUR: 0.90},
				{Name: "Olive Oil", QuantityG: 5, Calories: 44, ProteinG: 0, CarbsG: 0, FatsG: 5, CostEUR: 0.05},
				{Name: "Chili Flakes", QuantityG: 2, Calories: 6, ProteinG: 0.3, CarbsG: 1, FatsG: 0.3, CostEUR: 0.05},
			},
			Instructions: []string{
				"Toast the bread until golden.",
				"Mash the avocado with olive oil and spread over the toast.",
				"Season with chili flakes and salt.",
			},
		},

		// Lunch
		{
			Name:       "Chickpea Buddha Bowl",
			MealType:   mealplan.MealTypeLunch,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Chickpeas", QuantityG: 150, Calories: 246, ProteinG: 13.5, CarbsG: 41, FatsG: 4, CostEUR: 0.50},
				{Name: "Quinoa", QuantityG: 70, Calories: 257, ProteinG: 9.9, CarbsG: 45, FatsG: 4.2, CostEUR: 0.55},
				{Name: "Avocado", QuantityG: 80, Calories: 128, ProteinG: 1.6, CarbsG: 6.8, FatsG: 11.8, CostEUR: 0.72},
				{Name: "Cherry Tomatoes", QuantityG: 100, Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatsG: 0.2, CostEUR: 0.55},
				{Name: "Olive Oil", QuantityG: 10, Calories: 88, ProteinG: 0, CarbsG: 0, FatsG: 10, CostEUR: 0.10},
				{Name: "Lemon", QuantityG: 30, Calories: 9, ProteinG: 0.3, CarbsG: 2.8, FatsG: 0.1, CostEUR: 0.20},
			},
			Instructions: []string{
				"Cook the quinoa and let it cool slightly.",
				"Arrange quinoa, chickpeas, avocado and halved tomatoes in a bowl.",
				"Dress with olive oil and lemon juice.",
			},
		},
		{
			Name:       "Grilled Chicken Salad",
			MealType:   mealplan.MealTypeLunch,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Chicken Breast", QuantityG: 150, Calories: 248, ProteinG: 46.5, CarbsG: 0, FatsG: 5.4, CostEUR: 1.50},
				{Name: "Mixed Greens", QuantityG: 80, Calories: 18, ProteinG: 1.8, CarbsG: 2.9, FatsG: 0.3, CostEUR: 0.60},
				{Name: "Cherry Tomatoes", QuantityG: 100, Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatsG: 0.2, CostEUR: 0.55},
				{Name: "Cucumber", QuantityG: 100, Calories: 15, ProteinG: 0.7, CarbsG: 3.6, FatsG: 0.1, CostEUR: 0.25},
				{Name: "Olive Oil", QuantityG: 15, Calories: 133, ProteinG: 0, CarbsG: 0, FatsG: 15, CostEUR: 0.15},
			},
			Instructions: []string{
				"Season and grill the chicken breast, then slice it.",
				"Toss the greens, tomatoes and cucumber with olive oil.",
				"Top the salad with the sliced chicken.",
			},
		},
		{
			Name:       "Red Lentil Soup",
			MealType:   mealplan.MealTypeLunch,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Red Lentils", QuantityG: 100, Calories: 352, ProteinG: 24.6, CarbsG: 63, FatsG: 1.1, CostEUR: 0.45},
				{Name: "Carrot", QuantityG: 80, Calories: 33, ProteinG: 0.7, CarbsG: 7.7, FatsG: 0.2, CostEUR: 0.15},
				{Name: "Onion", QuantityG: 80, Calories: 32, ProteinG: 0.9, CarbsG: 7.5, FatsG: 0.1, CostEUR: 0.12},
				{Name: "Celery", QuantityG: 50, Calories: 8, ProteinG: 0.3, CarbsG: 1.5, FatsG: 0.1, CostEUR: 0.20},
				{Name: "Vegetable Stock", QuantityG: 500, Calories: 15, ProteinG: 0.5, CarbsG: 3, FatsG: 0.1, CostEUR: 0.25},
				{Name: "Olive Oil", QuantityG: 10, Calories: 88, ProteinG: 0, CarbsG: 0, FatsG: 10, CostEUR: 0.10},
			},
			Instructions: []string{
				"Soften diced onion, carrot and celery in olive oil.",
				"Add lentils and stock, simmer for 20 minutes.",
				"Blend half the soup for a creamy texture.",
			},
		},
		{
			Name:     "Tuna Pasta Salad",
			MealType: mealplan.MealTypeLunch,
			Ingredients: []TemplateIngredient{
				{Name: "Pasta", QuantityG: 90, Calories: 319, ProteinG: 11.2, CarbsG: 64, FatsG: 1.4, CostEUR: 0.25},
				{Name: "Canned Tuna", QuantityG: 100, Calories: 116, ProteinG: 25.5, CarbsG: 0, FatsG: 0.8, CostEUR: 1.10},
				{Name: "Sweetcorn", QuantityG: 80, Calories: 77, ProteinG: 2.6, CarbsG: 17, FatsG: 1.1, CostEUR: 0.30},
				{Name: "Red Onion", QuantityG: 40, Calories: 16, ProteinG: 0.4, CarbsG: 3.7, FatsG: 0.1, CostEUR: 0.10},
				{Name: "Olive Oil", QuantityG: 15, Calories: 133, ProteinG: 0, CarbsG: 0, FatsG: 15, CostEUR: 0.15},
			},
			Instructions: []string{
				"Cook the pasta, rinse under cold water and drain.",
				"Mix with drained tuna, sweetcorn and diced red onion.",
				"Dress with olive oil, salt and pepper.",
			},
		},
		{
			Name:       "Caprese Sandwich",
			MealType:   mealplan.MealTypeLunch,
			Vegetarian: true,
			Ingredients: []TemplateIngredient{
				{Name: "Ciabatta Bread", QuantityG: 100, Calories: 271, ProteinG: 9, CarbsG: 52, FatsG: 3, CostEUR: 0.55},
				{Name: "Mozzarella Cheese", QuantityG: 80, Calories: 240, ProteinG: 17.8, CarbsG: 1.8, FatsG: 17.9, CostEUR: 0.95},
				{Name: "Tomato", QuantityG: 100, Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatsG: 0.2, CostEUR: 0.35},
				{Name: "Fresh Basil", QuantityG: 5, Calories: 1, ProteinG: 0.2, CarbsG: 0.1, FatsG: 0, CostEUR: 0.25},
				{Name: "Olive Oil", QuantityG: 10, Calories: 88, ProteinG: 0, CarbsG: 0, FatsG: 10, CostEUR: 0.10},
			},
			Instructions: []string{
				"Split and lightly toast the ciabatta.",
				"Layer sliced mozzarella, tomato and basil leaves.",
				"Finish with olive oil and a pinch of salt.",
			},
		},
		{
			Name:       "Vegetable Stir-Fry with Rice",
			MealType:   mealplan.MealTypeLunch,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Rice", QuantityG: 80, Calories: 288, ProteinG: 5.7, CarbsG: 63, FatsG: 0.5, CostEUR: 0.20},
				{Name: "Broccoli", QuantityG: 120, Calories: 41, ProteinG: 3.4, CarbsG: 8, FatsG: 0.4, CostEUR: 0.50},
				{Name: "Bell Pepper", QuantityG: 100, Calories: 31, ProteinG: 1, CarbsG: 6, FatsG: 0.3, CostEUR: 0.60},
				{Name: "Carrot", QuantityG: 80, Calories: 33, ProteinG: 0.7, CarbsG: 7.7, FatsG: 0.2, CostEUR: 0.15},
				{Name: "Tamari Sauce", QuantityG: 15, Calories: 9, ProteinG: 1.6, CarbsG: 0.8, FatsG: 0, CostEUR: 0.20},
				{Name: "Sesame Oil", QuantityG: 10, Calories: 88, ProteinG: 0, CarbsG: 0, FatsG: 10, CostEUR: 0.15},
			},
			Instructions: []string{
				"Cook the rice.",
				"Stir-fry the vegetables in sesame oil over high heat.",
				"Toss with tamari and serve over the rice.",
			},
		},

		// Dinner
		{
			Name:       "Baked Salmon with Potatoes",
			MealType:   mealplan.MealTypeDinner,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Salmon Fillet", QuantityG: 150, Calories: 312, ProteinG: 31.2, CarbsG: 0, FatsG: 20.3, CostEUR: 2.80},
				{Name: "Potatoes", QuantityG: 250, Calories: 193, ProteinG: 5, CarbsG: 43.8, FatsG: 0.2, CostEUR: 0.35},
				{Name: "Green Beans", QuantityG: 120, Calories: 37, ProteinG: 2.2, CarbsG: 8.4, FatsG: 0.3, CostEUR: 0.55},
				{Name: "Olive Oil", QuantityG: 15, Calories: 133, ProteinG: 0, CarbsG: 0, FatsG: 15, CostEUR: 0.15},
				{Name: "Lemon", QuantityG: 30, Calories: 9, ProteinG: 0.3, CarbsG: 2.8, FatsG: 0.1, CostEUR: 0.20},
			},
			Instructions: []string{
				"Roast the potatoes in olive oil at 200°C for 30 minutes.",
				"Bake the salmon with lemon slices for the last 15 minutes.",
				"Steam the green beans and serve together.",
			},
		},
		{
			Name:       "Chickpea Coconut Curry",
			MealType:   mealplan.MealTypeDinner,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Rice", QuantityG: 80, Calories: 288, ProteinG: 5.7, CarbsG: 63, FatsG: 0.5, CostEUR: 0.20},
				{Name: "Coconut Milk", QuantityG: 200, Calories: 394, ProteinG: 4, CarbsG: 5.5, FatsG: 40, CostEUR: 0.85},
				{Name: "Chickpeas", QuantityG: 150, Calories: 246, ProteinG: 13.5, CarbsG: 41, FatsG: 4, CostEUR: 0.50},
				{Name: "Cauliflower", QuantityG: 150, Calories: 38, ProteinG: 2.9, CarbsG: 7.5, FatsG: 0.4, CostEUR: 0.60},
				{Name: "Curry Paste", QuantityG: 30, Calories: 45, ProteinG: 1, CarbsG: 6, FatsG: 2, CostEUR: 0.40},
				{Name: "Onion", QuantityG: 80, Calories: 32, ProteinG: 0.9, CarbsG: 7.5, FatsG: 0.1, CostEUR: 0.12},
			},
			Instructions: []string{
				"Fry the onion and curry paste for 2 minutes.",
				"Add coconut milk, chickpeas and cauliflower; simmer 15 minutes.",
				"Serve over steamed rice.",
			},
		},
		{
			Name:     "Spaghetti Bolognese",
			MealType: mealplan.MealTypeDinner,
			Ingredients: []TemplateIngredient{
				{Name: "Spaghetti", QuantityG: 90, Calories: 319, ProteinG: 11.2, CarbsG: 64, FatsG: 1.4, CostEUR: 0.25},
				{Name: "Beef Mince", QuantityG: 125, Calories: 312, ProteinG: 21.6, CarbsG: 0, FatsG: 25, CostEUR: 1.40},
				{Name: "Tomato Passata", QuantityG: 200, Calories: 52, ProteinG: 2.4, CarbsG: 10, FatsG: 0.4, CostEUR: 0.40},
				{Name: "Onion", QuantityG: 80, Calories: 32, ProteinG: 0.9, CarbsG: 7.5, FatsG: 0.1, CostEUR: 0.12},
				{Name: "Parmesan Cheese", QuantityG: 20, Calories: 78, ProteinG: 7.1, CarbsG: 0.7, FatsG: 5.2, CostEUR: 0.45},
			},
			Instructions: []string{
				"Brown the mince with diced onion.",
				"Add passata and simmer for 20 minutes.",
				"Serve over spaghetti, topped with parmesan.",
			},
		},
		{
			Name:       "Stuffed Bell Peppers",
			MealType:   mealplan.MealTypeDinner,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Bell Pepper", QuantityG: 200, Calories: 62, ProteinG: 2, CarbsG: 12, FatsG: 0.6, CostEUR: 1.20},
				{Name: "Rice", QuantityG: 70, Calories: 252, ProteinG: 5, CarbsG: 55, FatsG: 0.4, CostEUR: 0.18},
				{Name: "Black Beans", QuantityG: 120, Calories: 158, ProteinG: 10.6, CarbsG: 28, FatsG: 0.6, CostEUR: 0.55},
				{Name: "Onion", QuantityG: 60, Calories: 24, ProteinG: 0.7, CarbsG: 5.6, FatsG: 0.1, CostEUR: 0.09},
				{Name: "Tomato", QuantityG: 100, Calories: 18, ProteinG: 0.9, CarbsG: 3.9, FatsG: 0.2, CostEUR: 0.35},
				{Name: "Cumin", QuantityG: 3, Calories: 11, ProteinG: 0.5, CarbsG: 1.3, FatsG: 0.7, CostEUR: 0.05},
			},
			Instructions: []string{
				"Halve and deseed the peppers.",
				"Mix cooked rice, beans, onion, tomato and cumin.",
				"Fill the peppers and bake at 190°C for 25 minutes.",
			},
		},
		{
			Name:       "Chicken Fajita Bowl",
			MealType:   mealplan.MealTypeDinner,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Chicken Thigh", QuantityG: 150, Calories: 265, ProteinG: 26, CarbsG: 0, FatsG: 17.3, CostEUR: 1.10},
				{Name: "Rice", QuantityG: 80, Calories: 288, ProteinG: 5.7, CarbsG: 63, FatsG: 0.5, CostEUR: 0.20},
				{Name: "Bell Pepper", QuantityG: 120, Calories: 37, ProteinG: 1.2, CarbsG: 7.2, FatsG: 0.4, CostEUR: 0.72},
				{Name: "Onion", QuantityG: 80, Calories: 32, ProteinG: 0.9, CarbsG: 7.5, FatsG: 0.1, CostEUR: 0.12},
				{Name: "Lime", QuantityG: 30, Calories: 9, ProteinG: 0.2, CarbsG: 3.2, FatsG: 0.1, CostEUR: 0.25},
				{Name: "Fajita Spice Mix", QuantityG: 8, Calories: 24, ProteinG: 1, CarbsG: 4, FatsG: 0.5, CostEUR: 0.20},
			},
			Instructions: []string{
				"Sear the spiced chicken until cooked through, then slice.",
				"Fry the peppers and onion in the same pan.",
				"Serve over rice with a squeeze of lime.",
			},
		},
		{
			Name:       "Mushroom Risotto",
			MealType:   mealplan.MealTypeDinner,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Arborio Rice", QuantityG: 90, Calories: 324, ProteinG: 6.3, CarbsG: 71, FatsG: 0.5, CostEUR: 0.50},
				{Name: "Mushrooms", QuantityG: 150, Calories: 33, ProteinG: 4.6, CarbsG: 5, FatsG: 0.5, CostEUR: 0.75},
				{Name: "Parmesan Cheese", QuantityG: 25, Calories: 98, ProteinG: 8.9, CarbsG: 0.9, FatsG: 6.5, CostEUR: 0.55},
				{Name: "Butter", QuantityG: 15, Calories: 108, ProteinG: 0.1, CarbsG: 0, FatsG: 12.2, CostEUR: 0.18},
				{Name: "Onion", QuantityG: 60, Calories: 24, ProteinG: 0.7, CarbsG: 5.6, FatsG: 0.1, CostEUR: 0.09},
				{Name: "Vegetable Stock", QuantityG: 500, Calories: 15, ProteinG: 0.5, CarbsG: 3, FatsG: 0.1, CostEUR: 0.25},
			},
			Instructions: []string{
				"Soften the onion in butter, add the rice and toast briefly.",
				"Add stock a ladle at a time, stirring until absorbed.",
				"Fold in fried mushrooms and parmesan before serving.",
			},
		},

		// Snacks
		{
			Name:       "Apple with Almonds",
			MealType:   mealplan.MealTypeSnack,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Apple", QuantityG: 150, Calories: 78, ProteinG: 0.4, CarbsG: 20.8, FatsG: 0.3, CostEUR: 0.30},
				{Name: "Almonds", QuantityG: 25, Calories: 145, ProteinG: 5.3, CarbsG: 5.4, FatsG: 12.5, CostEUR: 0.45},
			},
			Instructions: []string{"Slice the apple and serve with the almonds."},
		},
		{
			Name:       "Hummus with Carrot Sticks",
			MealType:   mealplan.MealTypeSnack,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Hummus", QuantityG: 60, Calories: 100, ProteinG: 4.7, CarbsG: 8.6, FatsG: 5.8, CostEUR: 0.50},
				{Name: "Carrot", QuantityG: 120, Calories: 49, ProteinG: 1.1, CarbsG: 11.5, FatsG: 0.3, CostEUR: 0.22},
			},
			Instructions: []string{"Cut the carrot into sticks and dip into the hummus."},
		},
		{
			Name:       "Mixed Nuts",
			MealType:   mealplan.MealTypeSnack,
			Vegan:      true,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Mixed Nuts", QuantityG: 40, Calories: 240, ProteinG: 6.4, CarbsG: 8.6, FatsG: 21.4, CostEUR: 0.70},
			},
			Instructions: []string{"Portion the nuts into a small bowl."},
		},
		{
			Name:       "Greek Yogurt with Honey",
			MealType:   mealplan.MealTypeSnack,
			Vegetarian: true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Greek Yogurt", QuantityG: 150, Calories: 143, ProteinG: 13.5, CarbsG: 6, FatsG: 7.5, CostEUR: 0.60},
				{Name: "Honey", QuantityG: 15, Calories: 46, ProteinG: 0, CarbsG: 12.5, FatsG: 0, CostEUR: 0.15},
			},
			Instructions: []string{"Spoon the yogurt into a bowl and drizzle with honey."},
		},
		{
			Name:       "Rice Cakes with Peanut Butter",
			MealType:   mealplan.MealTypeSnack,
			Vegetarian: true,
			Vegan:      true,
			GlutenFree: true,
			Ingredients: []TemplateIngredient{
				{Name: "Rice Cakes", QuantityG: 30, Calories: 116, ProteinG: 2.4, CarbsG: 24.5, FatsG: 0.9, CostEUR: 0.25},
				{Name: "Peanut Butter", QuantityG: 30, Calories: 176, ProteinG: 7.5, CarbsG: 6, FatsG: 15, CostEUR: 0.30},
			},
			Instructions: []string{"Spread the peanut butter over the rice cakes."},
		},
	}
}
