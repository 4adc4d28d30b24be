package catalog

import (
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
)

func dish(id, name, desc, price, category string, tags, slots []string, diet models.Dietary, n models.Nutrition) models.MenuItem {
	return models.MenuItem{
		ID:             id,
		Name:           name,
		Description:    desc,
		Price:          money.MustParse(price),
		Category:       category,
		Tags:           tags,
		SlotCategories: slots,
		Image:          "/images/menu/" + id + ".jpg",
		Dietary:        diet,
		Nutrition:      n,
	}
}

var (
	vegetarian = models.Dietary{Vegetarian: true}
	vegan      = models.Dietary{Vegetarian: true, Vegan: true}
	veganGF    = models.Dietary{Vegetarian: true, Vegan: true, GlutenFree: true}
	glutenFree = models.Dietary{GlutenFree: true}
	none       = models.Dietary{}
)

func defaultMenu() []models.MenuItem {
	return []models.MenuItem{
		// Breakfast
		dish("pancake-stack", "Buttermilk Pancake Stack", "Three fluffy pancakes with maple syrup and butter.",
			"8.99", models.CategoryBreakfast, []string{"pancakes", "sweet"}, []string{models.SlotBreakfast},
			vegetarian, models.Nutrition{Calories: 620, Protein: 14, Carbs: 98, Fat: 18}),
		dish("avocado-toast", "Avocado Toast", "Smashed avocado on sourdough with chili flakes.",
			"7.99", models.CategoryBreakfast, []string{"toast", "avocado"}, []string{models.SlotBreakfast},
			vegan, models.Nutrition{Calories: 380, Protein: 9, Carbs: 40, Fat: 21}),
		dish("breakfast-burrito", "Breakfast Burrito", "Scrambled eggs, chorizo, potatoes and cheese in a flour tortilla.",
			"9.49", models.CategoryBreakfast, []string{"burrito", "eggs"}, []string{models.SlotBreakfast},
			none, models.Nutrition{Calories: 780, Protein: 32, Carbs: 64, Fat: 42}),

		// Lunch
		dish("turkey-club", "Turkey Club Sandwich", "Roast turkey, bacon, lettuce and tomato on toasted wheat.",
			"9.99", models.CategoryLunch, []string{"sandwich", "turkey"}, []string{models.SlotSandwich},
			none, models.Nutrition{Calories: 640, Protein: 38, Carbs: 48, Fat: 30}),
		dish("veggie-panini", "Grilled Veggie Panini", "Zucchini, peppers, mozzarella and pesto, pressed.",
			"8.99", models.CategoryLunch, []string{"sandwich", "panini"}, []string{models.SlotSandwich},
			vegetarian, models.Nutrition{Calories: 540, Protein: 20, Carbs: 52, Fat: 26}),
		dish("blt", "Classic BLT", "Applewood bacon, lettuce and tomato on sourdough.",
			"8.49", models.CategoryLunch, []string{"sandwich", "bacon"}, []string{models.SlotSandwich},
			none, models.Nutrition{Calories: 560, Protein: 22, Carbs: 42, Fat: 32}),
		dish("caesar-wrap", "Chicken Caesar Wrap", "Grilled chicken, romaine and parmesan with caesar dressing.",
			"9.49", models.CategoryLunch, []string{"wrap", "chicken"}, nil,
			none, models.Nutrition{Calories: 590, Protein: 35, Carbs: 44, Fat: 28}),

		// Sides
		dish("tomato-soup", "Tomato Basil Soup", "Slow-simmered tomatoes with fresh basil.",
			"4.99", models.CategorySides, []string{"soup"}, []string{models.SlotSide},
			veganGF, models.Nutrition{Calories: 180, Protein: 4, Carbs: 24, Fat: 8}),
		dish("side-salad", "Garden Side Salad", "Mixed greens, cucumber and cherry tomatoes.",
			"3.99", models.CategorySides, []string{"salad"}, []string{models.SlotSide},
			veganGF, models.Nutrition{Calories: 90, Protein: 2, Carbs: 10, Fat: 5}),
		dish("sweet-potato-fries", "Sweet Potato Fries", "Crispy fries with chipotle aioli.",
			"3.99", models.CategorySides, []string{"fries"}, []string{models.SlotSide},
			vegetarian, models.Nutrition{Calories: 340, Protein: 3, Carbs: 46, Fat: 16}),

		// Entrees
		dish("grilled-salmon", "Grilled Salmon", "Atlantic salmon with lemon butter and seasonal vegetables.",
			"18.99", models.CategoryEntrees, []string{"fish", "seafood"}, nil,
			glutenFree, models.Nutrition{Calories: 520, Protein: 42, Carbs: 12, Fat: 32}),
		dish("chicken-parmesan", "Chicken Parmesan", "Breaded chicken breast, marinara and mozzarella over spaghetti.",
			"16.99", models.CategoryEntrees, []string{"chicken", "pasta"}, nil,
			none, models.Nutrition{Calories: 980, Protein: 58, Carbs: 88, Fat: 40}),
		dish("mushroom-risotto", "Wild Mushroom Risotto", "Arborio rice with porcini, thyme and parmesan.",
			"15.49", models.CategoryEntrees, []string{"rice", "mushroom"}, nil,
			models.Dietary{Vegetarian: true, GlutenFree: true}, models.Nutrition{Calories: 610, Protein: 16, Carbs: 78, Fat: 24}),

		// Beverages
		dish("house-coffee", "House Coffee", "Freshly brewed medium roast.",
			"2.99", models.CategoryBeverages, []string{"coffee", "hot"}, []string{models.SlotCoffee, models.SlotBeverage},
			veganGF, models.Nutrition{Calories: 5}),
		dish("cappuccino", "Cappuccino", "Double espresso with steamed milk foam.",
			"4.49", models.CategoryBeverages, []string{"coffee", "espresso", "hot"}, []string{models.SlotCoffee, models.SlotBeverage},
			models.Dietary{Vegetarian: true, GlutenFree: true}, models.Nutrition{Calories: 120, Protein: 6, Carbs: 10, Fat: 6}),
		dish("iced-tea", "Iced Tea", "Fresh brewed black tea over ice.",
			"2.49", models.CategoryBeverages, []string{"tea", "cold"}, []string{models.SlotBeverage},
			veganGF, models.Nutrition{Calories: 0}),
		dish("lemonade", "Fresh Lemonade", "Squeezed lemons, cane sugar and mint.",
			"3.49", models.CategoryBeverages, []string{"lemonade", "cold"}, []string{models.SlotBeverage},
			veganGF, models.Nutrition{Calories: 150, Carbs: 38}),

		// Desserts
		dish("lava-cake", "Chocolate Lava Cake", "Warm chocolate cake with a molten center.",
			"7.99", models.CategoryDesserts, []string{"chocolate", "cake"}, nil,
			vegetarian, models.Nutrition{Calories: 560, Protein: 7, Carbs: 62, Fat: 32}),
		dish("cheesecake", "New York Cheesecake", "Classic cheesecake with a graham cracker crust.",
			"6.99", models.CategoryDesserts, []string{"cheesecake", "cake"}, nil,
			vegetarian, models.Nutrition{Calories: 450, Protein: 8, Carbs: 38, Fat: 30}),
	}
}
