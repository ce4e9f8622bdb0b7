package recipe

import "github.com/hammamikhairi/foodrescuer/internal/domain"

// seedRecipes returns the built-in corpus used when no recipe file is
// configured. Ingredient lines follow the "quantity unit name" shape the
// parser expects; lines without a quantity are plain names.
func seedRecipes() []*domain.Recipe {
	return []*domain.Recipe{
		{
			ID:   "classic-pancakes",
			Name: "Classic Pancakes",
			Ingredients: []string{
				"1 cup flour",
				"1 egg",
				"1 cup milk",
				"2 tablespoons butter",
				"1 tablespoon sugar",
				"1 teaspoon baking powder",
				"salt",
			},
			Instructions: []string{
				"Whisk the flour, sugar, baking powder and a pinch of salt in a large bowl.",
				"In a second bowl, beat the egg with the milk and melted butter.",
				"Pour the wet mix into the dry mix and stir until just combined. Lumps are fine.",
				"Heat a lightly greased pan over medium heat.",
				"Pour about 1/4 cup of batter per pancake and cook until bubbles form on top.",
				"Flip and cook another minute until golden. Serve warm.",
			},
			Minutes: 20,
			Tags:    []string{"breakfast", "quick"},
		},
		{
			ID:   "vegetable-stir-fry",
			Name: "Vegetable Stir Fry",
			Ingredients: []string{
				"1 bell pepper",
				"2 cups broccoli",
				"1 carrot",
				"3 cloves garlic",
				"1 tablespoon ginger",
				"2 tablespoons soy sauce",
				"1 tablespoon sesame oil",
				"2 tablespoons vegetable oil",
				"1 cup rice",
			},
			Instructions: []string{
				"Start the rice first so it finishes with the vegetables.",
				"Slice the bell pepper, cut the broccoli into florets and julienne the carrot.",
				"Mince the garlic and grate the ginger.",
				"Heat the vegetable oil in a wok on high heat until it shimmers.",
				"Stir-fry the broccoli and carrot for 2 minutes, then add the bell pepper.",
				"Push the vegetables aside, add garlic and ginger and cook 30 seconds.",
				"Pour in the soy sauce and sesame oil, toss everything and serve over rice.",
			},
			Minutes: 25,
			Tags:    []string{"dinner", "vegan", "quick"},
		},
		{
			ID:   "creamy-chicken-pasta",
			Name: "Creamy Chicken Pasta",
			Ingredients: []string{
				"250 grams pasta",
				"2 chicken breast",
				"1 cup heavy cream",
				"1 cup parmesan cheese",
				"3 tablespoons butter",
				"4 cloves garlic",
				"1 tablespoon olive oil",
				"salt",
				"black pepper",
			},
			Instructions: []string{
				"Bring a large pot of salted water to a boil and cook the pasta until al dente.",
				"Season the chicken with salt and black pepper.",
				"Heat the olive oil in a skillet and sear the chicken about 6 minutes per side. Set aside.",
				"Melt the butter in the same skillet and cook the minced garlic for a minute.",
				"Stir in the heavy cream and simmer until it thickens slightly.",
				"Off the heat, stir in the parmesan cheese until smooth.",
				"Slice the chicken, toss the pasta in the sauce and top with the chicken.",
			},
			Minutes: 35,
			Tags:    []string{"dinner", "pasta", "comfort"},
		},
		{
			ID:   "tomato-basil-pasta",
			Name: "Tomato Basil Pasta",
			Ingredients: []string{
				"250 grams pasta",
				"4 tomatoes",
				"3 cloves garlic",
				"2 tablespoons olive oil",
				"basil",
				"1 cup parmesan cheese",
				"salt",
			},
			Instructions: []string{
				"Cook the pasta in salted boiling water until al dente.",
				"Dice the tomatoes and mince the garlic.",
				"Warm the olive oil in a pan and soften the garlic without browning it.",
				"Add the tomatoes with a pinch of salt and simmer 10 minutes.",
				"Toss the pasta with the sauce, torn basil and parmesan cheese.",
			},
			Minutes: 25,
			Tags:    []string{"dinner", "pasta", "vegetarian"},
		},
		{
			ID:   "veggie-omelette",
			Name: "Veggie Omelette",
			Ingredients: []string{
				"3 eggs",
				"1 bell pepper",
				"1 onion",
				"1 tablespoon butter",
				"1 cup cheese",
				"salt",
				"black pepper",
			},
			Instructions: []string{
				"Beat the eggs with salt and black pepper.",
				"Dice the bell pepper and onion.",
				"Melt the butter in a nonstick pan and soften the vegetables.",
				"Pour in the eggs and cook undisturbed until the edges set.",
				"Sprinkle the cheese over one half, fold and slide onto a plate.",
			},
			Minutes: 15,
			Tags:    []string{"breakfast", "vegetarian", "quick"},
		},
		{
			ID:   "black-bean-tacos",
			Name: "Black Bean Tacos",
			Ingredients: []string{
				"2 cups black beans",
				"8 tortillas",
				"1 onion",
				"2 cloves garlic",
				"1 teaspoon cumin",
				"1 lime",
				"cilantro",
				"1 avocado",
				"salt",
			},
			Instructions: []string{
				"Dice the onion and mince the garlic.",
				"Soften the onion in a pan, then add the garlic and cumin.",
				"Stir in the black beans with a splash of water and simmer 5 minutes.",
				"Mash the avocado with lime juice and salt.",
				"Warm the tortillas and fill with beans, avocado and cilantro.",
			},
			Minutes: 20,
			Tags:    []string{"dinner", "vegan", "quick"},
		},
		{
			ID:   "chickpea-curry",
			Name: "Chickpea Curry",
			Ingredients: []string{
				"2 cups chickpeas",
				"1 onion",
				"3 cloves garlic",
				"1 tablespoon ginger",
				"2 teaspoons curry powder",
				"1 teaspoon turmeric",
				"1 cup coconut milk",
				"2 tomatoes",
				"2 tablespoons vegetable oil",
				"1 cup rice",
				"salt",
			},
			Instructions: []string{
				"Start the rice.",
				"Soften the diced onion in the vegetable oil.",
				"Add the garlic, ginger, curry powder and turmeric and cook until fragrant.",
				"Stir in the diced tomatoes and simmer until they break down.",
				"Add the chickpeas and coconut milk and simmer 10 minutes.",
				"Season with salt and serve over rice.",
			},
			Minutes: 35,
			Tags:    []string{"dinner", "vegan"},
		},
		{
			ID:   "greek-salad",
			Name: "Greek Salad",
			Ingredients: []string{
				"2 tomatoes",
				"1 cucumber",
				"1 onion",
				"1 cup feta cheese",
				"olives",
				"3 tablespoons olive oil",
				"1 tablespoon lemon juice",
				"oregano",
				"salt",
			},
			Instructions: []string{
				"Chop the tomatoes and cucumber and thinly slice the onion.",
				"Combine the vegetables with the olives in a large bowl.",
				"Whisk the olive oil with the lemon juice, oregano and salt.",
				"Pour the dressing over the salad and top with crumbled feta cheese.",
			},
			Minutes: 10,
			Tags:    []string{"salad", "vegetarian", "quick"},
		},
	}
}
