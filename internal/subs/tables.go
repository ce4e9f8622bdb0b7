package subs

import "github.com/hammamikhairi/foodrescuer/internal/domain"

// seedSubstitutions returns the built-in substitution table. Entries are
// ranked best-first; Confidence breaks ties against fuzzier matches.
func seedSubstitutions() map[string][]domain.SubstitutionEntry {
	e := func(sub string, ratio, conf float64, notes string) domain.SubstitutionEntry {
		return domain.SubstitutionEntry{Substitute: sub, Ratio: ratio, Confidence: conf, Notes: notes}
	}
	return map[string][]domain.SubstitutionEntry{
		"butter": {
			e("olive oil", 0.75, 0.9, "Works well in savory dishes"),
			e("coconut oil", 1.0, 0.8, "Good for baking"),
			e("margarine", 1.0, 0.7, ""),
			e("vegetable oil", 0.75, 0.6, ""),
		},
		"milk": {
			e("almond milk", 1.0, 0.9, "Slightly nutty flavor"),
			e("soy milk", 1.0, 0.85, ""),
			e("oat milk", 1.0, 0.8, "Creamier texture"),
			e("yogurt", 0.75, 0.5, "Thin with water"),
		},
		"heavy cream": {
			e("coconut cream", 1.0, 0.85, "Adds coconut flavor"),
			e("evaporated milk", 1.0, 0.8, ""),
			e("milk", 1.0, 0.5, "Add a tablespoon of butter per cup"),
		},
		"sour cream": {
			e("yogurt", 1.0, 0.9, "Greek yogurt works best"),
			e("creme fraiche", 1.0, 0.8, ""),
		},
		"yogurt": {
			e("sour cream", 1.0, 0.9, ""),
			e("buttermilk", 0.75, 0.6, "Thinner consistency"),
		},
		"cream cheese": {
			e("ricotta", 1.0, 0.8, "Blend until smooth"),
			e("mascarpone", 1.0, 0.75, "Richer flavor"),
		},
		"eggs": {
			e("flax eggs", 1.0, 0.8, "Mix 1 tbsp ground flaxseed with 3 tbsp water per egg"),
			e("applesauce", 0.25, 0.6, "Use 1/4 cup per egg, for baking"),
			e("mashed banana", 0.25, 0.5, "Adds banana flavor"),
		},
		"sugar": {
			e("honey", 0.75, 0.85, "Reduce other liquids slightly"),
			e("maple syrup", 0.75, 0.8, "Adds maple flavor"),
			e("brown sugar", 1.0, 0.75, ""),
		},
		"brown sugar": {
			e("sugar", 1.0, 0.8, "Add a teaspoon of molasses per cup if you have it"),
			e("coconut sugar", 1.0, 0.7, ""),
		},
		"honey": {
			e("maple syrup", 1.0, 0.9, ""),
			e("sugar", 1.25, 0.7, "Add a little extra liquid"),
		},
		"flour": {
			e("gluten-free flour blend", 1.0, 0.85, "Best one-to-one swap"),
			e("almond flour", 1.0, 0.6, "Denser result, best for cookies"),
			e("oat flour", 1.0, 0.6, "Blend rolled oats finely"),
		},
		"cornstarch": {
			e("flour", 2.0, 0.8, "Use twice as much"),
			e("arrowroot powder", 1.0, 0.75, ""),
		},
		"baking powder": {
			e("baking soda", 0.25, 0.7, "Add 1/2 tsp of an acid like lemon juice"),
		},
		"vinegar": {
			e("lemon juice", 1.0, 0.9, ""),
			e("lime juice", 1.0, 0.8, ""),
		},
		"lemon juice": {
			e("vinegar", 0.5, 0.8, "White wine vinegar works best"),
			e("lime juice", 1.0, 0.9, ""),
		},
		"fresh herbs": {
			e("dried herbs", 0.33, 0.85, "Use a third of the amount"),
		},
		"onion": {
			e("shallots", 1.0, 0.9, "Milder flavor"),
			e("leeks", 1.0, 0.7, "White parts only"),
			e("onion powder", 0.1, 0.5, "1 tbsp per medium onion"),
		},
		"garlic": {
			e("garlic powder", 0.125, 0.8, "1/8 tsp per clove"),
			e("shallots", 1.0, 0.5, "Different but workable flavor"),
		},
		"tomatoes": {
			e("canned tomatoes", 1.0, 0.9, ""),
			e("tomato paste", 0.25, 0.6, "Dilute with water"),
		},
		"chicken broth": {
			e("vegetable broth", 1.0, 0.9, ""),
			e("water", 1.0, 0.4, "Add extra seasoning"),
		},
		"beef broth": {
			e("vegetable broth", 1.0, 0.8, "Add a splash of soy sauce for depth"),
			e("chicken broth", 1.0, 0.7, ""),
		},
		"vegetable broth": {
			e("chicken broth", 1.0, 0.8, ""),
			e("water", 1.0, 0.4, "Add extra seasoning"),
		},
		"white wine": {
			e("chicken broth", 1.0, 0.7, "Add a splash of vinegar"),
			e("apple juice", 1.0, 0.5, "Sweeter result"),
		},
		"red wine": {
			e("beef broth", 1.0, 0.7, "Add a splash of vinegar"),
			e("grape juice", 1.0, 0.5, "Sweeter result"),
		},
		"soy sauce": {
			e("tamari", 1.0, 0.9, "Gluten-free"),
			e("coconut aminos", 1.0, 0.7, "Sweeter and less salty"),
		},
		"parmesan cheese": {
			e("pecorino", 1.0, 0.9, "Sharper and saltier"),
			e("nutritional yeast", 0.5, 0.6, "Dairy-free option"),
		},
	}
}

// seedCategories groups known ingredients for the same-category fallback in
// the adapter.
func seedCategories() map[string][]string {
	return map[string][]string{
		"fats":       {"butter", "olive oil", "coconut oil", "vegetable oil", "margarine", "sesame oil"},
		"dairy":      {"milk", "heavy cream", "sour cream", "yogurt", "cream cheese", "cheese", "parmesan cheese", "feta cheese", "buttermilk"},
		"proteins":   {"chicken breast", "beef", "pork", "tofu", "eggs", "chickpeas", "black beans", "lentils"},
		"sweeteners": {"sugar", "brown sugar", "honey", "maple syrup", "coconut sugar"},
		"flours":     {"flour", "almond flour", "oat flour", "gluten-free flour blend"},
		"starches":   {"cornstarch", "arrowroot powder", "potato starch"},
		"leavening":  {"baking powder", "baking soda", "yeast"},
		"acids":      {"vinegar", "lemon juice", "lime juice"},
		"spices":     {"cumin", "curry powder", "turmeric", "black pepper", "paprika"},
		"herbs":      {"basil", "cilantro", "oregano", "parsley", "fresh herbs", "dried herbs"},
		"vegetables": {"onion", "garlic", "tomatoes", "bell pepper", "broccoli", "carrot", "cucumber"},
		"fruits":     {"lime", "lemon", "apple", "banana", "avocado"},
		"nuts":       {"almonds", "cashews", "peanut butter", "almond milk"},
		"seeds":      {"sesame seeds", "sunflower seeds", "flaxseed"},
		"alcohols":   {"white wine", "red wine"},
		"broths":     {"chicken broth", "beef broth", "vegetable broth"},
	}
}
