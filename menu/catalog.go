package menu

// Catalog returns the detailed menu used as grounding context for the
// chain-of-thought assistant. The text is deliberately long: together with
// the system prompt it clears the minimum prompt size providers require
// before caching kicks in.
func Catalog() string {
	return `
Menu: Kids Menu
Food Item: Mini Cheeseburger
Price: $6.99
Vegan: N
Popularity: 4/5
Included: Mini beef patty, cheese, lettuce, tomato, and fries.
Description: A perfectly sized burger for young diners, made with high-quality beef and fresh toppings.
Allergens: Contains dairy, gluten
Preparation: Grilled to medium-well for food safety

Menu: Kids Menu
Food Item: Chicken Nuggets
Price: $5.99
Vegan: N
Popularity: 5/5
Included: Six chicken nuggets, fries, and choice of dipping sauce
Description: White meat chicken nuggets, lightly breaded and fried to a golden crisp
Allergens: Contains gluten
Preparation: Fried in dedicated oil to avoid cross-contamination

Menu: Kids Menu
Food Item: Mac & Cheese Bowl
Price: $4.99
Vegan: N
Popularity: 4/5
Included: Creamy macaroni and cheese with breadcrumb topping
Description: House-made cheese sauce with elbow macaroni, perfect for picky eaters
Allergens: Contains dairy, gluten
Preparation: Baked fresh with a three-cheese blend

Menu: Appetizers
Food Item: Loaded Potato Skins
Price: $8.99
Vegan: N
Popularity: 3/5
Included: Crispy potato skins filled with cheese, bacon bits, and served with sour cream.
Description: Double-baked potato skins with melted cheddar and crispy bacon pieces.
Allergens: Contains dairy
Preparation: Baked until golden brown

Menu: Appetizers
Food Item: Spinach Artichoke Dip
Price: $9.99
Vegan: N
Popularity: 4/5
Included: Creamy spinach and artichoke dip with tortilla chips
Description: Blend of cheeses, fresh spinach, and marinated artichoke hearts
Allergens: Contains dairy
Preparation: Baked to order and served bubbling hot

Menu: Appetizers
Food Item: Calamari
Price: $12.99
Vegan: N
Popularity: 3/5
Included: Lightly breaded calamari rings with marinara and lemon aioli
Description: Tender squid rings in a seasoned coating, flash-fried for perfect texture
Allergens: Contains shellfish, gluten
Preparation: Prepared to order to ensure freshness

Menu: Main Course
Food Item: Grilled Salmon Fillet
Price: $24.99
Vegan: N
Popularity: 5/5
Included: Fresh Atlantic salmon, seasonal vegetables, lemon herb sauce
Description: Premium salmon fillet grilled to perfection with a crispy skin and tender center
Allergens: Fish
Preparation: Grilled with herbs and finished with house-made sauce

Menu: Main Course
Food Item: New York Strip Steak
Price: $29.99
Vegan: N
Popularity: 5/5
Included: 12oz USDA Choice steak, garlic mashed potatoes, grilled asparagus
Description: Hand-cut steak with perfect marbling, aged for tenderness and flavor
Allergens: None
Preparation: Grilled to your preferred temperature with house seasoning

Menu: Main Course
Food Item: Chicken Parmesan
Price: $18.99
Vegan: N
Popularity: 4/5
Included: Breaded chicken breast, marinara, mozzarella, spaghetti
Description: Hand-breaded chicken topped with house marinara and melted cheese
Allergens: Contains dairy, gluten
Preparation: Baked until cheese is golden and bubbly

Menu: Vegetarian
Food Item: Mushroom Risotto
Price: $18.99
Vegan: N
Popularity: 4/5
Included: Arborio rice, wild mushrooms, parmesan, truffle oil
Description: Creamy Italian risotto with a medley of seasonal mushrooms and aged parmesan
Allergens: Contains dairy
Preparation: Slow-cooked to achieve perfect consistency

Menu: Vegetarian
Food Item: Eggplant Parmesan
Price: $16.99
Vegan: N
Popularity: 3/5
Included: Breaded eggplant, marinara sauce, mozzarella, side salad
Description: Thinly sliced eggplant layered with sauce and cheese, baked to perfection
Allergens: Contains dairy, gluten
Preparation: Eggplant is salted to remove bitterness before cooking

Menu: Vegetarian
Food Item: Stuffed Bell Peppers
Price: $15.99
Vegan: N
Popularity: 3/5
Included: Bell peppers stuffed with rice, beans, corn, cheese
Description: Colorful bell peppers filled with a flavorful mixture of grains and vegetables
Allergens: Contains dairy
Preparation: Roasted to enhance natural sweetness of peppers

Menu: Desserts
Food Item: Tiramisu
Price: $8.99
Vegan: N
Popularity: 5/5
Included: Ladyfingers, mascarpone cream, coffee, cocoa powder
Description: Classic Italian dessert with layers of coffee-soaked cookies and creamy filling
Allergens: Contains dairy, eggs
Preparation: House-made daily and chilled for optimal texture

Menu: Desserts
Food Item: Chocolate Lava Cake
Price: $7.99
Vegan: N
Popularity: 5/5
Included: Warm chocolate cake with molten center, vanilla ice cream
Description: Rich chocolate cake with a decadent flowing center, served warm
Allergens: Contains dairy, eggs, gluten
Preparation: Baked to order, requires 15 minutes preparation time

Menu: Desserts
Food Item: New York Cheesecake
Price: $8.99
Vegan: N
Popularity: 4/5
Included: Classic cheesecake with graham cracker crust, berry compote
Description: Dense, rich cheesecake with a buttery crust and seasonal fruit topping
Allergens: Contains dairy, gluten
Preparation: Baked slowly in a water bath for perfect texture

Menu: Vegan Special
Food Item: Buddha Bowl
Price: $16.99
Vegan: Y
Popularity: 4/5
Included: Quinoa, roasted vegetables, chickpeas, tahini dressing
Description: Nutrient-rich bowl featuring seasonal vegetables and protein-packed legumes
Allergens: Contains sesame
Preparation: Components prepared fresh daily

Menu: Vegan Special
Food Item: Impossible Burger
Price: $15.99
Vegan: Y
Popularity: 4/5
Included: Plant-based patty, lettuce, tomato, vegan cheese, sweet potato fries
Description: Revolutionary plant-based burger that looks and tastes like beef
Allergens: Contains soy
Preparation: Grilled on dedicated surface to avoid cross-contamination

Menu: Vegan Special
Food Item: Coconut Curry Vegetables
Price: $14.99
Vegan: Y
Popularity: 3/5
Included: Mixed vegetables in coconut curry sauce, jasmine rice
Description: Aromatic curry with seasonal vegetables in a rich coconut milk base
Allergens: Contains tree nuts
Preparation: Made to order with adjustable spice levels

Menu: Breakfast
Food Item: Eggs Benedict
Price: $14.99
Vegan: N
Popularity: 5/5
Included: English muffin, poached eggs, Canadian bacon, hollandaise sauce
Description: Classic breakfast dish with perfectly poached eggs and creamy sauce
Allergens: Contains dairy, eggs, gluten
Preparation: Made to order with house-made hollandaise

Menu: Breakfast
Food Item: Belgian Waffle
Price: $10.99
Vegan: N
Popularity: 4/5
Included: Large Belgian waffle, maple syrup, whipped butter, berries
Description: Light and crispy waffle with deep pockets for holding syrup
Allergens: Contains dairy, eggs, gluten
Preparation: Made fresh on traditional Belgian waffle irons

Menu: Breakfast
Food Item: Avocado Toast
Price: $12.99
Vegan: Y
Popularity: 4/5
Included: Artisan bread, smashed avocado, microgreens, cherry tomatoes
Description: Simple yet elegant breakfast featuring ripe avocados and quality ingredients
Allergens: Contains gluten
Preparation: Avocados smashed to order for maximum freshness

Menu: Lunch Special
Food Item: Asian Chicken Salad
Price: $15.99
Vegan: N
Popularity: 4/5
Included: Grilled chicken, mixed greens, mandarin oranges, crispy wontons
Description: Fresh and light salad with Asian-inspired flavors and textures
Allergens: Contains gluten, soy
Preparation: Chicken marinated for 24 hours before grilling

Menu: Pizza
Food Item: Margherita Pizza
Price: $16.99
Vegan: N
Popularity: 5/5
Included: San Marzano tomatoes, fresh mozzarella, basil, olive oil
Description: Traditional Neapolitan pizza baked in our wood-fired oven
Allergens: Contains dairy, gluten
Preparation: Cooked at 900°F for perfect crust

Menu: Seafood
Food Item: Seafood Paella
Price: $28.99
Vegan: N
Popularity: 4/5
Included: Saffron rice, shrimp, mussels, calamari, chorizo
Description: Spanish rice dish loaded with fresh seafood and authentic spices
Allergens: Shellfish, fish
Preparation: Traditional preparation in paella pan

Menu: Gluten-Free
Food Item: Quinoa Power Bowl
Price: $17.99
Vegan: Y
Popularity: 4/5
Included: Quinoa, roasted sweet potato, black beans, avocado
Description: Protein-rich bowl perfect for health-conscious diners
Allergens: None
Preparation: Components prepared separately to prevent cross-contamination

Menu: Signature Dish
Food Item: Braised Short Ribs
Price: $26.99
Vegan: N
Popularity: 5/5
Included: Beef short ribs, mashed potatoes, roasted vegetables, red wine sauce
Description: Tender beef slow-cooked for 12 hours in rich wine sauce
Allergens: Contains dairy
Preparation: Braised overnight for maximum tenderness
`
}
