package lessons

// Builtin returns the lessons seeded into a fresh database.
func Builtin() []Lesson {
	return []Lesson{
		{
			ID:          "animals-1",
			Title:       "Farm Animals",
			Type:        TypePronunciation,
			Difficulty:  "easy",
			Description: "Say the names of animals you can find on a farm.",
			OrderIndex:  1,
			Active:      true,
			Content: Content{Words: []Word{
				{Word: "cat", Translation: "gato", Image: "🐱"},
				{Word: "dog", Translation: "perro", Image: "🐶"},
				{Word: "cow", Translation: "vaca", Image: "🐮"},
				{Word: "pig", Translation: "cerdo", Image: "🐷"},
				{Word: "horse", Translation: "caballo", Image: "🐴"},
			}},
		},
		{
			ID:          "colors-1",
			Title:       "Colors",
			Type:        TypePronunciation,
			Difficulty:  "easy",
			Description: "Learn to say the colors of the rainbow.",
			OrderIndex:  2,
			Active:      true,
			Content: Content{Words: []Word{
				{Word: "red", Translation: "rojo", Image: "🔴"},
				{Word: "blue", Translation: "azul", Image: "🔵"},
				{Word: "green", Translation: "verde", Image: "🟢"},
				{Word: "yellow", Translation: "amarillo", Image: "🟡"},
			}},
		},
		{
			ID:          "food-1",
			Title:       "Fruit Basket",
			Type:        TypeVocabulary,
			Difficulty:  "medium",
			Description: "Name the fruit in the basket.",
			OrderIndex:  3,
			Active:      true,
			Content: Content{Words: []Word{
				{Word: "apple", Translation: "manzana", Image: "🍎"},
				{Word: "banana", Translation: "plátano", Image: "🍌"},
				{Word: "grapes", Translation: "uvas", Image: "🍇"},
				{Word: "orange", Translation: "naranja", Image: "🍊"},
				{Word: "strawberry", Translation: "fresa", Image: "🍓"},
			}},
		},
		{
			ID:          "sky-1",
			Title:       "In the Sky",
			Type:        TypePronunciation,
			Difficulty:  "easy",
			Description: "Things we see when we look up.",
			OrderIndex:  4,
			Active:      true,
			Content: Content{Words: []Word{
				{Word: "sun", Translation: "sol", Image: "☀️"},
				{Word: "moon", Translation: "luna", Image: "🌙"},
				{Word: "star", Translation: "estrella", Image: "⭐"},
				{Word: "cloud", Translation: "nube", Image: "☁️"},
			}},
		},
	}
}
