package darkframe

// Seed content shown until the admin adds their own. IDs are left empty here;
// Load back-fills them the first time the collections are read.

func seedPictures() []Picture {
	return []Picture{
		{
			URL:         "https://images.unsplash.com/photo-1500048993953-d23a436266cf?q=80&w=1400&auto=format&fit=crop",
			Tags:        []string{"analog", "forest", "night"},
			Description: "Cold shapes in a watching wood.",
		},
		{
			URL:         "https://images.unsplash.com/photo-1453814235491-3cfac3999928?q=80&w=1400&auto=format&fit=crop",
			Tags:        []string{"urban", "neon"},
			Description: "Alley lights blink like eyes.",
		},
		{
			URL:         "https://images.unsplash.com/photo-1432256851563-20155d0b7a39?q=80&w=1400&auto=format&fit=crop",
			Tags:        []string{"mist", "road"},
			Description: "The road remembers what we forget.",
		},
	}
}

func seedPosts() []BlogPost {
	return []BlogPost{
		{
			Title: "Echoes Under Fluorescents",
			Image: "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?q=80&w=1400&auto=format&fit=crop",
			Body:  "## Corridor Studies\nThe camera coughs. *Shadows* lean. **Nerves** hum. \\u underlight \\u",
		},
		{
			Title: "Three Windows Facing North",
			Image: "https://images.unsplash.com/photo-1746116075727-f06d5e6720e4?w=1600&auto=format&fit=crop&q=80",
			Body:  "Silence becomes a frame. *Red* drips from memory.",
		},
	}
}
