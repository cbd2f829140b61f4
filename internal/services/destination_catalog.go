package services

// catalogEntry is a featured destination shown on the planner landing page.
type catalogEntry struct {
	Name        string
	Image       string
	Description string
	Tags        []string
}

var featuredDestinations = []catalogEntry{
	{
		Name:        "Mumbai",
		Image:       "/images/mumbai.jpg",
		Description: "Experience the bustling city life of Mumbai, the financial capital of India, with iconic landmarks and vibrant culture.",
		Tags:        []string{"city", "culture", "food", "nightlife", "shopping", "landmarks"},
	},
	{
		Name:        "Goa",
		Image:       "/images/goa.jpg",
		Description: "Relax on the golden beaches of Goa, enjoy thrilling water sports, and explore its Portuguese heritage.",
		Tags:        []string{"beaches", "water sports", "nightlife", "heritage", "relaxation", "seafood"},
	},
	{
		Name:        "Manali",
		Image:       "/images/manali.jpg",
		Description: "Escape to the snow-capped mountains of Manali, a paradise for nature lovers and adventure seekers.",
		Tags:        []string{"mountains", "snow", "adventure", "nature", "trekking", "paragliding"},
	},
	{
		Name:        "Jammu",
		Image:       "/images/jammu.jpg",
		Description: "Discover the spiritual and scenic beauty of Jammu, known for its temples, lakes, and picturesque landscapes.",
		Tags:        []string{"temples", "spiritual", "pilgrimage", "lakes", "culture", "history"},
	},
	{
		Name:        "Leh Ladakh",
		Image:       "/images/leh.jpg",
		Description: "A breathtaking land of high passes, serene monasteries, and stunning landscapes. Experience adventure, pristine lakes, and Himalayan beauty like never before.",
		Tags:        []string{"mountains", "monasteries", "adventure", "lakes", "road trips", "photography"},
	},
}
