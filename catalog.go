package colorwish

import "time"

// CatalogService serves the sample content shown on the dashboard and in the
// demo gallery. The backend exposes no catalog endpoints yet, so this is
// static display data, not modeled state; the service shape leaves room to
// move it behind the API later.
type CatalogService struct {
	client *Client
}

// SamplePages returns the coloring pages featured on the dashboard.
func (s *CatalogService) SamplePages() []ColoringPage {
	return []ColoringPage{
		{
			ID:          1,
			Title:       "Cute Animals",
			Description: "Color your favorite animals",
			Image:       "https://via.placeholder.com/300x200?text=Cute+Animals",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          2,
			Title:       "Fantasy World",
			Description: "Magical creatures and enchanted forests",
			Image:       "https://via.placeholder.com/300x200?text=Fantasy+World",
			Difficulty:  DifficultyMedium,
		},
		{
			ID:          3,
			Title:       "Space Adventure",
			Description: "Rockets, planets, and aliens",
			Image:       "https://via.placeholder.com/300x200?text=Space+Adventure",
			Difficulty:  DifficultyHard,
		},
	}
}

// DemoCreations returns the demo gallery shown before a user has saved any
// creations of their own.
func (s *CatalogService) DemoCreations() []Creation {
	return []Creation{
		{
			ID:          1,
			Title:       "Forest Adventure",
			Description: "A beautiful forest scene with animals",
			URL:         "https://source.unsplash.com/random/300x400?forest,cartoon",
			CreatedAt:   time.Date(2023, time.August, 28, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Ocean Friends",
			Description: "Underwater world with colorful fish",
			URL:         "https://source.unsplash.com/random/300x400?ocean,cartoon",
			CreatedAt:   time.Date(2023, time.August, 27, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Title:       "Space Explorer",
			Description: "Journey through the stars and planets",
			URL:         "https://source.unsplash.com/random/300x400?space,cartoon",
			CreatedAt:   time.Date(2023, time.August, 26, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Title:       "Dinosaur Land",
			Description: "Prehistoric world with friendly dinosaurs",
			URL:         "https://source.unsplash.com/random/300x400?dinosaur,cartoon",
			CreatedAt:   time.Date(2023, time.August, 25, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          5,
			Title:       "Fairy Tale Castle",
			Description: "Magical castle in the clouds",
			URL:         "https://source.unsplash.com/random/300x400?castle,cartoon",
			CreatedAt:   time.Date(2023, time.August, 24, 11, 10, 0, 0, time.UTC),
		},
		{
			ID:          6,
			Title:       "Jungle Safari",
			Description: "Wild animals in their natural habitat",
			URL:         "https://source.unsplash.com/random/300x400?jungle,cartoon",
			CreatedAt:   time.Date(2023, time.August, 23, 16, 30, 0, 0, time.UTC),
		},
	}
}
