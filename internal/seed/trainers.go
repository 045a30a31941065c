package seed

import "github.com/athly-global/athly-api/internal/store"

// FeaturedTrainers returns the demo trainer list served whenever a live
// query yields nothing, so the product never shows an empty state. Seed
// entries carry no store identifier. Each call builds fresh documents so
// the list can never be mutated between requests.
func FeaturedTrainers() []store.Document {
	return []store.Document{
		{
			"full_name":       "Ava Kim",
			"email":           "ava.kim@example.com",
			"password":        "hashed",
			"specializations": []string{"HIIT", "Strength"},
			"bio":             "Former national sprinter turned elite HIIT coach.",
			"certifications":  []string{"NASM-CPT"},
			"verified":        true,
			"languages":       []string{"English", "Korean"},
			"timezone":        "Asia/Seoul",
			"price_30":        35.0,
			"price_60":        60.0,
			"rating":          4.9,
			"reviews_count":   128,
			"photo_url":       "https://images.unsplash.com/photo-1554151228-14d9def656e4",
		},
		{
			"full_name":       "Luca Moretti",
			"email":           "luca.moretti@example.com",
			"password":        "hashed",
			"specializations": []string{"Strength", "Hypertrophy"},
			"bio":             "Evidence-based strength programming for busy pros.",
			"certifications":  []string{"ACE-CPT"},
			"verified":        true,
			"languages":       []string{"English", "Italian"},
			"timezone":        "Europe/Rome",
			"price_30":        30.0,
			"price_60":        55.0,
			"rating":          4.9,
			"reviews_count":   204,
			"photo_url":       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c",
		},
		{
			"full_name":       "Priya Desai",
			"email":           "priya.desai@example.com",
			"password":        "hashed",
			"specializations": []string{"Yoga", "Mobility"},
			"bio":             "200-hr RYT with a focus on mindful mobility.",
			"certifications":  []string{"RYT-200"},
			"verified":        true,
			"languages":       []string{"English", "Hindi"},
			"timezone":        "Asia/Kolkata",
			"price_30":        25.0,
			"price_60":        45.0,
			"rating":          5.0,
			"reviews_count":   312,
			"photo_url":       "https://images.unsplash.com/photo-1544717305-2782549b5136",
		},
		{
			"full_name":       "Diego Ramirez",
			"email":           "diego.ramirez@example.com",
			"password":        "hashed",
			"specializations": []string{"Functional", "Conditioning"},
			"bio":             "High performance conditioning for athletes.",
			"certifications":  []string{"NSCA-CSCS"},
			"verified":        true,
			"languages":       []string{"English", "Spanish"},
			"timezone":        "America/Mexico_City",
			"price_30":        28.0,
			"price_60":        50.0,
			"rating":          4.8,
			"reviews_count":   167,
			"photo_url":       "https://images.unsplash.com/photo-1556157382-97eda2d62296",
		},
		{
			"full_name":       "Sofia Petrova",
			"email":           "sofia.petrova@example.com",
			"password":        "hashed",
			"specializations": []string{"Pilates", "Core"},
			"bio":             "Pilates-focused core strength and posture.",
			"certifications":  []string{"STOTT"},
			"verified":        true,
			"languages":       []string{"English", "Russian"},
			"timezone":        "Europe/Sofia",
			"price_30":        27.0,
			"price_60":        48.0,
			"rating":          4.9,
			"reviews_count":   190,
			"photo_url":       "https://images.unsplash.com/photo-1552374196-c4e7ffc6e126",
		},
	}
}
