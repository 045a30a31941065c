package models

const defaultTrainerRating = 4.9

// Trainer is persisted with every declared field present: signup only
// requires full_name, email and password, and ApplyDefaults fills the rest.
type Trainer struct {
	FullName        string   `json:"full_name" bson:"full_name" validate:"required"`
	Email           string   `json:"email" bson:"email" validate:"required,email"`
	Password        string   `json:"password" bson:"password" validate:"required"`
	Specializations []string `json:"specializations" bson:"specializations"`
	Bio             *string  `json:"bio" bson:"bio"`
	Certifications  []string `json:"certifications" bson:"certifications"`
	Verified        bool     `json:"verified" bson:"verified"`
	Languages       []string `json:"languages" bson:"languages"`
	Timezone        *string  `json:"timezone" bson:"timezone"`
	Price30         *float64 `json:"price_30" bson:"price_30" validate:"omitempty,gte=0"`
	Price60         *float64 `json:"price_60" bson:"price_60" validate:"omitempty,gte=0"`
	Rating          float64  `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	ReviewsCount    int      `json:"reviews_count" bson:"reviews_count" validate:"gte=0"`
	PhotoURL        *string  `json:"photo_url" bson:"photo_url"`
	Availability    []string `json:"availability" bson:"availability"`
}

// ApplyDefaults fills the fields a signup payload may omit. Signup never
// carries a rating, so the zero value always means "unset" here.
func (t *Trainer) ApplyDefaults() {
	if t.Specializations == nil {
		t.Specializations = []string{}
	}
	if t.Certifications == nil {
		t.Certifications = []string{}
	}
	if t.Languages == nil {
		t.Languages = []string{}
	}
	if t.Availability == nil {
		t.Availability = []string{}
	}
	if t.Rating == 0 {
		t.Rating = defaultTrainerRating
	}
}
