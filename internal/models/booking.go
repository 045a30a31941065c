package models

// Booking is a placeholder for the future booking/payment flow. Status is
// stored as a free string (pending|confirmed|completed|canceled), not
// enforced as an enum.
type Booking struct {
	TrainerID     string  `json:"trainer_id" bson:"trainer_id" validate:"required"`
	ClientID      string  `json:"client_id" bson:"client_id" validate:"required"`
	LengthMinutes int     `json:"length_minutes" bson:"length_minutes" validate:"gte=15,lte=180"`
	PricePaid     float64 `json:"price_paid" bson:"price_paid" validate:"gte=0"`
	Status        string  `json:"status" bson:"status"`
	VideoLink     *string `json:"video_link" bson:"video_link"`
}

func (b *Booking) ApplyDefaults() {
	if b.Status == "" {
		b.Status = "pending"
	}
}
