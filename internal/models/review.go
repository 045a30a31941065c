package models

// Review references a trainer by its store identifier. No endpoint writes
// or reads reviews yet; the shape is reserved for the review flow.
type Review struct {
	TrainerID  string  `json:"trainer_id" bson:"trainer_id" validate:"required"`
	ClientName string  `json:"client_name" bson:"client_name" validate:"required"`
	Rating     float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Comment    *string `json:"comment" bson:"comment"`
}
