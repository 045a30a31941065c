package models

type Waitlist struct {
	Email string `json:"email" bson:"email" validate:"required,email"`
}
