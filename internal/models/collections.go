package models

// Collection names, one per record kind.
const (
	CollectionClient   = "client"
	CollectionTrainer  = "trainer"
	CollectionReview   = "review"
	CollectionWaitlist = "waitlist"
	CollectionBooking  = "booking"
)
