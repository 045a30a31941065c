package services

import (
	"context"

	"github.com/athly-global/athly-api/internal/models"
	"github.com/athly-global/athly-api/internal/seed"
	"github.com/athly-global/athly-api/internal/store"
)

const (
	searchLimit       = 20
	featuredLimit     = 5
	featuredMinRating = 4.8
)

// DefaultMinRating is the rating floor applied when a search omits
// min_rating. Callers must send an explicit 0 to disable it.
const DefaultMinRating = 4.5

// TrainerFinder is the read surface the search service needs.
type TrainerFinder interface {
	Find(ctx context.Context, collection string, filter store.Predicate, limit int64) ([]store.Document, error)
}

// SearchFilters carries the caller-supplied trainer search criteria.
type SearchFilters struct {
	Specialization string   `json:"specialization" validate:"required"`
	PriceMin       *float64 `json:"price_min" validate:"omitempty,gte=0"`
	PriceMax       *float64 `json:"price_max" validate:"omitempty,gte=0"`
	Timezone       *string  `json:"timezone"`
	Language       *string  `json:"language"`
	MinRating      *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
}

type TrainerSearchService struct {
	trainers TrainerFinder
}

func NewTrainerSearchService(trainers TrainerFinder) *TrainerSearchService {
	return &TrainerSearchService{trainers: trainers}
}

// BuildSearchQuery translates search criteria into a store predicate. All
// present criteria combine with AND; the price bounds apply to price_60 OR
// price_30, so a trainer qualifies on either session length.
func BuildSearchQuery(filters SearchFilters) store.Predicate {
	query := store.And{
		store.In{Field: "specializations", Value: filters.Specialization},
	}

	if filters.PriceMin != nil || filters.PriceMax != nil {
		query = append(query, store.Or{
			store.Range{Field: "price_60", Min: filters.PriceMin, Max: filters.PriceMax},
			store.Range{Field: "price_30", Min: filters.PriceMin, Max: filters.PriceMax},
		})
	}
	if filters.Timezone != nil && *filters.Timezone != "" {
		query = append(query, store.Equals{Field: "timezone", Value: *filters.Timezone})
	}
	if filters.Language != nil && *filters.Language != "" {
		query = append(query, store.In{Field: "languages", Value: *filters.Language})
	}
	if minRating := resolveMinRating(filters.MinRating); minRating > 0 {
		query = append(query, store.Range{Field: "rating", Min: &minRating})
	}

	return query
}

func resolveMinRating(minRating *float64) float64 {
	if minRating == nil {
		return DefaultMinRating
	}
	return *minRating
}

// Search runs the filtered trainer query. An empty result set falls back
// to the seed list; store failures propagate to the caller.
func (s *TrainerSearchService) Search(ctx context.Context, filters SearchFilters) ([]store.Document, error) {
	results, err := s.trainers.Find(ctx, models.CollectionTrainer, BuildSearchQuery(filters), searchLimit)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return seed.FeaturedTrainers(), nil
	}
	return results, nil
}

// Featured returns the highest-rated trainers. This read is best-effort:
// a store failure degrades to the seed list instead of propagating.
func (s *TrainerSearchService) Featured(ctx context.Context) []store.Document {
	minRating := float64(featuredMinRating)
	filter := store.And{store.Range{Field: "rating", Min: &minRating}}

	results, err := s.trainers.Find(ctx, models.CollectionTrainer, filter, featuredLimit)
	if err != nil || len(results) == 0 {
		return seed.FeaturedTrainers()
	}
	return results
}
