package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/athly-global/athly-api/internal/store"
)

// filterFor translates a predicate tree into a bson filter document.
func filterFor(predicate store.Predicate) bson.M {
	switch p := predicate.(type) {
	case nil:
		return bson.M{}
	case store.Equals:
		return bson.M{p.Field: p.Value}
	case store.In:
		return bson.M{p.Field: bson.M{"$in": bson.A{p.Value}}}
	case store.Range:
		bounds := bson.M{}
		if p.Min != nil {
			bounds["$gte"] = *p.Min
		}
		if p.Max != nil {
			bounds["$lte"] = *p.Max
		}
		return bson.M{p.Field: bounds}
	case store.And:
		return combine("$and", p)
	case store.Or:
		return combine("$or", p)
	default:
		return bson.M{}
	}
}

func combine(operator string, predicates []store.Predicate) bson.M {
	if len(predicates) == 0 {
		return bson.M{}
	}
	if len(predicates) == 1 {
		return filterFor(predicates[0])
	}

	clauses := make(bson.A, 0, len(predicates))
	for _, predicate := range predicates {
		clauses = append(clauses, filterFor(predicate))
	}
	return bson.M{operator: clauses}
}
