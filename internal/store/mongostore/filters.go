// internal/store/mongostore/filters.go
package mongostore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

var (
	newestFirst = bson.D{{Key: "created_at", Value: -1}}
	oldestFirst = bson.D{{Key: "created_at", Value: 1}}
)

func containsFold(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}

// idValues lists the forms a key may be stored under. Documents imported
// from the legacy catalog carry native ObjectIDs; new ones use hex strings.
func idValues(id string) bson.A {
	if oid, err := bson.ObjectIDFromHex(id); err == nil {
		return bson.A{id, oid}
	}
	return bson.A{id}
}

func idFilter(id string) bson.M {
	return bson.M{"_id": bson.M{"$in": idValues(id)}}
}

func idsFilter(ids []string) bson.M {
	values := bson.A{}
	for _, id := range ids {
		values = append(values, idValues(id)...)
	}
	return bson.M{"_id": bson.M{"$in": values}}
}

// missingSlugFilter matches documents whose slug is absent, null or empty.
func missingSlugFilter() bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"slug": bson.M{"$exists": false}},
		bson.M{"slug": nil},
		bson.M{"slug": ""},
	}}
}

func hasSlugFilter() bson.M {
	return bson.M{"slug": bson.M{"$gt": ""}}
}

func slugTakenFilter(slug, excludeID string) bson.M {
	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["_id"] = bson.M{"$nin": idValues(excludeID)}
	}
	return filter
}

func activeRedirectFilter(t models.EntityType, fromSlug string) bson.M {
	return bson.M{"entity_type": t, "from_slug": fromSlug, "is_active": true}
}

// retargetFilter skips the redirect that would turn into a self-loop.
func retargetFilter(t models.EntityType, oldTo, newTo string) bson.M {
	return bson.M{"entity_type": t, "to_slug": oldTo, "from_slug": bson.M{"$ne": newTo}}
}

func redirectFilter(f store.RedirectFilter) bson.M {
	filter := bson.M{}
	if f.EntityType != "" {
		filter["entity_type"] = f.EntityType
	}
	if f.Active != nil {
		filter["is_active"] = *f.Active
	}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"from_slug": containsFold(f.Search)},
			bson.M{"to_slug": containsFold(f.Search)},
		}
	}
	return filter
}

func productFilter(f store.ProductFilter) bson.M {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	if f.CategoryID != "" {
		filter["category_id"] = f.CategoryID
	}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": containsFold(f.Search)},
			bson.M{"sku": containsFold(f.Search)},
			bson.M{"description": containsFold(f.Search)},
		}
	}
	return filter
}

func categoryFilter(f store.CategoryFilter) bson.M {
	filter := bson.M{}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	if f.ParentID != "" {
		filter["parent_id"] = f.ParentID
	}
	if f.Search != "" {
		filter["name"] = containsFold(f.Search)
	}
	return filter
}

func inquiryFilter(f store.InquiryFilter) bson.M {
	filter := bson.M{}
	if f.Kind != "" {
		filter["kind"] = f.Kind
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func sampleOrderFilter(f store.SampleOrderFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	return filter
}
