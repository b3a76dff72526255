package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iapourpme/content-api/internal/core/domain"
)

const collectionCategories = "categories"

// CategoryRepository implements ports.CategoryRepository on MongoDB.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{col: db.Collection(collectionCategories)}
}

type mongoCategoryWithCount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Slug         string             `bson:"slug"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	ArticleCount int                `bson:"article_count"`
}

// ListWithCounts joins each category with its articles, keeps only the count
// and drops the joined documents before returning.
func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionArticles,
			"localField":   "slug",
			"foreignField": "category_slug",
			"as":           "articles",
		}}},
		{{Key: "$addFields", Value: bson.M{"article_count": bson.M{"$size": "$articles"}}}},
		{{Key: "$project", Value: bson.M{"articles": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}
	defer cur.Close(ctx)

	var rows []mongoCategoryWithCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	out := make([]domain.CategoryWithCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CategoryWithCount{
			Category: domain.Category{
				ID:          row.ID.Hex(),
				Slug:        row.Slug,
				Name:        row.Name,
				Description: row.Description,
			},
			ArticleCount: row.ArticleCount,
		})
	}
	return out, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}
