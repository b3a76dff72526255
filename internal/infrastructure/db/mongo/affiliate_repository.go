package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

const collectionAffiliates = "affiliates"

// AffiliateRepository implements ports.AffiliateRepository on MongoDB.
type AffiliateRepository struct {
	col *mongo.Collection
}

func NewAffiliateRepository(db *mongo.Database) *AffiliateRepository {
	return &AffiliateRepository{col: db.Collection(collectionAffiliates)}
}

type mongoAffiliate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	URL         string             `bson:"url"`
	Category    string             `bson:"category"`
	Featured    bool               `bson:"featured"`
	Rating      float64            `bson:"rating,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// List applies the optional category and featured filters, then sorts by
// rating and truncates to the limit. Filter order never depends on which
// parameters are present.
func (r *AffiliateRepository) List(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Featured != nil {
		filter["featured"] = *q.Featured
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "rating", Value: -1},
	})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find affiliates: %w", err)
	}
	defer cur.Close(ctx)

	var rows []mongoAffiliate
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode affiliates: %w", err)
	}

	out := make([]domain.AffiliateResource, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AffiliateResource{
			ID:          row.ID.Hex(),
			Name:        row.Name,
			Description: row.Description,
			URL:         row.URL,
			Category:    row.Category,
			Featured:    row.Featured,
			Rating:      row.Rating,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

func (r *AffiliateRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}
