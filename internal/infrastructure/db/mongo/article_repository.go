package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

const collectionArticles = "articles"

// ArticleRepository implements ports.ArticleRepository on MongoDB.
type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

// mongoArticle is the storage shape, decoded at the data-access boundary so
// the rest of the code works with the typed domain record.
type mongoArticle struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Slug           string             `bson:"slug"`
	Title          string             `bson:"title"`
	Excerpt        string             `bson:"excerpt,omitempty"`
	Content        string             `bson:"content,omitempty"`
	CategorySlug   string             `bson:"category_slug"`
	Author         string             `bson:"author,omitempty"`
	ReadingMinutes int                `bson:"reading_minutes,omitempty"`
	PublishedAt    time.Time          `bson:"published_at"`
}

func (m mongoArticle) toDomain() domain.Article {
	return domain.Article{
		ID:             m.ID.Hex(),
		Slug:           m.Slug,
		Title:          m.Title,
		Excerpt:        m.Excerpt,
		Content:        m.Content,
		CategorySlug:   m.CategorySlug,
		Author:         m.Author,
		ReadingMinutes: m.ReadingMinutes,
		PublishedAt:    m.PublishedAt,
	}
}

// List returns published articles, newest first. Filters from the query are
// applied before the limit.
func (r *ArticleRepository) List(ctx context.Context, q ports.ArticleQuery) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.CategorySlug != "" {
		filter["category_slug"] = q.CategorySlug
	}

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cur.Close(ctx)

	var rows []mongoArticle
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	out := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row mongoArticle
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&row); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	article := row.toDomain()
	return &article, nil
}

func (r *ArticleRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the indexes the listing queries rely on.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_slug", Value: 1}, {Key: "published_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
