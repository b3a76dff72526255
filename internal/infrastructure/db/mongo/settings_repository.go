package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iapourpme/content-api/internal/core/domain"
)

const (
	collectionSettings = "settings"
	settingsDocID      = "site"
)

// SettingsRepository reads the singleton settings document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

type mongoSettings struct {
	ID              string            `bson:"_id"`
	SiteName        string            `bson:"site_name"`
	Tagline         string            `bson:"tagline,omitempty"`
	ContactEmail    string            `bson:"contact_email,omitempty"`
	ArticlesPerPage int               `bson:"articles_per_page,omitempty"`
	SocialLinks     map[string]string `bson:"social_links,omitempty"`
	MaintenanceMode bool              `bson:"maintenance_mode"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row mongoSettings
	if err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&row); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}

	return &domain.Settings{
		SiteName:        row.SiteName,
		Tagline:         row.Tagline,
		ContactEmail:    row.ContactEmail,
		ArticlesPerPage: row.ArticlesPerPage,
		SocialLinks:     row.SocialLinks,
		MaintenanceMode: row.MaintenanceMode,
	}, nil
}
