package domain

// Settings holds the site-wide configuration editable from the dashboard.
type Settings struct {
	SiteName        string            `json:"siteName"`
	Tagline         string            `json:"tagline,omitempty"`
	ContactEmail    string            `json:"contactEmail,omitempty"`
	ArticlesPerPage int               `json:"articlesPerPage,omitempty"`
	SocialLinks     map[string]string `json:"socialLinks,omitempty"`
	MaintenanceMode bool              `json:"maintenanceMode"`
}

// DefaultSettings is served when the settings document has never been written.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "IA pour les PME",
		Tagline:         "L'intelligence artificielle au service des petites entreprises",
		ContactEmail:    "contact@iapourpme.fr",
		ArticlesPerPage: 10,
	}
}

// Stats is the aggregate block shown on the dashboard next to the settings.
type Stats struct {
	TotalArticles    int64 `json:"totalArticles"`
	TotalCategories  int64 `json:"totalCategories"`
	TotalAffiliates  int64 `json:"totalAffiliates"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalViews       int64 `json:"totalViews"`
}
