// Package fallback holds the static content dataset served when the live
// store is unreachable or empty. The data is defined once at package init
// and never mutated, so concurrent readers need no synchronisation.
package fallback

import (
	"sort"
	"time"

	"github.com/iapourpme/content-api/internal/core/domain"
)

var categories = []domain.Category{
	{Slug: "automatisation", Name: "Automatisation", Description: "Automatiser les tâches répétitives de votre entreprise"},
	{Slug: "marketing", Name: "Marketing digital", Description: "L'IA au service de votre visibilité"},
	{Slug: "productivite", Name: "Productivité", Description: "Gagner du temps au quotidien avec l'IA"},
	{Slug: "service-client", Name: "Service client", Description: "Chatbots et assistants pour vos clients"},
	{Slug: "outils-ia", Name: "Outils IA", Description: "Panorama des outils accessibles aux PME"},
}

var articles = []domain.Article{
	{
		Slug:         "5-taches-a-automatiser-des-aujourdhui",
		Title:        "5 tâches à automatiser dès aujourd'hui dans votre PME",
		Excerpt:      "La facturation, les relances, la saisie : par où commencer.",
		CategorySlug: "automatisation",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "automatiser-sa-facturation-sans-developpeur",
		Title:        "Automatiser sa facturation sans développeur",
		Excerpt:      "Des outils no-code pour relier devis, factures et relances.",
		CategorySlug: "automatisation",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 4, 18, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "rediger-ses-posts-linkedin-avec-l-ia",
		Title:        "Rédiger ses posts LinkedIn avec l'IA",
		Excerpt:      "Garder sa voix tout en publiant trois fois plus souvent.",
		CategorySlug: "marketing",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 2, 11, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "seo-local-et-ia-le-guide-pme",
		Title:        "SEO local et IA : le guide PME",
		Excerpt:      "Être trouvé dans sa ville sans budget agence.",
		CategorySlug: "marketing",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "newsletters-qui-convertissent",
		Title:        "Des newsletters qui convertissent, écrites en 30 minutes",
		Excerpt:      "Structure, ton et objets de mail générés puis relus.",
		CategorySlug: "marketing",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "organiser-sa-semaine-avec-un-assistant-ia",
		Title:        "Organiser sa semaine avec un assistant IA",
		Excerpt:      "Agenda, comptes rendus et priorités gérés pour vous.",
		CategorySlug: "productivite",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 1, 21, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "reunions-resumees-automatiquement",
		Title:        "Vos réunions résumées automatiquement",
		Excerpt:      "Transcription et relevés de décisions sans prise de notes.",
		CategorySlug: "productivite",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 3, 27, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "mettre-en-place-un-chatbot-en-une-journee",
		Title:        "Mettre en place un chatbot en une journée",
		Excerpt:      "Répondre aux questions fréquentes même à 22h.",
		CategorySlug: "service-client",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 4, 5, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "quel-outil-ia-pour-quel-budget",
		Title:        "Quel outil IA pour quel budget ?",
		Excerpt:      "De 0 à 200 euros par mois : ce que vous obtenez vraiment.",
		CategorySlug: "outils-ia",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC),
	},
	{
		Slug:         "ia-generative-les-limites-a-connaitre",
		Title:        "IA générative : les limites à connaître avant de signer",
		Excerpt:      "Confidentialité, coûts cachés et dépendance fournisseur.",
		CategorySlug: "outils-ia",
		Author:       "Rédaction",
		PublishedAt:  time.Date(2025, 6, 24, 9, 0, 0, 0, time.UTC),
	},
}

// CategoriesWithCounts returns the static categories with article counts
// derived from the static article set. The result is a fresh slice on every
// call; callers may mutate it freely.
func CategoriesWithCounts() []domain.CategoryWithCount {
	counts := make(map[string]int, len(categories))
	for _, a := range articles {
		counts[a.CategorySlug]++
	}

	out := make([]domain.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.CategoryWithCount{Category: c, ArticleCount: counts[c.Slug]})
	}
	return out
}

// Articles returns the static articles, optionally filtered by category slug
// and truncated to limit (0 means no limit). Most recent first.
func Articles(categorySlug string, limit int) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if categorySlug != "" && a.CategorySlug != categorySlug {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ArticleBySlug returns the static article with the given slug, or nil.
func ArticleBySlug(slug string) *domain.Article {
	for _, a := range articles {
		if a.Slug == slug {
			found := a
			return &found
		}
	}
	return nil
}
