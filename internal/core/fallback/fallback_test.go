package fallback

import "testing"

func TestCategoriesWithCounts(t *testing.T) {
	cats := CategoriesWithCounts()
	if len(cats) == 0 {
		t.Fatalf("fallback category set is empty")
	}

	var total int
	for _, c := range cats {
		if c.Slug == "" || c.Name == "" {
			t.Fatalf("incomplete category: %+v", c)
		}
		total += c.ArticleCount
	}
	if total != len(Articles("", 0)) {
		t.Fatalf("counts sum to %d, dataset has %d articles", total, len(Articles("", 0)))
	}
}

func TestCategoriesWithCounts_FreshSlice(t *testing.T) {
	first := CategoriesWithCounts()
	first[0].ArticleCount = 999
	first[0].Name = "mutated"

	second := CategoriesWithCounts()
	if second[0].ArticleCount == 999 || second[0].Name == "mutated" {
		t.Fatalf("caller mutation leaked into the shared dataset")
	}
}

func TestArticles_FilterAndLimit(t *testing.T) {
	all := Articles("", 0)
	if len(all) == 0 {
		t.Fatalf("fallback article set is empty")
	}
	for i := 1; i < len(all); i++ {
		if all[i].PublishedAt.After(all[i-1].PublishedAt) {
			t.Fatalf("articles not ordered most recent first at index %d", i)
		}
	}

	marketing := Articles("marketing", 0)
	for _, a := range marketing {
		if a.CategorySlug != "marketing" {
			t.Fatalf("category filter leaked %q", a.CategorySlug)
		}
	}

	if got := Articles("", 3); len(got) != 3 {
		t.Fatalf("limit 3 returned %d articles", len(got))
	}
	if got := Articles("inexistante", 10); len(got) != 0 {
		t.Fatalf("unknown category returned %d articles", len(got))
	}
}

func TestArticleBySlug(t *testing.T) {
	art := ArticleBySlug("quel-outil-ia-pour-quel-budget")
	if art == nil {
		t.Fatalf("known slug not found")
	}

	// The returned value is a copy; mutating it must not alter the dataset.
	art.Title = "mutated"
	if again := ArticleBySlug("quel-outil-ia-pour-quel-budget"); again.Title == "mutated" {
		t.Fatalf("caller mutation leaked into the shared dataset")
	}

	if ArticleBySlug("inconnu") != nil {
		t.Fatalf("unknown slug must return nil")
	}
}
