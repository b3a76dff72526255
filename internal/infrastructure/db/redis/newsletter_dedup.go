package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewsletterDedup answers repeat-signup checks from Redis before the primary
// store is touched. Keys never expire: a subscription is permanent until an
// out-of-band unsubscribe clears it.
// Key format: newsletter:<lowercased email>
type NewsletterDedup struct {
	client *redis.Client
}

func NewNewsletterDedup(client *redis.Client) *NewsletterDedup {
	return &NewsletterDedup{client: client}
}

func (d *NewsletterDedup) IsSubscribed(ctx context.Context, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("newsletter dedup check: %w", err)
	}
	return n > 0, nil
}

func (d *NewsletterDedup) Mark(ctx context.Context, email string) error {
	return d.client.Set(ctx, d.key(email), "1", 0).Err()
}

func (d *NewsletterDedup) key(email string) string {
	return "newsletter:" + strings.ToLower(email)
}
