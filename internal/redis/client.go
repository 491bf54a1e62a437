package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jewelry_shop/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

const (
	KeyFeaturedProducts = "catalog:featured"
	KeyNewArrivals      = "catalog:new_arrivals"

	chatLanguagePrefix = "bot:lang:"
)

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetProducts returns the cached product list for key, or nil on a miss.
func (c *Client) GetProducts(ctx context.Context, key string) ([]models.Product, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SetProducts(ctx context.Context, key string, products []models.Product, ttl time.Duration) error {
	// A nil slice would marshal as "null" and read back as a miss, so empty
	// results are stored as an empty array and get the TTL too.
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// InvalidateCatalog drops the cached hot lists after a catalog write.
func (c *Client) InvalidateCatalog(ctx context.Context) error {
	return c.rdb.Del(ctx, KeyFeaturedProducts, KeyNewArrivals).Err()
}

func (c *Client) SetChatLanguage(ctx context.Context, chatID int64, language string) error {
	return c.rdb.Set(ctx, fmt.Sprintf("%s%d", chatLanguagePrefix, chatID), language, 0).Err()
}

func (c *Client) GetChatLanguage(ctx context.Context, chatID int64) (string, error) {
	lang, err := c.rdb.Get(ctx, fmt.Sprintf("%s%d", chatLanguagePrefix, chatID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return lang, err
}
