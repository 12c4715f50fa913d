package redis

import (
	"context"
	"fmt"
	"salondash/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether the cache backing sessions and rate limits answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	// Sessions live in Redis, so a dashboard without it cannot sign anyone in.
	if err := NewPinger(client).Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis")
	}

	log.Info().Int("db", primary.DB).Str("host", primary.Host).Str("port", primary.Port).Msg("Connected to Redis")

	return client
}

type pinger struct {
	client *goRedis.Client
}

func NewPinger(client *goRedis.Client) Pinger {
	return &pinger{client: client}
}

func (p *pinger) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	return nil
}
