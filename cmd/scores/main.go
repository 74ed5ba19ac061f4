// Command scores prints today's games for a sport/league, exercising
// the full resolve -> cache -> normalize path.
//
// Usage:
//
//	scores [-config config.yaml] [-sport football] [-league nfl] [-date YYYYMMDD]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	espn "github.com/fenneh/espn-sports-api"
	"github.com/fenneh/espn-sports-api/cache"
	"github.com/fenneh/espn-sports-api/config"
	"github.com/fenneh/espn-sports-api/models"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	sport := flag.String("sport", "", "sport key (overrides config)")
	league := flag.String("league", "", "league code (overrides config)")
	date := flag.String("date", "", "date as YYYYMMDD, empty for today")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	// Optional .env for ESPN_* overrides; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *sport != "" {
		cfg.Sport = *sport
	}
	if *league != "" {
		cfg.League = *league
	}

	backend, err := buildBackend(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build cache backend")
	}

	opts := []espn.Option{espn.WithLogger(log)}
	if backend != nil {
		opts = append(opts, espn.WithCache(backend, cfg.Cache.TTL))
	}

	client, err := espn.New(cfg.Sport, cfg.League, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	var events []models.Event
	if *date != "" {
		events, err = client.Games(ctx, espn.Filters{"dates": *date})
	} else {
		var raw []byte
		raw, err = client.Today(ctx)
		if err == nil {
			events, err = models.ParseEvents(raw)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to fetch scoreboard")
	}

	if len(events) == 0 {
		fmt.Println("no games")
		return
	}
	for _, event := range events {
		fmt.Println(formatEvent(event))
	}
}

func buildBackend(cfg config.Config) (cache.Backend, error) {
	switch cfg.Cache.Backend {
	case "", "none":
		return nil, nil
	case "memory":
		return cache.NewMemoryBackend(), nil
	case "disk":
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = ".espn-cache"
		}
		return cache.NewDiskBackend(dir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis unreachable: %w", err)
		}
		return cache.NewRedisBackend(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func formatEvent(event models.Event) string {
	var home, away models.Competitor
	for _, competitor := range event.Competitors {
		switch competitor.HomeAway {
		case "home":
			home = competitor
		case "away":
			away = competitor
		}
	}
	score := ""
	if home.Score != nil && away.Score != nil {
		score = fmt.Sprintf(" %s-%s", *away.Score, *home.Score)
	}
	return fmt.Sprintf("%-12s %s%s", event.Status.Detail, event.ShortName, score)
}
