package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/ai"
	"github.com/janseva/assistant/internal/assistant"
	"github.com/janseva/assistant/internal/audiocache"
	"github.com/janseva/assistant/internal/chat"
	"github.com/janseva/assistant/internal/config"
	"github.com/janseva/assistant/internal/db"
	"github.com/janseva/assistant/internal/events"
	"github.com/janseva/assistant/internal/reply"
	"github.com/janseva/assistant/internal/speech"
	"github.com/janseva/assistant/internal/speech/google"
	"github.com/janseva/assistant/internal/speech/groq"
	"github.com/janseva/assistant/internal/speech/gtts"
	"github.com/janseva/assistant/internal/store/rabbitmq"
	"github.com/janseva/assistant/internal/translit"
)

// wire builds the orchestrator dependencies selected by cfg. cleanup closes
// every client that was opened, in reverse order.
func wire(ctx context.Context, cfg *config.Config) (deps assistant.Deps, cleanup func(), err error) {
	var closers []func()
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	defer func() {
		if err != nil {
			cleanup()
		}
	}()

	reg := newRegistry(cfg)
	gen, err := reply.NewGenerator(reg, cfg.AI.Provider, cfg.AI.Model)
	if err != nil {
		return deps, cleanup, err
	}

	var engine speech.Engine
	switch strings.ToLower(cfg.Speech.Transcriber) {
	case "google":
		e, client, err := google.New(ctx)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = client.Close() })
		engine = e
	default:
		engine = groq.NewWhisper(cfg.AI.Groq.BaseURL, cfg.AI.Groq.APIKey, cfg.Speech.TranscriptionModel, cfg.Speech.TranscriptionTimeout)
	}
	stt, err := speech.NewTranscriber(engine, cfg.Speech.TempDir)
	if err != nil {
		return deps, cleanup, err
	}
	tts, err := speech.NewSynthesizer(gtts.New("", cfg.Speech.SynthesisTimeout))
	if err != nil {
		return deps, cleanup, err
	}

	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = rdb.Close() })
		if err := rdb.Ping(ctx).Err(); err != nil {
			return deps, cleanup, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
	}

	var convs chat.Store
	switch strings.ToLower(cfg.Store.Conversations) {
	case "redis":
		convs = chat.NewRedisStore(rdb, "")
	case "sql":
		gdb, err := db.Connect(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = db.Close(gdb) })
		repo := chat.NewRepo(gdb)
		if err := repo.Migrate(ctx); err != nil {
			return deps, cleanup, fmt.Errorf("migrate conversations: %w", err)
		}
		convs = repo
	default:
		convs = chat.NewMemoryStore()
	}

	var audio audiocache.Cache
	switch strings.ToLower(cfg.Store.Audio) {
	case "redis":
		audio = audiocache.NewRedisCache(rdb, "", cfg.Store.AudioTTL)
	default:
		audio = audiocache.NewMemoryCache(cfg.Store.AudioTTL)
	}

	var pub events.Publisher = events.Nop{}
	if cfg.Events.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.Events.RabbitURL, cfg.Events.Queue)
		if err != nil {
			return deps, cleanup, fmt.Errorf("rabbit publisher: %w", err)
		}
		// Service.Shutdown closes the publisher.
		pub = p
		log.Info().Str("queue", cfg.Events.Queue).Msg("turn events enabled")
	}

	return assistant.Deps{
		Generator:     gen,
		Transcriber:   stt,
		Synthesizer:   tts,
		Normalizer:    translit.NewNormalizer(nil),
		Conversations: convs,
		Audio:         audio,
		Events:        pub,
	}, cleanup, nil
}

// newRegistry builds each provider once; the factories hand out the shared
// instance unless a different model is requested.
func newRegistry(cfg *config.Config) *ai.Registry {
	opts := ai.Options{Temperature: reply.DefaultTemperature, MaxTokens: reply.DefaultMaxTokens}
	groqDefault := ai.NewGroqProvider(cfg.AI.Groq.BaseURL, cfg.AI.Groq.APIKey, cfg.AI.Model, opts, cfg.AI.Timeout)
	ollamaDefault := ai.NewOllamaProvider(cfg.AI.Ollama.BaseURL, cfg.AI.Model, opts, cfg.AI.Timeout)

	reg := ai.NewRegistry()
	reg.Register("groq", func(_ context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" || m == groqDefault.Model {
			return groqDefault, nil
		}
		return ai.NewGroqProvider(cfg.AI.Groq.BaseURL, cfg.AI.Groq.APIKey, m, opts, cfg.AI.Timeout), nil
	})
	reg.Register("ollama", func(_ context.Context, model string) (ai.Provider, error) {
		m := strings.TrimSpace(model)
		if m == "" || m == ollamaDefault.Model {
			return ollamaDefault, nil
		}
		return ai.NewOllamaProvider(cfg.AI.Ollama.BaseURL, m, opts, cfg.AI.Timeout), nil
	})
	return reg
}
