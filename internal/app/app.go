package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/adapter/idgen"
	"github.com/iho/pocketbuddy/internal/adapter/repository/memory"
	sqliteRepo "github.com/iho/pocketbuddy/internal/adapter/repository/sqlite"
	"github.com/iho/pocketbuddy/internal/infrastructure/config"
	"github.com/iho/pocketbuddy/internal/infrastructure/logger"
	"github.com/iho/pocketbuddy/internal/infrastructure/metrics"
	"github.com/iho/pocketbuddy/internal/infrastructure/sqlite"
	"github.com/iho/pocketbuddy/internal/infrastructure/statestore"
	"github.com/iho/pocketbuddy/internal/usecase"
)

// ErrTranscriberUnavailable is delivered by captures when no speech engine was supplied.
var ErrTranscriberUnavailable = errors.New("speech transcription is not available")

type kvBackend interface {
	usecase.KeyValueStore
	Close() error
}

// App is the wired wallet core handed to the presentation layer.
type App struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	Wallet      *usecase.WalletUseCase
	Preferences *usecase.PreferenceUseCase
	Capture     *usecase.AmountCaptureUseCase

	kv kvBackend
}

type options struct {
	transcriber usecase.Transcriber
	clock       usecase.Clock
	idGen       usecase.IDGenerator
	logOutput   io.Writer
}

// Option customises New.
type Option func(*options)

// WithTranscriber sets the speech engine used by voice capture.
func WithTranscriber(t usecase.Transcriber) Option {
	return func(o *options) { o.transcriber = t }
}

// WithClock replaces the wall clock.
func WithClock(c usecase.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithIDGenerator replaces the ULID generator.
func WithIDGenerator(g usecase.IDGenerator) Option {
	return func(o *options) { o.idGen = g }
}

// WithLogOutput redirects log output.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// New wires storage, metrics and use cases from cfg.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// budget and savingsGoal are stored as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	o := options{transcriber: unavailableTranscriber{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		loc, _ := cfg.Location()
		o.clock = usecase.SystemClock{Location: loc}
	}
	if o.idGen == nil {
		o.idGen = idgen.NewULIDGenerator(o.clock.Now)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: o.logOutput})

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
	}
	m := metrics.New(registerer(registry))

	kv, err := openBackend(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	store := statestore.New(kv, m, log)

	a := &App{
		Config:      cfg,
		Logger:      log,
		Registry:    registry,
		Metrics:     m,
		Wallet:      usecase.NewWalletUseCase(ctx, store, o.idGen, o.clock, m, log),
		Preferences: usecase.NewPreferenceUseCase(store, m, log),
		Capture:     usecase.NewAmountCaptureUseCase(o.transcriber, m, log),
		kv:          kv,
	}

	log.Info().Str("backend", cfg.StoreBackend).Msg("wallet ready")
	return a, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.Logger.Debug().Msg("wallet closed")
	return nil
}

func openBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (kvBackend, error) {
	if cfg.StoreBackend == config.BackendMemory {
		return memory.NewKVStore(), nil
	}

	path := cfg.DatabasePath()
	db, err := sqlite.Open(ctx, path, cfg.BusyTimeout)
	if err != nil {
		return nil, err
	}

	if err := sqlite.RunMigrations(path, log); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("opened wallet database")
	return sqliteRepo.NewKVStore(db, sqliteRepo.NewRetrier(cfg.BusyRetries, log)), nil
}

// registerer avoids handing promauto a typed nil.
func registerer(r *prometheus.Registry) prometheus.Registerer {
	if r == nil {
		return nil
	}
	return r
}

type unavailableTranscriber struct{}

func (unavailableTranscriber) Transcribe(context.Context) (string, error) {
	return "", ErrTranscriberUnavailable
}
