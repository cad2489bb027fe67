package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/agebook/internal/config"
	"github.com/jask/agebook/internal/directory"
	"github.com/jask/agebook/internal/logging"
	"github.com/jask/agebook/internal/seed"
)

// session is everything one run of the app owns.
type session struct {
	cfg   config.Config
	log   *zap.Logger
	store *directory.Store
}

func openSession(configPath, seedPath string) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if seedPath != "" {
		cfg.Seed.Path = seedPath
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	store := directory.NewStore(directory.WithLogger(logger))
	var people []directory.Person
	if cfg.Seed.Samples {
		people = append(people, seed.Samples()...)
	}
	if cfg.Seed.Path != "" {
		loaded, err := seed.LoadFile(cfg.Seed.Path)
		if err != nil {
			_ = logger.Sync()
			return nil, err
		}
		people = append(people, loaded...)
	}
	if err := seed.Populate(store, people); err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Info("session started", zap.Int("people", store.Len()), zap.String("seed", cfg.Seed.Path))
	return &session{cfg: cfg, log: logger, store: store}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}
