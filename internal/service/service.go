// Package service wires the audio decode adapter, the constellate core,
// and the fingerprint store behind two operations: AddReference
// and Align. Apart from the cmd/constellate CLI, it is the only package
// in this module that imports both internal/audioio and pkg/constellate.
package service

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/constellatefp/constellate/internal/audioio"
	"github.com/constellatefp/constellate/internal/store"
	"github.com/constellatefp/constellate/pkg/constellate"
	"github.com/constellatefp/constellate/pkg/logger"
)

// Service fingerprints audio clips and aligns them against previously
// stored references.
type Service struct {
	store  *store.Store
	log    Logger
	config *Config
}

// New builds a Service from the given Options, opening (or creating)
// its fingerprint store at config.DBPath.
func New(opts ...Option) (*Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("service: opening fingerprint store: %w", err)
	}

	return &Service{store: st, log: cfg.Logger, config: cfg}, nil
}

// Close releases the Service's store connection.
func (s *Service) Close() error {
	return s.store.Close()
}

// AddReference decodes audioPath, builds its Fingerprint, and persists
// it under a newly generated opaque key.
func (s *Service) AddReference(ctx context.Context, audioPath string) (string, error) {
	s.log.Infof("adding reference: %s", audioPath)

	fp, err := s.fingerprint(ctx, audioPath)
	if err != nil {
		return "", err
	}

	key := uuid.NewString()
	if err := s.store.Save(key, fp); err != nil {
		return "", fmt.Errorf("service: saving reference fingerprint: %w", err)
	}

	s.log.Infof("stored reference %s (%d patterns)", key, len(fp.Entries()))
	return key, nil
}

// Align decodes audioPath, builds its Fingerprint, loads the reference
// Fingerprint stored under referenceKey, and estimates the time offset
// between them.
func (s *Service) Align(ctx context.Context, audioPath, referenceKey string) (constellate.Alignment, error) {
	s.log.Infof("aligning %s against reference %s", audioPath, referenceKey)

	fp, err := s.fingerprint(ctx, audioPath)
	if err != nil {
		return constellate.Alignment{}, err
	}

	reference, err := s.store.Load(referenceKey)
	if err != nil {
		return constellate.Alignment{}, fmt.Errorf("service: loading reference %s: %w", referenceKey, err)
	}

	alignment, err := fp.Align(reference, s.config.fittingOptions())
	if err != nil {
		return constellate.Alignment{}, fmt.Errorf("service: aligning: %w", err)
	}

	s.log.Infof("estimated offset for %s: %.3fs", audioPath, alignment.EstimatedTimeOffset)
	return alignment, nil
}

// fingerprint decodes audioPath (resampling through ffmpeg when the
// decoded sample rate doesn't match the configured one) and builds a
// Fingerprint under the service's Configuration.
func (s *Service) fingerprint(ctx context.Context, audioPath string) (*constellate.Fingerprint, error) {
	decoded, err := audioio.DecodeWAV(audioPath)
	if err != nil {
		s.log.Warnf("direct WAV decode failed for %s, attempting conversion: %v", audioPath, err)
		decoded, err = s.convertAndDecode(ctx, audioPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := s.config.configuration()
	if decoded.SampleRate != cfg.SampleRate {
		decoded, err = s.convertAndDecode(ctx, audioPath)
		if err != nil {
			return nil, err
		}
	}

	fp, err := constellate.New(decoded.Samples, cfg)
	if err != nil {
		return nil, fmt.Errorf("service: building fingerprint for %s: %w", audioPath, err)
	}
	return fp, nil
}

func (s *Service) convertAndDecode(ctx context.Context, audioPath string) (*audioio.DecodedAudio, error) {
	tempDir := s.config.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	converted, err := audioio.ConvertToSampleRate(ctx, audioPath, tempDir, s.config.configuration().SampleRate)
	if err != nil {
		return nil, fmt.Errorf("service: converting %s: %w", audioPath, err)
	}

	decoded, err := audioio.DecodeWAV(converted)
	if err != nil {
		return nil, fmt.Errorf("service: decoding converted %s: %w", converted, err)
	}
	return decoded, nil
}
