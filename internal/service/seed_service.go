package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/sync/singleflight"

	"github.com/rapodaca/cas-number/internal/cache"
	"github.com/rapodaca/cas-number/internal/domain"
	"github.com/rapodaca/cas-number/internal/repository"
	"github.com/rapodaca/cas-number/pkg/cas"
	"github.com/rapodaca/cas-number/pkg/log"
	"github.com/rapodaca/cas-number/pkg/pubsub"
)

const lookupTimeout = 5 * time.Second

// SeedService fills the sample table with random CAS numbers.
type SeedService interface {
	Seed(ctx context.Context, count int) (*domain.SeedResponse, error)
	Get(ctx context.Context, text string) (*domain.Sample, error)
	List(ctx context.Context, limit, offset int) (*domain.SampleListResponse, error)
}

type seedService struct {
	gen       *cas.Generator
	repo      repository.SampleRepository
	cache     cache.SampleCache
	cacheTTL  time.Duration
	publisher pubsub.Publisher
	sf        singleflight.Group
}

// NewSeedService creates a SeedService drawing from gen and writing to
// repo. Lookups go through sampleCache; each stored batch is announced on
// publisher.
func NewSeedService(
	gen *cas.Generator,
	repo repository.SampleRepository,
	sampleCache cache.SampleCache,
	cacheTTL time.Duration,
	publisher pubsub.Publisher,
) SeedService {
	return &seedService{
		gen:       gen,
		repo:      repo,
		cache:     sampleCache,
		cacheTTL:  cacheTTL,
		publisher: publisher,
	}
}

// Seed draws count numbers and stores those not already present, in one
// batch identified by a KSUID. Inserted may be less than count when draws
// collide with each other or with stored rows.
func (s *seedService) Seed(ctx context.Context, count int) (*domain.SeedResponse, error) {
	drawn, err := s.gen.GenerateBatch(count)
	if err != nil {
		return nil, err
	}

	// Repeats within the draw are dropped here; numbers already stored are
	// dropped by the repository inside the insert.
	seen := make(map[cas.Number]struct{}, len(drawn))
	fresh := make([]cas.Number, 0, len(drawn))
	for _, n := range drawn {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		fresh = append(fresh, n)
	}

	batchID := ksuid.New().String()
	ctx = log.WithStr(ctx, log.FieldBatchID, batchID)
	samples, err := s.repo.CreateBatch(ctx, batchID, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to store batch %s: %w", batchID, err)
	}

	l := log.Ctx(ctx)
	skipped := len(drawn) - len(samples)
	l.Info().
		Int(log.FieldCount, len(samples)).
		Int("skipped", skipped).
		Msg("seeded cas samples")

	// The batch is already committed; a lost event is only logged.
	evt, err := pubsub.NewEvent(pubsub.EventSamplesSeeded, batchID, pubsub.SamplesSeededPayload{
		BatchID:  batchID,
		Inserted: len(samples),
		Skipped:  skipped,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, pubsub.ChannelEvents, evt)
	}
	if err != nil {
		l.Warn().Err(err).Msg("failed to publish seed event")
	}

	return &domain.SeedResponse{
		BatchID:  batchID,
		Inserted: len(samples),
		Samples:  samples,
	}, nil
}

func (s *seedService) Get(ctx context.Context, text string) (*domain.Sample, error) {
	n, err := cas.Parse(text)
	if err != nil {
		return nil, err
	}

	key := s.cache.BuildKey(n)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// Callers joined to this flight must not see the first caller's
		// cancellation.
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()
		return s.fetchWithCache(flightCtx, n, key)
	})
	if err != nil {
		return nil, err
	}

	sample, ok := result.(*domain.Sample)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from singleflight")
	}
	return sample, nil
}

func (s *seedService) fetchWithCache(ctx context.Context, n cas.Number, key string) (*domain.Sample, error) {
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Str(log.FieldCASNumber, n.String()).Msg("cache get error")
	}

	sample, err := s.repo.GetByNumber(ctx, n)
	if err != nil {
		return nil, err
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.cache.Set(cacheCtx, key, sample, s.cacheTTL); err != nil {
			l := log.L()
			l.Warn().Err(err).Str(log.FieldCASNumber, n.String()).Msg("cache set error")
		}
	}()

	return sample, nil
}

func (s *seedService) List(ctx context.Context, limit, offset int) (*domain.SampleListResponse, error) {
	samples, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.SampleListResponse{
		Samples: samples,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
