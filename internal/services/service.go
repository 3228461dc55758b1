package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing-service/internal/cache"
	"billing-service/internal/domain"
	"billing-service/internal/events"
	"billing-service/internal/repository"
	apperrors "billing-service/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options carries the collaborators shared by every service. Events and
// Cache are optional.
type Options struct {
	Logger   *zap.Logger
	Events   events.EventPublisher
	Cache    cache.Cache
	CacheTTL time.Duration
}

type base struct {
	logger   *zap.Logger
	events   events.EventPublisher
	cache    cache.Cache
	cacheTTL time.Duration
}

func newBase(opts Options) base {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{
		logger:   logger,
		events:   opts.Events,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
	}
}

// publish sends a change event. Failures are logged; the write already happened.
func (b base) publish(ctx context.Context, event interface{}) {
	if b.events == nil {
		return
	}
	if err := b.events.Publish(ctx, event); err != nil {
		b.logger.Error("Failed to publish event",
			zap.String("event-type", events.EventType(event)),
			zap.Error(err),
		)
	}
}

func (b base) invalidate(ctx context.Context, collection string) {
	cache.InvalidateCollection(ctx, b.cache, collection, b.logger)
}

// cached loads key into dest and reports whether it was a hit.
func (b base) cached(ctx context.Context, key string, dest interface{}) bool {
	if b.cache == nil {
		return false
	}
	if err := cache.GetJSON(ctx, b.cache, key, dest); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			b.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	b.logger.Debug("Cache hit", zap.String("key", key))
	return true
}

func (b base) remember(ctx context.Context, key string, value interface{}) {
	if b.cache == nil {
		return
	}
	if err := cache.SetJSON(ctx, b.cache, key, value, b.cacheTTL); err != nil {
		b.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// parseID checks id is a record identifier in the canonical lowercase
// 8-4-4-4-12 form records are stored under.
func parseID(resource, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return apperrors.NewInvalidIdentifier(resource, id)
	}
	return nil
}

// validateNew decodes attrs into record and reports every absent, null,
// mistyped or invalid attribute in one ValidationError.
func validateNew(attrs Attributes, required []string, record interface{ Validate() error }) error {
	missing := domain.MissingFields(attrs, required...)
	err := domain.Decode(attrs, record)
	if err == nil {
		err = record.Validate()
	}
	if err == nil {
		if len(missing) > 0 {
			return apperrors.NewMissingFields(missing...)
		}
		return nil
	}

	var stdErr *apperrors.StandardError
	if len(missing) == 0 || !errors.As(err, &stdErr) || stdErr.Code != apperrors.CodeValidation {
		return err
	}
	fields := unionInOrder(required, missing, stdErr.Fields)
	if len(fields) == len(missing) {
		return apperrors.NewMissingFields(missing...)
	}
	return apperrors.NewValidationError("missing or invalid fields: "+strings.Join(fields, ", "), fields...)
}

// unionInOrder lists the fields of a and b once each, required ones first
// in declaration order.
func unionInOrder(required, a, b []string) []string {
	bad := make(map[string]bool, len(a)+len(b))
	for _, f := range a {
		bad[f] = true
	}
	for _, f := range b {
		bad[f] = true
	}

	out := make([]string, 0, len(bad))
	for _, f := range required {
		if bad[f] {
			out = append(out, f)
			delete(bad, f)
		}
	}
	for _, f := range b {
		if bad[f] {
			out = append(out, f)
			delete(bad, f)
		}
	}
	return out
}

func newID() string {
	return uuid.New().String()
}

// storeError maps repository failures onto the error taxonomy.
func storeError(resource, id string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, id)
	}
	return fmt.Errorf("%s %s: %w", resource, id, err)
}

func now() time.Time {
	return time.Now().UTC()
}
