// Package fixture writes batches of random CAS numbers to object storage
// as newline-delimited text files, for loading into test databases.
package fixture

import (
	"bufio"
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rapodaca/cas-number/pkg/cas"
	"github.com/rapodaca/cas-number/pkg/log"
	"github.com/rapodaca/cas-number/pkg/pubsub"
	"github.com/rapodaca/cas-number/pkg/storage"
)

const (
	keyPrefix   = "fixtures/"
	keySuffix   = ".txt"
	contentType = "text/plain; charset=utf-8"
)

// ErrBadKey is returned by KeyFromID for ids that were not produced by
// Export.
var ErrBadKey = errors.New("not a fixture id")

// Fixture describes an exported file.
type Fixture struct {
	Key   string
	Count int
	URL   string
}

// Exporter generates fixture files into a Storage backend.
type Exporter struct {
	gen       *cas.Generator
	store     storage.Storage
	publisher pubsub.Publisher
	urlExpiry time.Duration
}

// NewExporter creates an Exporter. urlExpiry bounds presigned URLs.
func NewExporter(gen *cas.Generator, store storage.Storage, publisher pubsub.Publisher, urlExpiry time.Duration) *Exporter {
	return &Exporter{gen: gen, store: store, publisher: publisher, urlExpiry: urlExpiry}
}

// Export writes count fresh numbers under fixtures/<ULID>.txt. Keys sort
// by creation time.
func (e *Exporter) Export(ctx context.Context, count int) (*Fixture, error) {
	numbers, err := e.gen.GenerateBatch(count)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, n := range numbers {
		buf.WriteString(n.String())
		buf.WriteByte('\n')
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fixture key: %w", err)
	}
	key := keyPrefix + id.String() + keySuffix

	if err := e.store.Write(ctx, key, &buf, int64(buf.Len()), contentType); err != nil {
		return nil, fmt.Errorf("failed to write fixture: %w", err)
	}

	url, err := e.store.GetURL(ctx, key, e.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture url: %w", err)
	}

	l := log.Ctx(ctx)
	l.Info().
		Str(log.FieldFixtureKey, key).
		Int(log.FieldCount, count).
		Msg("exported cas fixture")

	evt, err := pubsub.NewEvent(pubsub.EventFixtureExported, key, pubsub.FixtureExportedPayload{Key: key, Count: count})
	if err == nil {
		err = e.publisher.Publish(ctx, pubsub.ChannelEvents, evt)
	}
	if err != nil {
		l.Warn().Err(err).Str(log.FieldFixtureKey, key).Msg("failed to publish fixture event")
	}

	return &Fixture{Key: key, Count: count, URL: url}, nil
}

// Load reads a fixture back. Blank lines are skipped; any other line must
// be a valid CAS number.
func (e *Exporter) Load(ctx context.Context, key string) ([]cas.Number, error) {
	rc, err := e.store.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var numbers []cas.Number
	scanner := bufio.NewScanner(rc)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		n, err := cas.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", key, line, err)
		}
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return numbers, nil
}

// List returns the exported fixtures, oldest first.
func (e *Exporter) List(ctx context.Context) ([]storage.FileInfo, error) {
	return e.store.List(ctx, keyPrefix)
}

// KeyFromID maps the "<ULID>.txt" id used in URLs back to a storage key.
func KeyFromID(id string) (string, error) {
	name, ok := strings.CutSuffix(id, keySuffix)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadKey, id)
	}
	if _, err := ulid.ParseStrict(name); err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadKey, id)
	}
	return keyPrefix + id, nil
}
