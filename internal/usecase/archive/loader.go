// Package archive loads the raw JSON meeting archive and normalizes each
// record into the domain entities. Record-level failures are logged and
// skipped; archive-level failures abort the load.
package archive

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/archivelab/meeting-archive/errors"
	"github.com/archivelab/meeting-archive/internal/domain/entities"
)

// Service loads and normalizes meeting archives.
type Service struct {
	log        *zap.Logger
	validate   *validator.Validate
	client     *http.Client
	maxRetries uint64
}

// NewService constructs an archive Service with the given logging sink.
func NewService(log *zap.Logger) *Service {
	return &Service{
		log:        log,
		validate:   newRecordValidator(),
		client:     &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
	}
}

// LoadArchive reads the JSON archive from a local path or an http(s) URL and
// returns the normalized meetings in source-array order, minus any skipped
// records. Loading never aborts because of one bad record; a syntactically
// broken or non-array document aborts with an archive-level error.
func (s *Service) LoadArchive(ctx context.Context, source string) ([]*entities.Meeting, error) {
	log := s.log.With(
		zap.String("load_id", uuid.NewString()),
		zap.String("source", source),
	)
	log.Info("loading archive")

	data, err := s.readArchive(ctx, source, log)
	if err != nil {
		return nil, err
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return nil, apperrors.ErrInvalidArchive("archive must contain an array of meetings")
		}
		return nil, apperrors.ErrArchiveParse(err)
	}

	meetings := make([]*entities.Meeting, 0, len(records))
	for index, record := range records {
		meeting, err := s.normalizeRecord(record, index)
		if err != nil {
			log.Warn("skipping malformed meeting",
				zap.Int("index", index),
				zap.Error(err),
			)
			continue
		}
		meetings = append(meetings, meeting)
	}

	log.Info("archive loaded",
		zap.Int("records", len(records)),
		zap.Int("meetings", len(meetings)),
	)
	return meetings, nil
}

func (s *Service) readArchive(ctx context.Context, source string, log *zap.Logger) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return s.fetchArchive(ctx, source, log)
	}

	if _, err := os.Stat(source); err != nil {
		return nil, apperrors.ErrArchiveNotFound(source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return data, nil
}

// fetchArchive downloads a remote archive with exponential backoff. This is
// still a one-shot wholesale load, just sourced over HTTP.
func (s *Service) fetchArchive(ctx context.Context, source string, log *zap.Logger) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err = io.ReadAll(resp.Body)
			return err
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return backoff.Permanent(fmt.Errorf("archive fetch returned status %d", resp.StatusCode))
		default:
			return fmt.Errorf("archive fetch returned status %d", resp.StatusCode)
		}
	}

	notify := func(err error, wait time.Duration) {
		log.Warn("archive fetch failed, retrying",
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, apperrors.ErrArchiveFetchFailed(source, err)
	}
	return body, nil
}
