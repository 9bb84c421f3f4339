// Package services contains application services for the qprdesk client.
// The report service owns the round trips between the backend and the local
// record cache, and decides when the cache must be refreshed.
package services

import (
	"context"
	"fmt"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/client/store"
	"github.com/psharma-dev/qprdesk/internal/logging"
)

// Remote defines the backend operations the report service depends on.
//
// Contract:
//   - Login/Logout: session lifecycle against the server.
//   - FetchAll: list the caller's records.
//   - FetchOne: fetch a single record with full details.
//   - Save: create or overwrite a record, returning its server id.
//   - Delete: remove a record.
//   - RequestEdit: ask an administrator to unlock a submitted record.
//
// All methods must honor context cancellation/timeouts.
type Remote interface {
	Login(ctx context.Context, employeeCode, role string, password []byte) error
	Logout(ctx context.Context) error
	FetchAll(ctx context.Context) ([]models.Record, error)
	FetchOne(ctx context.Context, id int64) (models.Record, error)
	Save(ctx context.Context, payload models.SavePayload) (int64, error)
	Delete(ctx context.Context, id int64) error
	RequestEdit(ctx context.Context, id int64, reason string) error
}

// ReportService mediates between the remote backend and the local cache.
// Mutations go to the server first; the cache is refreshed from the server
// response, never patched locally.
type ReportService struct {
	remote Remote
	store  *store.Store
	log    logging.Logger
}

func NewReportService(remote Remote, store *store.Store, log logging.Logger) *ReportService {
	return &ReportService{remote: remote, store: store, log: log}
}

// Login opens a server session for the given credentials.
func (s *ReportService) Login(ctx context.Context, employeeCode, role string, password []byte) error {
	return s.remote.Login(ctx, employeeCode, role, password)
}

// Logout closes the server session.
func (s *ReportService) Logout(ctx context.Context) error {
	return s.remote.Logout(ctx)
}

// Refresh fetches the record list and replaces the cache with it. A
// generation ticket is taken before the fetch starts; if a younger refresh
// lands first, this one's response is discarded instead of clobbering the
// newer data.
func (s *ReportService) Refresh(ctx context.Context) error {
	gen := s.store.NextGeneration()

	records, err := s.remote.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}

	if !s.store.ReplaceAll(gen, records) {
		s.log.Debug(ctx, "stale fetch discarded", "generation", gen)
		return nil
	}
	s.log.Debug(ctx, "record cache refreshed", "count", len(records))
	return nil
}

// Record returns a cached record by id. The cache is authoritative for list
// views; callers that need guaranteed-fresh details use Fetch.
func (s *ReportService) Record(id int64) (models.Record, error) {
	return s.store.FindByID(id)
}

// Records returns a copy of the cached record list.
func (s *ReportService) Records() []models.Record {
	return s.store.Snapshot()
}

// Fetch retrieves a single record from the server, bypassing the cache.
func (s *ReportService) Fetch(ctx context.Context, id int64) (models.Record, error) {
	return s.remote.FetchOne(ctx, id)
}

// Save submits the payload and, on success, refreshes the cache so the list
// reflects the server's view. A rejected save leaves the cache untouched.
func (s *ReportService) Save(ctx context.Context, payload models.SavePayload) (int64, error) {
	id, err := s.remote.Save(ctx, payload)
	if err != nil {
		return 0, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "refresh after save failed", "err", err)
	}
	return id, nil
}

// Delete removes the record on the server and refreshes the cache on
// success. A failed delete triggers no refetch, so the listing keeps showing
// the record.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "refresh after delete failed", "err", err)
	}
	return nil
}

// RequestEdit files an edit-unlock request for a submitted record.
func (s *ReportService) RequestEdit(ctx context.Context, id int64, reason string) error {
	return s.remote.RequestEdit(ctx, id, reason)
}
