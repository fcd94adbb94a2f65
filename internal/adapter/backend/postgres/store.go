package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lightning-wallet-daemon/internal/core/ports"
	"lightning-wallet-daemon/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// Store implements ports.DocumentStore over a documents table
// (path text primary key, data jsonb) and serves the fiat balance from a
// local ledger table.
type Store struct {
	pool   Pool
	userID string
}

// NewStore creates a Store acting for the given backend user.
func NewStore(pool Pool, userID string) *Store {
	return &Store{pool: pool, userID: userID}
}

// GetDocument reads one document into out.
func (s *Store) GetDocument(ctx context.Context, path string, out any) error {
	query := `SELECT data FROM documents WHERE path = $1`

	var data []byte
	if err := s.pool.QueryRow(ctx, query, path).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.ErrDocumentRead(path, fmt.Errorf("document not found"))
		}
		return apperror.ErrDocumentRead(path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.ErrDocumentRead(path, fmt.Errorf("decoding document: %w", err))
	}
	return nil
}

// SetDocument upserts document fields. With merge set, existing keys not
// named in fields survive (jsonb concatenation); otherwise the document is
// replaced.
func (s *Store) SetDocument(ctx context.Context, path string, fields map[string]any, merge bool) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return apperror.ErrDocumentWrite(path, fmt.Errorf("encoding fields: %w", err))
	}

	query := `INSERT INTO documents (path, data) VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data`
	if merge {
		query = `INSERT INTO documents (path, data) VALUES ($1, $2)
			ON CONFLICT (path) DO UPDATE SET data = documents.data || EXCLUDED.data`
	}

	if _, err := s.pool.Exec(ctx, query, path, data); err != nil {
		return apperror.ErrDocumentWrite(path, err)
	}
	return nil
}

// FiatBalances sums the user's fiat ledger, in cents.
func (s *Store) FiatBalances(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM fiat_entries WHERE user_id = $1`

	var balance int64
	if err := s.pool.QueryRow(ctx, query, s.userID).Scan(&balance); err != nil {
		return 0, apperror.ErrBackendCall("getFiatBalances", err)
	}
	return balance, nil
}

// CallerOverlay routes the fiat balance to the local ledger while the
// broker functions stay on the remote caller.
type CallerOverlay struct {
	ports.FunctionCaller
	store *Store
}

// NewCallerOverlay wraps remote with the local fiat ledger.
func NewCallerOverlay(remote ports.FunctionCaller, store *Store) *CallerOverlay {
	return &CallerOverlay{FunctionCaller: remote, store: store}
}

func (c *CallerOverlay) FiatBalances(ctx context.Context) (int64, error) {
	return c.store.FiatBalances(ctx)
}
