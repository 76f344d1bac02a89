package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	"draft"

	"github.com/cespare/xxhash/v2"
)

// TTL is how long a cached reference entry stays live.
const TTL = 7 * 24 * time.Hour

// Compile-time interface verification.
var _ draft.ReferenceCache = (*ReferenceCache)(nil)

// ReferenceCache implements draft.ReferenceCache using SQLite.
// Entries are keyed by a digest of the raw query bytes; no normalization
// is applied, so case and whitespace variants occupy distinct rows.
type ReferenceCache struct {
	db *DB
}

// NewReferenceCache creates a new ReferenceCache.
func NewReferenceCache(db *DB) *ReferenceCache {
	return &ReferenceCache{db: db}
}

// hashQuery computes xxHash of the query and returns a hex string.
func hashQuery(query string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(query))
	return hex.EncodeToString(b[:])
}

// GetReferences returns the cached references for a query in stored order.
// Expired entries are deleted on read and reported as ENOTFOUND.
func (c *ReferenceCache) GetReferences(ctx context.Context, query string) ([]draft.Reference, error) {
	key := hashQuery(query)

	var refsJSON, expiresAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT refs_json, expires_at
		FROM reference_cache
		WHERE query_hash = ?
	`, key).Scan(&refsJSON, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, draft.Errorf(draft.ENOTFOUND, "no cached references for query")
	}
	if err != nil {
		return nil, err
	}

	expires, err := parseRFC3339(expiresAt, "expires_at")
	if err != nil {
		return nil, err
	}

	if !expires.After(c.db.Now()) {
		// Lazy eviction: a stale row is removed on read, never returned.
		if _, err := c.db.ExecContext(ctx, "DELETE FROM reference_cache WHERE query_hash = ?", key); err != nil {
			return nil, err
		}
		return nil, draft.Errorf(draft.ENOTFOUND, "cached references expired")
	}

	var refs []draft.Reference
	if err := json.Unmarshal([]byte(refsJSON), &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// SetReferences replaces the cached entry for a query wholesale and
// restarts its time-to-live. The caller's ordering is stored verbatim.
func (c *ReferenceCache) SetReferences(ctx context.Context, query string, refs []draft.Reference) error {
	if refs == nil {
		refs = []draft.Reference{}
	}
	payload, err := json.Marshal(refs)
	if err != nil {
		return err
	}

	now := c.db.Now().UTC()
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO reference_cache (query_hash, query_text, refs_json, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(query_hash) DO UPDATE SET
			query_text = excluded.query_text,
			refs_json = excluded.refs_json,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at
	`, hashQuery(query), query, string(payload),
		now.Format(time.RFC3339), now.Add(TTL).Format(time.RFC3339))

	return err
}
