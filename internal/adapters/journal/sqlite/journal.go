package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

const (
	defaultLimit    = 50
	journalDirMode  = 0o700
	timestampFormat = time.RFC3339Nano
)

// Journal records activation outcomes in a SQLite database.
type Journal struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ ports.ActivationJournal = (*Journal)(nil)

// Open opens or creates the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), journalDirMode); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := j.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return j, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activations (
		id           TEXT PRIMARY KEY,
		actor_id     TEXT NOT NULL,
		actor_name   TEXT NOT NULL DEFAULT '',
		item_id      TEXT NOT NULL,
		outcome      TEXT NOT NULL,
		remaining_ms INTEGER NOT NULL DEFAULT 0,
		detail       TEXT NOT NULL DEFAULT '',
		at           TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_activations_actor ON activations(actor_name COLLATE NOCASE, at DESC);
	CREATE INDEX IF NOT EXISTS idx_activations_item ON activations(item_id, at DESC);
	`
	_, err := j.db.Exec(schema)
	return err
}

func (j *Journal) newID(at time.Time) string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), j.entropy).String()
}

func (j *Journal) Record(ctx context.Context, record domain.ActivationRecord) error {
	if record.At.IsZero() {
		record.At = time.Now()
	}
	if record.ID == "" {
		record.ID = j.newID(record.At)
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO activations (id, actor_id, actor_name, item_id, outcome, remaining_ms, detail, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		string(record.ActorID),
		record.ActorName,
		string(record.ItemID),
		string(record.Outcome),
		record.Remaining.Milliseconds(),
		record.Detail,
		record.At.UTC().Format(timestampFormat),
	)
	if err != nil {
		return fmt.Errorf("insert activation %s: %w", record.ID, err)
	}

	return nil
}

// List returns matching records, newest first.
func (j *Journal) List(ctx context.Context, query ports.JournalQuery) ([]domain.ActivationRecord, error) {
	var (
		where []string
		args  []any
	)
	if name := strings.TrimSpace(query.ActorName); name != "" {
		where = append(where, "actor_name = ? COLLATE NOCASE")
		args = append(args, name)
	}
	if query.ItemID != "" {
		where = append(where, "item_id = ?")
		args = append(args, string(query.ItemID))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	stmt := `SELECT id, actor_id, actor_name, item_id, outcome, remaining_ms, detail, at FROM activations`
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query activations: %w", err)
	}
	defer rows.Close()

	var records []domain.ActivationRecord
	for rows.Next() {
		var (
			record      domain.ActivationRecord
			actorID     string
			itemID      string
			outcome     string
			remainingMS int64
			at          string
		)
		if err := rows.Scan(&record.ID, &actorID, &record.ActorName, &itemID, &outcome, &remainingMS, &record.Detail, &at); err != nil {
			return nil, fmt.Errorf("scan activation: %w", err)
		}

		parsed, err := time.Parse(timestampFormat, at)
		if err != nil {
			return nil, fmt.Errorf("parse activation time %q: %w", at, err)
		}

		record.ActorID = domain.ActorID(actorID)
		record.ItemID = domain.ItemID(itemID)
		record.Outcome = domain.ActivationOutcome(outcome)
		record.Remaining = time.Duration(remainingMS) * time.Millisecond
		record.At = parsed
		records = append(records, record)
	}

	return records, rows.Err()
}
