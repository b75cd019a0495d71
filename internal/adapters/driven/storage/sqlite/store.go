package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tagsmith/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/tagsmith/internal/core/domain"
)

// Bookkeeping columns of the rows table.
const (
	rowsTable     = "rows"
	runIDColumn   = "_run_id"
	rowNumColumn  = "_row"
	insertBatchSz = 500
)

// Store is an SQLite database holding exported enrichment runs.
type Store struct {
	db   *sql.DB
	path string
}

// RunSummary describes one stored run.
type RunSummary struct {
	ID        string
	CreatedAt time.Time
	RowCount  int
	Columns   []string
}

// Keyword is one ranked tag of a processed column.
type Keyword struct {
	Column string
	Rank   int
	Tag    string
	Bucket string
}

// NewStore opens or creates the database at path and applies migrations.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // export directory is user-chosen
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun stores a run, its keywords and its table in one transaction.
// Saving a run ID again replaces the earlier copy. The rows table always
// holds the table of the last saved run.
func (s *Store) SaveRun(ctx context.Context, result *domain.EnrichResult) error {
	if result == nil || result.Table == nil {
		return fmt.Errorf("%w: nothing to write", domain.ErrInvalidInput)
	}

	columnsJSON, err := json.Marshal(result.Table.Columns)
	if err != nil {
		return fmt.Errorf("marshalling columns: %w", err)
	}
	createdAt := result.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, result.ID); err != nil {
		return fmt.Errorf("replacing run: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, row_count, columns)
		VALUES (?, ?, ?, ?)
	`, result.ID, createdAt.UTC(), result.Table.Len(), string(columnsJSON))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if err := saveKeywords(ctx, tx, result); err != nil {
		return err
	}
	if err := saveRows(ctx, tx, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

func saveKeywords(ctx context.Context, tx *sql.Tx, result *domain.EnrichResult) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO keywords (run_id, column_name, rank, tag, bucket)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing keywords insert: %w", err)
	}
	defer stmt.Close()

	for _, ck := range result.Columns {
		for i, tag := range ck.Tags {
			if _, err := stmt.ExecContext(ctx, result.ID, ck.Column, i+1, tag, ck.BucketOf(i)); err != nil {
				return fmt.Errorf("saving keyword %q: %w", tag, err)
			}
		}
	}
	return nil
}

func saveRows(ctx context.Context, tx *sql.Tx, result *domain.EnrichResult) error {
	cols := columnNames(result.Table.Columns)

	defs := make([]string, 0, len(cols)+2)
	defs = append(defs, quoteIdent(runIDColumn)+" TEXT NOT NULL", quoteIdent(rowNumColumn)+" INTEGER NOT NULL")
	for _, c := range cols {
		defs = append(defs, quoteIdent(c)+" TEXT")
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(rowsTable)); err != nil {
		return fmt.Errorf("dropping rows table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "CREATE TABLE "+quoteIdent(rowsTable)+" ("+strings.Join(defs, ", ")+")"); err != nil {
		return fmt.Errorf("creating rows table: %w", err)
	}

	names := make([]string, 0, len(cols)+2)
	names = append(names, quoteIdent(runIDColumn), quoteIdent(rowNumColumn))
	for _, c := range cols {
		names = append(names, quoteIdent(c))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO "+quoteIdent(rowsTable)+
		" ("+strings.Join(names, ", ")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("preparing rows insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(names))
	for i, row := range result.Table.Rows {
		if i%insertBatchSz == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		args[0], args[1] = result.ID, i+1
		for j := range cols {
			args[j+2] = nil
			if j < len(row) && row[j].Present {
				args[j+2] = row[j].Text
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("saving row %d: %w", i+1, err)
		}
	}
	return nil
}

// Runs lists stored runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, row_count, columns FROM runs ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			run         RunSummary
			columnsJSON string
		)
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.RowCount, &columnsJSON); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if err := json.Unmarshal([]byte(columnsJSON), &run.Columns); err != nil {
			return nil, fmt.Errorf("unmarshalling columns: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Keywords returns the ranked keywords of a run, by column then rank.
func (s *Store) Keywords(ctx context.Context, runID string) ([]Keyword, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT column_name, rank, tag, bucket FROM keywords
		WHERE run_id = ? ORDER BY column_name, rank
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing keywords: %w", err)
	}
	defer rows.Close()

	var out []Keyword
	for rows.Next() {
		var k Keyword
		if err := rows.Scan(&k.Column, &k.Rank, &k.Tag, &k.Bucket); err != nil {
			return nil, fmt.Errorf("scanning keyword: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// columnNames returns SQL column names for the table columns. Names that
// clash case-insensitively with an earlier name or a bookkeeping column get
// a numeric suffix.
func columnNames(columns []string) []string {
	used := map[string]bool{
		strings.ToLower(runIDColumn):  true,
		strings.ToLower(rowNumColumn): true,
	}
	out := make([]string, len(columns))
	for i, c := range columns {
		name := c
		for n := 1; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d", c, n)
		}
		used[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
