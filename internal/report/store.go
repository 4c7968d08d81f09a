package report

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS sweep_results (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	path         TEXT NOT NULL,
	method       TEXT NOT NULL,
	goal         TEXT NOT NULL,
	max_product  REAL NOT NULL,
	scale_at_max INTEGER NOT NULL,
	graph_json   TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_log (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	path       TEXT,
	method     TEXT,
	event      TEXT NOT NULL,
	detail     TEXT,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists sweep results and a run event log in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens the results database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region save-result

// SaveResult writes one (experiment, method) summary plus its full curves.
func (s *Store) SaveResult(runID string, res Result, gd GraphData) error {
	graphJSON, err := json.Marshal(gd)
	if err != nil {
		return fmt.Errorf("marshal graph data: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO sweep_results (run_id, path, method, goal, max_product, scale_at_max, graph_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, res.Path, res.Method, res.SteeringGoalName,
		res.MaxProduct, res.ScaleAtMax, string(graphJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// #endregion save-result

// #region run-log

// LogEvent appends one provenance row to the run log.
func (s *Store) LogEvent(runID, path, method, event, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO run_log (run_id, path, method, event, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, nullIfEmpty(path), nullIfEmpty(method), event, nullIfEmpty(detail),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

func nullIfEmpty(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

// #endregion run-log

// #region read-back

// StoredResult is one sweep_results row as read back by cmd/inspect.
type StoredResult struct {
	RunID      string
	Path       string
	Method     string
	Goal       string
	MaxProduct float64
	ScaleAtMax int
	CreatedAt  time.Time
}

// Results returns the most recent n stored rows, newest first.
func (s *Store) Results(n int) ([]StoredResult, error) {
	rows, err := s.db.Query(
		`SELECT run_id, path, method, goal, max_product, scale_at_max, created_at
		 FROM sweep_results ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		var r StoredResult
		var created string
		if err := rows.Scan(&r.RunID, &r.Path, &r.Method, &r.Goal, &r.MaxProduct, &r.ScaleAtMax, &created); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GraphData returns the stored curves for one result row.
func (s *Store) GraphData(runID, path, method string) (GraphData, error) {
	var graphJSON sql.NullString
	err := s.db.QueryRow(
		`SELECT graph_json FROM sweep_results WHERE run_id = ? AND path = ? AND method = ?`,
		runID, path, method,
	).Scan(&graphJSON)
	if err != nil {
		return GraphData{}, fmt.Errorf("get graph data: %w", err)
	}
	var gd GraphData
	if graphJSON.Valid {
		if err := json.Unmarshal([]byte(graphJSON.String), &gd); err != nil {
			return GraphData{}, fmt.Errorf("unmarshal graph data: %w", err)
		}
	}
	return gd, nil
}

// #endregion read-back
