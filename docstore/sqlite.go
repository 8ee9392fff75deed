package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/voltserv/reportengine"
)

// SQLite is a document store over one sqlite database file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// Open opens (creating if needed) the document database at path.
func Open(path string) (*SQLite, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", path+sep+"_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("open document db: %w", err)
	}
	// One writer plus concurrent readers under WAL.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=10000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_documents_project
		ON documents (collection, json_extract(data, '$.project_id'))`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create project index: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error { return s.db.Close() }

// Put upserts one document. doc is marshalled to JSON as stored.
func (s *SQLite) Put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO documents (collection, id, data)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		collection, id, string(data))
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

// get loads and decodes one document into out.
func (s *SQLite) get(ctx context.Context, collection, id string, out any) error {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`,
		collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", collection, id, reportengine.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// getBatch loads the documents for ids, preserving input order and
// skipping missing ids. decode appends one decoded document per row.
func (s *SQLite) getBatch(ctx context.Context, collection string, ids []string, decode func(id string, data []byte) error) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, 0, len(ids)+1)
	args = append(args, collection)
	for _, id := range ids {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = ? AND id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("query %s batch: %w", collection, err)
	}
	defer rows.Close()

	byID := make(map[string][]byte, len(ids))
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return fmt.Errorf("scan %s row: %w", collection, err)
		}
		byID[id] = []byte(data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s rows: %w", collection, err)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		data, ok := byID[id]
		if !ok {
			continue
		}
		if err := decode(id, data); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
	}
	return nil
}

// getByProject loads every document of a collection whose project_id field
// matches, ordered by id for stable output.
func (s *SQLite) getByProject(ctx context.Context, collection, projectID string, decode func(id string, data []byte) error) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents
		 WHERE collection = ? AND json_extract(data, '$.project_id') = ?
		 ORDER BY id`,
		collection, projectID)
	if err != nil {
		return fmt.Errorf("query %s by project: %w", collection, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return fmt.Errorf("scan %s row: %w", collection, err)
		}
		if err := decode(id, []byte(data)); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
	}
	return rows.Err()
}

func (s *SQLite) AMC(ctx context.Context, id string) (*reportengine.AMC, error) {
	var doc reportengine.AMC
	if err := s.get(ctx, CollectionAMCs, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLite) Project(ctx context.Context, id string) (*reportengine.Project, error) {
	var doc reportengine.Project
	if err := s.get(ctx, CollectionProjects, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Settings loads the template settings. A missing document is not an
// error; the theme falls back to defaults.
func (s *SQLite) Settings(ctx context.Context) (*reportengine.Settings, error) {
	var doc reportengine.Settings
	err := s.get(ctx, CollectionSettings, SettingsDocID, &doc)
	if errors.Is(err, reportengine.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLite) IRReport(ctx context.Context, id string) (*reportengine.IRReport, error) {
	var doc reportengine.IRReport
	if err := s.get(ctx, CollectionIRReports, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLite) TestReport(ctx context.Context, id string) (*reportengine.TestReport, error) {
	var doc reportengine.TestReport
	if err := s.get(ctx, CollectionTestReports, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLite) ServiceRequestByID(ctx context.Context, id string) (*reportengine.ServiceRequest, error) {
	var doc reportengine.ServiceRequest
	if err := s.get(ctx, CollectionServiceRequests, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLite) TestReports(ctx context.Context, ids []string) ([]reportengine.TestReport, error) {
	var out []reportengine.TestReport
	err := s.getBatch(ctx, CollectionTestReports, ids, func(_ string, data []byte) error {
		var doc reportengine.TestReport
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}

func (s *SQLite) IRReports(ctx context.Context, ids []string) ([]reportengine.IRReport, error) {
	var out []reportengine.IRReport
	err := s.getBatch(ctx, CollectionIRReports, ids, func(_ string, data []byte) error {
		var doc reportengine.IRReport
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}

func (s *SQLite) ServiceRequests(ctx context.Context, ids []string) ([]reportengine.ServiceRequest, error) {
	var out []reportengine.ServiceRequest
	err := s.getBatch(ctx, CollectionServiceRequests, ids, func(_ string, data []byte) error {
		var doc reportengine.ServiceRequest
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}

func (s *SQLite) TestReportsByProject(ctx context.Context, projectID string) ([]reportengine.TestReport, error) {
	var out []reportengine.TestReport
	err := s.getByProject(ctx, CollectionTestReports, projectID, func(_ string, data []byte) error {
		var doc reportengine.TestReport
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}

func (s *SQLite) IRReportsByProject(ctx context.Context, projectID string) ([]reportengine.IRReport, error) {
	var out []reportengine.IRReport
	err := s.getByProject(ctx, CollectionIRReports, projectID, func(_ string, data []byte) error {
		var doc reportengine.IRReport
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}

func (s *SQLite) ServiceRequestsByProject(ctx context.Context, projectID string) ([]reportengine.ServiceRequest, error) {
	var out []reportengine.ServiceRequest
	err := s.getByProject(ctx, CollectionServiceRequests, projectID, func(_ string, data []byte) error {
		var doc reportengine.ServiceRequest
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		out = append(out, doc)
		return nil
	})
	return out, err
}
