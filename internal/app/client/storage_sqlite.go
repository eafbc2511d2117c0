package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Document — локально закэшированный markdown документ источника
type Document struct {
	SourceID int
	URL      string
	Title    string
	Markdown string
	PulledAt time.Time
}

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			source_id INTEGER PRIMARY KEY,
			url TEXT NOT NULL,
			title TEXT NOT NULL,
			markdown TEXT NOT NULL,
			pulled_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_documents_pulled ON documents(pulled_at);
	`)
	return err
}

// SaveDocument вставляет или обновляет кэшированный документ. При
// инкрементальной выгрузке новый markdown дописывается к уже сохраненному —
// сервер при latest=true отдает только хвост документа.
func (s *SQLiteStorage) SaveDocument(doc Document, appendMode bool) error {
	if appendMode {
		var existing string
		err := s.db.QueryRow("SELECT markdown FROM documents WHERE source_id = ?", doc.SourceID).
			Scan(&existing)
		switch {
		case err == sql.ErrNoRows:
			// нечего дописывать, сохраняем как есть
		case err != nil:
			return fmt.Errorf("ошибка чтения документа: %w", err)
		default:
			doc.Markdown = existing + doc.Markdown
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO documents (source_id, url, title, markdown, pulled_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (source_id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			markdown = excluded.markdown,
			pulled_at = excluded.pulled_at
	`, doc.SourceID, doc.URL, doc.Title, doc.Markdown, doc.PulledAt)
	if err != nil {
		return fmt.Errorf("ошибка сохранения документа: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) GetDocument(sourceID int) (Document, error) {
	var doc Document
	err := s.db.QueryRow(`
		SELECT source_id, url, title, markdown, pulled_at
		FROM documents WHERE source_id = ?
	`, sourceID).Scan(&doc.SourceID, &doc.URL, &doc.Title, &doc.Markdown, &doc.PulledAt)

	if err == sql.ErrNoRows {
		return Document{}, fmt.Errorf("документ не найден: %d", sourceID)
	}
	if err != nil {
		return Document{}, fmt.Errorf("ошибка получения документа: %w", err)
	}
	return doc, nil
}

func (s *SQLiteStorage) ListDocuments() ([]Document, error) {
	rows, err := s.db.Query(`
		SELECT source_id, url, title, markdown, pulled_at
		FROM documents ORDER BY pulled_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка документов: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.SourceID, &doc.URL, &doc.Title, &doc.Markdown, &doc.PulledAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
