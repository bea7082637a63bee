// ABOUTME: SQLite database schema for the transcript search index
// ABOUTME: Creates chunk and query log tables with their indexes
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Indexed transcript chunks (vector stored as little-endian float64 BLOB)
CREATE TABLE IF NOT EXISTS transcript_chunks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    lesson_id TEXT NOT NULL,
    start_seconds INTEGER NOT NULL DEFAULT 0,
    end_seconds INTEGER NOT NULL DEFAULT 0,
    text TEXT NOT NULL,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Append-only search query log
CREATE TABLE IF NOT EXISTS search_queries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    search_id TEXT,
    user_id TEXT NOT NULL,
    course_id TEXT,
    query_text TEXT NOT NULL,
    top_result_ids TEXT NOT NULL DEFAULT '[]',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_chunks_lesson ON transcript_chunks(lesson_id);
CREATE INDEX IF NOT EXISTS idx_queries_user ON search_queries(user_id);
CREATE INDEX IF NOT EXISTS idx_queries_course ON search_queries(course_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
