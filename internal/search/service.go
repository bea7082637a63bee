// ABOUTME: Search service wiring chunker, embedder, scorer, merger, and log
// ABOUTME: Implements index, search, recent-searches, and analytics operations
package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coursekit/lessonsearch/internal/core"
	"github.com/coursekit/lessonsearch/internal/embed"
	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/coursekit/lessonsearch/internal/storage"
)

const (
	// DefaultThreshold is the minimum cosine similarity for a result.
	DefaultThreshold = 0.55
	// DefaultLimit caps results per search call.
	DefaultLimit = 20
	// DefaultRecentLimit caps recent-search listings.
	DefaultRecentLimit = 10
)

// LessonDirectory resolves lesson titles and course scopes. Lookups are
// simple key-value reads; a missing lesson is not an error.
type LessonDirectory interface {
	Lesson(id string) (models.Lesson, bool)
	LessonTitle(id string) string
	CourseLessonIDs(courseID string) []string
}

// Service runs transcript indexing and semantic search. Searches are
// logged fire-and-forget: a failing log store never fails the caller.
type Service struct {
	chunks   storage.ChunkRepository
	queryLog storage.QueryLogRepository
	embedder embed.Embedder
	catalog  LessonDirectory
	logWg    sync.WaitGroup
}

// NewService creates a search service over the given stores and embedder.
func NewService(chunks storage.ChunkRepository, queryLog storage.QueryLogRepository, embedder embed.Embedder, catalog LessonDirectory) *Service {
	return &Service{
		chunks:   chunks,
		queryLog: queryLog,
		embedder: embedder,
		catalog:  catalog,
	}
}

// Index (re)indexes one lesson's transcript and returns the chunk count.
// It is a full replace: all existing chunks for the lesson are deleted
// first, and there is no rollback if embedding fails afterwards.
func (s *Service) Index(ctx context.Context, lessonID, transcript string, timecodes []models.Timecode) (int, error) {
	if strings.TrimSpace(lessonID) == "" {
		return 0, &IndexingError{LessonID: lessonID, Err: errors.New("lesson id is required")}
	}

	if _, err := s.chunks.DeleteByLesson(ctx, lessonID); err != nil {
		return 0, &IndexingError{LessonID: lessonID, Err: fmt.Errorf("failed to delete existing chunks: %w", err)}
	}

	windows := core.ChunkTranscript(transcript, timecodes)
	if len(windows) == 0 {
		return 0, nil
	}

	chunks := make([]models.TranscriptChunk, 0, len(windows))
	for _, window := range windows {
		vector, err := s.embedder.Embed(ctx, window.Text)
		if err != nil {
			return 0, &IndexingError{LessonID: lessonID, Err: fmt.Errorf("failed to embed chunk: %w", err)}
		}
		chunks = append(chunks, models.TranscriptChunk{
			LessonID:     lessonID,
			StartSeconds: window.StartSeconds,
			EndSeconds:   window.EndSeconds,
			Text:         window.Text,
			Vector:       vector,
		})
	}

	stored, err := s.chunks.Insert(ctx, chunks)
	if err != nil {
		return 0, &IndexingError{LessonID: lessonID, Err: fmt.Errorf("failed to store chunks: %w", err)}
	}

	return len(stored), nil
}

// Search embeds the query, scans the index within the requested scope,
// merges adjacent hits, and returns up to the limit. The query is recorded
// in the log asynchronously before returning.
func (s *Service) Search(ctx context.Context, query string, opts models.SearchOptions) ([]models.RankedSnippet, error) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	filter, scopeEmpty := s.scopeFilter(opts)
	if scopeEmpty {
		s.logQuery(query, opts, nil)
		return nil, nil
	}

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &SearchError{Query: query, Err: fmt.Errorf("failed to embed query: %w", err)}
	}

	chunks, err := s.chunks.Scan(ctx, filter)
	if err != nil {
		return nil, &SearchError{Query: query, Err: fmt.Errorf("failed to scan index: %w", err)}
	}

	scored := scoreChunks(chunks, queryVector, threshold)

	results := make([]models.RankedSnippet, 0, len(scored))
	for _, sc := range scored {
		results = append(results, models.RankedSnippet{
			ChunkID:      sc.chunk.ID,
			LessonID:     sc.chunk.LessonID,
			LessonTitle:  s.catalog.LessonTitle(sc.chunk.LessonID),
			StartSeconds: sc.chunk.StartSeconds,
			EndSeconds:   sc.chunk.EndSeconds,
			Text:         sc.chunk.Text,
			Snippet:      core.BuildSnippet(sc.chunk.Text, query),
			Confidence:   sc.score,
		})
	}

	merged := core.MergeAdjacent(results)
	if len(merged) > limit {
		merged = merged[:limit]
	}

	s.logQuery(query, opts, merged)

	return merged, nil
}

// RecentSearches returns the user's most recent queries, newest first.
func (s *Service) RecentSearches(ctx context.Context, userID string, limit int) ([]models.QueryLogEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.queryLog.RecentByUser(ctx, userID, limit)
}

// Analytics summarizes logged queries, optionally scoped to one course.
func (s *Service) Analytics(ctx context.Context, courseID string) (models.Analytics, error) {
	entries, err := s.queryLog.All(ctx)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("failed to read query log: %w", err)
	}
	return summarize(entries, courseID), nil
}

// Flush waits for pending asynchronous log writes. Used on shutdown and by
// tests that assert on the log.
func (s *Service) Flush() {
	s.logWg.Wait()
}

// scopeFilter resolves lesson/course options into a scan filter. The
// second return is true when a course scope resolves to no lessons, which
// must yield zero results rather than an unscoped scan.
func (s *Service) scopeFilter(opts models.SearchOptions) (storage.ScanFilter, bool) {
	if opts.LessonID != "" {
		return storage.ScanFilter{LessonIDs: []string{opts.LessonID}}, false
	}
	if opts.CourseID != "" {
		ids := s.catalog.CourseLessonIDs(opts.CourseID)
		if len(ids) == 0 {
			return storage.ScanFilter{}, true
		}
		return storage.ScanFilter{LessonIDs: ids}, false
	}
	return storage.ScanFilter{}, false
}

// logQuery records the search without ever failing the caller: errors and
// panics from the log store are swallowed with a diagnostic line.
func (s *Service) logQuery(query string, opts models.SearchOptions, results []models.RankedSnippet) {
	topIDs := make([]int64, 0, models.TopResultCount)
	for _, result := range results {
		if len(topIDs) == models.TopResultCount {
			break
		}
		topIDs = append(topIDs, result.ChunkID)
	}

	entry := models.QueryLogEntry{
		SearchID:     newSearchID(),
		UserID:       opts.UserID,
		CourseID:     opts.CourseID,
		QueryText:    query,
		TopResultIDs: topIDs,
	}

	s.logWg.Add(1)
	go func() {
		defer s.logWg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Warning: query log write panicked: %v", r)
			}
		}()
		if _, err := s.queryLog.Append(context.Background(), entry); err != nil {
			log.Printf("Warning: failed to log search query: %v", err)
		}
	}()
}

// newSearchID generates a correlation ID for one search call.
func newSearchID() string {
	return fmt.Sprintf("search_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
