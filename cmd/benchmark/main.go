// ABOUTME: Command-line benchmark for indexing and search latency
// ABOUTME: Seeds synthetic lessons and reports timing as JSON

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/coursekit/lessonsearch/internal/catalog"
	"github.com/coursekit/lessonsearch/internal/embed"
	"github.com/coursekit/lessonsearch/internal/models"
	"github.com/coursekit/lessonsearch/internal/search"
	"github.com/coursekit/lessonsearch/internal/storage"
)

var sampleWords = []string{
	"function", "variable", "closure", "recursion", "array", "pointer",
	"interface", "method", "struct", "channel", "goroutine", "loop",
	"condition", "return", "value", "type", "error", "handler", "module",
	"lesson", "example", "practice", "exercise", "concept", "pattern",
}

type benchResult struct {
	Lessons        int           `json:"lessons"`
	ChunksIndexed  int           `json:"chunks_indexed"`
	IndexDuration  time.Duration `json:"index_duration_ns"`
	Searches       int           `json:"searches"`
	SearchDuration time.Duration `json:"search_duration_ns"`
	AvgSearchMs    float64       `json:"avg_search_ms"`
}

func main() {
	lessons := flag.Int("lessons", 20, "Number of synthetic lessons to index")
	searches := flag.Int("searches", 50, "Number of search queries to run")
	chunkCount := flag.Int("chunks", 10, "Approximate chunks per lesson")
	outputPath := flag.String("output", "", "Optional path for JSON results (default stdout)")
	flag.Parse()

	store := storage.NewMemoryStore()
	embedder := embed.NewCachedEmbedder(embed.NewMockEmbedderWithDelay(0, 0))
	service := search.NewService(store, store, embedder, catalog.Empty())
	ctx := context.Background()

	fmt.Println("========================================")
	fmt.Println("lessonsearch benchmark")
	fmt.Println("========================================")

	result := benchResult{Lessons: *lessons, Searches: *searches}

	indexStart := time.Now()
	for i := 0; i < *lessons; i++ {
		lessonID := fmt.Sprintf("lesson-%03d", i)
		count, err := service.Index(ctx, lessonID, syntheticTranscript(*chunkCount), nil)
		if err != nil {
			log.Fatalf("Indexing failed: %v", err)
		}
		result.ChunksIndexed += count
	}
	result.IndexDuration = time.Since(indexStart)
	fmt.Printf("Indexed %d chunks across %d lessons in %v\n",
		result.ChunksIndexed, *lessons, result.IndexDuration)

	searchStart := time.Now()
	for i := 0; i < *searches; i++ {
		query := sampleWords[rand.IntN(len(sampleWords))] + " " + sampleWords[rand.IntN(len(sampleWords))]
		if _, err := service.Search(ctx, query, models.SearchOptions{UserID: "bench"}); err != nil {
			log.Fatalf("Search failed: %v", err)
		}
	}
	service.Flush()
	result.SearchDuration = time.Since(searchStart)
	result.AvgSearchMs = float64(result.SearchDuration.Milliseconds()) / float64(*searches)
	fmt.Printf("Ran %d searches in %v (avg %.2fms)\n",
		*searches, result.SearchDuration, result.AvgSearchMs)

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal results: %v", err)
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, jsonData, 0o644); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		fmt.Printf("Results written to %s\n", *outputPath)
	} else {
		fmt.Println(string(jsonData))
	}
}

// syntheticTranscript produces roughly chunkCount chunks worth of text.
func syntheticTranscript(chunkCount int) string {
	var sb strings.Builder
	// ~500 chars per chunk, words average ~8 chars with separator
	wordTotal := chunkCount * 70
	for i := 0; i < wordTotal; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sampleWords[rand.IntN(len(sampleWords))])
	}
	return sb.String()
}
