// ABOUTME: Lesson and Course catalog models
// ABOUTME: Minimal key-value lookup shapes consumed by the search service
package models

// Lesson is the catalog view of a single lesson.
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ModuleID string `json:"module_id"`
}

// Course groups lessons for search scoping.
type Course struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	LessonIDs []string `json:"lesson_ids"`
}
