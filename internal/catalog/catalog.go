// ABOUTME: Lesson and course catalog loaded from static JSON fixtures
// ABOUTME: Key-value lookups used to resolve titles and course scopes
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coursekit/lessonsearch/internal/models"
)

// Catalog answers lesson and course lookups over static data. It never
// validates that indexed chunks reference known lessons; unknown lessons
// resolve to a placeholder title.
type Catalog struct {
	lessons map[string]models.Lesson
	courses map[string]models.Course
}

// fixtureFile is the JSON shape of a catalog file.
type fixtureFile struct {
	Lessons []models.Lesson `json:"lessons"`
	Courses []models.Course `json:"courses"`
}

// New builds a catalog from lesson and course slices.
func New(lessons []models.Lesson, courses []models.Course) *Catalog {
	c := &Catalog{
		lessons: make(map[string]models.Lesson, len(lessons)),
		courses: make(map[string]models.Course, len(courses)),
	}
	for _, lesson := range lessons {
		c.lessons[lesson.ID] = lesson
	}
	for _, course := range courses {
		c.courses[course.ID] = course
	}
	return c
}

// LoadFile reads a catalog fixture file:
//
//	{"lessons": [{"id": ..., "title": ..., "module_id": ...}],
//	 "courses": [{"id": ..., "title": ..., "lesson_ids": [...]}]}
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var fixtures fixtureFile
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(fixtures.Lessons, fixtures.Courses), nil
}

// Lesson looks up a lesson by ID.
func (c *Catalog) Lesson(id string) (models.Lesson, bool) {
	lesson, ok := c.lessons[id]
	return lesson, ok
}

// LessonTitle resolves a lesson's title, falling back to the placeholder
// for dangling references.
func (c *Catalog) LessonTitle(id string) string {
	if lesson, ok := c.lessons[id]; ok {
		return lesson.Title
	}
	return models.UnknownLessonTitle
}

// CourseLessonIDs returns the lesson IDs under a course, or nil when the
// course is unknown.
func (c *Catalog) CourseLessonIDs(courseID string) []string {
	course, ok := c.courses[courseID]
	if !ok {
		return nil
	}
	return course.LessonIDs
}

// Empty returns a catalog with no lessons or courses. Every title resolves
// to the placeholder; useful when no fixture file is configured.
func Empty() *Catalog {
	return New(nil, nil)
}
