package models

import "time"

// ContentKind names one of the static content collections
type ContentKind string

const (
	ContentModules  ContentKind = "modules"
	ContentQuiz     ContentKind = "quiz"
	ContentVideos   ContentKind = "videos"
	ContentFAQ      ContentKind = "faq"
	ContentGlossary ContentKind = "glossary"
)

// ContentKinds lists every kind served under /api/content
var ContentKinds = []ContentKind{ContentModules, ContentQuiz, ContentVideos, ContentFAQ, ContentGlossary}

// ParseContentKind converts a path segment into a ContentKind
func ParseContentKind(s string) (ContentKind, bool) {
	for _, k := range ContentKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Module is a training module
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Lessons     int      `json:"lessons"`
	Topics      []string `json:"topics"`
	Required    bool     `json:"required"`
}

// QuizQuestion is a multiple-choice knowledge check attached to a module
type QuizQuestion struct {
	ID            string   `json:"id"`
	ModuleID      string   `json:"moduleId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // index into Options
	Explanation   string   `json:"explanation"`
}

// Video is a training video
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail"`
	ModuleID    string `json:"moduleId,omitempty"`
}

// FAQ is a frequently asked question
type FAQ struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GlossaryTerm is an ethics vocabulary entry
type GlossaryTerm struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Reference  string `json:"reference,omitempty"`
}

// ListResponse wraps every content payload
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the body of every non-login failure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Health is the body of GET /api/health
type Health struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime"` // seconds
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Instance    string    `json:"instance"`
}
