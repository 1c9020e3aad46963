// Package content holds the static training catalog served by the mock API.
package content

import (
	"github.com/shindakun/ethicstraining/internal/models"
)

// Catalog is an immutable set of content collections
type Catalog struct {
	Modules  []models.Module
	Quiz     []models.QuizQuestion
	Videos   []models.Video
	FAQ      []models.FAQ
	Glossary []models.GlossaryTerm
	Users    []models.AdminUser
}

// Get returns the collection for kind. ok is false for unknown kinds.
func (c *Catalog) Get(kind models.ContentKind) (interface{}, bool) {
	switch kind {
	case models.ContentModules:
		return c.Modules, true
	case models.ContentQuiz:
		return c.Quiz, true
	case models.ContentVideos:
		return c.Videos, true
	case models.ContentFAQ:
		return c.FAQ, true
	case models.ContentGlossary:
		return c.Glossary, true
	}
	return nil, false
}

// Default returns the demo catalog
func Default() *Catalog {
	return &Catalog{
		Modules:  modules,
		Quiz:     quiz,
		Videos:   videos,
		FAQ:      faq,
		Glossary: glossary,
		Users:    adminUsers,
	}
}
