package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/codeconfidence/internal/db"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicateSlug    = errors.New("duplicate document slug")
)

// DocumentStore is the read capability views depend on.
type DocumentStore interface {
	// ListAll returns every document, newest first; equal dates keep discovery order.
	ListAll() ([]db.Document, error)
	// GetBySlug returns ErrDocumentNotFound when nothing matches.
	GetBySlug(slug string) (*db.Document, error)
}

// DocumentService wraps document related database operations.
type DocumentService struct {
	db *gorm.DB
}

// NewDocumentService creates a DocumentService instance.
func NewDocumentService(gdb *gorm.DB) *DocumentService {
	return &DocumentService{db: gdb}
}

// ListAll returns all documents ordered by date descending.
func (s *DocumentService) ListAll() ([]db.Document, error) {
	var docs []db.Document
	if err := s.db.Order("date desc").Order("position asc").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetBySlug fetches a document by its canonical slug.
func (s *DocumentService) GetBySlug(slug string) (*db.Document, error) {
	canonical := db.CanonicalSlug(slug)
	if canonical == "" {
		return nil, ErrDocumentNotFound
	}

	var doc db.Document
	if err := s.db.Where("slug = ?", canonical).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Count returns the number of stored documents.
func (s *DocumentService) Count() (int64, error) {
	var total int64
	if err := s.db.Model(&db.Document{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Replace swaps the stored set for docs in one transaction. On error the
// previous set is kept.
func (s *DocumentService) Replace(docs []db.Document) error {
	if err := ensureUniqueSlugs(docs); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db.Document{}).Error; err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		batch := make([]db.Document, len(docs))
		copy(batch, docs)
		return tx.CreateInBatches(&batch, 100).Error
	})
}

// MemoryStore is a DocumentStore over a fixed slice. It is used for static
// builds and as a fake in tests.
type MemoryStore struct {
	docs   []db.Document
	bySlug map[string]int
}

// NewMemoryStore copies docs, keeping their order as discovery order.
func NewMemoryStore(docs []db.Document) (*MemoryStore, error) {
	if err := ensureUniqueSlugs(docs); err != nil {
		return nil, err
	}

	store := &MemoryStore{
		docs:   make([]db.Document, len(docs)),
		bySlug: make(map[string]int, len(docs)),
	}
	copy(store.docs, docs)
	for i := range store.docs {
		store.docs[i].Slug = db.CanonicalSlug(store.docs[i].Slug)
		store.bySlug[store.docs[i].Slug] = i
	}
	return store, nil
}

// ListAll returns a date-descending copy. The sort is stable.
func (m *MemoryStore) ListAll() ([]db.Document, error) {
	out := make([]db.Document, len(m.docs))
	copy(out, m.docs)
	slices.SortStableFunc(out, func(a, b db.Document) int {
		return b.Date.Compare(a.Date)
	})
	return out, nil
}

// GetBySlug looks up a document by canonical slug.
func (m *MemoryStore) GetBySlug(slug string) (*db.Document, error) {
	idx, ok := m.bySlug[db.CanonicalSlug(slug)]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	doc := m.docs[idx]
	return &doc, nil
}

// Len reports the number of documents in the store.
func (m *MemoryStore) Len() int {
	return len(m.docs)
}

func ensureUniqueSlugs(docs []db.Document) error {
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		slug := db.CanonicalSlug(doc.Slug)
		if _, exists := seen[slug]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
		}
		seen[slug] = struct{}{}
	}
	return nil
}
