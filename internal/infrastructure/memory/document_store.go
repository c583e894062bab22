// Package memory backs the local development server with an in-memory
// document store. It mirrors the behavior of the real backend at the
// contract level: substring/number filtering, inclusive date ranges,
// server-side sorting, 1-based pagination, and the PAID-only cancel rule.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
)

// Store holds full document records plus the issuer profile. Safe for
// concurrent handlers.
type Store struct {
	mu           sync.RWMutex
	docs         map[string]*entity.PrintableDocument
	reservations map[string]int // open stock reservations per document
	issuer       *entity.IssuerProfile
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{
		docs:         make(map[string]*entity.PrintableDocument),
		reservations: make(map[string]int),
	}
}

// Put inserts or replaces a document, assigning an ID when missing. PAID
// documents hold one stock reservation per line until cancelled or deleted.
func (s *Store) Put(doc *entity.PrintableDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	s.docs[doc.ID] = doc
	if doc.Status == entity.StatusPaid {
		s.reservations[doc.ID] = len(doc.Lines)
	}
}

// SetIssuer installs the issuer profile served by /issuer-profile.
func (s *Store) SetIssuer(p *entity.IssuerProfile) {
	s.mu.Lock()
	s.issuer = p
	s.mu.Unlock()
}

// Issuer returns the installed issuer profile, nil when absent.
func (s *Store) Issuer() *entity.IssuerProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.issuer
}

// Get returns a copy of one full document record. Handlers serialize the
// result outside the lock, so the stored record is never shared.
func (s *Store) Get(id string) (*entity.PrintableDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}
	return cloneDocument(doc), nil
}

// List applies the criteria and returns one page of summaries in the
// requested order.
func (s *Store) List(criteria repository.FilterCriteria) (*repository.PageResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	// Sorting and summarizing read record fields that Cancel mutates, so the
	// read lock is held until the page is built.
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.PrintableDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		if matches(doc, criteria) {
			matched = append(matched, doc)
		}
	}

	sortDocuments(matched, criteria.SortBy, criteria.SortDir)

	total := len(matched)
	start := (criteria.Page - 1) * criteria.PageSize
	if start > total {
		start = total
	}
	end := start + criteria.PageSize
	if end > total {
		end = total
	}

	items := make([]entity.DocumentSummary, 0, end-start)
	for _, doc := range matched[start:end] {
		items = append(items, summarize(doc))
	}
	return &repository.PageResult{Items: items, TotalCount: total}, nil
}

// Cancel transitions PAID → CANCELLED and releases the document's stock
// reservations. Any other starting status is rejected as a validation
// failure, matching the real backend.
func (s *Store) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}
	if doc.Status != entity.StatusPaid {
		return fmt.Errorf("%w: document %s is %s and cannot be cancelled", domain.ErrValidation, id, doc.Status)
	}
	doc.Status = entity.StatusCancelled
	doc.UpdatedAt = time.Now()
	delete(s.reservations, id)
	return nil
}

// Delete removes the document regardless of status.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}
	delete(s.docs, id)
	delete(s.reservations, id)
	return nil
}

// OpenReservations reports the open stock reservations of one document.
func (s *Store) OpenReservations(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reservations[id]
}

func matches(doc *entity.PrintableDocument, c repository.FilterCriteria) bool {
	if c.Number != "" && !strings.Contains(doc.Number, c.Number) {
		return false
	}
	if c.CustomerID != "" && doc.CustomerID != c.CustomerID {
		return false
	}
	if c.Status != "" && doc.Status != c.Status {
		return false
	}
	if c.DateFrom != nil && doc.Date.Before(*c.DateFrom) {
		return false
	}
	if c.DateTo != nil && doc.Date.After(endOfDay(*c.DateTo)) {
		return false
	}
	return true
}

// endOfDay makes the DateTo bound inclusive for documents dated within the
// final day of the range.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func sortDocuments(docs []*entity.PrintableDocument, by, dir string) {
	less := func(a, b *entity.PrintableDocument) bool {
		switch by {
		case repository.SortByNumber:
			return a.Number < b.Number
		case repository.SortByTotal:
			return a.GrandTotal.LessThan(b.GrandTotal)
		default: // repository.SortByDate
			if !a.Date.Equal(b.Date) {
				return a.Date.Before(b.Date)
			}
			// Stable tie-break so pagination never shows a row twice.
			return a.Number < b.Number
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if dir == repository.SortAsc {
			return less(docs[i], docs[j])
		}
		return less(docs[j], docs[i])
	})
}

// cloneDocument deep-copies a record so callers can hold it unlocked.
func cloneDocument(doc *entity.PrintableDocument) *entity.PrintableDocument {
	out := *doc
	if doc.DueDate != nil {
		due := *doc.DueDate
		out.DueDate = &due
	}
	out.Lines = make([]entity.DocumentLine, len(doc.Lines))
	copy(out.Lines, doc.Lines)
	return &out
}

func summarize(doc *entity.PrintableDocument) entity.DocumentSummary {
	return entity.DocumentSummary{
		ID:            doc.ID,
		Number:        doc.Number,
		Date:          doc.Date,
		CustomerName:  doc.CustomerName,
		Status:        doc.Status,
		PaymentMethod: doc.PaymentMethod,
		TotalAmount:   doc.GrandTotal,
	}
}
