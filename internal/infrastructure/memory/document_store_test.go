package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alonilk2/accounting-sub001/internal/domain"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
)

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	docs := []struct {
		id, number, customer, status string
		dayOffset                    int
		total                        string
	}{
		{"d1", "1001", "c-100", entity.StatusPaid, 0, "150.00"},
		{"d2", "1002", "c-101", entity.StatusPaid, 1, "820.50"},
		{"d3", "1003", "c-100", entity.StatusCancelled, 2, "96.00"},
		{"d4", "2001", "c-102", entity.StatusPaid, 3, "1240.00"},
	}
	for _, d := range docs {
		total, err := decimal.NewFromString(d.total)
		require.NoError(t, err)
		s.Put(&entity.PrintableDocument{
			ID:         d.id,
			Number:     d.number,
			Date:       base.AddDate(0, 0, d.dayOffset),
			CustomerID: d.customer,
			Status:     d.status,
			Lines:      []entity.DocumentLine{{Description: "Goods"}},
			GrandTotal: total,
		})
	}
	return s
}

func listIDs(t *testing.T, s *Store, c repository.FilterCriteria) []string {
	t.Helper()
	page, err := s.List(c)
	require.NoError(t, err)
	ids := make([]string, 0, len(page.Items))
	for _, it := range page.Items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestList_NumberSubstringMatch(t *testing.T) {
	s := fixtureStore(t)
	c := repository.DefaultCriteria()
	c.Number = "100"

	page, err := s.List(c)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount, `"100" matches 1001, 1002, 1003 but not 2001`)
}

func TestList_StatusAndCustomerFilters(t *testing.T) {
	s := fixtureStore(t)

	c := repository.DefaultCriteria()
	c.Status = entity.StatusPaid
	c.CustomerID = "c-100"
	ids := listIDs(t, s, c)
	assert.Equal(t, []string{"d1"}, ids)
}

func TestList_DateRangeIsInclusive(t *testing.T) {
	s := fixtureStore(t)

	from := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)
	c := repository.DefaultCriteria()
	c.DateFrom = &from
	c.DateTo = &to
	c.SortDir = repository.SortAsc

	// d2 is dated 2026-06-02 12:00 and d3 2026-06-03 12:00; both inside the
	// inclusive calendar-day range even though the bound has no time part.
	assert.Equal(t, []string{"d2", "d3"}, listIDs(t, s, c))
}

func TestList_SortingAndDirection(t *testing.T) {
	s := fixtureStore(t)

	c := repository.DefaultCriteria() // date desc
	assert.Equal(t, []string{"d4", "d3", "d2", "d1"}, listIDs(t, s, c))

	c.SortBy = repository.SortByTotal
	c.SortDir = repository.SortAsc
	assert.Equal(t, []string{"d3", "d1", "d2", "d4"}, listIDs(t, s, c))

	c.SortBy = repository.SortByNumber
	c.SortDir = repository.SortDesc
	assert.Equal(t, []string{"d4", "d3", "d2", "d1"}, listIDs(t, s, c))
}

func TestList_PaginationBounds(t *testing.T) {
	s := fixtureStore(t)

	c := repository.DefaultCriteria()
	c.PageSize = 3
	page, err := s.List(c)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 4, page.TotalCount)

	c.Page = 2
	page, err = s.List(c)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	c.Page = 5 // past the end: empty page, same total
	page, err = s.List(c)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.TotalCount)
}

func TestCancel_OnlyPaidDocuments(t *testing.T) {
	s := fixtureStore(t)
	require.Equal(t, 1, s.OpenReservations("d1"))

	require.NoError(t, s.Cancel("d1"))
	doc, err := s.Get("d1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, doc.Status)
	assert.Zero(t, s.OpenReservations("d1"), "reservations released on cancel")

	err = s.Cancel("d1")
	assert.ErrorIs(t, err, domain.ErrValidation, "cancelled documents cannot be re-cancelled")

	err = s.Cancel("d3")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDelete_AnyStatus(t *testing.T) {
	s := fixtureStore(t)

	require.NoError(t, s.Delete("d3")) // cancelled
	require.NoError(t, s.Delete("d1")) // paid

	_, err := s.Get("d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Delete("d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page, err := s.List(repository.DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	s := fixtureStore(t)

	doc, err := s.Get("d1")
	require.NoError(t, err)
	doc.Status = entity.StatusCancelled
	doc.Lines[0].Description = "tampered"

	again, err := s.Get("d1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, again.Status, "stored record untouched by caller mutation")
	assert.Equal(t, "Goods", again.Lines[0].Description)
}

// Exercised under -race: List sorts and summarizes while Cancel rewrites
// record status from another goroutine.
func TestStore_ConcurrentListAndCancel(t *testing.T) {
	s := NewStore()
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		s.Put(&entity.PrintableDocument{
			ID:         fmt.Sprintf("d%d", i),
			Number:     fmt.Sprintf("10%02d", i),
			Date:       base.AddDate(0, 0, i),
			Status:     entity.StatusPaid,
			Lines:      []entity.DocumentLine{{Description: "Goods"}},
			GrandTotal: decimal.NewFromInt(int64(i + 1)),
		})
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c := repository.DefaultCriteria()
		c.SortBy = repository.SortByTotal
		for i := 0; i < 100; i++ {
			_, err := s.List(c)
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			require.NoError(t, s.Cancel(fmt.Sprintf("d%d", i)))
		}
	}()
	wg.Wait()

	c := repository.DefaultCriteria()
	c.Status = entity.StatusCancelled
	page, err := s.List(c)
	require.NoError(t, err)
	assert.Equal(t, 50, page.TotalCount)
}

func TestSeededStore_ServesIssuerAndDocuments(t *testing.T) {
	s := NewSeededStore()
	require.NotNil(t, s.Issuer())
	assert.Equal(t, "ILS", s.Issuer().Currency)

	page, err := s.List(repository.DefaultCriteria())
	require.NoError(t, err)
	assert.NotEmpty(t, page.Items)
	for i, it := range page.Items {
		require.NotEmpty(t, it.ID, fmt.Sprintf("seed %d has an id", i))
	}
}
