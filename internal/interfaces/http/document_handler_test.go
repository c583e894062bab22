package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alonilk2/accounting-sub001/internal/application/dto"
	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/infrastructure/memory"
	devhttp "github.com/alonilk2/accounting-sub001/internal/interfaces/http"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(withIssuer bool) (*fiber.App, *memory.Store) {
	store := memory.NewStore()
	store.Put(&entity.PrintableDocument{
		ID:            "d1",
		Number:        "1001",
		Date:          time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CustomerID:    "c-100",
		CustomerName:  "Rimon Catering",
		Status:        entity.StatusPaid,
		PaymentMethod: entity.PaymentCredit,
		Lines:         []entity.DocumentLine{{Description: "Goods"}},
		GrandTotal:    decimal.RequireFromString("175.50"),
	})
	store.Put(&entity.PrintableDocument{
		ID:         "d2",
		Number:     "1002",
		Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		CustomerID: "c-101",
		Status:     entity.StatusCancelled,
	})
	store.SetIssuer(&entity.IssuerProfile{
		ID: "1", Name: "Northline Trading Ltd.", TaxID: "514293867",
		Currency:  "ILS",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	app := fiber.New()
	devhttp.Router(app, devhttp.RouterDeps{
		Store:      store,
		Log:        logger.Nop(),
		WithIssuer: withIssuer,
	})
	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, target string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Documents
// ──────────────────────────────────────────────────────────────────────────────

func TestListEndpoint_ReturnsPageEnvelope(t *testing.T) {
	app, _ := buildTestApp(true)
	resp := doRequest(t, app, http.MethodGet, "/documents/?status=PAID")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.DocumentPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "1001", page.Items[0].Number)
	assert.NotEmpty(t, page.Items[0].Date, "dates travel as strings")
}

func TestListEndpoint_RejectsInvertedDateRange(t *testing.T) {
	app, _ := buildTestApp(true)
	resp := doRequest(t, app, http.MethodGet, "/documents/?date_from=2026-06-30&date_to=2026-01-01")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestGetEndpoint_UnknownDocument(t *testing.T) {
	app, _ := buildTestApp(true)
	resp := doRequest(t, app, http.MethodGet, "/documents/nope")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestCancelEndpoint_PaidDocument(t *testing.T) {
	app, store := buildTestApp(true)
	resp := doRequest(t, app, http.MethodPost, "/documents/d1/cancel")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	doc, err := store.Get("d1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, doc.Status)
}

func TestCancelEndpoint_RejectsCancelledDocument(t *testing.T) {
	app, _ := buildTestApp(true)
	resp := doRequest(t, app, http.MethodPost, "/documents/d2/cancel")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestDeleteEndpoint_AnyStatus(t *testing.T) {
	app, store := buildTestApp(true)
	resp := doRequest(t, app, http.MethodDelete, "/documents/d2")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, err := store.Get("d2")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Issuer profile
// ──────────────────────────────────────────────────────────────────────────────

func TestIssuerEndpoint_Served(t *testing.T) {
	app, _ := buildTestApp(true)
	resp := doRequest(t, app, http.MethodGet, "/issuer-profile")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var issuer dto.IssuerProfile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issuer))
	assert.Equal(t, "ILS", issuer.Currency)
}

func TestIssuerEndpoint_AbsentWhenDisabled(t *testing.T) {
	// The client treats this as the degradation path and substitutes the
	// fallback identity.
	app, _ := buildTestApp(false)
	resp := doRequest(t, app, http.MethodGet, "/issuer-profile")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
