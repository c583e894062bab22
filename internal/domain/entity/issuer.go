package entity

import "time"

// IssuerProfile is the company identity printed on documents: either fetched
// from the backend or substituted from the fallback literal when the
// issuer-profile endpoint is absent or failing.
type IssuerProfile struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Currency  string // ISO 4217, e.g. "ILS"
	Phone     string
	Email     string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FallbackIssuerProfile returns the fixed substitute identity used when the
// issuer fetch fails. Field values are stable placeholders; both timestamps
// are set to the load instant.
func FallbackIssuerProfile(now time.Time) IssuerProfile {
	return IssuerProfile{
		ID:        "1",
		Name:      "My Business Ltd.",
		TaxID:     "123456789",
		Address:   "1 Rothschild Blvd, Tel Aviv",
		Currency:  "ILS",
		Phone:     "03-1234567",
		Email:     "office@mybusiness.co.il",
		Website:   "www.mybusiness.co.il",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
