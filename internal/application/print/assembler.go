// Package print assembles everything required to render the fixed, print-ready
// representation of one document: the full document record plus a guaranteed
// non-nil issuer identity.
package print

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alonilk2/accounting-sub001/internal/domain/entity"
	"github.com/alonilk2/accounting-sub001/internal/domain/repository"
	"github.com/alonilk2/accounting-sub001/pkg/logger"
)

// Assembler states. Loading is entered on every Load call; Ready and Failed
// hold until the next Load restarts the cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// String for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Issuer provenance values, logged for diagnostics but never surfaced to the
// caller.
const (
	provenanceFetched  = "fetched"
	provenanceFallback = "fallback"
)

// View is the assembled print view: both fields are non-nil when Load
// succeeds, so the render step never sees a partial pair.
type View struct {
	Document *entity.PrintableDocument
	Issuer   *entity.IssuerProfile
}

// Assembler gathers one document and the issuer profile for the print view.
// One assembler serves one print session; callers must not overlap Load
// calls on the same instance.
type Assembler struct {
	docs    repository.DocumentRepository
	issuers repository.IssuerRepository
	log     *logger.Logger
	now     func() time.Time

	mu    sync.Mutex
	state State
}

// NewAssembler constructs the assembler in the Idle state.
func NewAssembler(docs repository.DocumentRepository, issuers repository.IssuerRepository, log *logger.Logger) *Assembler {
	return &Assembler{
		docs:    docs,
		issuers: issuers,
		log:     log.WithComponent("print.assembler"),
		now:     time.Now,
	}
}

// Load fetches and assembles the print view for one document.
//
// The document fetch is the only fatal step: its failure fails the whole
// load and nothing partial is returned. The issuer fetch failing is an
// expected degradation: the fallback literal is substituted with both
// timestamps set to the load instant, and the substitution is logged.
func (a *Assembler) Load(ctx context.Context, documentID string) (*View, error) {
	a.setState(StateLoading)

	// ── 1. Fetch the primary document ────────────────────────────────────────
	doc, err := a.docs.GetByID(ctx, documentID)
	if err != nil {
		a.setState(StateFailed)
		return nil, fmt.Errorf("print: load document %s: %w", documentID, err)
	}

	// ── 2. Fetch the issuer, falling back on any failure ─────────────────────
	provenance := provenanceFetched
	issuer, err := a.issuers.Get(ctx)
	if err != nil || issuer == nil {
		fallback := entity.FallbackIssuerProfile(a.now())
		issuer = &fallback
		provenance = provenanceFallback
		a.log.Warn().Err(err).Str("document_id", documentID).
			Msg("issuer profile unavailable, using fallback identity")
	}

	a.setState(StateReady)
	a.log.Info().Str("document_id", documentID).Str("number", doc.Number).
		Str("issuer_origin", provenance).Msg("print view assembled")
	return &View{Document: doc, Issuer: issuer}, nil
}

// State returns the current lifecycle state of the assembler.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Assembler) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}
