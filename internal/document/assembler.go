// Package document assembles a travel plan into a finished document:
// section building, pagination and serialization, guarded by a
// single-flight render lifecycle.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/layout"
	"github.com/pkordes/travel-planner/backend/internal/section"
)

// Title is the heading repeated on every page.
const Title = "Your Travel Plan"

// AttributionPrefix opens the note closing every document.
const AttributionPrefix = "Generated with AI Travel Planner • "

const dateLayout = "2006-01-02"

// Renderer serializes composed pages.
type Renderer interface {
	Render(ctx context.Context, doc layout.Document) ([]byte, error)
}

// Artifact is a finished document.
type Artifact struct {
	Bytes    []byte
	FileName string
	Pages    int
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithObserver registers fn to receive state transitions.
func WithObserver(fn Observer) Option {
	return func(a *Assembler) { a.observe = fn }
}

// WithClock overrides the clock used for the closing note, the creation
// date and the file-name date fallback.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// Assembler turns plans into artifacts. At most one Assemble call runs at a
// time; the state value is the only guard.
type Assembler struct {
	composer *layout.Composer
	renderer Renderer
	now      func() time.Time
	observe  Observer

	// transition is held across a state change and its notifications, so
	// observers see transitions in the order they happen.
	transition sync.Mutex

	mu    sync.Mutex
	state State
}

// NewAssembler returns an idle Assembler.
func NewAssembler(composer *layout.Composer, renderer Renderer, opts ...Option) *Assembler {
	a := &Assembler{composer: composer, renderer: renderer, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current lifecycle state.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Assemble builds, paginates and serializes plan.
//
// It returns domain.ErrRenderInProgress without side effects when another
// call on the same Assembler is still rendering. Any failure along the way,
// including a panic in the renderer, is wrapped in domain.ErrRenderFailed
// and no bytes are returned. Either way the Assembler is idle again when
// Assemble returns.
func (a *Assembler) Assemble(ctx context.Context, plan domain.TravelPlan) (art Artifact, err error) {
	if !a.begin() {
		return Artifact{}, fmt.Errorf("document.Assembler.Assemble: %w", domain.ErrRenderInProgress)
	}

	terminal := StateFailed
	defer func() {
		if r := recover(); r != nil {
			art, err = Artifact{}, fmt.Errorf("document.Assembler.Assemble: %w: panic: %v", domain.ErrRenderFailed, r)
		}
		a.finish(terminal)
	}()

	art, err = a.assemble(ctx, plan)
	if err != nil {
		return Artifact{}, fmt.Errorf("document.Assembler.Assemble: %w: %w", domain.ErrRenderFailed, err)
	}
	terminal = StateDone
	return art, nil
}

// begin moves Idle to Rendering. A panicking observer leaves the Assembler
// idle.
func (a *Assembler) begin() (ok bool) {
	a.transition.Lock()
	defer a.transition.Unlock()

	a.mu.Lock()
	if a.state != StateIdle {
		a.mu.Unlock()
		return false
	}
	a.state = StateRendering
	a.mu.Unlock()

	defer func() {
		if !ok {
			a.setState(StateIdle)
		}
	}()
	a.notify(StateIdle, StateRendering)
	return true
}

// finish records the terminal state and returns to idle. The state is idle
// before any observer runs; a concurrent begin waits for the notifications.
func (a *Assembler) finish(terminal State) {
	a.transition.Lock()
	defer a.transition.Unlock()

	a.setState(StateIdle)
	a.notify(StateRendering, terminal)
	a.notify(terminal, StateIdle)
}

func (a *Assembler) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Assembler) notify(from, to State) {
	if a.observe != nil {
		a.observe(from, to)
	}
}

func (a *Assembler) assemble(ctx context.Context, plan domain.TravelPlan) (Artifact, error) {
	now := a.now()

	sections := make([]section.Section, 0, len(section.Kinds))
	for _, kind := range section.Kinds {
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
		sec, err := section.Build(kind, plan)
		if err != nil {
			return Artifact{}, err
		}
		sections = append(sections, sec)
	}
	last := &sections[len(sections)-1]
	last.Blocks = append(last.Blocks, ClosingNote(now))

	pages := a.composer.Compose(HeaderFor(plan), sections)

	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	out, err := a.renderer.Render(ctx, layout.Document{Title: Title, CreatedAt: now, Pages: pages})
	if err != nil {
		return Artifact{}, err
	}
	if len(out) == 0 {
		return Artifact{}, errors.New("renderer produced no output")
	}

	return Artifact{Bytes: out, FileName: FileName(plan, now), Pages: len(pages)}, nil
}

// HeaderFor returns the running header of plan's document.
func HeaderFor(plan domain.TravelPlan) layout.Header {
	first, last := plan.DateRange()
	src, dst := plan.Route()
	return layout.Header{
		Title: Title,
		Dates: first + " to " + last,
		Route: src + " to " + dst,
	}
}

// ClosingNote is the attribution block ending the last page.
func ClosingNote(now time.Time) section.Block {
	return section.Block{
		Kind:  section.Item,
		Level: 1,
		Text:  AttributionPrefix + now.Format(dateLayout),
		Style: section.StyleNote,
	}
}

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-")

// FileName derives the download name, e.g.
// Travel_Plan_Delhi_to_Goa_2023-12-15.pdf. Without an itinerary the date
// is now's.
func FileName(plan domain.TravelPlan, now time.Time) string {
	src, dst := plan.Route()
	date := plan.FirstDate()
	if date == "" {
		date = now.Format(dateLayout)
	}
	name := fmt.Sprintf("Travel_Plan_%s_to_%s_%s", src, dst, date)
	return fileNameReplacer.Replace(name) + ".pdf"
}
