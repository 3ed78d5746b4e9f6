// Package selection tracks the user's chosen skip and coordinates the
// hand-off to the next workflow stage. The hand-off is an explicit payload
// given to an injected Stage collaborator; no ambient storage is involved.
package selection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// ErrNoSelection is returned by Continue when nothing is selected.
var ErrNoSelection = errors.New("no skip selected")

// Handoff is the payload delivered to the next workflow stage.
// The token identifies one continue action; a second Continue call with the
// same selection produces a new token.
type Handoff struct {
	Token uuid.UUID   `json:"token"`
	Skip  domain.Skip `json:"skip"`
}

// Stage is the entry point of the next workflow step (the permit check).
// Implemented outside this package; tests inject a mock.
type Stage interface {
	Begin(h Handoff) error
}

// Controller holds at most one selected skip. Single slot, last write wins.
//
// The controller does not watch the backing result set: when a new retrieval
// replaces the set and the selected id is gone, Current keeps returning the
// stale selection until the observer calls Clear or Select. Invalidation is
// the observer's decision.
type Controller struct {
	selected *domain.Skip
	stage    Stage
}

// NewController constructs a Controller that hands off to stage.
func NewController(stage Stage) *Controller {
	return &Controller{stage: stage}
}

// Select replaces any existing selection unconditionally.
func (c *Controller) Select(skip domain.Skip) {
	s := skip
	c.selected = &s
}

// Clear drops the current selection.
func (c *Controller) Clear() {
	c.selected = nil
}

// Current returns the selected skip, or false when nothing is selected.
func (c *Controller) Current() (domain.Skip, bool) {
	if c.selected == nil {
		return domain.Skip{}, false
	}
	return *c.selected, true
}

// CanContinue reports whether the continue action is enabled.
func (c *Controller) CanContinue() bool {
	return c.selected != nil
}

// Continue hands the selected skip to the next stage and returns the
// delivered payload. The selection is consumed: it is cleared once the
// stage accepts the hand-off.
func (c *Controller) Continue() (Handoff, error) {
	if c.selected == nil {
		return Handoff{}, ErrNoSelection
	}

	h := Handoff{Token: uuid.New(), Skip: *c.selected}
	if err := c.stage.Begin(h); err != nil {
		return Handoff{}, fmt.Errorf("selection.Controller.Continue: %w", err)
	}
	c.selected = nil
	return h, nil
}
