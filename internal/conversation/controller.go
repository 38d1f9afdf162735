package conversation

import (
	"context"
	"strings"
	"sync"

	"nutricoach/pkg/llmprovider"
)

type controllerState int

const (
	stateIdle controllerState = iota
	stateContinuing
)

// Controller is the continuation state machine of one conversation. It is
// Idle or Continuing(forText); at most one loop runs at a time.
type Controller struct {
	mu    sync.Mutex
	state controllerState
	// forText is the cleaned text being continued while Continuing.
	forText string
	// lastAutoHandled is the last cleaned text an auto run started for. It
	// only counts while handled is set; "" is a valid cleaned text.
	lastAutoHandled string
	handled         bool
}

// Begin moves Idle to Continuing. It refuses while Continuing and, for
// auto runs, when cleaned was already auto-continued.
func (c *Controller) Begin(cleaned string, auto bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == stateContinuing {
		return false
	}
	if auto {
		if c.handled && cleaned == c.lastAutoHandled {
			return false
		}
		c.lastAutoHandled, c.handled = cleaned, true
	}
	c.state = stateContinuing
	c.forText = cleaned
	return true
}

// End returns to Idle. lastAutoHandled is kept.
func (c *Controller) End() {
	c.mu.Lock()
	c.state = stateIdle
	c.forText = ""
	c.mu.Unlock()
}

// Forget clears the auto-continue guard. It is called when a new assistant
// answer starts, so that answer's truncation is treated as new.
func (c *Controller) Forget() {
	c.mu.Lock()
	c.lastAutoHandled, c.handled = "", false
	c.mu.Unlock()
}

// Continuing reports the state and the text being continued.
func (c *Controller) Continuing() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forText, c.state == stateContinuing
}

// SendFunc issues one continuation request.
type SendFunc func(ctx context.Context, prompt string) (string, error)

// Loop requests up to maxAttempts continuations of cleaned and returns the
// pieces joined by blank lines. It stops on an error, an empty piece, or a
// piece without the truncation marker. It never fails.
func Loop(ctx context.Context, send SendFunc, cleaned string, maxAttempts int) string {
	var acc strings.Builder
	for attempt := 0; attempt < maxAttempts; attempt++ {
		piece, err := send(ctx, ContinuationPrompt(cleaned))
		if err != nil || piece == "" {
			break
		}
		if acc.Len() > 0 {
			acc.WriteString("\n\n")
		}
		acc.WriteString(piece)

		if !llmprovider.HasMarker(piece) {
			break
		}
		cleaned = strings.TrimSpace(cleaned + "\n\n" + llmprovider.StripTruncation(piece))
	}
	return acc.String()
}
