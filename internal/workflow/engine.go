// Package workflow implements the interactive project operations: add,
// update, delete, finalize, the view/search reports, and the entity
// resolution they depend on.
//
// Every operation follows the same error policy: input validation failures
// re-prompt, store failures and not-found conditions print a message and
// abort the operation. Methods return a non-nil error only when user input
// is exhausted, so the caller can stop its loop.
package workflow

import (
	"fmt"
	"time"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/record"
	"github.com/poisedms/poised/internal/storage"
)

// Engine runs project operations against the store, driving all user
// dialog through a single Prompter.
type Engine struct {
	store *storage.DB
	p     *prompt.Prompter
	now   func() time.Time
}

// New returns an Engine over the given store and prompter.
func New(store *storage.DB, p *prompt.Prompter) *Engine {
	return &Engine{store: store, p: p, now: time.Now}
}

// today returns the current date as an ISO string.
func (e *Engine) today() string {
	return e.now().Format(record.DateLayout)
}

// printf writes user-facing output.
func (e *Engine) printf(format string, args ...any) {
	fmt.Fprintf(e.p.Out(), format, args...)
}
