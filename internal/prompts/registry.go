// Package prompts holds the static mapping from processing mode to the
// prompt pair driving the two-stage pipeline: a vision prompt sent with the
// image and a rewrite template applied to the vision model's output.
package prompts

import (
	"fmt"
	"strings"

	"visionassist/internal/domain"
)

// Slot is the placeholder in a rewrite template that receives the vision
// model's description.
const Slot = "{vlm_description}"

// Pair is an immutable prompt pair for one processing mode.
type Pair struct {
	Vision  string
	Rewrite string
}

// Fill substitutes the vision description into the rewrite template. The
// second return value reports whether the slot was present; when it is not,
// the template is returned verbatim and the caller decides how to flag it.
func (p Pair) Fill(visionDescription string) (string, bool) {
	if !strings.Contains(p.Rewrite, Slot) {
		return p.Rewrite, false
	}
	return strings.Replace(p.Rewrite, Slot, visionDescription, 1), true
}

// Registry maps processing modes to prompt pairs. It is populated once at
// construction and never mutated, so concurrent lookups need no locking.
type Registry struct {
	pairs map[domain.ProcessingMode]Pair
}

// NewRegistry builds the registry with the shipped prompt pairs. Custom mode
// has no entry: its vision prompt comes from the caller.
func NewRegistry() *Registry {
	return &Registry{pairs: defaultPairs()}
}

// Lookup returns the prompt pair for a mode. A missing entry is a
// configuration error: it can only happen for a mode added without prompts.
func (r *Registry) Lookup(mode domain.ProcessingMode) (Pair, error) {
	pair, ok := r.pairs[mode]
	if !ok {
		return Pair{}, fmt.Errorf("%w: no prompt pair registered for mode %q", domain.ErrConfiguration, mode)
	}
	return pair, nil
}

// Modes returns the modes with a registered pair.
func (r *Registry) Modes() []domain.ProcessingMode {
	out := make([]domain.ProcessingMode, 0, len(r.pairs))
	for _, m := range domain.Modes() {
		if _, ok := r.pairs[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
