package prompts

import (
	"errors"
	"strings"
	"testing"

	"visionassist/internal/domain"
)

func TestRegistryCoversAllNonCustomModes(t *testing.T) {
	reg := NewRegistry()
	for _, mode := range domain.Modes() {
		if mode == domain.ModeCustom {
			continue
		}
		pair, err := reg.Lookup(mode)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", mode, err)
		}
		if strings.TrimSpace(pair.Vision) == "" {
			t.Fatalf("mode %q has empty vision prompt", mode)
		}
		if strings.TrimSpace(pair.Rewrite) == "" {
			t.Fatalf("mode %q has empty rewrite template", mode)
		}
		if strings.Count(pair.Rewrite, Slot) != 1 {
			t.Fatalf("mode %q rewrite template has %d %q slots, want 1", mode, strings.Count(pair.Rewrite, Slot), Slot)
		}
	}
}

func TestRegistryCustomModeHasNoEntry(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Lookup(domain.ModeCustom); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("Lookup(custom) error = %v, want ErrConfiguration", err)
	}
}

func TestRegistryUnknownModeFailsWithConfigurationError(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Lookup(domain.ProcessingMode("braille_translation")); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("Lookup(unregistered) error = %v, want ErrConfiguration", err)
	}
}

func TestPairFillSubstitutesSlotOnce(t *testing.T) {
	pair := Pair{Rewrite: "Context before.\n" + Slot + "\nContext after."}
	filled, ok := pair.Fill("a red door")
	if !ok {
		t.Fatal("Fill reported missing slot")
	}
	if !strings.Contains(filled, "a red door") {
		t.Fatalf("filled template missing description: %q", filled)
	}
	if strings.Contains(filled, Slot) {
		t.Fatalf("filled template still contains slot token: %q", filled)
	}
}

func TestPairFillMissingSlotReturnsTemplateVerbatim(t *testing.T) {
	pair := Pair{Rewrite: "A template someone authored without the placeholder."}
	filled, ok := pair.Fill("a red door")
	if ok {
		t.Fatal("Fill reported a slot where none exists")
	}
	if filled != pair.Rewrite {
		t.Fatalf("verbatim template mutated: %q", filled)
	}
}

func TestRegistryModesExcludesCustom(t *testing.T) {
	reg := NewRegistry()
	for _, m := range reg.Modes() {
		if m == domain.ModeCustom {
			t.Fatal("Modes() listed custom mode")
		}
	}
	if len(reg.Modes()) != len(domain.Modes())-1 {
		t.Fatalf("Modes() returned %d modes, want %d", len(reg.Modes()), len(domain.Modes())-1)
	}
}
