package overlays

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEditDialogFiltersNonHexInput(t *testing.T) {
	dialog := NewEditDialog(0, "aabbcc")
	dialog.input.SetValue("")

	for _, r := range "fz/0 X!" {
		model, _ := dialog.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		dialog = model.(*EditDialog)
	}

	if got := dialog.input.Value(); got != "f0" {
		t.Fatalf("input value = %q want %q", got, "f0")
	}
}

func TestEditDialogConfirmEmitsPositionAndText(t *testing.T) {
	dialog := NewEditDialog(3, "112233")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command from enter")
	}

	msg, ok := cmd().(EditConfirmedMsg)
	if !ok {
		t.Fatalf("expected EditConfirmedMsg, got %T", cmd())
	}
	if msg.Position != 3 || msg.Hex != "112233" {
		t.Fatalf("got position=%d hex=%q", msg.Position, msg.Hex)
	}
}

func TestEditDialogClearEmptiesInput(t *testing.T) {
	dialog := NewEditDialog(0, "445566")

	model, _ := dialog.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	dialog = model.(*EditDialog)

	if got := dialog.input.Value(); got != "" {
		t.Fatalf("input value = %q want empty after clear", got)
	}
}
