package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestWizardStepTransitions(t *testing.T) {
	t.Run("name to prompt", func(t *testing.T) {
		w := newWizardModel()
		if w.step != stepName {
			t.Fatalf("initial step = %v, want stepName", w.step)
		}

		w.nameInput.SetValue("demo")

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if done {
			t.Error("should not be done after name step")
		}
		if opts != nil {
			t.Error("opts should be nil")
		}
		if w.step != stepPrompt {
			t.Errorf("step = %v, want stepPrompt", w.step)
		}
		if w.promptInput.Value() != "demo" {
			t.Errorf("prompt = %q, want it to default to the name", w.promptInput.Value())
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		w := newWizardModel()
		w.nameInput.SetValue("   ")

		done, _, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if done {
			t.Error("should not be done")
		}
		if w.step != stepName {
			t.Error("should stay on stepName with empty input")
		}
	})

	t.Run("invalid name rejected", func(t *testing.T) {
		w := newWizardModel()
		w.nameInput.SetValue("INVALID NAME")

		w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if w.step != stepName {
			t.Error("should stay on stepName with invalid name")
		}
		if w.nameErr == nil {
			t.Error("nameErr should be set")
		}
		if !strings.Contains(w.View(), w.nameErr.Error()) {
			t.Error("view should show the validation error")
		}
	})

	t.Run("prompt to confirm", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepPrompt
		w.selectedName = "demo"
		w.promptInput.SetValue("demo-env")

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if done || opts != nil {
			t.Error("should not be done")
		}
		if w.step != stepConfirm {
			t.Errorf("step = %v, want stepConfirm", w.step)
		}
		if w.selectedPrompt != "demo-env" {
			t.Errorf("selectedPrompt = %q", w.selectedPrompt)
		}
	})

	t.Run("blank prompt falls back to name", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepPrompt
		w.selectedName = "demo"

		w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if w.selectedPrompt != "demo" {
			t.Errorf("selectedPrompt = %q, want demo", w.selectedPrompt)
		}
	})

	t.Run("edited prompt survives going back", func(t *testing.T) {
		w := newWizardModel()
		w.nameInput.SetValue("demo")
		w.Update(tea.KeyMsg{Type: tea.KeyEnter})

		w.promptInput.SetValue("custom")
		w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if w.step != stepName {
			t.Fatalf("step = %v, want stepName", w.step)
		}

		w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if w.promptInput.Value() != "custom" {
			t.Errorf("prompt = %q, want custom", w.promptInput.Value())
		}
	})
}

func TestWizardConfirm(t *testing.T) {
	t.Run("enter confirms and produces CreateOptions", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepConfirm
		w.selectedName = "demo"
		w.selectedPrompt = "demo-env"

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !done {
			t.Error("should be done after confirm")
		}
		if opts == nil {
			t.Fatal("opts should not be nil")
		}
		if opts.Name != "demo" {
			t.Errorf("Name = %q, want %q", opts.Name, "demo")
		}
		if opts.Prompt != "demo-env" {
			t.Errorf("Prompt = %q, want %q", opts.Prompt, "demo-env")
		}
	})

	t.Run("y confirms", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepConfirm
		w.selectedName = "demo"

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
		if !done || opts == nil {
			t.Error("y should confirm")
		}
	})

	t.Run("n restarts wizard", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepConfirm
		w.selectedName = "demo"
		w.selectedPrompt = "demo"

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		if done {
			t.Error("should not be done after restart")
		}
		if opts != nil {
			t.Error("opts should be nil")
		}
		if w.step != stepName {
			t.Errorf("step = %v, want stepName", w.step)
		}
		if w.selectedName != "" {
			t.Error("name should be cleared")
		}
	})
}

func TestWizardCancel(t *testing.T) {
	t.Run("ctrl+c cancels", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepPrompt

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if !done {
			t.Error("should be done after cancel")
		}
		if opts != nil {
			t.Error("opts should be nil (cancelled)")
		}
	})

	t.Run("esc at first step cancels", func(t *testing.T) {
		w := newWizardModel()

		done, opts, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if !done {
			t.Error("should be done after esc at first step")
		}
		if opts != nil {
			t.Error("opts should be nil (cancelled)")
		}
	})

	t.Run("esc at confirm goes back to prompt", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepConfirm

		done, _, _ := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if done {
			t.Error("should not be done")
		}
		if w.step != stepPrompt {
			t.Errorf("step = %v, want stepPrompt", w.step)
		}
	})
}

func TestWizardView(t *testing.T) {
	t.Run("name step shows input", func(t *testing.T) {
		w := newWizardModel()
		view := w.View()
		if !strings.Contains(view, "Create New Project") {
			t.Error("should contain title")
		}
		if !strings.Contains(view, "Project name") {
			t.Error("should contain name label")
		}
		if !strings.Contains(view, "1. Name") {
			t.Error("should contain progress bar")
		}
	})

	t.Run("confirm step shows values", func(t *testing.T) {
		w := newWizardModel()
		w.step = stepConfirm
		w.selectedName = "demo"
		w.selectedPrompt = "demo-env"

		view := w.View()
		if !strings.Contains(view, "demo") {
			t.Error("should show name")
		}
		if !strings.Contains(view, "demo-env") {
			t.Error("should show prompt")
		}
	})
}

func TestWizardProgram(t *testing.T) {
	w := newWizardModel()
	w.step = stepConfirm
	w.selectedName = "demo"
	w.selectedPrompt = "demo"

	var m tea.Model = wizardProgram{wizard: &w}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("confirm should return a quit command")
	}

	p := m.(wizardProgram)
	if p.result == nil || p.result.Name != "demo" {
		t.Errorf("result = %+v, want Name demo", p.result)
	}
	if p.View() != "" {
		t.Error("view should be empty once quitting")
	}

	c := newWizardModel()
	m = wizardProgram{wizard: &c}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.(wizardProgram).result != nil {
		t.Error("cancel should leave a nil result")
	}
}
