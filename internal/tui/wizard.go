package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/pyforage/internal/project"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepName wizardStep = iota
	stepPrompt
	stepConfirm
)

// wizardModel drives the multi-step project wizard.
type wizardModel struct {
	step wizardStep

	nameInput   textinput.Model
	promptInput textinput.Model

	// Collected values
	selectedName   string
	selectedPrompt string

	// nameErr is the validation failure of the last submitted name
	nameErr error
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

func newWizardModel() wizardModel {
	ni := textinput.New()
	ni.Placeholder = "my-project"
	ni.Focus()
	ni.CharLimit = 128
	ni.Width = 40

	pi := textinput.New()
	pi.CharLimit = 128
	pi.Width = 40

	return wizardModel{
		step:        stepName,
		nameInput:   ni,
		promptInput: pi,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a message and returns (done, createOptions, cmd).
// done=true with non-nil opts means wizard completed successfully.
// done=true with nil opts means wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *project.CreateOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepName:
		return w.updateName(msg)
	case stepPrompt:
		return w.updatePrompt(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *project.CreateOptions, tea.Cmd) {
	switch w.step {
	case stepName:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepPrompt:
		w.step = stepName
		w.promptInput.Blur()
		w.nameInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepPrompt
		w.promptInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updateName(msg tea.Msg) (bool, *project.CreateOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			return false, nil, nil
		}
		if err := config.ValidateProjectName(name); err != nil {
			w.nameErr = err
			return false, nil, nil
		}
		w.nameErr = nil

		// Keep a prompt the user already edited; otherwise follow the name.
		if w.promptInput.Value() == "" || w.promptInput.Value() == w.selectedName {
			w.promptInput.SetValue(name)
		}
		w.selectedName = name
		w.step = stepPrompt
		w.nameInput.Blur()
		w.promptInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updatePrompt(msg tea.Msg) (bool, *project.CreateOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		prompt := strings.TrimSpace(w.promptInput.Value())
		if prompt == "" {
			prompt = w.selectedName
		}
		w.selectedPrompt = prompt
		w.step = stepConfirm
		w.promptInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.promptInput, cmd = w.promptInput.Update(msg)
	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *project.CreateOptions, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, &project.CreateOptions{
				Name:   w.selectedName,
				Prompt: w.selectedPrompt,
			}, nil
		case "n":
			// Restart wizard
			w.step = stepName
			w.nameInput.SetValue("")
			w.promptInput.SetValue("")
			w.nameInput.Focus()
			w.selectedName = ""
			w.selectedPrompt = ""
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Create New Project"))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepName:
		b.WriteString(wizardLabelStyle.Render("Project name:"))
		b.WriteString("\n")
		b.WriteString(w.nameInput.View())
		b.WriteString("\n\n")
		if w.nameErr != nil {
			b.WriteString(wizardErrorStyle.Render(w.nameErr.Error()))
			b.WriteString("\n")
		}
		b.WriteString(wizardDimStyle.Render("A directory with this name is created here."))
	case stepPrompt:
		b.WriteString(wizardLabelStyle.Render("Shell prompt:"))
		b.WriteString("\n")
		b.WriteString(w.promptInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Shown while the environment is active. Esc to go back."))
	case stepConfirm:
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Name:   %s\n", wizardValueStyle.Render(w.selectedName)))
		b.WriteString(fmt.Sprintf("  Prompt: %s\n", wizardValueStyle.Render(w.selectedPrompt)))
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to create, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []string{"Name", "Prompt", "Confirm"}

	var parts []string
	for i, name := range steps {
		label := fmt.Sprintf("%d. %s", i+1, name)
		if wizardStep(i) == w.step {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

// wizardProgram adapts wizardModel to tea.Model.
type wizardProgram struct {
	wizard   *wizardModel
	result   *project.CreateOptions
	quitting bool
}

func (p wizardProgram) Init() tea.Cmd {
	return p.wizard.Init()
}

func (p wizardProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, opts, cmd := p.wizard.Update(msg)
	if done {
		p.result = opts
		p.quitting = true
		return p, tea.Quit
	}
	return p, cmd
}

func (p wizardProgram) View() string {
	if p.quitting {
		return ""
	}
	return p.wizard.View()
}

// RunWizard runs the interactive project wizard. It returns nil options
// when the user cancels.
func RunWizard() (*project.CreateOptions, error) {
	w := newWizardModel()
	p := tea.NewProgram(wizardProgram{wizard: &w})

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	return finalModel.(wizardProgram).result, nil
}
