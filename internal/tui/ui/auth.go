package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daywise/daywise-tui/internal/api"
	"github.com/daywise/daywise-tui/internal/tui/state"
	"github.com/daywise/daywise-tui/internal/tui/styles"
)

// renderAuth renders the sign-in / sign-up screen.
func (r *Renderer) renderAuth() string {
	var b strings.Builder

	title := "Sign in to Daywise"
	action := "Sign in"
	hint := "Ctrl+R: create an account instead"
	if r.AuthMode == state.AuthRegister {
		title = "Create a Daywise account"
		action = "Sign up"
		hint = "Ctrl+R: sign in instead"
	}

	b.WriteString(styles.DialogTitle.Render(title) + "\n\n")

	b.WriteString(styles.InputLabel.Render("Username") + "\n")
	b.WriteString(r.UsernameInput.View() + "\n\n")

	b.WriteString(styles.InputLabel.Render("Password") + "\n")
	b.WriteString(r.PasswordInput.View() + "\n\n")

	if r.Loading {
		b.WriteString(r.Spinner.View() + " Signing in...\n")
	} else if r.Err != nil {
		b.WriteString(styles.StatusError.Render(api.UserMessage(r.Err)) + "\n")
	} else if r.StatusMsg != "" {
		b.WriteString(styles.StatusBar.Render(r.StatusMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpText.Render("Enter: "+action+"  Tab: switch field  "+hint) + "\n")
	b.WriteString(styles.HelpText.Render("Esc: quit"))

	dialog := styles.Dialog.Width(52).Render(b.String())
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
