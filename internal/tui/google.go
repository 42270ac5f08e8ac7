package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
)

// GoogleLoginModel exchanges a Google-issued ID token for this system's own
// session. The terminal cannot run the browser popup itself, so the user
// obtains the credential out of band and pastes it here.
type GoogleLoginModel struct {
	ctx     context.Context
	session service.SessionService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewGoogleLoginModel(ctx context.Context, session service.SessionService) *GoogleLoginModel {
	credentialInput := textinput.New()
	credentialInput.Placeholder = "google id token"
	credentialInput.CharLimit = 4096
	credentialInput.Width = 40
	credentialInput.Focus()

	return &GoogleLoginModel{
		ctx:     ctx,
		session: session,
		input:   credentialInput,
	}
}

func (m *GoogleLoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *GoogleLoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			credential := strings.TrimSpace(m.input.Value())
			if credential == "" {
				m.errMsg = "Вставьте Google-токен"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdGoogleLogin(credential)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GoogleLoginModel) View() string {
	var b strings.Builder
	b.WriteString("Вставьте ID-токен, полученный от Google:\n\n")
	b.WriteString("Токен │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ВХОД ЧЕРЕЗ GOOGLE", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: подтвердить")
}

func (m *GoogleLoginModel) cmdGoogleLogin(credential string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.LoginWithGoogle(ctx, credential)
		return LoginResult{Err: err, User: user}
	}
}
