package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/models"
)

type settingsStage int

const (
	settingsStageMenu settingsStage = iota
	settingsStagePassword
	settingsStageEmail
)

// SettingsModel is the account and device settings screen: the account
// record fetched from the auth backend, password and e-mail change forms,
// and the device-level language/theme switches.
type SettingsModel struct {
	ctx      context.Context
	services *service.ClientServices
	prefs    *store.PreferencesRepository

	user        models.User
	preferences models.Preferences

	stage  settingsStage
	inputs []textinput.Model
	focus  int

	loading    bool
	submitting bool
	status     string
	errMsg     string
}

func NewSettingsModel(ctx context.Context, services *service.ClientServices, prefs *store.PreferencesRepository) *SettingsModel {
	return &SettingsModel{ctx: ctx, services: services, prefs: prefs}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.stage = settingsStageMenu
	m.loading = true
	m.errMsg = ""
	m.preferences = m.prefs.Get(m.ctx)
	return m.cmdLoadAccount()
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// The cached snapshot still lets the screen render.
			m.errMsg = humanizeError(msg.err)
			if cached := m.services.Session.CurrentUser(m.ctx); cached != nil {
				m.user = *cached
			}
			return m, nil
		}
		m.user = msg.user
		return m, nil
	case accountChangedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stage = settingsStageMenu
		m.status = msg.what
		return m, cmdClearStatus()
	case preferencesSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.preferences = msg.prefs
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case LogoutResult:
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	if m.stage == settingsStageMenu {
		return m.updateMenu(msg)
	}
	return m.updateForm(msg)
}

func (m *SettingsModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case "p":
		m.openForm(settingsStagePassword, []string{"текущий пароль", "новый пароль", "повтор пароля"})
	case "e":
		m.openForm(settingsStageEmail, []string{"новый email", "пароль"})
	case "t":
		prefs := m.preferences
		if prefs.Theme == "dark" {
			prefs.Theme = "light"
		} else {
			prefs.Theme = "dark"
		}
		return m, m.cmdSavePreferences(prefs)
	case "i":
		prefs := m.preferences
		if prefs.Language == "ru" {
			prefs.Language = "en"
		} else {
			prefs.Language = "ru"
		}
		return m, m.cmdSavePreferences(prefs)
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.stage = settingsStageMenu
			m.submitting = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) submitForm() (tea.Model, tea.Cmd) {
	switch m.stage {
	case settingsStagePassword:
		current := m.inputs[0].Value()
		next := m.inputs[1].Value()
		repeat := m.inputs[2].Value()
		if current == "" || next == "" || repeat == "" {
			m.errMsg = "Все поля обязательны"
			return m, nil
		}
		if next != repeat {
			m.errMsg = "Пароли не совпадают"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdChangePassword(models.ChangePasswordRequest{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: repeat,
		})
	case settingsStageEmail:
		email := strings.TrimSpace(m.inputs[0].Value())
		pass := m.inputs[1].Value()
		if email == "" || pass == "" {
			m.errMsg = "Все поля обязательны"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdChangeEmail(models.ChangeEmailRequest{NewEmail: email, Password: pass})
	}
	return m, nil
}

func (m *SettingsModel) View() string {
	if m.stage != settingsStageMenu {
		return m.viewForm()
	}

	if m.loading {
		return renderPage("НАСТРОЙКИ", "Загрузка...", "")
	}

	var b strings.Builder
	b.WriteString("Аккаунт\n")
	b.WriteString("Имя    │ ")
	b.WriteString(valueOrNA(m.user.Name))
	b.WriteString("\n")
	b.WriteString("Email  │ ")
	b.WriteString(valueOrNA(m.user.Email))
	b.WriteString("\n\n")

	b.WriteString("Устройство\n")
	b.WriteString("Тема   │ ")
	b.WriteString(m.preferences.Theme)
	b.WriteString("\n")
	b.WriteString("Язык   │ ")
	b.WriteString(m.preferences.Language)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("НАСТРОЙКИ", strings.TrimRight(b.String(), "\n"),
		"p: пароль │ e: email │ t: тема │ i: язык │ l: выйти │ esc: назад")
}

func (m *SettingsModel) viewForm() string {
	title := "СМЕНА ПАРОЛЯ"
	labels := []string{"Текущий пароль ", "Новый пароль   ", "Повтор пароля  "}
	if m.stage == settingsStageEmail {
		title = "СМЕНА EMAIL"
		labels = []string{"Новый email    ", "Пароль         "}
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m *SettingsModel) openForm(stage settingsStage, placeholders []string) {
	m.inputs = make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = placeholder
		m.inputs[i].Width = 40
		if strings.Contains(placeholder, "парол") {
			m.inputs[i].EchoMode = textinput.EchoPassword
			m.inputs[i].EchoCharacter = '*'
		}
	}
	m.inputs[0].Focus()
	m.focus = 0
	m.stage = stage
	m.errMsg = ""
}

func (m *SettingsModel) cmdLoadAccount() tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	return func() tea.Msg {
		user, err := account.Me(ctx)
		return accountLoadedMsg{user: user, err: err}
	}
}

func (m *SettingsModel) cmdChangePassword(req models.ChangePasswordRequest) tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	return func() tea.Msg {
		return accountChangedMsg{what: "Пароль изменён", err: account.ChangePassword(ctx, req)}
	}
}

func (m *SettingsModel) cmdChangeEmail(req models.ChangeEmailRequest) tea.Cmd {
	ctx := m.ctx
	account := m.services.Account
	return func() tea.Msg {
		return accountChangedMsg{what: "Email изменён", err: account.ChangeEmail(ctx, req)}
	}
}

func (m *SettingsModel) cmdSavePreferences(prefs models.Preferences) tea.Cmd {
	ctx := m.ctx
	repo := m.prefs
	return func() tea.Msg {
		return preferencesSavedMsg{prefs: prefs, err: repo.Save(ctx, prefs)}
	}
}

func (m *SettingsModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return LogoutResult{Err: session.Logout(ctx)}
	}
}

func (m *SettingsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SettingsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
