package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/models"
)

type onboardingField int

const (
	fieldGender onboardingField = iota
	fieldBirthDate
	fieldHeight
	fieldWeight
	fieldActivity
	fieldGoal
	fieldCount
)

var (
	genderOptions = []string{"male", "female"}
	genderTitles  = []string{"Мужской", "Женский"}

	activityOptions = []string{"not-very-active", "lightly-active", "active", "very-active"}
	activityTitles  = []string{"Низкая", "Лёгкая", "Средняя", "Высокая"}

	goalOptions = []string{"lose-weight", "maintain", "gain-weight"}
	goalTitles  = []string{"Похудеть", "Поддерживать вес", "Набрать вес"}
)

// OnboardingModel is the calorie-calculator screen: the questionnaire the
// web onboarding asks, a calculation request to the calorie backend, and an
// optional profile save of the computed target.
type OnboardingModel struct {
	ctx     context.Context
	profile service.ProfileService

	focus       onboardingField
	genderIdx   int
	activityIdx int
	goalIdx     int
	inputs      map[onboardingField]*textinput.Model

	result     *models.CalorieCalculation
	lastData   models.OnboardingData
	submitting bool
	status     string
	errMsg     string
}

func NewOnboardingModel(ctx context.Context, profile service.ProfileService) *OnboardingModel {
	birthInput := textinput.New()
	birthInput.Placeholder = "ГГГГ-ММ-ДД"
	birthInput.CharLimit = 10
	birthInput.Width = 20

	heightInput := textinput.New()
	heightInput.Placeholder = "см"
	heightInput.CharLimit = 6
	heightInput.Width = 20

	weightInput := textinput.New()
	weightInput.Placeholder = "кг"
	weightInput.CharLimit = 6
	weightInput.Width = 20

	return &OnboardingModel{
		ctx:     ctx,
		profile: profile,
		inputs: map[onboardingField]*textinput.Model{
			fieldBirthDate: &birthInput,
			fieldHeight:    &heightInput,
			fieldWeight:    &weightInput,
		},
	}
}

func (m *OnboardingModel) Init() tea.Cmd {
	m.focusField(m.focus)
	return textinput.Blink
}

func (m *OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calcResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		result := msg.result
		m.result = &result
		return m, nil
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Профиль сохранён"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "left":
			if m.cycleSelector(-1) {
				return m, nil
			}
		case "right":
			if m.cycleSelector(1) {
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			data, err := m.formData()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			m.lastData = data
			return m, m.cmdCalculate(data)
		case "s":
			if m.result != nil && !m.submitting {
				m.submitting = true
				return m, m.cmdSave(m.lastData, m.result.DailyCalories)
			}
		}
	}

	if input, isInput := m.inputs[m.focus]; isInput {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *OnboardingModel) View() string {
	var b strings.Builder

	b.WriteString(m.selectorLine(fieldGender, "Пол          ", genderTitles[m.genderIdx]))
	b.WriteString(m.inputLine(fieldBirthDate, "Дата рождения"))
	b.WriteString(m.inputLine(fieldHeight, "Рост         "))
	b.WriteString(m.inputLine(fieldWeight, "Вес          "))
	b.WriteString(m.selectorLine(fieldActivity, "Активность   ", activityTitles[m.activityIdx]))
	b.WriteString(m.selectorLine(fieldGoal, "Цель         ", goalTitles[m.goalIdx]))

	if m.submitting {
		b.WriteString("\n[Рассчитать...]\n")
	} else {
		b.WriteString("\n[Рассчитать]\n")
	}

	if m.result != nil {
		b.WriteString("\nВаша дневная норма: ")
		b.WriteString(formatCalories(m.result.DailyCalories))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Белки %s │ Углеводы %s │ Жиры %s\n",
			formatGrams(m.result.Protein), formatGrams(m.result.Carbs), formatGrams(m.result.Fat)))
		b.WriteString("\ns: сохранить в профиль")
	}

	if m.status != "" {
		b.WriteString("\n\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("КАЛЬКУЛЯТОР КАЛОРИЙ", strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ ←/→: значение │ enter: рассчитать │ esc: назад")
}

func (m *OnboardingModel) selectorLine(field onboardingField, label, value string) string {
	cursor := " "
	if m.focus == field {
		cursor = ">"
	}
	return fmt.Sprintf("%s %s │ < %s >\n", cursor, label, value)
}

func (m *OnboardingModel) inputLine(field onboardingField, label string) string {
	cursor := " "
	if m.focus == field {
		cursor = ">"
	}
	return fmt.Sprintf("%s %s │ [%s]\n", cursor, label, m.inputs[field].View())
}

func (m *OnboardingModel) moveFocus(delta int) {
	if input, ok := m.inputs[m.focus]; ok {
		input.Blur()
	}
	m.focus = onboardingField((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.focusField(m.focus)
}

func (m *OnboardingModel) focusField(field onboardingField) {
	if input, ok := m.inputs[field]; ok {
		input.Focus()
	}
}

// cycleSelector rotates the value of the focused enum field. Returns false
// when the focused field is a text input, so arrow keys keep working there.
func (m *OnboardingModel) cycleSelector(delta int) bool {
	switch m.focus {
	case fieldGender:
		m.genderIdx = (m.genderIdx + delta + len(genderOptions)) % len(genderOptions)
	case fieldActivity:
		m.activityIdx = (m.activityIdx + delta + len(activityOptions)) % len(activityOptions)
	case fieldGoal:
		m.goalIdx = (m.goalIdx + delta + len(goalOptions)) % len(goalOptions)
	default:
		return false
	}
	return true
}

func (m *OnboardingModel) formData() (models.OnboardingData, error) {
	birth := strings.TrimSpace(m.inputs[fieldBirthDate].Value())
	parsed, err := time.Parse("2006-01-02", birth)
	if err != nil {
		return models.OnboardingData{}, fmt.Errorf("дата рождения должна быть в формате ГГГГ-ММ-ДД")
	}

	height, err := parsePositive(m.inputs[fieldHeight].Value())
	if err != nil {
		return models.OnboardingData{}, fmt.Errorf("некорректный рост")
	}
	weight, err := parsePositive(m.inputs[fieldWeight].Value())
	if err != nil {
		return models.OnboardingData{}, fmt.Errorf("некорректный вес")
	}

	return models.OnboardingData{
		Gender:        service.MapGender(genderOptions[m.genderIdx]),
		BirthDate:     service.FormatBirthDate(parsed),
		HeightCm:      height,
		WeightKg:      weight,
		ActivityLevel: service.MapActivityLevel(activityOptions[m.activityIdx]),
		Goal:          service.MapGoal(goalOptions[m.goalIdx]),
	}, nil
}

func parsePositive(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("not a positive number: %s", raw)
	}
	return v, nil
}

func (m *OnboardingModel) cmdCalculate(data models.OnboardingData) tea.Cmd {
	ctx := m.ctx
	profile := m.profile
	return func() tea.Msg {
		result, err := profile.CalculateDailyCalories(ctx, data)
		return calcResultMsg{result: result, err: err}
	}
}

func (m *OnboardingModel) cmdSave(data models.OnboardingData, dailyCalories float64) tea.Cmd {
	ctx := m.ctx
	profile := m.profile
	return func() tea.Msg {
		return profileSavedMsg{err: profile.SaveProfile(ctx, data, dailyCalories)}
	}
}
