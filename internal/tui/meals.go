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

type mealsStage int

const (
	mealsStageList mealsStage = iota
	mealsStageSlot
	mealsStageForm
)

var slotTitles = map[models.MealSlot]string{
	models.SlotBreakfast: "Завтрак",
	models.SlotLunch:     "Обед",
	models.SlotDinner:    "Ужин",
}

var slotOrder = []models.MealSlot{models.SlotBreakfast, models.SlotLunch, models.SlotDinner}

type mealRow struct {
	slot models.MealSlot
	meal models.Meal
}

// MealsModel is the daily meal log screen: a per-slot list for the selected
// day with add and delete flows, day-by-day navigation, and a shortcut to
// save a logged meal into favorites.
type MealsModel struct {
	ctx       context.Context
	meals     service.MealService
	favorites service.FavoriteService

	date time.Time
	day  models.DayMeals
	rows []mealRow
	idx  int

	stage   mealsStage
	slotIdx int

	inputs []textinput.Model
	focus  int

	loading bool
	status  string
	errMsg  string
}

func NewMealsModel(ctx context.Context, meals service.MealService, favorites service.FavoriteService) *MealsModel {
	return &MealsModel{
		ctx:       ctx,
		meals:     meals,
		favorites: favorites,
		date:      time.Now(),
	}
}

func (m *MealsModel) Init() tea.Cmd {
	m.stage = mealsStageList
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadDay()
}

func (m *MealsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dayLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.setDay(msg.day)
		return m, nil
	case favoriteSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Сохранено в избранное"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.stage {
	case mealsStageList:
		return m.updateList(msg)
	case mealsStageSlot:
		return m.updateSlotSelect(msg)
	case mealsStageForm:
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *MealsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case "left":
		m.date = m.date.AddDate(0, 0, -1)
		m.loading = true
		return m, m.cmdLoadDay()
	case "right":
		m.date = m.date.AddDate(0, 0, 1)
		m.loading = true
		return m, m.cmdLoadDay()
	case "a":
		m.stage = mealsStageSlot
		m.slotIdx = 0
	case "d":
		if row, ok := m.currentRow(); ok {
			return m, m.cmdRemove(row.meal.ID)
		}
	case "b":
		if row, ok := m.currentRow(); ok {
			return m, m.cmdSaveFavorite(row.meal)
		}
	}

	return m, nil
}

func (m *MealsModel) updateSlotSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.stage = mealsStageList
	case "up", "k":
		if m.slotIdx > 0 {
			m.slotIdx--
		}
	case "down", "j":
		if m.slotIdx < len(slotOrder)-1 {
			m.slotIdx++
		}
	case "enter":
		m.openForm()
	}

	return m, nil
}

func (m *MealsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.stage = mealsStageList
			m.errMsg = ""
			return m, nil
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			meal, err := m.formMeal()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			m.stage = mealsStageList
			return m, m.cmdAdd(slotOrder[m.slotIdx], meal)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *MealsModel) View() string {
	switch m.stage {
	case mealsStageSlot:
		return m.viewSlotSelect()
	case mealsStageForm:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m *MealsModel) viewList() string {
	var b strings.Builder

	if m.loading {
		return renderPage("ПИТАНИЕ", "Загрузка...", "")
	}

	b.WriteString("День: ")
	b.WriteString(m.date.Format("02.01.2006"))
	b.WriteString("\n\n")

	row := 0
	for _, slot := range slotOrder {
		b.WriteString(slotTitles[slot])
		b.WriteString("\n")

		meals := m.slotMeals(slot)
		if len(meals) == 0 {
			b.WriteString("  -\n")
		}
		for _, meal := range meals {
			cursor := " "
			if row == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-24s │ %s\n", cursor, fitText(meal.Name, 24), formatCalories(meal.Calories)))
			row++
		}
		b.WriteString("\n")
	}

	totals := m.day.Totals()
	b.WriteString(fmt.Sprintf("Итого: %s │ Б %s │ У %s │ Ж %s",
		formatCalories(totals.Calories), formatGrams(totals.Protein), formatGrams(totals.Carbs), formatGrams(totals.Fat)))

	if m.status != "" {
		b.WriteString("\n\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("ПИТАНИЕ", strings.TrimRight(b.String(), "\n"),
		"a: добавить │ d: удалить │ b: в избранное │ ←/→: день │ esc: назад")
}

func (m *MealsModel) viewSlotSelect() string {
	var b strings.Builder
	b.WriteString("Куда добавить?\n\n")
	for i, slot := range slotOrder {
		cursor := " "
		if i == m.slotIdx {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(slotTitles[slot])
		b.WriteString("\n")
	}

	return renderPage("ПИТАНИЕ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ esc: отмена")
}

func (m *MealsModel) viewForm() string {
	labels := []string{"Название ", "Калории  ", "Белки    ", "Углеводы ", "Жиры     "}

	var b strings.Builder
	b.WriteString(slotTitles[slotOrder[m.slotIdx]])
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("НОВЫЙ ПРИЁМ ПИЩИ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m *MealsModel) openForm() {
	m.inputs = make([]textinput.Model, 5)
	placeholders := []string{"название", "ккал", "г", "г", "г"}
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = placeholders[i]
		m.inputs[i].Width = 30
	}
	m.inputs[0].CharLimit = 80
	m.inputs[0].Focus()
	m.focus = 0
	m.stage = mealsStageForm
}

func (m *MealsModel) formMeal() (models.Meal, error) {
	name := strings.TrimSpace(m.inputs[0].Value())
	if name == "" {
		return models.Meal{}, fmt.Errorf("название обязательно")
	}

	values := make([]float64, 4)
	for i := 1; i < len(m.inputs); i++ {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || v < 0 {
			return models.Meal{}, fmt.Errorf("некорректное число: %s", raw)
		}
		values[i-1] = v
	}

	return models.Meal{
		Name:     name,
		Calories: values[0],
		Protein:  values[1],
		Carbs:    values[2],
		Fat:      values[3],
	}, nil
}

func (m *MealsModel) setDay(day models.DayMeals) {
	m.day = day
	m.rows = m.rows[:0]
	for _, slot := range slotOrder {
		for _, meal := range m.slotMeals(slot) {
			m.rows = append(m.rows, mealRow{slot: slot, meal: meal})
		}
	}
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *MealsModel) slotMeals(slot models.MealSlot) []models.Meal {
	switch slot {
	case models.SlotBreakfast:
		return m.day.Breakfast
	case models.SlotLunch:
		return m.day.Lunch
	default:
		return m.day.Dinner
	}
}

func (m *MealsModel) currentRow() (mealRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return mealRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *MealsModel) cmdLoadDay() tea.Cmd {
	ctx := m.ctx
	meals := m.meals
	date := m.date
	return func() tea.Msg {
		return dayLoadedMsg{day: meals.ForDate(ctx, date)}
	}
}

func (m *MealsModel) cmdAdd(slot models.MealSlot, meal models.Meal) tea.Cmd {
	ctx := m.ctx
	meals := m.meals
	date := m.date
	return func() tea.Msg {
		day, err := meals.Add(ctx, date, slot, meal)
		return dayLoadedMsg{day: day, err: err}
	}
}

func (m *MealsModel) cmdRemove(mealID string) tea.Cmd {
	ctx := m.ctx
	meals := m.meals
	date := m.date
	return func() tea.Msg {
		day, err := meals.Remove(ctx, date, mealID)
		return dayLoadedMsg{day: day, err: err}
	}
}

func (m *MealsModel) cmdSaveFavorite(meal models.Meal) tea.Cmd {
	ctx := m.ctx
	favorites := m.favorites
	return func() tea.Msg {
		err := favorites.Add(ctx, models.FavoriteFood{
			Name:     meal.Name,
			Calories: meal.Calories,
			Protein:  meal.Protein,
			Carbs:    meal.Carbs,
			Fat:      meal.Fat,
		})
		return favoriteSavedMsg{err: err}
	}
}

func (m *MealsModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *MealsModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
