package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/models"
)

type favoritesStage int

const (
	favoritesStageList favoritesStage = iota
	favoritesStageSlot
)

// FavoritesModel is the saved-foods screen: the favorites list with delete
// and a quick-log flow that puts a favorite into one of today's meal slots.
type FavoritesModel struct {
	ctx       context.Context
	favorites service.FavoriteService
	meals     service.MealService

	items []models.FavoriteFood
	idx   int

	stage   favoritesStage
	slotIdx int

	loading bool
	status  string
	errMsg  string
}

func NewFavoritesModel(ctx context.Context, favorites service.FavoriteService, meals service.MealService) *FavoritesModel {
	return &FavoritesModel{ctx: ctx, favorites: favorites, meals: meals}
}

func (m *FavoritesModel) Init() tea.Cmd {
	m.stage = favoritesStageList
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.items = msg.favorites
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case dayLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Добавлено в дневник"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.stage == favoritesStageSlot {
		switch keyMsg.String() {
		case "esc":
			m.stage = favoritesStageList
		case "up", "k":
			if m.slotIdx > 0 {
				m.slotIdx--
			}
		case "down", "j":
			if m.slotIdx < len(slotOrder)-1 {
				m.slotIdx++
			}
		case "enter":
			m.stage = favoritesStageList
			if food, ok := m.current(); ok {
				return m, m.cmdLogMeal(slotOrder[m.slotIdx], food)
			}
		}
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
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "a", "enter":
		if _, ok := m.current(); ok {
			m.stage = favoritesStageSlot
			m.slotIdx = 0
		}
	case "d":
		if food, ok := m.current(); ok {
			return m, m.cmdRemove(food.ID)
		}
	}

	return m, nil
}

func (m *FavoritesModel) View() string {
	if m.loading {
		return renderPage("ИЗБРАННОЕ", "Загрузка...", "")
	}

	if m.stage == favoritesStageSlot {
		var b strings.Builder
		b.WriteString("В какой приём пищи добавить?\n\n")
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
		return renderPage("ИЗБРАННОЕ", strings.TrimRight(b.String(), "\n"), "enter: выбрать │ esc: отмена")
	}

	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("Список пуст. Сохраняйте блюда из дневника питания клавишей b.")
	}

	for i, food := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		portion := ""
		if food.ServingSize > 0 {
			portion = fmt.Sprintf(" (%s %s)", strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", food.ServingSize), "0"), "."), food.ServingUnit)
		}
		b.WriteString(fmt.Sprintf("%s %-28s │ %s\n", cursor, fitText(food.Name+portion, 28), formatCalories(food.Calories)))
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
	}

	return renderPage("ИЗБРАННОЕ", strings.TrimRight(b.String(), "\n"),
		"enter: в дневник │ d: удалить │ ↑/↓: навигация │ esc: назад")
}

func (m *FavoritesModel) current() (models.FavoriteFood, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.FavoriteFood{}, false
	}
	return m.items[m.idx], true
}

func (m *FavoritesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	favorites := m.favorites
	return func() tea.Msg {
		return favoritesLoadedMsg{favorites: favorites.List(ctx)}
	}
}

func (m *FavoritesModel) cmdRemove(id string) tea.Cmd {
	ctx := m.ctx
	favorites := m.favorites
	return func() tea.Msg {
		if err := favorites.Remove(ctx, id); err != nil {
			return favoritesLoadedMsg{err: err}
		}
		return favoritesLoadedMsg{favorites: favorites.List(ctx)}
	}
}

func (m *FavoritesModel) cmdLogMeal(slot models.MealSlot, food models.FavoriteFood) tea.Cmd {
	ctx := m.ctx
	meals := m.meals
	return func() tea.Msg {
		day, err := meals.Add(ctx, time.Now(), slot, models.Meal{
			Name:     food.Name,
			Calories: food.Calories,
			Protein:  food.Protein,
			Carbs:    food.Carbs,
			Fat:      food.Fat,
		})
		return dayLoadedMsg{day: day, err: err}
	}
}
