// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
)

// DashboardModel is the main authenticated screen: today's nutrition totals,
// the water tracker, and hotkeys into the other sections.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices

	userName string
	totals   totalsView
	glasses  int
	percent  float64
	goal     int

	loading bool
	status  string
	errMsg  string
}

type totalsView struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices) *DashboardModel {
	return &DashboardModel{ctx: ctx, services: services}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.userName = msg.userName
		m.totals = totalsView{
			calories: msg.totals.Calories,
			protein:  msg.totals.Protein,
			carbs:    msg.totals.Carbs,
			fat:      msg.totals.Fat,
		}
		m.glasses = msg.glasses
		m.percent = msg.percent
		m.goal = msg.goal
		return m, nil
	case waterUpdatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.glasses = msg.glasses
		m.percent = msg.percent
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			return m, func() tea.Msg { return NavigateTo{Page: "meals"} }
		case "f":
			return m, func() tea.Msg { return NavigateTo{Page: "favorites"} }
		case "o":
			return m, func() tea.Msg { return NavigateTo{Page: "onboarding"} }
		case "s":
			return m, func() tea.Msg { return NavigateTo{Page: "settings"} }
		case "r":
			m.loading = true
			return m, m.cmdLoad()
		case "+", "=":
			return m, m.cmdAddGlass()
		case "-":
			return m, m.cmdRemoveGlass()
		case "c":
			return m, m.cmdCopySummary()
		case "l":
			return m, m.cmdLogout()
		}
	case LogoutResult:
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...")
		return renderPage("СЕГОДНЯ", b.String(), "")
	}

	if m.userName != "" {
		b.WriteString("Привет, ")
		b.WriteString(m.userName)
		b.WriteString("!\n\n")
	}

	b.WriteString("Питание за ")
	b.WriteString(time.Now().Format("02.01.2006"))
	b.WriteString("\n")
	b.WriteString("Калории │ ")
	b.WriteString(formatCalories(m.totals.calories))
	b.WriteString("\n")
	b.WriteString("Белки   │ ")
	b.WriteString(formatGrams(m.totals.protein))
	b.WriteString("\n")
	b.WriteString("Углеводы│ ")
	b.WriteString(formatGrams(m.totals.carbs))
	b.WriteString("\n")
	b.WriteString("Жиры    │ ")
	b.WriteString(formatGrams(m.totals.fat))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Вода: %d из %d стаканов\n", m.glasses, m.goal))
	b.WriteString(progressBar(m.percent, 20))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("СЕГОДНЯ", strings.TrimRight(b.String(), "\n"),
		"m: питание │ f: избранное │ o: калькулятор │ s: настройки │ +/-: вода │ c: копировать │ l: выйти")
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		var name string
		if user := services.Session.CurrentUser(ctx); user != nil {
			name = user.Name
			if name == "" {
				name = user.Email
			}
		}

		return dashboardLoadedMsg{
			userName: name,
			totals:   services.Meals.TotalsForDate(ctx, time.Now()),
			glasses:  services.Water.Today(ctx),
			percent:  services.Water.Percentage(ctx),
			goal:     services.Water.Goal(),
		}
	}
}

func (m *DashboardModel) cmdAddGlass() tea.Cmd {
	ctx := m.ctx
	water := m.services.Water
	return func() tea.Msg {
		glasses, err := water.AddGlass(ctx)
		return waterUpdatedMsg{glasses: glasses, percent: water.Percentage(ctx), err: err}
	}
}

func (m *DashboardModel) cmdRemoveGlass() tea.Cmd {
	ctx := m.ctx
	water := m.services.Water
	return func() tea.Msg {
		glasses, err := water.RemoveGlass(ctx)
		return waterUpdatedMsg{glasses: glasses, percent: water.Percentage(ctx), err: err}
	}
}

// cmdCopySummary puts a plain-text day summary on the system clipboard.
func (m *DashboardModel) cmdCopySummary() tea.Cmd {
	summary := fmt.Sprintf("FitTracker %s: %s, белки %s, углеводы %s, жиры %s, вода %d/%d",
		time.Now().Format("02.01.2006"),
		formatCalories(m.totals.calories),
		formatGrams(m.totals.protein),
		formatGrams(m.totals.carbs),
		formatGrams(m.totals.fat),
		m.glasses, m.goal)

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(summary)}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		return LogoutResult{Err: session.Logout(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
