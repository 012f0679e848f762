package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bonfire/internal/engine"
	"bonfire/internal/ui"
)

type boardModel struct {
	ctx context.Context
	eng *engine.Engine

	width  int
	height int

	state *engine.State

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *engine.State
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type failedMsg struct {
	res *engine.FailResult
	err error
}

func newBoardModel(ctx context.Context, eng *engine.Engine) boardModel {
	return boardModel{
		ctx:     ctx,
		eng:     eng,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.eng.Snapshot()}
	}
}

func (m boardModel) completeCmd(t engine.TaskType, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.CompleteTask(m.ctx, t, id)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) failCmd(t engine.TaskType, id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.FailTask(m.ctx, t, id)
		return failedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.res == nil:
			m.lastLog = "Nothing to complete."
		case msg.res.Blocked:
			m.lastLog = "Checklist incomplete; resolve it first."
		case msg.res.LevelUp:
			m.lastLog = fmt.Sprintf("Completed: +%d souls, +%d XP  %s", msg.res.SoulsEarned, msg.res.XPEarned, ui.BadgeLevelUp)
		default:
			m.lastLog = fmt.Sprintf("Completed: +%d souls, +%d XP", msg.res.SoulsEarned, msg.res.XPEarned)
		}
		return m, m.loadCmd()
	case failedMsg:
		if msg.err != nil {
			m.lastLog = "Fail failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Nothing to fail."
		} else if msg.res.Downed {
			m.lastLog = fmt.Sprintf("Failed: -%d HP  %s", msg.res.HPLost, ui.BadgeDowned)
		} else {
			m.lastLog = fmt.Sprintf("Failed: -%d HP", msg.res.HPLost)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			row, ok := m.selectedRow()
			if !ok {
				return m, nil
			}
			if row.completed {
				m.lastLog = "Already done today."
				return m, nil
			}
			m.lastLog = "Completing…"
			return m, m.completeCmd(row.taskType, row.id)
		case "f":
			row, ok := m.selectedRow()
			if !ok {
				return m, nil
			}
			m.lastLog = "Failing…"
			return m, m.failCmd(row.taskType, row.id)
		}
	}
	return m, nil
}

type taskRow struct {
	id        string
	taskType  engine.TaskType
	title     string
	category  engine.Category
	completed bool
	critical  bool
}

func (m boardModel) rows() []taskRow {
	if m.state == nil {
		return nil
	}
	var out []taskRow
	add := func(tasks []engine.Task, t engine.TaskType) {
		for _, task := range tasks {
			out = append(out, taskRow{
				id:        task.ID,
				taskType:  t,
				title:     task.Title,
				category:  task.Category,
				completed: task.Completed,
				critical:  task.IsCritical,
			})
		}
	}
	add(m.state.Habits, engine.TaskHabit)
	add(m.state.Dailies, engine.TaskDaily)
	add(m.state.Todos, engine.TaskTodo)
	return out
}

func sectionTitle(t engine.TaskType) string {
	switch t {
	case engine.TaskHabit:
		return "Habits"
	case engine.TaskDaily:
		return "Dailies"
	default:
		return "To-dos"
	}
}

func (m boardModel) selectedRow() (taskRow, bool) {
	rows := m.rows()
	if m.selected < 0 || m.selected >= len(rows) {
		return taskRow{}, false
	}
	return rows[m.selected], true
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.state == nil {
		return "Loading…\n"
	}

	var b strings.Builder
	st := m.state

	effMax := engine.EffectiveMaxHP(st.BaseMaxHP, st.HollowLevel)
	header := fmt.Sprintf("%s %s  %s %s  %s %d  %s %d/%d",
		ui.IconHP, ui.Bar(st.HP, effMax, 10),
		ui.IconXP, ui.Bar(st.XP, st.XPToLevel, 10),
		ui.IconSouls, st.Souls,
		ui.IconFlask, st.Flasks, st.MaxFlasks,
	)
	b.WriteString(ui.Heading(ui.IconBonfire, fmt.Sprintf("Bonfire · Level %d", st.Level)))
	b.WriteString("\n")
	b.WriteString(header)
	b.WriteString("\n")
	if st.IsDowned {
		b.WriteString(ui.BadgeDowned + " " + ui.Muted.Render("(run `bonfire revive` to get back up)"))
		b.WriteString("\n")
	}
	if st.HollowLevel > 0 {
		b.WriteString(ui.Warn.Render(fmt.Sprintf("%s Hollow %d/%d", ui.IconHollow, st.HollowLevel, engine.MaxHollowLevel)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rows := m.rows()
	section := engine.TaskType("")
	for i, row := range rows {
		if row.taskType != section {
			section = row.taskType
			b.WriteString(ui.H2.Render(sectionTitle(section)))
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s %s %s", ui.TaskIcon(string(row.taskType)), row.title, ui.Muted.Render(string(row.category)))
		if row.completed {
			line = ui.IconDone + " " + line
		}
		if row.critical {
			line += " " + ui.Bad.Render("critical")
		}
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(ui.Muted.Render("No tasks yet. Add one with `bonfire add`."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("j/k move · c complete · f fail · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}
