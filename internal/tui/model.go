package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snap *engine.Snapshot

	// Selection moves over quests first, then rewards.
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snap *engine.Snapshot
	err  error
}

type actedMsg struct {
	log  string
	err  error
	snap *engine.Snapshot
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: m.svc.Snapshot()}
	}
}

func (m dashModel) rowCount() int {
	if m.snap == nil {
		return 0
	}
	return len(m.snap.Quests) + len(m.snap.Rewards)
}

func (m dashModel) toggleCmd(q engine.Quest) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.ToggleQuest(m.ctx, q.ID, !q.Done)
		log := fmt.Sprintf("Quest %q toggled.", q.Title)
		return actedMsg{log: log, err: err, snap: m.svc.Snapshot()}
	}
}

func (m dashModel) buyCmd(r engine.Reward) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.BuyReward(m.ctx, r.ID)
		log := fmt.Sprintf("Bought %s (-%d XP).", r.Title, r.Cost)
		return actedMsg{log: log, err: err, snap: m.svc.Snapshot()}
	}
}

func (m dashModel) bonusCmd() tea.Cmd {
	return func() tea.Msg {
		xp, err := m.svc.ClaimDailyBonus(m.ctx)
		log := fmt.Sprintf("Daily bonus claimed (+%d XP).", xp)
		return actedMsg{log: log, err: err, snap: m.svc.Snapshot()}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = msg.snap
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		m.snap = msg.snap
		if msg.err != nil {
			m.lastLog = friendlyError(msg.err)
			return m, nil
		}
		m.lastLog = msg.log
		return m, nil
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
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "b":
			return m, m.bonusCmd()
		case "enter", " ":
			if m.snap == nil {
				return m, nil
			}
			if m.selected < len(m.snap.Quests) {
				return m, m.toggleCmd(m.snap.Quests[m.selected])
			}
			i := m.selected - len(m.snap.Quests)
			if i < len(m.snap.Rewards) {
				r := m.snap.Rewards[i]
				if !r.Affordable {
					m.lastLog = fmt.Sprintf("Not enough XP for %s (%d needed).", r.Title, r.Cost)
					return m, nil
				}
				return m, m.buyCmd(r.Reward)
			}
			return m, nil
		}
	}
	return m, nil
}

func friendlyError(err error) string {
	var insufficient engine.InsufficientXPError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("Not enough XP: need %d, have %d.", insufficient.Cost, insufficient.Balance)
	case errors.Is(err, engine.ErrQuestsIncomplete):
		return "Finish every quest before claiming the bonus."
	case errors.Is(err, engine.ErrBonusClaimed):
		return "Bonus already claimed today."
	default:
		return "Failed: " + err.Error()
	}
}

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading || m.snap == nil {
		return "Studyquest — loading…\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashModel) renderHeader() string {
	lv := m.snap.Level
	bar := ui.ProgressBar(lv.InBar, engine.BarSize, 30)
	return fmt.Sprintf("Studyquest | Level %d | XP %d %s | %s %d",
		lv.Level, m.snap.TotalXP, bar, ui.IconFire, m.snap.Streak)
}

func (m dashModel) renderSidebar() string {
	lines := []string{"Today " + m.snap.TodayKey}
	lines = append(lines, fmt.Sprintf("- minutes: %d", m.snap.Today.MinutesTotal))
	lines = append(lines, fmt.Sprintf("- xp: %d", m.snap.Today.XPTotal))
	for _, row := range m.snap.TodayBySubject {
		lines = append(lines, fmt.Sprintf("  %s: %d min", row.Subject, row.Minutes))
	}
	lines = append(lines, "")
	lines = append(lines, "Last 7 days")
	for _, d := range m.snap.Week.Days {
		lines = append(lines, fmt.Sprintf("  %s %s", ui.DayLabel(d.Key), ui.ProgressBar(d.Minutes, maxWeekMinutes(m.snap), 12)))
	}
	lines = append(lines, fmt.Sprintf("  total: %d min, %d xp", m.snap.Week.Minutes, m.snap.Week.XP))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter/space: toggle / buy")
	lines = append(lines, "- b: claim daily bonus")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func maxWeekMinutes(snap *engine.Snapshot) int {
	max := 30
	for _, d := range snap.Week.Days {
		if d.Minutes > max {
			max = d.Minutes
		}
	}
	return max
}

func (m dashModel) renderMain() string {
	var out []string
	out = append(out, "Daily Quests")
	for i, q := range m.snap.Quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if q.Done {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, mark, q.Title))
	}
	out = append(out, "")
	out = append(out, "Reward Store")
	for i, r := range m.snap.Rewards {
		cursor := "  "
		if len(m.snap.Quests)+i == m.selected {
			cursor = "> "
		}
		afford := ""
		if !r.Affordable {
			afford = " (locked)"
		}
		out = append(out, fmt.Sprintf("%s%s — %d XP%s", cursor, r.Title, r.Cost, afford))
	}
	out = append(out, "")
	out = append(out, "Recent")
	if len(m.snap.History) == 0 {
		out = append(out, "(no entries yet)")
	} else {
		limit := 5
		for i, e := range m.snap.History {
			if i >= limit {
				break
			}
			sign := ""
			if e.Delta > 0 {
				sign = "+"
			}
			out = append(out, fmt.Sprintf("- %s (%s%d)", e.Text, sign, e.Delta))
		}
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
