package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/deliverydesk/internal/comments"
	"github.com/akyairhashvil/deliverydesk/internal/engine"
	"github.com/akyairhashvil/deliverydesk/internal/models"
	engprogress "github.com/akyairhashvil/deliverydesk/internal/progress"
)

// Engine defines the operations the board requires. *engine.Service
// satisfies it; tests substitute fakes.
type Engine interface {
	BoardItems(ctx context.Context, projectID int64) ([]models.WorkItem, error)
	QuickAddItem(ctx context.Context, projectID int64, title string, status models.ItemStatus) (int64, error)
	MoveWorkItem(ctx context.Context, itemID int64, targetStatus models.ItemStatus, targetIndex int) error
	DeleteWorkItem(ctx context.Context, id int64) error
	ComputeProgress(ctx context.Context, scope engine.Scope) (engprogress.Summary, error)
	ActiveSprint(ctx context.Context, projectID int64, now time.Time) (models.Sprint, bool, error)
	SprintProgress(ctx context.Context, sprintID int64, now time.Time) (engine.SprintProgress, error)
	Milestones(ctx context.Context, projectID int64) ([]models.Milestone, error)
	GetCommentTree(ctx context.Context, workItemID int64) ([]*comments.Node, error)
	AddComment(ctx context.Context, workItemID int64, authorRef, content string, parentID *int64) (models.Comment, error)
}

// columns holds the board's items grouped by status in position order.
type columns map[models.ItemStatus][]models.WorkItem

func groupColumns(items []models.WorkItem) columns {
	cols := make(columns, len(models.BoardColumns))
	for _, it := range items {
		cols[it.Status] = append(cols[it.Status], it)
	}
	return cols
}

func (c columns) clone() columns {
	out := make(columns, len(c))
	for status, items := range c {
		cp := make([]models.WorkItem, len(items))
		copy(cp, items)
		out[status] = cp
	}
	return out
}

// BoardModel renders the kanban board and drives moves against the engine.
type BoardModel struct {
	ctx       context.Context
	eng       Engine
	projectID int64
	author    string
	theme     Theme

	width  int
	height int

	cols       columns
	focusedCol int
	focusedRow map[int]int

	adding bool
	input  textinput.Model

	commentsOpen bool
	commentItem  *models.WorkItem
	forest       []*comments.Node
	replying     bool
	replyTo      *int64
	replyInput   textinput.Model

	sprintBar   progress.Model
	active      *models.Sprint
	sprintProg  *engine.SprintProgress
	projectProg engprogress.Summary
	milestones  []models.Milestone

	// Last known-good board state for optimistic moves.
	snapshot columns
	errMsg   string
}

func NewBoardModel(ctx context.Context, eng Engine, projectID int64, author, themeName string) BoardModel {
	input := textinput.New()
	input.Placeholder = "New work item title"
	input.CharLimit = 120

	reply := textinput.New()
	reply.Placeholder = "Write a comment"
	reply.CharLimit = 500

	m := BoardModel{
		ctx:        ctx,
		eng:        eng,
		projectID:  projectID,
		author:     author,
		theme:      themeByName(themeName),
		focusedRow: make(map[int]int),
		input:      input,
		replyInput: reply,
		sprintBar:  progress.New(progress.WithDefaultGradient()),
	}
	m.reload()
	return m
}

// reload pulls fresh board state; progress is always recomputed on read.
func (m *BoardModel) reload() {
	items, err := m.eng.BoardItems(m.ctx, m.projectID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.cols = groupColumns(items)

	summary, err := m.eng.ComputeProgress(m.ctx, engine.Scope{Kind: engine.ScopeProject, ID: m.projectID})
	if err == nil {
		m.projectProg = summary
	}

	now := time.Now()
	m.active = nil
	m.sprintProg = nil
	if sprint, ok, err := m.eng.ActiveSprint(m.ctx, m.projectID, now); err == nil && ok {
		m.active = &sprint
		if sp, err := m.eng.SprintProgress(m.ctx, sprint.ID, now); err == nil {
			m.sprintProg = &sp
		}
	}

	if ms, err := m.eng.Milestones(m.ctx, m.projectID); err == nil {
		m.milestones = ms
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) focusedItem() *models.WorkItem {
	status := models.BoardColumns[m.focusedCol]
	items := m.cols[status]
	row := m.focusedRow[m.focusedCol]
	if row < 0 || row >= len(items) {
		return nil
	}
	return &items[row]
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.adding {
			return m.updateQuickAdd(msg)
		}
		if m.replying {
			return m.updateReply(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m BoardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.focusedCol > 0 {
			m.focusedCol--
			m.clampRow()
		}
	case "right", "l":
		if m.focusedCol < len(models.BoardColumns)-1 {
			m.focusedCol++
			m.clampRow()
		}
	case "up", "k":
		if m.focusedRow[m.focusedCol] > 0 {
			m.focusedRow[m.focusedCol]--
		}
	case "down", "j":
		status := models.BoardColumns[m.focusedCol]
		if m.focusedRow[m.focusedCol] < len(m.cols[status])-1 {
			m.focusedRow[m.focusedCol]++
		}
	case "shift+up", "K":
		m.moveFocused(models.BoardColumns[m.focusedCol], m.focusedRow[m.focusedCol]-1)
	case "shift+down", "J":
		m.moveFocused(models.BoardColumns[m.focusedCol], m.focusedRow[m.focusedCol]+1)
	case "shift+left", "H":
		if m.focusedCol > 0 {
			m.moveFocusedToColumn(m.focusedCol - 1)
		}
	case "shift+right", "L":
		if m.focusedCol < len(models.BoardColumns)-1 {
			m.moveFocusedToColumn(m.focusedCol + 1)
		}
	case "a":
		m.adding = true
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "x":
		if it := m.focusedItem(); it != nil {
			if err := m.eng.DeleteWorkItem(m.ctx, it.ID); err != nil {
				m.errMsg = err.Error()
			}
			m.reload()
			m.clampRow()
		}
	case "c":
		if it := m.focusedItem(); it != nil {
			m.openComments(*it)
		}
	case "r":
		if m.commentsOpen {
			m.replying = true
			m.replyInput.SetValue("")
			m.replyInput.Focus()
			return m, textinput.Blink
		}
	case "esc":
		m.commentsOpen = false
		m.commentItem = nil
		m.errMsg = ""
	case "R":
		m.reload()
	}
	return m, nil
}

func (m *BoardModel) clampRow() {
	status := models.BoardColumns[m.focusedCol]
	max := len(m.cols[status]) - 1
	if m.focusedRow[m.focusedCol] > max {
		m.focusedRow[m.focusedCol] = max
	}
	if m.focusedRow[m.focusedCol] < 0 {
		m.focusedRow[m.focusedCol] = 0
	}
}

// moveFocused applies a move optimistically, then commits it. On failure
// the board reverts to the snapshot taken before the local edit and the
// error is surfaced; the server-side order is authoritative.
func (m *BoardModel) moveFocused(targetStatus models.ItemStatus, targetIndex int) {
	it := m.focusedItem()
	if it == nil {
		return
	}
	srcStatus := models.BoardColumns[m.focusedCol]
	if targetIndex < 0 {
		return
	}
	destSize := len(m.cols[targetStatus])
	if srcStatus == targetStatus {
		destSize--
	}
	if targetIndex > destSize {
		return
	}

	m.snapshot = m.cols.clone()
	m.applyLocalMove(*it, srcStatus, targetStatus, targetIndex)

	if err := m.eng.MoveWorkItem(m.ctx, it.ID, targetStatus, targetIndex); err != nil {
		m.cols = m.snapshot
		m.errMsg = "move failed: " + err.Error()
		return
	}
	m.errMsg = ""
	m.reload()
}

func (m *BoardModel) moveFocusedToColumn(destCol int) {
	it := m.focusedItem()
	if it == nil {
		return
	}
	dest := models.BoardColumns[destCol]
	// Land at the same row, clamped to the destination size.
	idx := m.focusedRow[m.focusedCol]
	if idx > len(m.cols[dest]) {
		idx = len(m.cols[dest])
	}
	m.moveFocused(dest, idx)
	m.focusedCol = destCol
	m.focusedRow[destCol] = idx
	m.clampRow()
}

func (m *BoardModel) applyLocalMove(it models.WorkItem, srcStatus, destStatus models.ItemStatus, targetIndex int) {
	src := m.cols[srcStatus]
	for i := range src {
		if src[i].ID == it.ID {
			src = append(src[:i], src[i+1:]...)
			break
		}
	}
	m.cols[srcStatus] = src

	dest := m.cols[destStatus]
	if targetIndex > len(dest) {
		targetIndex = len(dest)
	}
	it.Status = destStatus
	dest = append(dest[:targetIndex], append([]models.WorkItem{it}, dest[targetIndex:]...)...)
	m.cols[destStatus] = dest
}

func (m BoardModel) updateQuickAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.input.Value()
		if title != "" {
			status := models.BoardColumns[m.focusedCol]
			if _, err := m.eng.QuickAddItem(m.ctx, m.projectID, title, status); err != nil {
				m.errMsg = err.Error()
			}
			m.reload()
		}
		m.adding = false
		return m, nil
	case "esc":
		m.adding = false
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BoardModel) openComments(it models.WorkItem) {
	forest, err := m.eng.GetCommentTree(m.ctx, it.ID)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.commentItem = &it
	m.forest = forest
	m.commentsOpen = true
}

func (m BoardModel) updateReply(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		content := m.replyInput.Value()
		if content != "" && m.commentItem != nil {
			if _, err := m.eng.AddComment(m.ctx, m.commentItem.ID, m.author, content, m.replyTo); err != nil {
				m.errMsg = err.Error()
			}
			m.openComments(*m.commentItem)
		}
		m.replying = false
		m.replyTo = nil
		return m, nil
	case "esc":
		m.replying = false
		m.replyTo = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.replyInput, cmd = m.replyInput.Update(msg)
	return m, cmd
}
