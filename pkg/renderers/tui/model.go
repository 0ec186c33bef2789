package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/model"
	"github.com/goliatone/go-profileform/pkg/present"
	"github.com/goliatone/go-profileform/pkg/render"
)

// DefaultTitle is the form heading.
const DefaultTitle = "Basic Details Form"

// NoticeDuration is how long the success notice stays on screen.
const NoticeDuration = 5 * time.Second

// submitFocus names the submit button in Focused.
const submitFocus = "submit"

// submittedMsg carries the submitter outcome back into Update.
type submittedMsg struct {
	err error
}

// noticeExpiredMsg hides the notice raised by submission seq.
type noticeExpiredMsg struct {
	seq int
}

// Model is the bubbletea model of the profile form. Every edit goes through
// the pure formstate transitions; the model only tracks focus and widgets.
type Model struct {
	form      model.FormModel
	fields    []model.Field
	state     formstate.State
	inputs    []textinput.Model
	genders   []model.Gender
	gender    int
	focus     int
	tagCursor int
	spinner   spinner.Model

	submitter formstate.Submitter
	presenter *present.Presenter
	now       func() time.Time
	logger    *zap.Logger
	styles    Styles
	title     string
	summary   present.Summary
	notice    bool
	noticeSeq int
	quitting  bool
}

// New builds the model with the first field focused.
func New(options ...Option) *Model {
	form := model.ProfileForm()
	m := &Model{
		form:      form,
		fields:    form.Fields(),
		state:     formstate.New(),
		genders:   model.Genders(),
		gender:    -1,
		tagCursor: -1,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		submitter: formstate.NewDelaySubmitter(formstate.DefaultSubmitDelay),
		presenter: present.New(),
		now:       time.Now,
		logger:    zap.NewNop(),
		styles:    DefaultStyles(),
		title:     DefaultTitle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	m.inputs = make([]textinput.Model, len(m.fields))
	for i, field := range m.fields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = field.Placeholder
		input.CharLimit = 128
		input.Width = 32
		m.inputs[i] = input
	}
	m.setFocus(0)
	return m
}

// Run starts an interactive program on the terminal and returns the summary
// of the last successful submission, which is empty when the user quits
// before submitting.
func Run(ctx context.Context, options ...Option) (present.Summary, error) {
	m := New(options...)
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("tui: run program: %w", err)
	}
	if done, ok := final.(*Model); ok {
		return done.Summary(), nil
	}
	return m.Summary(), nil
}

// State returns the current form state.
func (m *Model) State() formstate.State {
	return m.state
}

// Summary returns the presented snapshot, or nil before the first submission.
func (m *Model) Summary() present.Summary {
	return m.summary
}

// Focused names the focused field, or "submit" for the button.
func (m *Model) Focused() string {
	if m.focus >= len(m.fields) {
		return submitFocus
	}
	return m.fields[m.focus].Name
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case submittedMsg:
		return m, m.finishSubmit(msg.err)
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = false
		}
		return m, nil
	case spinner.TickMsg:
		if !m.state.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice = false
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return tea.Quit
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	if m.focus >= len(m.fields) {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return m.submit()
		}
		return nil
	}

	switch m.fields[m.focus].Type {
	case model.FieldTypeSelect:
		return m.handleGenderKey(msg)
	case model.FieldTypeTags:
		if cmd, handled := m.handleTagKey(msg); handled {
			return cmd
		}
	default:
		if msg.Type == tea.KeyEnter {
			return m.moveFocus(1)
		}
	}
	return m.updateInput(msg)
}

func (m *Model) handleGenderKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.cycleGender(-1)
	case "right", "l", " ":
		m.cycleGender(1)
	case "enter":
		return m.moveFocus(1)
	}
	return nil
}

func (m *Model) cycleGender(delta int) {
	n := len(m.genders)
	if n == 0 {
		return
	}
	switch {
	case m.gender < 0 && delta > 0:
		m.gender = 0
	case m.gender < 0:
		m.gender = n - 1
	default:
		m.gender = (m.gender + delta + n) % n
	}
	m.setField(model.FieldGender, string(m.genders[m.gender]))
}

// handleTagKey reports whether the key was consumed by the tag list rather
// than the text input.
func (m *Model) handleTagKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	input := &m.inputs[m.focus]
	tags := m.state.Tags()

	switch msg.Type {
	case tea.KeyEnter:
		next, effect := formstate.AddTag(m.state, input.Value())
		m.state = next
		if !effect.FocusTagInput {
			return nil, true
		}
		input.SetValue("")
		m.tagCursor = -1
		m.logger.Debug("tag added", zap.Int("tags", len(next.Tags())))
		return input.Focus(), true

	case tea.KeyLeft:
		if input.Value() != "" || len(tags) == 0 {
			return nil, input.Value() == ""
		}
		if m.tagCursor < 0 {
			m.tagCursor = len(tags) - 1
		} else if m.tagCursor > 0 {
			m.tagCursor--
		}
		return nil, true

	case tea.KeyRight:
		if m.tagCursor < 0 {
			return nil, false
		}
		m.tagCursor++
		if m.tagCursor >= len(tags) {
			m.tagCursor = -1
		}
		return nil, true

	case tea.KeyDelete, tea.KeyBackspace:
		if m.tagCursor < 0 {
			return nil, false
		}
		next, err := formstate.RemoveTag(m.state, m.tagCursor)
		if err != nil {
			m.logger.Warn("remove tag", zap.Int("index", m.tagCursor), zap.Error(err))
			m.tagCursor = -1
			return nil, true
		}
		m.state = next
		if remaining := len(next.Tags()); m.tagCursor >= remaining {
			m.tagCursor = remaining - 1
		}
		return nil, true
	}

	m.tagCursor = -1
	return nil, false
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	if m.focus >= len(m.fields) || m.fields[m.focus].Type == model.FieldTypeSelect {
		return nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if value := m.inputs[m.focus].Value(); value != before {
		m.setField(m.fields[m.focus].Name, value)
	}
	return cmd
}

func (m *Model) setField(name, value string) {
	next, err := formstate.SetField(m.state, name, value)
	if err != nil {
		m.logger.Error("set field", zap.String("field", name), zap.Error(err))
		return
	}
	m.state = next
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	n := len(m.fields) + 1
	return m.setFocus((m.focus + delta + n) % n)
}

func (m *Model) setFocus(index int) tea.Cmd {
	if m.focus < len(m.fields) {
		m.inputs[m.focus].Blur()
	}
	m.focus = index
	m.tagCursor = -1
	if index < len(m.fields) && m.fields[index].Type != model.FieldTypeSelect {
		return m.inputs[index].Focus()
	}
	return nil
}

func (m *Model) focusField(name string) tea.Cmd {
	for i, field := range m.fields {
		if field.Name == name {
			return m.setFocus(i)
		}
	}
	return nil
}

// submit validates the form and, when valid, hands the staged snapshot to
// the submitter on a command goroutine.
func (m *Model) submit() tea.Cmd {
	next, result, err := formstate.BeginSubmit(m.state, m.now())
	if errors.Is(err, formstate.ErrSubmitInProgress) {
		m.logger.Debug("submit ignored while busy")
		return nil
	}
	if err != nil {
		m.logger.Error("begin submit", zap.Error(err))
		return nil
	}
	m.state = next
	if !result.Valid {
		m.logger.Debug("submit rejected", zap.Int("issues", len(result.Issues)))
		if len(result.Issues) > 0 {
			return m.focusField(result.Issues[0].Field)
		}
		return nil
	}

	staged, _ := next.Staged()
	m.logger.Info("submitting profile")
	return tea.Batch(m.spinner.Tick, m.deliver(staged))
}

func (m *Model) deliver(staged model.Snapshot) tea.Cmd {
	submitter := m.submitter
	return func() tea.Msg {
		return submittedMsg{err: submitter.Submit(context.Background(), staged)}
	}
}

// finishSubmit applies the submitter outcome. On success it raises the notice
// and returns the command that hides it after NoticeDuration.
func (m *Model) finishSubmit(err error) tea.Cmd {
	if err != nil {
		m.logger.Warn("submit failed", zap.Error(err))
		m.state = formstate.FailSubmit(m.state, err)
		return nil
	}
	next, _, err := formstate.CompleteSubmit(m.state)
	if err != nil {
		m.logger.Error("complete submit", zap.Error(err))
		return nil
	}
	m.state = next
	if snapshot, ok := next.Snapshot(); ok {
		m.summary = m.presenter.Present(snapshot)
	}
	m.logger.Info("profile submitted")

	m.noticeSeq++
	m.notice = true
	seq := m.noticeSeq
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	errs := render.MapMessages(m.form, m.state.Errors(), m.state.FormError())
	index := 0
	for _, section := range m.form.Sections {
		b.WriteString(m.styles.Section.Render(section.Title))
		b.WriteString("\n")
		for _, field := range section.Fields {
			b.WriteString(m.fieldView(index, field))
			b.WriteString("\n")
			if msg := errs.FieldMessage(field.Name); msg != "" {
				b.WriteString(m.styles.Error.Render(msg))
				b.WriteString("\n")
			}
			index++
		}
	}
	for _, msg := range errs.Form {
		b.WriteString(m.styles.Error.UnsetPaddingLeft().Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n")

	if m.notice {
		notice := formstate.SubmittedNotice
		b.WriteString(m.styles.Notice.Render(notice.Title + ": " + notice.Description))
		b.WriteString("\n")
	}
	if len(m.summary) > 0 {
		b.WriteString(m.styles.Summary.Render(render.DefaultTitle + "\n" + strings.TrimRight(m.summary.Text(), "\n")))
		b.WriteString("\n")
	}

	if !m.quitting {
		b.WriteString(m.styles.Muted.Render("tab/shift+tab move  enter add tag  ←/→ select  del remove  ctrl+s submit  esc quit"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) fieldView(index int, field model.Field) string {
	label := m.styles.Label
	if index == m.focus {
		label = m.styles.Focused
	}

	var content string
	switch field.Type {
	case model.FieldTypeSelect:
		content = m.genderView(field, index == m.focus)
	case model.FieldTypeTags:
		chips := make([]string, 0, len(m.state.Tags()))
		for i, tag := range m.state.Tags() {
			style := m.styles.Tag
			if index == m.focus && i == m.tagCursor {
				style = m.styles.TagFocus
			}
			chips = append(chips, style.Render(tag+" ×"))
		}
		if len(chips) > 0 {
			content = strings.Join(chips, " ") + " "
		}
		content += m.inputs[index].View()
	default:
		if field.Prefix != "" {
			content = m.styles.Muted.Render(field.Prefix) + " "
		}
		content += m.inputs[index].View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(field.Label), content)
}

func (m *Model) genderView(field model.Field, focused bool) string {
	text := m.styles.Muted.Render(field.Placeholder)
	if m.gender >= 0 {
		text = m.genders[m.gender].Label()
	}
	if focused {
		return "‹ " + text + " ›"
	}
	return text
}

func (m *Model) buttonView() string {
	if m.state.Submitting() {
		return m.styles.Button.Render(m.spinner.View() + " Submitting...")
	}
	label := "Submit"
	if m.focus >= len(m.fields) {
		label = "> Submit <"
	}
	return m.styles.Button.Render(label)
}
