// Package browse implements the main dashboard mode: the lead list in
// table or card form, search with a trailing debounce, filters, sort,
// pagination, and the create/edit modal with optimistic saves.
package browse

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadline/internal/auth"
	"leadline/internal/lead"
	"leadline/internal/mode"
	"leadline/internal/mutation"
	"leadline/internal/pubsub"
	"leadline/internal/query"
	"leadline/internal/ui/columnpicker"
	"leadline/internal/ui/confirm"
	"leadline/internal/ui/filtersmodal"
	"leadline/internal/ui/leadcard"
	"leadline/internal/ui/leadform"
	"leadline/internal/ui/leadtable"
	"leadline/internal/ui/picker"
	"leadline/internal/ui/styles"
	"leadline/internal/ui/toaster"
)

// Views.
const (
	ViewList = "list"
	ViewGrid = "grid"
)

const toastDuration = 3 * time.Second

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayForm
	overlayFilters
	overlayColumns
	overlaySort
	overlayConfirm
)

// debounceMsg fires when a trailing debounce timer expires. Version
// guards against superseded timers: every query change bumps the
// version, so only the timer armed for the latest change refetches.
type debounceMsg struct {
	version int
}

// fetchResultMsg carries a completed list fetch.
type fetchResultMsg struct {
	res query.Result
}

// snapshotMsg delivers a snapshot published by the query controller.
// ok turns false once the subscription channel closes.
type snapshotMsg struct {
	snap query.Snapshot
	ok   bool
}

// saveResultMsg carries a completed per-field save.
type saveResultMsg struct {
	id      int
	field   string
	updated lead.Lead
	err     error
}

// createResultMsg carries a completed draft creation.
type createResultMsg struct {
	created lead.Lead
	err     error
}

// deleteResultMsg carries a completed deletion.
type deleteResultMsg struct {
	id  int
	err error
}

// Model is the browse mode controller.
type Model struct {
	services mode.Services
	session  auth.Session

	query     *query.Controller
	mutations *mutation.Controller
	events    <-chan pubsub.Event[query.Snapshot]

	view      string
	table     leadtable.Model
	gridIndex int

	searchInput textinput.Model
	searching   bool

	spinner spinner.Model
	loading bool
	lastSeq uint64

	toast toaster.Model

	overlay      overlayKind
	form         leadform.Model
	filters      filtersmodal.Model
	columns      columnpicker.Model
	sortPicker   picker.Model
	confirmModal confirm.Model
	deleteTarget int

	// inline holds edit sessions for quick edits made outside the
	// form, keyed by lead identifier.
	inline map[int]*mutation.Session

	deepLinkDone bool

	width  int
	height int
}

// New creates the browse mode for a signed-in session.
func New(services mode.Services, session auth.Session, mutations *mutation.Controller) Model {
	q := query.New(services.API, services.Results, services.Prefs, services.Clipboard, session)

	search := textinput.New()
	search.Placeholder = "search name, phone, address..."
	search.Prompt = "/ "
	search.CharLimit = 128
	search.SetValue(q.Search())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	view := services.Prefs.View()
	if view != ViewGrid {
		view = ViewList
	}

	visible := services.Prefs.Columns()
	if visible == nil {
		visible = leadtable.DefaultVisible()
	}

	table := leadtable.New(visible)
	table = table.SetSort(q.SortField(), q.SortDir())

	m := Model{
		services:    services,
		session:     session,
		query:       q,
		mutations:   mutations,
		events:      q.Subscribe(context.Background()),
		view:        view,
		table:       table,
		searchInput: search,
		spinner:     sp,
		toast:       toaster.New(),
		inline:      make(map[int]*mutation.Session),
	}

	// Reopen the modal that was open when the last run ended.
	if last, ok := services.Prefs.LastOpened(); ok {
		m.form = leadform.New(mutation.NewSession(last))
		m.overlay = overlayForm
	}
	return m
}

// Init dispatches the initial fetch and starts listening for
// published query snapshots.
func (m Model) Init() tea.Cmd {
	f := m.query.BeginFetch()
	return tea.Batch(m.doFetch(f), m.spinner.Tick, waitForSnapshot(m.events))
}

// waitForSnapshot blocks on the subscription channel and re-arms
// after every delivery. The channel closes when the controller does,
// which ends the loop.
func waitForSnapshot(events <-chan pubsub.Event[query.Snapshot]) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		return snapshotMsg{snap: ev.Payload, ok: ok}
	}
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.table = m.table.SetSize(width, height-4)
	m.form = m.form.SetSize(width, height)
	m.filters = m.filters.SetSize(width, height)
	m.columns = m.columns.SetSize(width, height)
	m.sortPicker = m.sortPicker.SetSize(width, height)
	m.confirmModal = m.confirmModal.SetSize(width, height)
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toaster.DismissMsg:
		m.toast = m.toast.Hide()
		return m, nil

	case snapshotMsg:
		if !msg.ok {
			return m, nil
		}
		m = m.applySnapshot(msg.snap)
		return m, waitForSnapshot(m.events)

	case debounceMsg:
		if msg.version != m.query.Version() {
			return m, nil
		}
		return m.dispatchFetch()

	case fetchResultMsg:
		return m.applyFetch(msg)

	case saveResultMsg:
		return m.applySave(msg)

	case createResultMsg:
		return m.applyCreate(msg)

	case deleteResultMsg:
		return m.applyDelete(msg)

	case leadform.SaveFieldMsg:
		return m.saveFormField(msg.Field)

	case leadform.SubmitMsg:
		draft := m.form.Session().Lead()
		return m, m.doCreate(draft)

	case leadform.DeleteMsg:
		m.deleteTarget = msg.ID
		m.confirmModal = confirm.New("Delete Lead",
			fmt.Sprintf("Delete lead #%d? This cannot be undone.", msg.ID),
			"Delete").SetSize(m.width, m.height)
		m.overlay = overlayConfirm
		return m, nil

	case leadform.CloseMsg:
		return m.closeForm(), nil

	case filtersmodal.FilterSetMsg:
		var version int
		if msg.Value == "" {
			version = m.query.RemoveFilter(msg.Key)
		} else {
			version = m.query.SetFilter(msg.Key, msg.Value)
		}
		return m, m.debounce(version)

	case filtersmodal.TagsChangedMsg:
		return m, m.debounce(m.query.SetTags(msg.Tags))

	case filtersmodal.ClearMsg:
		version := m.query.ClearFilters()
		m.filters = m.filters.Reset(m.query.Filters(), m.query.Tags())
		return m, m.debounce(version)

	case filtersmodal.CloseMsg, columnpicker.CloseMsg:
		m.overlay = overlayNone
		return m, nil

	case columnpicker.ChangedMsg:
		m.table = m.table.SetVisible(msg.Columns)
		m.services.Prefs.SetColumns(msg.Columns)
		return m, nil

	case confirm.ConfirmedMsg:
		return m, m.doDelete(m.deleteTarget)

	case confirm.CancelledMsg:
		m.overlay = m.reopenOrNone()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.overlay == overlayForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reopenOrNone returns to the form when a confirm dialog was opened
// from it, otherwise closes all overlays.
func (m Model) reopenOrNone() overlayKind {
	if m.form.Session() != nil && !m.form.Session().IsDraft() {
		return overlayForm
	}
	return overlayNone
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	// Overlays capture all keys while open.
	switch m.overlay {
	case overlayForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case overlayFilters:
		var cmd tea.Cmd
		m.filters, cmd = m.filters.Update(msg)
		return m, cmd
	case overlayColumns:
		var cmd tea.Cmd
		m.columns, cmd = m.columns.Update(msg)
		return m, cmd
	case overlaySort:
		return m.handleSortKey(msg)
	case overlayConfirm:
		var cmd tea.Cmd
		m.confirmModal, cmd = m.confirmModal.Update(msg)
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "up", "k":
		return m.moveSelection(-1), nil
	case "down", "j":
		return m.moveSelection(1), nil
	case "left", "h":
		if m.view == ViewGrid {
			return m.moveGrid(-1), nil
		}
		return m.setPage(m.query.Page() - 1)
	case "right", "l":
		if m.view == ViewGrid {
			return m.moveGrid(1), nil
		}
		return m.setPage(m.query.Page() + 1)
	case "[", "pgup":
		return m.setPage(m.query.Page() - 1)
	case "]", "pgdown":
		return m.setPage(m.query.Page() + 1)
	case "enter":
		if l, ok := m.selected(); ok {
			return m.openForm(l), nil
		}
	case "n":
		m.form = leadform.New(mutation.NewSession(lead.NewDraft())).SetSize(m.width, m.height)
		m.overlay = overlayForm
		return m, nil
	case "f":
		locked := ""
		if !m.session.Admin {
			locked = m.session.Username
		}
		m.filters = filtersmodal.New(m.query.Filters(), m.query.Tags(), locked).
			SetSize(m.width, m.height)
		m.overlay = overlayFilters
		return m, nil
	case "o":
		m.columns = columnpicker.New(m.table.Visible()).SetSize(m.width, m.height)
		m.overlay = overlayColumns
		return m, nil
	case "s":
		m.sortPicker = m.newSortPicker()
		m.overlay = overlaySort
		return m, nil
	case "v":
		return m.toggleView(), nil
	case "c":
		return m, m.debounce(m.query.ClearFilters())
	case "r":
		m.services.Results.Clear()
		return m.dispatchFetch()
	case "1", "2", "3":
		return m.inlineEdit(lead.FieldPriority, msg.String())
	case "ctrl+l":
		// Logout drops everything scoped to the identity: cached
		// results and saved filters must not leak to the next user.
		m.services.Gate.Logout()
		m.services.Results.Clear()
		m.services.Prefs.SetFilters(nil)
		m.services.Prefs.SetTags(nil)
		m.query.Close()
		return m, func() tea.Msg { return mode.LogoutMsg{} }
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != m.query.Search() {
			version := m.query.SetSearch(m.searchInput.Value())
			m = m.syncFromQuery()
			return m, tea.Batch(cmd, m.debounce(version))
		}
		return m, cmd
	}
}

func (m Model) handleSortKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.overlay = overlayNone
		return m, nil
	case "enter":
		field := m.sortPicker.Selected().Value
		m.overlay = overlayNone
		version := m.query.SetSort(field)
		m.table = m.table.SetSort(m.query.SortField(), m.query.SortDir())
		return m, m.debounce(version)
	default:
		var cmd tea.Cmd
		m.sortPicker, cmd = m.sortPicker.Update(msg)
		return m, cmd
	}
}

func (m Model) newSortPicker() picker.Model {
	options := make([]picker.Option, 0, len(leadtable.Columns))
	for _, col := range leadtable.Columns {
		options = append(options, picker.Option{Label: col.Title, Value: col.Key})
	}
	p := picker.New("Sort By", options).SetSize(m.width, m.height)
	if idx := picker.FindIndexByValue(options, m.query.SortField()); idx >= 0 {
		p = p.SetSelected(idx)
	}
	return p
}

func (m Model) moveSelection(dir int) Model {
	if m.view == ViewGrid {
		return m.moveGrid(dir * leadcard.PerRow(m.width))
	}
	if dir < 0 {
		m.table = m.table.MoveUp()
	} else {
		m.table = m.table.MoveDown()
	}
	return m
}

func (m Model) moveGrid(delta int) Model {
	next := m.gridIndex + delta
	if next < 0 || next >= len(m.query.Leads()) {
		return m
	}
	m.gridIndex = next
	return m
}

func (m Model) selected() (lead.Lead, bool) {
	if m.view == ViewGrid {
		leads := m.query.Leads()
		if m.gridIndex >= 0 && m.gridIndex < len(leads) {
			return leads[m.gridIndex], true
		}
		return lead.Lead{}, false
	}
	return m.table.Selected()
}

func (m Model) toggleView() Model {
	if m.view == ViewList {
		m.view = ViewGrid
		m.gridIndex = 0
	} else {
		m.view = ViewList
	}
	m.services.Prefs.SetView(m.view)
	return m
}

// setPage moves to a page directly. Page changes go through the same
// trailing debounce as every other query change, so rapid paging
// issues one request.
func (m Model) setPage(page int) (mode.Controller, tea.Cmd) {
	if page < 1 {
		return m, nil
	}
	if last := int(m.query.Meta().TotalPages); last > 0 && page > last {
		return m, nil
	}
	return m, m.debounce(m.query.SetPage(page))
}

func (m Model) openForm(l lead.Lead) Model {
	m.form = leadform.New(mutation.NewSession(l)).SetSize(m.width, m.height)
	m.overlay = overlayForm
	m.services.Prefs.SetLastOpened(l)
	return m
}

func (m Model) closeForm() Model {
	m.overlay = overlayNone
	m.services.Prefs.ClearLastOpened()
	return m
}

// debounce arms the trailing debounce timer for a query version.
func (m Model) debounce(version int) tea.Cmd {
	return tea.Tick(m.services.Config.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{version: version}
	})
}

// dispatchFetch snapshots the query and starts the network call. A
// cache hit paints immediately; the spinner shows only on a miss.
func (m Model) dispatchFetch() (Model, tea.Cmd) {
	f := m.query.BeginFetch()
	m.lastSeq = f.Seq
	m = m.syncFromQuery()
	m.loading = !f.HadCache
	cmds := []tea.Cmd{m.doFetch(f)}
	if m.loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) doFetch(f query.Fetch) tea.Cmd {
	return func() tea.Msg {
		return fetchResultMsg{res: m.query.Do(context.Background(), f)}
	}
}

func (m Model) applyFetch(msg fetchResultMsg) (Model, tea.Cmd) {
	if msg.res.Seq == m.lastSeq {
		m.loading = false
	}
	m.query.Apply(msg.res)
	m = m.syncFromQuery()

	var cmds []tea.Cmd
	if msg.res.Err != nil && !msg.res.HadCache && msg.res.Seq == m.lastSeq {
		m.toast = m.toast.Show("Could not load leads", toaster.StyleError)
		cmds = append(cmds, toaster.ScheduleDismiss(toastDuration))
	}

	// A deep-linked lead opens once, after the first page lands. An
	// identifier not on the page is ignored without an error.
	if !m.deepLinkDone && m.services.DeepLinkID != 0 {
		m.deepLinkDone = true
		for _, l := range m.query.Leads() {
			if l.ID == m.services.DeepLinkID {
				m = m.openForm(l)
				m.table = m.table.SelectByID(l.ID)
				break
			}
		}
	}
	return m, tea.Batch(cmds...)
}

// applySnapshot refreshes the visible widgets from a published
// snapshot, the asynchronous counterpart of syncFromQuery.
func (m Model) applySnapshot(snap query.Snapshot) Model {
	m.table = m.table.SetLeads(snap.Leads)
	if m.gridIndex >= len(snap.Leads) {
		m.gridIndex = max(0, len(snap.Leads)-1)
	}
	return m
}

// syncFromQuery refreshes the visible widgets from the published
// query state.
func (m Model) syncFromQuery() Model {
	m.table = m.table.SetLeads(m.query.Leads())
	if m.gridIndex >= len(m.query.Leads()) {
		m.gridIndex = max(0, len(m.query.Leads())-1)
	}
	return m
}

// inlineEdit applies a quick single-field edit to the selected lead:
// optimistic repaint first, save in the background.
func (m Model) inlineEdit(field, value string) (mode.Controller, tea.Cmd) {
	l, ok := m.selected()
	if !ok || l.IsDraft() {
		return m, nil
	}
	sess, exists := m.inline[l.ID]
	if !exists {
		sess = mutation.NewSession(l)
		m.inline[l.ID] = sess
	}
	if err := sess.Stage(field, value); err != nil {
		return m, nil
	}
	if !sess.Dirty(field) {
		return m, nil
	}
	if !sess.Begin(field) {
		m.toast = m.toast.Show("Save already in progress", toaster.StyleWarn)
		return m, toaster.ScheduleDismiss(toastDuration)
	}
	m.query.ReplaceLead(sess.Lead())
	m = m.syncFromQuery()
	return m, m.doSave(sess.Lead(), field)
}

// saveFormField persists one dirty form field.
func (m Model) saveFormField(field string) (mode.Controller, tea.Cmd) {
	sess := m.form.Session()
	if sess == nil || sess.IsDraft() {
		return m, nil
	}
	if !sess.Begin(field) {
		m.toast = m.toast.Show("Save already in progress", toaster.StyleWarn)
		return m, toaster.ScheduleDismiss(toastDuration)
	}
	m.query.ReplaceLead(sess.Lead())
	m = m.syncFromQuery()
	return m, m.doSave(sess.Lead(), field)
}

func (m Model) doSave(record lead.Lead, field string) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.mutations.Update(context.Background(), record, field)
		return saveResultMsg{id: record.ID, field: field, updated: updated, err: err}
	}
}

// sessionFor finds the edit session a save result belongs to.
func (m Model) sessionFor(id int) *mutation.Session {
	if m.overlay == overlayForm {
		if sess := m.form.Session(); sess != nil && sess.Lead().ID == id {
			return sess
		}
	}
	return m.inline[id]
}

func (m Model) applySave(msg saveResultMsg) (Model, tea.Cmd) {
	sess := m.sessionFor(msg.id)
	if sess == nil {
		return m, nil
	}

	if msg.err != nil {
		sess.Rollback(msg.field)
		m.query.ReplaceLead(sess.Lead())
		m = m.syncFromQuery()
		m.toast = m.toast.Show("Save failed, change reverted", toaster.StyleError)
		return m, toaster.ScheduleDismiss(toastDuration)
	}

	sess.Commit(msg.field, msg.updated)
	m.query.ReplaceLead(sess.Lead())
	m = m.syncFromQuery()
	if m.overlay == overlayForm && m.form.Session() == sess {
		m.services.Prefs.SetLastOpened(sess.Lead())
	}
	m.toast = m.toast.Show("Saved", toaster.StyleSuccess)
	return m, toaster.ScheduleDismiss(toastDuration)
}

func (m Model) doCreate(draft lead.Lead) tea.Cmd {
	return func() tea.Msg {
		created, err := m.mutations.Create(context.Background(), draft)
		return createResultMsg{created: created, err: err}
	}
}

func (m Model) applyCreate(msg createResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		// The form stays open; nothing was staged optimistically.
		m.toast = m.toast.Show("Could not create lead", toaster.StyleError)
		return m, toaster.ScheduleDismiss(toastDuration)
	}

	// Show the new record at the top right away, then refetch so the
	// server decides where it actually sorts.
	m.query.PrependLead(msg.created)
	m = m.closeForm()
	m.services.Results.Clear()
	m, fetchCmd := m.dispatchFetch()
	m.toast = m.toast.Show("Lead created", toaster.StyleSuccess)
	return m, tea.Batch(fetchCmd, toaster.ScheduleDismiss(toastDuration))
}

func (m Model) doDelete(id int) tea.Cmd {
	return func() tea.Msg {
		return deleteResultMsg{id: id, err: m.mutations.Delete(context.Background(), id)}
	}
}

func (m Model) applyDelete(msg deleteResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		// The dialog closes but the form stays open: the record still
		// exists and the user decides what to do next.
		m.overlay = m.reopenOrNone()
		m.toast = m.toast.Show("Delete failed", toaster.StyleError)
		return m, toaster.ScheduleDismiss(toastDuration)
	}

	m.query.RemoveLead(msg.id)
	delete(m.inline, msg.id)
	m = m.closeForm()
	m = m.syncFromQuery()
	m.services.Results.Clear()
	m, fetchCmd := m.dispatchFetch()
	m.toast = m.toast.Show("Lead deleted", toaster.StyleSuccess)
	return m, tea.Batch(fetchCmd, toaster.ScheduleDismiss(toastDuration))
}

// View renders the dashboard.
func (m Model) View() string {
	var body string
	switch {
	case m.loading && len(m.query.Leads()) == 0:
		body = lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" loading leads")
	case m.query.Err() != nil:
		body = styles.ErrorStyle.Render("Could not load leads: " + m.query.Err().Error())
	case len(m.query.Leads()) == 0:
		body = lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("no leads match"))
	case m.view == ViewGrid:
		body = leadcard.Grid(m.query.Leads(), m.gridIndex, m.width)
	default:
		body = m.table.View()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
	)

	switch m.overlay {
	case overlayForm:
		view = m.form.Overlay(view)
	case overlayFilters:
		view = m.filters.Overlay(view)
	case overlayColumns:
		view = m.columns.Overlay(view)
	case overlaySort:
		view = m.sortPicker.Overlay(view)
	case overlayConfirm:
		view = m.confirmModal.Overlay(view)
	}

	if m.toast.Visible() {
		view = m.toast.Overlay(view, m.width, m.height)
	}
	return view
}

func (m Model) contentHeight() int {
	return max(3, m.height-4)
}

func (m Model) headerView() string {
	search := m.searchInput.View()
	if !m.searching && m.searchInput.Value() == "" {
		search = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("/ search")
	}
	loading := ""
	if m.loading {
		loading = " " + m.spinner.View()
	}
	return styles.StatusBarStyle.Render(search + loading)
}

func (m Model) statusView() string {
	meta := m.query.Meta()
	parts := fmt.Sprintf("page %d/%d · %d leads", m.query.Page(), max(1, int(meta.TotalPages)), int(meta.Total))

	filters := m.query.Filters()
	tags := m.query.Tags()
	if n := len(filters) + len(tags); n > 0 {
		parts += fmt.Sprintf(" · %d filters", n)
	}
	parts += " · sort " + m.query.SortField() + " " + m.query.SortDir()

	who := m.session.Username
	if m.session.Admin {
		who += " (admin)"
	}
	parts += " · " + who

	help := "enter edit · n new · f filters · s sort · v view · o columns · ctrl+l logout"
	return styles.StatusBarStyle.Render(parts) + "\n" +
		lipgloss.NewStyle().Foreground(styles.TextMutedColor).Padding(0, 1).Render(help)
}
