package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/agebook/internal/directory"
	"github.com/jask/agebook/internal/drag"
	"github.com/jask/agebook/internal/form"
)

// App is the bubbletea model for the age group board.
type App struct {
	store  *directory.Store
	form   *form.Controller
	drag   *drag.Coordinator
	keys   *KeyRegistry
	log    *zap.Logger
	opts   Options
	search string
	sort   directory.Sort

	bucket     int // focused column
	row        int // cursor within the focused column
	dropBucket int
	dropRow    int

	modal       modalState
	inputs      []textinput.Model
	fieldFocus  int
	searchInput textinput.Model

	status    string
	statusErr bool
	width     int
	height    int
}

// Options tune presentation.
type Options struct {
	// SuggestDistance is the largest edit distance for "did you mean" hints; 0 disables them.
	SuggestDistance int
	// Sort is the initial sort option, e.g. "age-asc". Empty keeps store order.
	Sort string
}

type modalState string

const (
	modalNone   modalState = ""
	modalForm   modalState = "form"
	modalSearch modalState = "search"
)

func New(store *directory.Store, opts Options, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		store:       store,
		form:        form.NewController(store, log),
		drag:        drag.NewCoordinator(store, log),
		keys:        NewKeyRegistry(DefaultBindings()),
		log:         log,
		opts:        opts,
		inputs:      newFormInputs(),
		searchInput: newSearchInput(),
		width:       120,
		height:      32,
	}
	if opts.Sort != "" {
		// a bad option leaves store order and an error in the status line
		_ = a.SetSort(opts.Sort)
	}
	return a
}

func newFormInputs() []textinput.Model {
	placeholders := map[string]string{
		directory.FieldName:  "Name",
		directory.FieldAge:   "Age",
		directory.FieldEmail: "name@example.com",
		directory.FieldPhone: "Phone",
	}
	inputs := make([]textinput.Model, len(form.FieldOrder))
	for i, field := range form.FieldOrder {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[field]
		ti.CharLimit = 64
		ti.Width = 32
		if field == directory.FieldAge {
			ti.CharLimit = 4
		}
		inputs[i] = ti
	}
	return inputs
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search by name"
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) SetError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

// ---------------------------------------------------------------------------
// Derived view
// ---------------------------------------------------------------------------

// Derived returns the filtered, sorted list the board renders.
func (a *App) Derived() []directory.Person {
	return directory.Derive(a.store.List(), a.search, a.sort)
}

// Columns returns the derived list split across the four buckets.
func (a *App) Columns() [4][]directory.Person {
	return directory.PartitionAll(a.Derived())
}

// Selected returns the person under the cursor.
func (a *App) Selected() (directory.Person, bool) {
	col := a.Columns()[a.bucket]
	if a.row < 0 || a.row >= len(col) {
		return directory.Person{}, false
	}
	return col[a.row], true
}

func (a *App) clampCursor() {
	cols := a.Columns()
	a.bucket = max(0, min(a.bucket, len(cols)-1))
	a.row = max(0, min(a.row, len(cols[a.bucket])-1))
}

// focusPerson moves the cursor to id if it is visible.
func (a *App) focusPerson(id string) {
	for b, col := range a.Columns() {
		if i := slices.IndexFunc(col, func(p directory.Person) bool { return p.ID == id }); i >= 0 {
			a.bucket, a.row = b, i
			return
		}
	}
	a.clampCursor()
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// AddPerson opens an empty form.
func (a *App) AddPerson() tea.Cmd {
	a.form.OpenForAdd()
	return a.openForm()
}

// EditPerson opens the form for id.
func (a *App) EditPerson(id string) tea.Cmd {
	if err := a.form.OpenForEdit(id); err != nil {
		a.SetError(err)
		a.modal = modalNone
		return nil
	}
	return a.openForm()
}

func (a *App) openForm() tea.Cmd {
	a.modal = modalForm
	values := a.form.Values()
	for i, field := range form.FieldOrder {
		a.inputs[i].SetValue(values.Get(field))
		a.inputs[i].CursorEnd()
		a.inputs[i].Blur()
	}
	a.fieldFocus = 0
	return a.inputs[0].Focus()
}

// DeletePerson removes id from the store.
func (a *App) DeletePerson(id string) {
	p, err := a.store.Get(id)
	if err != nil {
		a.SetError(err)
		return
	}
	a.store.Delete(id)
	if active, ok := a.drag.Active(); ok && active == id {
		a.drag.Cancel()
	}
	a.clampCursor()
	a.SetStatus(fmt.Sprintf("deleted %s", p.Name))
}

// SubmitForm validates and applies v. Validation failures leave the form open.
func (a *App) SubmitForm(v form.Values) error {
	mode := a.form.Mode()
	p, err := a.form.Submit(v)
	if err != nil {
		a.SetError(err)
		if !a.form.IsOpen() {
			a.closeModal()
		}
		return err
	}
	a.closeModal()
	if mode == form.ModeAdd {
		a.SetStatus(fmt.Sprintf("added %s", p.Name))
	} else {
		a.SetStatus(fmt.Sprintf("saved %s", p.Name))
	}
	a.focusPerson(p.ID)
	return nil
}

// CancelForm closes the form without saving.
func (a *App) CancelForm() {
	a.form.Cancel()
	a.closeModal()
	a.SetStatus("")
}

func (a *App) closeModal() {
	a.modal = modalNone
	for i := range a.inputs {
		a.inputs[i].Blur()
	}
	a.searchInput.Blur()
}

// Search sets the name filter.
func (a *App) Search(term string) {
	a.search = directory.NormalizeSearch(term)
	a.row = 0
	a.clampCursor()
	if a.search == "" {
		a.SetStatus("")
		return
	}
	a.SetStatus(fmt.Sprintf("%d match(es) for %q", len(a.Derived()), a.search))
}

// SetSort applies a selector value such as "name-desc". Unknown values keep
// the current sort.
func (a *App) SetSort(option string) error {
	s, err := directory.ParseSortOption(option)
	if err != nil {
		a.log.Warn("sort option rejected", zap.String("option", option))
		a.SetError(err)
		return err
	}
	a.sort = s
	a.clampCursor()
	a.SetStatus("sorted: " + s.Label())
	return nil
}

// ClearSort returns to store order.
func (a *App) ClearSort() {
	a.sort = directory.Sort{}
	a.clampCursor()
	a.SetStatus("sorted: " + a.sort.Label())
}

func (a *App) cycleSort() {
	i := slices.Index(directory.SortOptions, a.sort.String())
	next := directory.SortOptions[(i+1)%len(directory.SortOptions)]
	_ = a.SetSort(next)
}

// StartDrag picks up id; the drop target starts at the cursor.
func (a *App) StartDrag(id string) {
	a.drag.StartDrag(id)
	a.dropBucket = a.bucket
	a.dropRow = a.row
	if p, err := a.store.Get(id); err == nil {
		a.SetStatus(fmt.Sprintf("moving %s: pick a group and press enter", p.Name))
	}
}

// Dragging reports whether a card is picked up.
func (a *App) Dragging() bool {
	_, ok := a.drag.Active()
	return ok
}

// DropOnBucket drops the dragged card into bucket at row of the rendered column.
func (a *App) DropOnBucket(bucket, row int) error {
	if bucket < 0 || bucket >= len(directory.Buckets) {
		a.drag.Cancel()
		err := fmt.Errorf("no age group %d", bucket)
		a.SetError(err)
		return err
	}
	target := directory.Buckets[bucket]
	id, _ := a.drag.Active()
	index := drag.InsertionIndex(a.store, id, a.Columns()[bucket], row)
	res, err := a.drag.DropOnBucket(target, index)
	if err != nil {
		a.SetError(err)
		return err
	}
	if res.Moved {
		a.SetStatus(fmt.Sprintf("%s moved to %s (age %d → %d)", res.Person.Name, target.Title(), res.FromAge, res.Person.Age))
	} else {
		a.SetStatus(fmt.Sprintf("%s already in %s", res.Person.Name, target.Title()))
	}
	a.focusPerson(res.Person.ID)
	return nil
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		switch a.modal {
		case modalForm:
			return a.handleFormKey(m)
		case modalSearch:
			return a.handleSearchKey(m)
		}
		if a.Dragging() {
			return a.handleDragKey(m)
		}
		return a.handleBoardKey(m)
	}
	return a, nil
}

func (a *App) handleBoardKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.Action(m, scopeBoard) {
	case actQuit:
		return a, tea.Quit
	case actLeft:
		if a.bucket > 0 {
			a.bucket--
			a.clampCursor()
		}
	case actRight:
		if a.bucket < len(directory.Buckets)-1 {
			a.bucket++
			a.clampCursor()
		}
	case actUp:
		if a.row > 0 {
			a.row--
		}
	case actDown:
		if a.row < len(a.Columns()[a.bucket])-1 {
			a.row++
		}
	case actAdd:
		return a, a.AddPerson()
	case actEdit:
		if p, ok := a.Selected(); ok {
			return a, a.EditPerson(p.ID)
		}
		a.SetStatus("nothing selected")
	case actDelete:
		if p, ok := a.Selected(); ok {
			a.DeletePerson(p.ID)
		}
	case actSearch:
		a.modal = modalSearch
		a.searchInput.SetValue(a.search)
		a.searchInput.CursorEnd()
		return a, a.searchInput.Focus()
	case actSort:
		a.cycleSort()
	case actUnsort:
		a.ClearSort()
	case actMove:
		if p, ok := a.Selected(); ok {
			a.StartDrag(p.ID)
		}
	}
	return a, nil
}

func (a *App) handleDragKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.keys.Action(m, scopeDrag) {
	case actQuit:
		return a, tea.Quit
	case actCancel:
		a.drag.Cancel()
		a.SetStatus("move cancelled")
	case actLeft:
		a.moveDropTarget(-1)
	case actRight:
		a.moveDropTarget(1)
	case actUp:
		if a.dropRow > 0 {
			a.dropRow--
		}
	case actDown:
		if a.dropRow < len(a.Columns()[a.dropBucket]) {
			a.dropRow++
		}
	case actDrop:
		_ = a.DropOnBucket(a.dropBucket, a.dropRow)
	}
	return a, nil
}

func (a *App) moveDropTarget(delta int) {
	next := a.dropBucket + delta
	if next < 0 || next >= len(directory.Buckets) {
		return
	}
	if !a.drag.DragOver(directory.Buckets[next]) {
		return
	}
	a.dropBucket = next
	a.dropRow = min(a.dropRow, len(a.Columns()[next]))
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.CancelForm()
		return a, nil
	case tea.KeyEnter:
		if err := a.SubmitForm(a.formValues()); err != nil {
			if ve, ok := directory.IsValidation(err); ok {
				return a, a.focusField(firstInvalid(ve))
			}
		}
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		return a, a.focusField((a.fieldFocus + 1) % len(a.inputs))
	case tea.KeyShiftTab, tea.KeyUp:
		return a, a.focusField((a.fieldFocus - 1 + len(a.inputs)) % len(a.inputs))
	}
	var cmd tea.Cmd
	a.inputs[a.fieldFocus], cmd = a.inputs[a.fieldFocus].Update(m)
	a.form.SetValue(form.FieldOrder[a.fieldFocus], a.inputs[a.fieldFocus].Value())
	return a, cmd
}

func (a *App) focusField(i int) tea.Cmd {
	a.inputs[a.fieldFocus].Blur()
	a.fieldFocus = i
	return a.inputs[i].Focus()
}

func firstInvalid(ve *directory.ValidationError) int {
	for i, field := range form.FieldOrder {
		if ve.Has(field) {
			return i
		}
	}
	return 0
}

func (a *App) formValues() form.Values {
	var v form.Values
	for i, field := range form.FieldOrder {
		v = v.Set(field, a.inputs[i].Value())
	}
	return v
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.closeModal()
		return a, nil
	case tea.KeyEnter:
		term := a.searchInput.Value()
		a.closeModal()
		a.Search(term)
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	return a, cmd
}
