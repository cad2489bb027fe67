// Package drag moves people between age buckets.
package drag

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/agebook/internal/directory"
)

var ErrNoDragSource = errors.New("no record is being dragged")

// Result describes what a drop did.
type Result struct {
	Person  directory.Person
	FromAge int
	Moved   bool
}

// Coordinator tracks the record being dragged.
type Coordinator struct {
	store  *directory.Store
	log    *zap.Logger
	source string
}

func NewCoordinator(store *directory.Store, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{store: store, log: log}
}

// StartDrag marks id as the drag source. The latest call wins.
func (c *Coordinator) StartDrag(id string) {
	c.source = id
}

// Active returns the current drag source.
func (c *Coordinator) Active() (string, bool) {
	return c.source, c.source != ""
}

// Cancel abandons the drag without touching the store.
func (c *Coordinator) Cancel() {
	c.source = ""
}

// DragOver reports whether a drop onto target is permitted. It never changes state.
func (c *Coordinator) DragOver(target directory.Range) bool {
	return c.source != "" && target.Lower <= target.Upper
}

// DropOnBucket clamps the dragged record's age into target. When the age
// changes the record is also moved to insertionIndex. A record already inside
// target is left exactly where it is. The drag source is cleared either way.
func (c *Coordinator) DropOnBucket(target directory.Range, insertionIndex int) (Result, error) {
	id := c.source
	c.source = ""
	if id == "" {
		return Result{}, ErrNoDragSource
	}
	p, err := c.store.Get(id)
	if err != nil {
		return Result{}, fmt.Errorf("drop: %w", err)
	}
	res := Result{Person: p, FromAge: p.Age}
	clamped := target.Clamp(p.Age)
	if clamped == p.Age {
		c.log.Debug("drop inside current bucket", zap.String("id", id), zap.Stringer("bucket", target))
		return res, nil
	}
	updated, err := c.store.Update(id, directory.Patch{Age: &clamped})
	if err != nil {
		return Result{}, fmt.Errorf("drop: %w", err)
	}
	if err := c.store.Reposition(id, insertionIndex); err != nil {
		return Result{}, fmt.Errorf("drop: %w", err)
	}
	c.log.Info("person moved",
		zap.String("id", id),
		zap.Int("from_age", p.Age),
		zap.Int("to_age", clamped),
		zap.Int("index", insertionIndex))
	res.Person = updated
	res.Moved = true
	return res, nil
}

// InsertionIndex maps a row in a rendered bucket to a position in the store's
// list, measured after the dragged record has been taken out. Row 0 inserts
// before the first visible record; a row past the end inserts after the last.
// An empty bucket appends to the list.
func InsertionIndex(store *directory.Store, dragged string, bucket []directory.Person, row int) int {
	rest := make([]directory.Person, 0, len(bucket))
	for _, p := range bucket {
		if p.ID != dragged {
			rest = append(rest, p)
		}
	}
	list := store.List()
	position := func(id string) int {
		n := 0
		for _, p := range list {
			if p.ID == id {
				return n
			}
			if p.ID != dragged {
				n++
			}
		}
		return n
	}
	total := len(list)
	if store.IndexOf(dragged) >= 0 {
		total--
	}
	switch {
	case len(rest) == 0:
		return total
	case row < 0:
		return position(rest[0].ID)
	case row < len(rest):
		return position(rest[row].ID)
	default:
		return position(rest[len(rest)-1].ID) + 1
	}
}
