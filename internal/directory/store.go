package directory

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds the canonical ordered list of people for a session.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Store struct {
	people []Person
	newID  func() string
	log    *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid-based ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithLogger attaches a logger for mutations.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create validates f, assigns a fresh ID and appends the record.
func (s *Store) Create(f Fields) (Person, error) {
	if err := f.Validate(); err != nil {
		return Person{}, err
	}
	id := s.newID()
	for s.IndexOf(id) >= 0 {
		id = s.newID()
	}
	p := Person{ID: id, Name: f.Name, Age: f.Age, Email: f.Email, Phone: f.Phone}
	s.people = append(s.people, p)
	s.log.Info("person created", zap.String("id", id), zap.Int("age", p.Age))
	return p, nil
}

// Insert appends a record that already carries an ID, as seed data does.
func (s *Store) Insert(p Person) error {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if s.IndexOf(p.ID) >= 0 {
		return fmt.Errorf("insert %s: %w", p.ID, ErrDuplicateID)
	}
	if err := p.fields().Validate(); err != nil {
		return fmt.Errorf("insert %s: %w", p.ID, err)
	}
	s.people = append(s.people, p)
	return nil
}

// Update merges patch into the record with id, keeping its ID and position.
func (s *Store) Update(id string, patch Patch) (Person, error) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return Person{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}
	next := s.people[idx]
	patch.apply(&next)
	if err := next.fields().Validate(); err != nil {
		return Person{}, err
	}
	s.people[idx] = next
	s.log.Debug("person updated", zap.String("id", id))
	return next, nil
}

// Delete removes the record with id. It reports whether anything was removed.
func (s *Store) Delete(id string) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.people = slices.Delete(s.people, idx, idx+1)
	s.log.Info("person deleted", zap.String("id", id))
	return true
}

// Reposition moves the record with id to targetIndex. The index is taken
// against the list after removal and clamped into range.
func (s *Store) Reposition(id string, targetIndex int) error {
	idx := s.IndexOf(id)
	if idx < 0 {
		return fmt.Errorf("reposition %s: %w", id, ErrNotFound)
	}
	p := s.people[idx]
	s.people = slices.Delete(s.people, idx, idx+1)
	targetIndex = max(0, min(targetIndex, len(s.people)))
	s.people = slices.Insert(s.people, targetIndex, p)
	s.log.Debug("person repositioned", zap.String("id", id), zap.Int("from", idx), zap.Int("to", targetIndex))
	return nil
}

func (s *Store) Get(id string) (Person, error) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return Person{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return s.people[idx], nil
}

// IndexOf returns the list position of id, or -1.
func (s *Store) IndexOf(id string) int {
	return slices.IndexFunc(s.people, func(p Person) bool { return p.ID == id })
}

// List returns a copy of the records in store order.
func (s *Store) List() []Person {
	return slices.Clone(s.people)
}

func (s *Store) Len() int { return len(s.people) }
