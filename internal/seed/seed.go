// Package seed loads the people a session starts with.
package seed

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jask/agebook/internal/directory"
)

// Samples are the two people every fresh session shows.
func Samples() []directory.Person {
	return []directory.Person{
		{ID: "1", Name: "Person 1", Age: 16, Email: "person1@example.com", Phone: "123-456-7890"},
		{ID: "2", Name: "Person 2", Age: 18, Email: "person2@example.com", Phone: "987-654-3210"},
	}
}

type document struct {
	People []directory.Person `yaml:"people"`
}

// Decode reads a YAML document of the form:
//
//	people:
//	  - name: Ann
//	    age: 16
//	    email: ann@example.com
//	    phone: "555"
func Decode(r io.Reader) ([]directory.Person, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return doc.People, nil
}

// LoadFile decodes the seed file at path.
func LoadFile(path string) ([]directory.Person, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Populate inserts people into store in order. Records without an ID get a
// generated one.
func Populate(store *directory.Store, people []directory.Person) error {
	for i, p := range people {
		if err := store.Insert(p); err != nil {
			return fmt.Errorf("seed record %d: %w", i+1, err)
		}
	}
	return nil
}
