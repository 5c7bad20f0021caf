package lookup

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownActor = errors.New("unknown actor")

// Registry maps actor signatures to factories. Visual is left out since it
// needs a writer.
var Registry = map[string]func() Actor{
	"STDMAP":        func() Actor { return &SortedMap{} },
	"BINSEARCH":     func() Actor { return &BinarySearch{} },
	"BINSEARCHFAST": func() Actor { return &FastBinarySearch{} },
	"HASHSET":       func() Actor { return &HashSet{} },
}

// defaultOrder is the order rangebench runs actors in.
var defaultOrder = []string{"STDMAP", "BINSEARCH", "BINSEARCHFAST", "HASHSET"}

// Get returns a new actor by signature (case-insensitive).
func Get(name string) (Actor, error) {
	factory, exists := Registry[strings.ToUpper(strings.TrimSpace(name))]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownActor, name)
	}
	return factory(), nil
}

// List returns all registered signatures, sorted.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns one new instance of every registered actor.
func Default() []Actor {
	actors := make([]Actor, 0, len(defaultOrder))
	for _, name := range defaultOrder {
		actors = append(actors, Registry[name]())
	}
	return actors
}

// Parse resolves a comma separated list of signatures. An empty list yields
// Default().
func Parse(list string) ([]Actor, error) {
	if strings.TrimSpace(list) == "" {
		return Default(), nil
	}
	var actors []Actor
	for _, name := range strings.Split(list, ",") {
		a, err := Get(name)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}
	return actors, nil
}
