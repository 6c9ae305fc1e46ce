// Package store provides persistent storage for the calculator's
// settings, memory registers and user-defined operations.
//
// Each of those is saved as a named map from string to string.
// Numbers are always stored in their decimal string form so that
// no precision is lost across restarts.
package store

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/errgo.v2/fmt/errors"
	"gopkg.in/yaml.v3"
)

// Names of the maps saved by the calculator.
const (
	Settings        = "settings"
	MemoryRegisters = "memory_registers"
	UserMacros      = "user_macros"
)

// Store is implemented by persistent storage.
type Store interface {
	// Load returns the map with the given name.
	// It returns a nil map and no error if the
	// map has never been saved.
	Load(name string) (map[string]string, error)

	// Save replaces the map with the given name.
	Save(name string, m map[string]string) error
}

// Mem is a Store that holds its maps in memory.
type Mem struct {
	mu   sync.Mutex
	maps map[string]map[string]string
}

// NewMem returns a new empty in-memory store.
func NewMem() *Mem {
	return &Mem{
		maps: make(map[string]map[string]string),
	}
}

func (s *Mem) Load(name string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyMap(s.maps[name]), nil
}

func (s *Mem) Save(name string, m map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[name] = copyMap(m)
	if s.maps[name] == nil {
		s.maps[name] = make(map[string]string)
	}
	return nil
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	m1 := make(map[string]string, len(m))
	for k, v := range m {
		m1[k] = v
	}
	return m1
}

// Format names an encoding for files in a Dir.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// Dir is a Store that keeps each map in its own file
// within a directory.
type Dir struct {
	dir    string
	format Format
}

// NewDir returns a store that saves maps in files in the given
// directory, creating the directory if necessary.
func NewDir(dir string, format Format) (*Dir, error) {
	switch format {
	case JSON, YAML:
	case "":
		format = JSON
	default:
		return nil, errors.Newf("unknown store format %q", format)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, errors.Notef(err, nil, "cannot create store directory")
	}
	return &Dir{
		dir:    dir,
		format: format,
	}, nil
}

// Path returns the name of the file that holds the named map.
func (s *Dir) Path(name string) string {
	return filepath.Join(s.dir, name+"."+string(s.format))
}

func (s *Dir) Load(name string) (map[string]string, error) {
	data, err := ioutil.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err)
	}
	m := make(map[string]string)
	switch s.format {
	case YAML:
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, errors.Notef(err, nil, "cannot decode %s", s.Path(name))
	}
	return m, nil
}

func (s *Dir) Save(name string, m map[string]string) error {
	if m == nil {
		m = make(map[string]string)
	}
	var data []byte
	var err error
	switch s.format {
	case YAML:
		data, err = yaml.Marshal(m)
	default:
		data, err = json.Marshal(m)
	}
	if err != nil {
		return errors.Wrap(err)
	}
	// Readers never see a partially written file.
	path := s.Path(name)
	tmp := path + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0666); err != nil {
		return errors.Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err)
	}
	return nil
}

// Keys returns the keys of m in sorted order.
func Keys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
