package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"fortio.org/log"
	"gopkg.in/errgo.v2/fmt/errors"
	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/rpn/store"
	"github.com/rogpeppe/rpn/store/sqlstore"
)

// config holds the contents of the configuration file.
type config struct {
	Store       storeConfig `yaml:"store"`
	HistoryFile string      `yaml:"history_file"`
	LogLevel    string      `yaml:"log_level"`
	Acme        bool        `yaml:"acme"`
}

type storeConfig struct {
	// Dir holds the directory for saved state.
	Dir string `yaml:"dir"`
	// Format holds the format of the files in Dir.
	Format string `yaml:"format"`
	// MySQL holds a data source name. If it is
	// set, Dir and Format are ignored.
	MySQL string `yaml:"mysql"`
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rpn")
	}
	return ".rpn"
}

// readConfig reads the configuration file at path.
// A missing file is not an error.
func readConfig(path string) (*config, error) {
	var cfg config
	data, err := ioutil.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Notef(err, nil, "cannot parse %s", path)
		}
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = configDir()
	}
	if cfg.Store.Format == "" {
		cfg.Store.Format = string(store.JSON)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.Store.Dir, "history")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}

// openStore opens the store described by cfg. The
// returned function should be called to close it.
func openStore(cfg storeConfig) (store.Store, func(), error) {
	if cfg.MySQL != "" {
		st, err := sqlstore.Open(cfg.MySQL)
		if err != nil {
			return nil, nil, errors.Wrap(err)
		}
		return st, func() {
			if err := st.Close(); err != nil {
				log.Errf("cannot close store: %v", err)
			}
		}, nil
	}
	st, err := store.NewDir(cfg.Dir, store.Format(cfg.Format))
	if err != nil {
		return nil, nil, errors.Wrap(err)
	}
	return st, func() {}, nil
}
