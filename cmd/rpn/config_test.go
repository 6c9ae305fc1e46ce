package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/rpn/store"
)

func TestReadConfigMissing(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "nothere.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.Dir != configDir() {
		t.Errorf("unexpected store dir %q", cfg.Store.Dir)
	}
	if cfg.Store.Format != "json" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.HistoryFile != filepath.Join(configDir(), "history") {
		t.Errorf("unexpected history file %q", cfg.HistoryFile)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
store:
  dir: /tmp/rpnstate
  format: yaml
log_level: debug
acme: true
`
	if err := ioutil.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err := readConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := config{
		Store: storeConfig{
			Dir:    "/tmp/rpnstate",
			Format: "yaml",
		},
		HistoryFile: "/tmp/rpnstate/history",
		LogLevel:    "debug",
		Acme:        true,
	}
	if *cfg != want {
		t.Errorf("unexpected config; want %+v; got %+v", want, *cfg)
	}
}

func TestReadConfigBad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := ioutil.WriteFile(path, []byte("store: [1, 2"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfig(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	st, closeStore, err := openStore(storeConfig{Dir: dir, Format: "yaml"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeStore()
	if err := st.Save(store.Settings, map[string]string{"dec_point": "2"}); err != nil {
		t.Fatal(err)
	}
	m, err := st.Load(store.Settings)
	if err != nil || m["dec_point"] != "2" {
		t.Fatalf("unexpected load result %v, %v", m, err)
	}
	if _, _, err := openStore(storeConfig{Dir: dir, Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if _, _, err := openStore(storeConfig{MySQL: "not a dsn"}); err == nil {
		t.Fatalf("expected error for bad DSN")
	}
}
