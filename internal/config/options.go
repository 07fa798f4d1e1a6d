package config

import (
	"encoding/json"
	"log"
	"os"
)

// Options is the add-on configuration written by the supervisor. It is
// re-read on every request so edits take effect without a restart.
type Options struct {
	ServiceAccountJSON string `json:"service_account_json"`
	SheetID            string `json:"google_sheet_id"`
	HAEvent            string `json:"ha_event"`
}

// EventName returns the configured event name or the default.
func (o Options) EventName() string {
	if o.HAEvent == "" {
		return "pos_sale"
	}
	return o.HAEvent
}

// Provider hands out the current Options. A failed read yields empty
// Options, never an error; the first dependent call fails instead.
type Provider interface {
	Options() Options
}

type FileProvider struct{ Path string }

func (p FileProvider) Options() Options {
	var o Options
	b, err := os.ReadFile(p.Path)
	if err != nil {
		log.Printf("options read %s: %v", p.Path, err)
		return Options{}
	}
	if err := json.Unmarshal(b, &o); err != nil {
		log.Printf("options parse %s: %v", p.Path, err)
		return Options{}
	}
	return o
}

// Static is a fixed Options provider, mainly for tests.
type Static Options

func (s Static) Options() Options { return Options(s) }
