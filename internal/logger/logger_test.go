package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// resetLogger restores the package default after a test reconfigures it.
func resetLogger() {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func TestInit_LevelThresholds(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"default", Options{}, false, true, true},
		{"debug", Options{Debug: true}, true, true, true},
		{"quiet", Options{Quiet: true}, false, false, false},
		{"quiet_wins_over_debug", Options{Debug: true, Quiet: true}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.opts.Output = buf
			Init(tt.opts)
			defer resetLogger()

			Debug("fetching image bytes")
			Info("meal plan generated")
			Warn("empty titles line")
			Error("provider call failed")

			out := buf.String()
			checks := []struct {
				msg  string
				want bool
			}{
				{"fetching image bytes", tt.wantDebug},
				{"meal plan generated", tt.wantInfo},
				{"empty titles line", tt.wantWarn},
				{"provider call failed", true},
			}
			for _, c := range checks {
				if got := strings.Contains(out, c.msg); got != c.want {
					t.Errorf("message %q logged = %v, want %v", c.msg, got, c.want)
				}
			}
		})
	}
}

func TestInit_JSONCarriesAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("image fetched", "title", "Baked Fish", "body_size", 2048)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not a JSON record: %v\n%s", err, buf.String())
	}
	if record["msg"] != "image fetched" {
		t.Errorf("msg = %v, want %q", record["msg"], "image fetched")
	}
	if record["title"] != "Baked Fish" {
		t.Errorf("title attr = %v, want %q", record["title"], "Baked Fish")
	}
	if record["body_size"] != float64(2048) {
		t.Errorf("body_size attr = %v, want 2048", record["body_size"])
	}
}

func TestInit_TextCarriesLevelAndAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Error("narration failed", "meal", "Lunch")

	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Errorf("text output should carry the level, got %q", out)
	}
	if !strings.Contains(out, "meal=Lunch") {
		t.Errorf("text output should carry attrs, got %q", out)
	}
}

func TestInit_DefaultsToStderr(t *testing.T) {
	// Init with a nil Output must not panic and must keep logging usable.
	Init(Options{})
	defer resetLogger()

	Info("still alive")
}
