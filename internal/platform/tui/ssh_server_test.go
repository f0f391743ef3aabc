package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/f2b/internal/core"
)

func TestSanitizeUser(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{"alice", "alice"},
		{"Bob_42", "Bob_42"},
		{"../etc", "___etc"},
		{"a b/c", "a_b_c"},
		{"", "anonymous"},
		{"..", "anonymous"},
	}
	for _, tt := range tests {
		if got := sanitizeUser(tt.user); got != tt.want {
			t.Errorf("sanitizeUser(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestSessionConfig(t *testing.T) {
	base := core.DefaultConfig()
	base.SavePath = "/srv/f2b"
	base.Game.MouseMode = true
	s := &SSHServer{config: SSHServerConfig{Runtime: base}}

	cfg := s.sessionConfig("carol", 120, 40)

	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("screen = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
	if want := filepath.Join("/srv/f2b", "users", "carol"); cfg.SavePath != want {
		t.Errorf("SavePath = %q, want %q", cfg.SavePath, want)
	}
	if cfg.HasCursor() {
		t.Error("SSH sessions have no pointer")
	}
	if s.config.Runtime.SavePath != "/srv/f2b" {
		t.Error("sessionConfig must not change the base config")
	}
}
