package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr bool
	}{
		{":23234", false},
		{"0.0.0.0:2222", false},
		{"localhost:22", false},
		{"[::1]:23234", false},
		{"23234", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func newTestServer(t *testing.T) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Board = "dodger_hard"

	srv, err := NewSSHServer(cfg, nil, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestNewSSHServer(t *testing.T) {
	srv := newTestServer(t)

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := os.Stat(filepath.Dir(srv.config.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestSSHSessionOptions(t *testing.T) {
	srv := newTestServer(t)

	opts := srv.sessionOptions("ann", 100, 30)

	if opts.Player != "ann" || opts.Board != "dodger_hard" {
		t.Errorf("session player/board = %q/%q", opts.Player, opts.Board)
	}
	if opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 30 {
		t.Errorf("session size = %dx%d, expected 100x30", opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	}
	if opts.Runtime.TickRate != 60 || opts.Runtime.Seed == 0 {
		t.Errorf("session runtime = %+v", opts.Runtime)
	}

	m := NewModel(opts)
	if w, _ := m.port.ScreenSize(); w != 1000 {
		t.Errorf("session world width = %v, expected 1000", w)
	}
}

func TestSSHServeStopsOnCancel(t *testing.T) {
	srv := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, expected nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
