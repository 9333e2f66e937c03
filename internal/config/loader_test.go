package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRobotDefaults(t *testing.T) {
	cfg, err := LoadRobot("")
	if err != nil {
		t.Fatalf("LoadRobot() failed: %v", err)
	}

	if cfg.Grid.Size != 5 {
		t.Errorf("Grid.Size = %d, expected 5", cfg.Grid.Size)
	}
	if cfg.Timing.MoveMs != 300 {
		t.Errorf("Timing.MoveMs = %d, expected 300", cfg.Timing.MoveMs)
	}
	if cfg.Timing.RotateMs != 200 {
		t.Errorf("Timing.RotateMs = %d, expected 200", cfg.Timing.RotateMs)
	}
	if cfg.Timing.ReverseMs != 300 {
		t.Errorf("Timing.ReverseMs = %d, expected 300", cfg.Timing.ReverseMs)
	}
	if cfg.Timing.BlockedMs != 200 {
		t.Errorf("Timing.BlockedMs = %d, expected 200", cfg.Timing.BlockedMs)
	}
}

func TestLoadRobotCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robot.yaml")
	data := []byte("grid:\n  size: 7\ntiming:\n  move_ms: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadRobot(path)
	if err != nil {
		t.Fatalf("LoadRobot() failed: %v", err)
	}

	if cfg.Grid.Size != 7 {
		t.Errorf("Grid.Size = %d, expected 7", cfg.Grid.Size)
	}
	if cfg.Timing.MoveMs != 500 {
		t.Errorf("Timing.MoveMs = %d, expected 500", cfg.Timing.MoveMs)
	}

	// Omitted values are backfilled from defaults
	if cfg.Timing.RotateMs != 200 {
		t.Errorf("Timing.RotateMs = %d, expected default 200", cfg.Timing.RotateMs)
	}
}

func TestLoadRobotMissingCustomPath(t *testing.T) {
	cfg, err := LoadRobot(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadRobot() with missing custom path should fail")
	}

	// Fallback config is still usable
	if cfg.Grid.Size != 5 {
		t.Errorf("fallback Grid.Size = %d, expected 5", cfg.Grid.Size)
	}
}

func TestLoadTicTacToeSanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tictactoe.yaml")
	data := []byte("board:\n  size: 4\n  win_length: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadTicTacToe(path)
	if err != nil {
		t.Fatalf("LoadTicTacToe() failed: %v", err)
	}

	if cfg.Board.Size != 4 {
		t.Errorf("Board.Size = %d, expected 4", cfg.Board.Size)
	}
	// Win length longer than the board is clamped to the board size
	if cfg.Board.WinLength != 4 {
		t.Errorf("Board.WinLength = %d, expected 4", cfg.Board.WinLength)
	}
}
