package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRobot loads the Robot Grid configuration.
// Search order: customPath -> ~/.arcade/configs/robot.yaml -> ./configs/robot.yaml -> embedded default
func LoadRobot(customPath string) (RobotConfig, error) {
	var cfg RobotConfig
	if err := load("robot.yaml", customPath, defaultRobotYAML, &cfg); err != nil {
		return DefaultRobotConfig(), err
	}
	sanitizeRobot(&cfg)
	return cfg, nil
}

// LoadTicTacToe loads the Tic-Tac-Toe configuration.
// Search order: customPath -> ~/.arcade/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	var cfg TicTacToeConfig
	if err := load("tictactoe.yaml", customPath, defaultTicTacToeYAML, &cfg); err != nil {
		return DefaultTicTacToeConfig(), err
	}
	sanitizeTicTacToe(&cfg)
	return cfg, nil
}

// load resolves a config file through the standard search order and
// unmarshals it into out. Only an explicitly requested custom path can
// fail the load; fallback sources degrade silently to the embedded default.
func load(name, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns ~/.arcade/configs/<name>, or "" if the home
// directory cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", name)
}

// sanitizeRobot replaces non-positive values with defaults so a sparse or
// broken config file never produces a degenerate game.
func sanitizeRobot(cfg *RobotConfig) {
	def := DefaultRobotConfig()
	if cfg.Grid.Size <= 0 {
		cfg.Grid.Size = def.Grid.Size
	}
	if cfg.Timing.MoveMs <= 0 {
		cfg.Timing.MoveMs = def.Timing.MoveMs
	}
	if cfg.Timing.RotateMs <= 0 {
		cfg.Timing.RotateMs = def.Timing.RotateMs
	}
	if cfg.Timing.ReverseMs <= 0 {
		cfg.Timing.ReverseMs = def.Timing.ReverseMs
	}
	if cfg.Timing.BlockedMs <= 0 {
		cfg.Timing.BlockedMs = def.Timing.BlockedMs
	}
}

func sanitizeTicTacToe(cfg *TicTacToeConfig) {
	def := DefaultTicTacToeConfig()
	if cfg.Board.Size <= 0 {
		cfg.Board.Size = def.Board.Size
	}
	if cfg.Board.WinLength <= 0 || cfg.Board.WinLength > cfg.Board.Size {
		cfg.Board.WinLength = cfg.Board.Size
	}
}
