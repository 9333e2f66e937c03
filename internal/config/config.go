// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// RobotConfig contains all configuration for the Robot Grid game.
type RobotConfig struct {
	Grid   RobotGrid   `yaml:"grid"`
	Timing RobotTiming `yaml:"timing"`
}

// RobotGrid defines the play field dimensions.
type RobotGrid struct {
	Size int `yaml:"size"` // Side length in cells
}

// RobotTiming defines the animation transition windows in milliseconds.
// Move covers a forward step, Rotate a quarter turn, Reverse a 180-degree
// turn, Blocked the rejected-move feedback window.
type RobotTiming struct {
	MoveMs    int `yaml:"move_ms"`
	RotateMs  int `yaml:"rotate_ms"`
	ReverseMs int `yaml:"reverse_ms"`
	BlockedMs int `yaml:"blocked_ms"`
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Board TicTacToeBoard `yaml:"board"`
}

// TicTacToeBoard defines the board dimensions and win condition.
type TicTacToeBoard struct {
	Size      int `yaml:"size"`       // Side length in cells
	WinLength int `yaml:"win_length"` // Marks in a row needed to win
}
