package config

import (
	_ "embed"
)

//go:embed defaults/robot.yaml
var defaultRobotYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

// DefaultRobotConfig returns the default Robot Grid configuration.
func DefaultRobotConfig() RobotConfig {
	return RobotConfig{
		Grid: RobotGrid{
			Size: 5,
		},
		Timing: RobotTiming{
			MoveMs:    300,
			RotateMs:  200,
			ReverseMs: 300,
			BlockedMs: 200,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Board: TicTacToeBoard{
			Size:      3,
			WinLength: 3,
		},
	}
}
