package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the number of enemy tanks in a match.
type Difficulty int

const (
	MinDifficulty Difficulty = 1
	MaxDifficulty Difficulty = 3
)

// ErrInvalidDifficulty is returned for anything outside 1..3.
var ErrInvalidDifficulty = errors.New("difficulty must be 1, 2 or 3")

var difficultyNames = map[string]Difficulty{
	"easy":   1,
	"normal": 2,
	"hard":   3,
}

// ParseDifficulty accepts "1".."3" or easy/normal/hard.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := difficultyNames[s]; ok {
		return d, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d, nil
}

// Validate reports whether d is in range.
func (d Difficulty) Validate() error {
	if d < MinDifficulty || d > MaxDifficulty {
		return fmt.Errorf("%w: got %d", ErrInvalidDifficulty, int(d))
	}
	return nil
}

// EnemyCount returns how many enemies spawn.
func (d Difficulty) EnemyCount() int {
	return int(d)
}

func (d Difficulty) String() string {
	switch d {
	case 1:
		return "Easy (1 enemy)"
	case 2:
		return "Normal (2 enemies)"
	case 3:
		return "Hard (3 enemies)"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}
