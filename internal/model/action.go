package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownAction is returned by ParseActionStrict for unrecognized names.
	ErrUnknownAction = errors.New("unknown action")
	// ErrUnknownSwapMode is returned by ParseSwapModeStrict for unrecognized names.
	ErrUnknownSwapMode = errors.New("unknown swap mode")
)

// Action is the kind of edit an augmenter applies.
type Action string

const (
	// ActionInsert prepends a candidate before selected characters.
	ActionInsert Action = "insert"
	// ActionSubstitute replaces selected characters or words with a candidate.
	ActionSubstitute Action = "substitute"
	// ActionDelete removes selected characters or words.
	ActionDelete Action = "delete"
	// ActionSwap exchanges selected characters or words with a neighbour.
	ActionSwap Action = "swap"
)

// Actions lists every action in a stable order.
var Actions = []Action{ActionInsert, ActionSubstitute, ActionDelete, ActionSwap}

// ParseAction maps a name to an Action, falling back to substitute.
func ParseAction(name string) Action {
	action, err := ParseActionStrict(name)
	if err != nil {
		return ActionSubstitute
	}

	return action
}

// ParseActionStrict maps a name to an Action or fails with ErrUnknownAction.
func ParseActionStrict(name string) (Action, error) {
	normalized := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, action := range Actions {
		if action == normalized {
			return action, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// SwapMode chooses where a swapped character moves to.
type SwapMode string

const (
	// SwapAdjacent swaps with a direct neighbour.
	SwapAdjacent SwapMode = "adjacent"
	// SwapMiddle swaps with any interior position.
	SwapMiddle SwapMode = "middle"
	// SwapRandom swaps with any position.
	SwapRandom SwapMode = "random"
)

// SwapModes lists every swap mode in a stable order.
var SwapModes = []SwapMode{SwapAdjacent, SwapMiddle, SwapRandom}

// ParseSwapMode maps a name to a SwapMode, falling back to adjacent.
func ParseSwapMode(name string) SwapMode {
	mode, err := ParseSwapModeStrict(name)
	if err != nil {
		return SwapAdjacent
	}

	return mode
}

// ParseSwapModeStrict maps a name to a SwapMode or fails with ErrUnknownSwapMode.
func ParseSwapModeStrict(name string) (SwapMode, error) {
	normalized := SwapMode(strings.ToLower(strings.TrimSpace(name)))
	for _, mode := range SwapModes {
		if mode == normalized {
			return mode, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownSwapMode, name)
}

// Level is the granularity an augmenter works at.
type Level string

const (
	// LevelChar mutates characters inside selected tokens.
	LevelChar Level = "char"
	// LevelWord mutates whole tokens.
	LevelWord Level = "word"
)
