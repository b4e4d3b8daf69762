package planner

import (
	"fmt"
	"strings"
)

// Mode selects how the uploaded image is interpreted.
type Mode string

const (
	ModeFloorPlan Mode = "floorPlan"
	ModeRoomPhoto Mode = "roomPhoto"
)

// Valid reports whether the mode is known.
func (m Mode) Valid() bool {
	return m == ModeFloorPlan || m == ModeRoomPhoto
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "floorplan", "floor-plan", "floor_plan":
		return ModeFloorPlan, nil
	case "roomphoto", "room-photo", "room_photo":
		return ModeRoomPhoto, nil
	}
	return "", fmt.Errorf("unsupported mode: %q", s)
}

// State is the session lifecycle state.
type State int

const (
	StateEmpty State = iota
	StateAnalyzing
	StateAnalyzed
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAnalyzing:
		return "analyzing"
	case StateAnalyzed:
		return "analyzed"
	case StateEditing:
		return "editing"
	}
	return "unknown"
}

// InFlight reports whether a remote call is outstanding.
func (s State) InFlight() bool {
	return s == StateAnalyzing || s == StateEditing
}
