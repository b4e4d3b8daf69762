package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRooms(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "plain list", text: "Rooms: Kitchen, Living Room, Bedroom", expected: []string{"Kitchen", "Living Room", "Bedroom"}},
		{name: "no marker", text: "A bright open-plan apartment.", expected: []string{}},
		{name: "case insensitive", text: "rooms: Hall,Bath", expected: []string{"Hall", "Bath"}},
		{name: "empty entries dropped", text: "ROOMS: Kitchen, , Hall,", expected: []string{"Kitchen", "Hall"}},
		{name: "embedded in text", text: "Layout looks great.\nRooms: Kitchen, Hall\nEnjoy!", expected: []string{"Kitchen", "Hall"}},
		{name: "marker without names", text: "Rooms:", expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.expected, ExtractRooms(tc.text))
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("floorPlan")
	assert.NoError(t, err)
	assert.EqualValues(t, ModeFloorPlan, mode)
	mode, err = ParseMode("room-photo")
	assert.NoError(t, err)
	assert.EqualValues(t, ModeRoomPhoto, mode)
	_, err = ParseMode("sketch")
	assert.Error(t, err)
}

func TestPrompts_Instruction(t *testing.T) {
	prompts := Prompts{FloorPlan: "custom"}
	assert.EqualValues(t, "custom", prompts.Instruction(ModeFloorPlan))
	assert.EqualValues(t, defaultRoomPhotoPrompt, prompts.Instruction(ModeRoomPhoto))
	assert.EqualValues(t, "", prompts.Instruction(Mode("x")))
}
