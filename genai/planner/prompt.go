package planner

const (
	defaultFloorPlanPrompt = `You are an interior designer. Analyze the attached floor plan.
Generate a photorealistic top-down 3D rendering of the furnished space that keeps the exact wall layout.
Then describe the layout briefly and finish with a single line listing every room in the form:
Rooms: <room 1>, <room 2>, ...`

	defaultRoomPhotoPrompt = `You are an interior designer. Analyze the attached room photo.
Generate a redesigned, photorealistic version of the same room that keeps its architecture, windows and camera angle,
and briefly describe the style, palette and key furniture changes.`
)

// Prompts holds the mode-specific instructions sent with the first turn.
type Prompts struct {
	FloorPlan string `yaml:"floorPlan,omitempty" json:"floorPlan,omitempty"`
	RoomPhoto string `yaml:"roomPhoto,omitempty" json:"roomPhoto,omitempty"`
}

// DefaultPrompts returns built-in instructions.
func DefaultPrompts() Prompts {
	return Prompts{FloorPlan: defaultFloorPlanPrompt, RoomPhoto: defaultRoomPhotoPrompt}
}

// Instruction returns the instruction for mode, falling back to the default.
func (p Prompts) Instruction(mode Mode) string {
	switch mode {
	case ModeFloorPlan:
		if p.FloorPlan != "" {
			return p.FloorPlan
		}
		return defaultFloorPlanPrompt
	case ModeRoomPhoto:
		if p.RoomPhoto != "" {
			return p.RoomPhoto
		}
		return defaultRoomPhotoPrompt
	}
	return ""
}
