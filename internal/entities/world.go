package entities

// World is the map region an objective belongs to
type World string

// Worlds
const (
	LightWorld World = "light"
	DarkWorld  World = "dark"
)
