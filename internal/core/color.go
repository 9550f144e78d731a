package core

// Color is a palette role for a screen cell. The platform maps roles to
// concrete terminal colors.
type Color uint8

// Palette roles.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorText
	ColorHover
	ColorAlert
	ColorDim
	ColorFrame
)
