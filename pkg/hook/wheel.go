package hook

import (
	"fmt"

	"uiohook/internal/native"
)

// ScrollType distinguishes fine-grained unit scrolling from page-sized
// block scrolling.
type ScrollType uint8

// Scroll types.
const (
	UnitScroll  ScrollType = ScrollType(native.WheelUnitScroll)
	BlockScroll ScrollType = ScrollType(native.WheelBlockScroll)
)

func (t ScrollType) String() string {
	switch t {
	case UnitScroll:
		return "unit"
	case BlockScroll:
		return "block"
	}
	return fmt.Sprintf("ScrollType(%d)", uint8(t))
}

// ScrollDirection is the axis a wheel event scrolled along.
type ScrollDirection uint8

// Scroll directions.
const (
	VerticalScroll   ScrollDirection = ScrollDirection(native.WheelVerticalDirection)
	HorizontalScroll ScrollDirection = ScrollDirection(native.WheelHorizontalDirection)
)

func (d ScrollDirection) String() string {
	switch d {
	case VerticalScroll:
		return "vertical"
	case HorizontalScroll:
		return "horizontal"
	}
	return fmt.Sprintf("ScrollDirection(%d)", uint8(d))
}

// WheelEvent is a scroll wheel movement. Rotation is signed: the sign
// gives the scroll direction along the axis, Amount scales one rotation
// step into scrolled units.
type WheelEvent struct {
	Clicks    uint16
	X         int16
	Y         int16
	Type      ScrollType
	Amount    uint16
	Rotation  int16
	Direction ScrollDirection

	When uint64
	Mods Modifiers
}

func (e *WheelEvent) Timestamp() uint64 { return e.When }
func (e *WheelEvent) Mask() Modifiers   { return e.Mods }
func (e *WheelEvent) isEvent()          {}

// IsVertical reports whether the event scrolled along the vertical
// axis.
func (e *WheelEvent) IsVertical() bool { return e.Direction == VerticalScroll }

// IsHorizontal reports whether the event scrolled along the horizontal
// axis.
func (e *WheelEvent) IsHorizontal() bool { return e.Direction == HorizontalScroll }
