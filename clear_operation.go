package spriteanim

import "image/color"

type clearOperation struct {
	col color.Color
}

func (o *clearOperation) Draw(paintEngine PaintEngine) error {
	return paintEngine.Clear(o.col)
}

// NewClearDrawOperation creates an operation to clear the whole surface.
func NewClearDrawOperation(col color.Color) DrawOperation {
	return &clearOperation{col}
}
