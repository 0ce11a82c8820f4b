package spriteanim

import "image/color"

// Frame contains a set of operations for drawing.
type Frame struct {
	DrawOperations []DrawOperation
}

// Draw draws the frame.
func (frame *Frame) Draw(paintEngine PaintEngine) error {
	for _, drawOperation := range frame.DrawOperations {
		err := drawOperation.Draw(paintEngine)
		if err != nil {
			return err
		}
	}
	return nil
}

// NewSheetFrame builds the frame showing animation frame animFrame of the
// sheet texture over a cleared background.
func NewSheetFrame(sheet Sheet, texture Texture, animFrame int, background color.Color) Frame {
	return Frame{
		DrawOperations: []DrawOperation{
			NewClearDrawOperation(background),
			NewDrawTextureOperation(texture, sheet.SourceRect(animFrame), sheet.DestRect()),
		},
	}
}
