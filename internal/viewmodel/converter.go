package viewmodel

import (
	"github.com/dshills/viewlines/internal/core"
)

// CoordinatesConverter converts positions and ranges between model and view
// coordinates.
type CoordinatesConverter interface {
	ConvertViewPositionToModelPosition(viewPos core.Position) core.Position
	ConvertViewRangeToModelRange(viewRange core.Range) core.Range
	ValidateViewPosition(viewPos, expected core.Position) core.Position
	ValidateViewRange(viewRange, expected core.Range) core.Range

	ConvertModelPositionToViewPosition(modelPos core.Position, affinity core.PositionAffinity) core.Position
	ConvertModelRangeToViewRange(modelRange core.Range, affinity core.PositionAffinity) core.Range
	ModelPositionIsVisible(modelPos core.Position) bool
	ModelLineViewLineCount(modelLine int) int
	ViewLineNumberOfModelPosition(modelLine, modelColumn int) int
}

type projectedConverter struct {
	lines *ProjectedLines
}

func (c projectedConverter) ConvertViewPositionToModelPosition(viewPos core.Position) core.Position {
	return c.lines.ConvertViewPositionToModelPosition(viewPos.Line, viewPos.Column)
}

func (c projectedConverter) ConvertViewRangeToModelRange(viewRange core.Range) core.Range {
	return c.lines.ConvertViewRangeToModelRange(viewRange)
}

func (c projectedConverter) ValidateViewPosition(viewPos, expected core.Position) core.Position {
	return c.lines.ValidateViewPosition(viewPos.Line, viewPos.Column, expected)
}

func (c projectedConverter) ValidateViewRange(viewRange, expected core.Range) core.Range {
	return c.lines.ValidateViewRange(viewRange, expected)
}

func (c projectedConverter) ConvertModelPositionToViewPosition(modelPos core.Position, affinity core.PositionAffinity) core.Position {
	return c.lines.ConvertModelPositionToViewPosition(modelPos.Line, modelPos.Column, affinity, false, false)
}

func (c projectedConverter) ConvertModelRangeToViewRange(modelRange core.Range, affinity core.PositionAffinity) core.Range {
	return c.lines.ConvertModelRangeToViewRange(modelRange, affinity)
}

func (c projectedConverter) ModelPositionIsVisible(modelPos core.Position) bool {
	return c.lines.ModelPositionIsVisible(modelPos.Line, modelPos.Column)
}

func (c projectedConverter) ModelLineViewLineCount(modelLine int) int {
	return c.lines.ModelLineViewLineCount(modelLine)
}

func (c projectedConverter) ViewLineNumberOfModelPosition(modelLine, modelColumn int) int {
	return c.lines.ViewLineNumberOfModelPosition(modelLine, modelColumn)
}

// identityConverter treats view coordinates as model coordinates, validated
// through the model.
type identityConverter struct {
	model core.Model
}

func (c identityConverter) ConvertViewPositionToModelPosition(viewPos core.Position) core.Position {
	return c.model.ValidatePosition(viewPos)
}

func (c identityConverter) ConvertViewRangeToModelRange(viewRange core.Range) core.Range {
	return c.model.ValidateRange(viewRange)
}

func (c identityConverter) ValidateViewPosition(_, expected core.Position) core.Position {
	return c.model.ValidatePosition(expected)
}

func (c identityConverter) ValidateViewRange(_, expected core.Range) core.Range {
	return c.model.ValidateRange(expected)
}

func (c identityConverter) ConvertModelPositionToViewPosition(modelPos core.Position, _ core.PositionAffinity) core.Position {
	return c.model.ValidatePosition(modelPos)
}

func (c identityConverter) ConvertModelRangeToViewRange(modelRange core.Range, _ core.PositionAffinity) core.Range {
	return c.model.ValidateRange(modelRange)
}

func (c identityConverter) ModelPositionIsVisible(modelPos core.Position) bool {
	return modelPos.Line >= 1 && modelPos.Line <= c.model.LineCount()
}

func (c identityConverter) ModelLineViewLineCount(int) int {
	return 1
}

func (c identityConverter) ViewLineNumberOfModelPosition(modelLine, _ int) int {
	return modelLine
}
