package dice

import "github.com/coreman2200/funtimes-diceroll/internal/model"

// Pattern is the fixed set of pixels a roll lights, all in one color.
type Pattern struct {
	Pixels []int
	Color  model.Color
}

// Table maps a roll to its pattern, indexed by roll-1.
type Table [MaxRoll]Pattern

// Pattern returns the pattern for r; out of range rolls are clamped.
func (t *Table) Pattern(r Roll) Pattern {
	return t[clampRoll(r)-1]
}

// Single roll on button A, spread across the whole strip.
var TableA = Table{
	{Pixels: []int{0}, Color: model.Red},
	{Pixels: []int{1, 2}, Color: model.Green},
	{Pixels: []int{3, 4, 5}, Color: model.Yellow},
	{Pixels: []int{6, 7, 8, 9}, Color: model.Cyan},
}

// First roll on button B grows down from pixel 4.
var TableB1 = Table{
	{Pixels: []int{4}, Color: model.Red},
	{Pixels: []int{4, 3}, Color: model.Green},
	{Pixels: []int{4, 3, 2}, Color: model.Yellow},
	{Pixels: []int{4, 3, 2, 1}, Color: model.Cyan},
}

// Second roll on button B grows up from pixel 5. It is drawn after TableB1;
// last write wins on any shared index.
var TableB2 = Table{
	{Pixels: []int{5}, Color: model.Red},
	{Pixels: []int{5, 6}, Color: model.Green},
	{Pixels: []int{5, 6, 7}, Color: model.Yellow},
	{Pixels: []int{5, 6, 7, 8}, Color: model.Cyan},
}
