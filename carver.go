package ppmfilter

import (
	"math"

	"github.com/marprok/ppm-filter/ppm"
)

// Point addresses a cell inside the energy grid.
type Point struct {
	X int
	Y int
}

// Cell is a single energy grid entry. Color and Intensity are fixed at
// grid construction time; Cost and Parent are working state, reset at
// the start of every seam removal iteration.
type Cell struct {
	// Color is the original pixel color, kept around so that the
	// carved image can be rebuilt once the grid reached its final width.
	Color ppm.Pixel

	// Intensity is the importance value derived from the filtered
	// image. It is computed once and never refreshed, even though the
	// grid keeps shrinking.
	Intensity uint32

	// Cost is the accumulated cost of the cheapest vertical path
	// ending in this cell.
	Cost uint32

	// Parent is the grid position the cheapest path arrived from.
	// It always addresses a cell in the row immediately above, except
	// for the top row where it points to the cell itself.
	Parent Point
}

// Carver holds the energy grid of the image being resized. The grid is
// rectangular at every step: each seam removal deletes exactly one cell
// per row, so Width shrinks by one while Height stays constant.
type Carver struct {
	Width  int
	Height int
	cells  [][]Cell
}

// NewCarver builds the energy grid: each cell owns the original pixel
// color and the importance value read off the filtered image, scaled
// back to the 0-255 range.
func NewCarver(colors, filtered *ppm.Image) *Carver {
	width, height := filtered.Width, filtered.Height

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		row := make([]Cell, width)
		for x := 0; x < width; x++ {
			row[x] = Cell{
				Color:     colors.At(x, y),
				Intensity: uint32(filtered.At(x, y).R * ppm.MaxValue),
				Parent:    Point{X: x, Y: y},
			}
		}
		cells[y] = row
	}

	return &Carver{
		Width:  width,
		Height: height,
		cells:  cells,
	}
}

// resetCosts clears the per-iteration working state of every cell:
// the accumulated cost falls back to the cell's own intensity and the
// backpointer to the cell itself.
func (c *Carver) resetCosts() {
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			cell := &c.cells[y][x]
			cell.Cost = cell.Intensity
			cell.Parent = Point{X: x, Y: y}
		}
	}
}

// computeCosts runs the forward pass of the dynamic program. Starting
// from the second row, each cell accumulates the cost of the cheapest
// of its three eligible predecessors in the row above. Predecessors
// falling off the grid count as the maximum representable cost, so
// they are never chosen.
//
// On equal costs the predecessors are not ranked left-to-right:
// top-left wins over top-right, top-right wins over top-center and
// top-center is the fallback.
func (c *Carver) computeCosts() {
	for y := 1; y < c.Height; y++ {
		prev := c.cells[y-1]

		for x := 0; x < c.Width; x++ {
			var (
				topLeft  uint32 = math.MaxUint32
				topRight uint32 = math.MaxUint32
			)
			topCenter := prev[x].Cost

			if x > 0 {
				topLeft = prev[x-1].Cost
			}
			if x < c.Width-1 {
				topRight = prev[x+1].Cost
			}

			cell := &c.cells[y][x]
			switch {
			case topLeft < topRight:
				if topLeft < topCenter {
					cell.Cost += topLeft
					cell.Parent = Point{X: x - 1, Y: y - 1}
				} else {
					cell.Cost += topCenter
					cell.Parent = Point{X: x, Y: y - 1}
				}
			case topRight < topCenter:
				cell.Cost += topRight
				cell.Parent = Point{X: x + 1, Y: y - 1}
			default:
				cell.Cost += topCenter
				cell.Parent = Point{X: x, Y: y - 1}
			}
		}
	}
}

// findLowestCostSeam scans the bottom row and returns the position of
// the cell with the strictly smallest accumulated cost. On ties the
// lowest column index wins.
func (c *Carver) findLowestCostSeam() Point {
	bottom := c.cells[c.Height-1]

	var minX int
	var minCost uint32 = math.MaxUint32
	for x := 0; x < c.Width; x++ {
		if minCost > bottom[x].Cost {
			minCost = bottom[x].Cost
			minX = x
		}
	}

	return Point{X: minX, Y: c.Height - 1}
}

// removeSeam walks the backpointers from the given bottom cell up to
// the top row and deletes the visited cell from each row, compacting
// the remaining cells leftward. Every row loses exactly one cell.
func (c *Carver) removeSeam(bottom Point) {
	pt := bottom
	for y := c.Height - 1; y >= 0; y-- {
		row := c.cells[y]
		parent := row[pt.X].Parent

		c.cells[y] = append(row[:pt.X], row[pt.X+1:]...)
		pt = parent
	}
	c.Width--
}

// Image flattens the grid back into a pixel buffer, restoring the
// original colors the cells kept through the carving iterations.
func (c *Carver) Image() *ppm.Image {
	img := ppm.NewImage(c.Width, c.Height)
	for y, row := range c.cells {
		for x, cell := range row {
			img.Set(x, y, cell.Color)
		}
	}

	return img
}
