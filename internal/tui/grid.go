package tui

import (
	"math"

	"go-td-sim/internal/component"
	"go-td-sim/pkg/geom"
)

type cell byte

const (
	cellEmpty cell = iota
	cellPath
	cellTower
	cellEnemy
	cellProjectile
)

// grid — мир, растеризованный в символьные клетки. Каждая клетка накрывает
// прямоугольник мира cellW×cellH.
type grid struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell
}

func newGrid(cols, rows int, worldW, worldH float64) *grid {
	return &grid{
		cols:  cols,
		rows:  rows,
		cellW: worldW / float64(cols),
		cellH: worldH / float64(rows),
		cells: make([]cell, cols*rows),
	}
}

func (g *grid) at(col, row int) cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return cellEmpty
	}
	return g.cells[row*g.cols+col]
}

// set пишет клетку, если новая сущность рисуется поверх старой.
func (g *grid) set(col, row int, c cell) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	i := row*g.cols + col
	if c > g.cells[i] {
		g.cells[i] = c
	}
}

func (g *grid) cellOf(p geom.Point) (int, int) {
	return int(math.Floor(p.X / g.cellW)), int(math.Floor(p.Y / g.cellH))
}

// center возвращает точку мира в центре клетки.
func (g *grid) center(col, row int) geom.Point {
	return geom.Pt((float64(col)+0.5)*g.cellW, (float64(row)+0.5)*g.cellH)
}

func (g *grid) drawPath(points []geom.Point) {
	step := math.Min(g.cellW, g.cellH) / 2
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		for p := from; ; {
			col, row := g.cellOf(p)
			g.set(col, row, cellPath)
			if p == to {
				break
			}
			p = geom.StepToward(p, to, step)
		}
	}
}

func (g *grid) drawSprites(sprites []component.Renderable) {
	for _, s := range sprites {
		switch s.Kind {
		case component.KindTower:
			// Башня крупная, закрашиваем все клетки под ней
			minCol, minRow := g.cellOf(s.Bounds.Min)
			maxCol := int(math.Ceil(s.Bounds.Max.X/g.cellW)) - 1
			maxRow := int(math.Ceil(s.Bounds.Max.Y/g.cellH)) - 1
			for row := minRow; row <= maxRow; row++ {
				for col := minCol; col <= maxCol; col++ {
					g.set(col, row, cellTower)
				}
			}
		case component.KindEnemy:
			col, row := g.cellOf(s.Position)
			g.set(col, row, cellEnemy)
		case component.KindProjectile:
			col, row := g.cellOf(s.Position)
			g.set(col, row, cellProjectile)
		}
	}
}
