package game

import (
	"github.com/vovakirdan/f2b/internal/config"
)

// Cell is one tile of a room.
type Cell byte

const (
	CellFloor   Cell = '.'
	CellWall    Cell = '#'
	CellHazard  Cell = '^'
	CellExit    Cell = 'E'
	CellCabinet Cell = 'C'
	CellMedkit  Cell = '+'
	CellStart   Cell = '@'
)

// Blocking reports whether the player cannot walk onto the cell.
func (c Cell) Blocking() bool {
	return c == CellWall || c == CellCabinet
}

// Level is a room layout.
type Level struct {
	Name   string
	Width  int
	Height int
	Cells  [][]Cell // [row][col]
	StartX int
	StartY int
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = wall
//	'.' = floor
//	'^' = hazard, costs health when stepped on
//	'E' = exit to the next level
//	'C' = cabinet, opened with use from an adjacent cell
//	'+' = medkit pickup
//	'@' = player start (floor)
func ParseLevel(name string, lines []string) *Level {
	l := &Level{Name: name, Height: len(lines)}
	for _, line := range lines {
		if len(line) > l.Width {
			l.Width = len(line)
		}
	}

	l.Cells = make([][]Cell, l.Height)
	for y, line := range lines {
		row := make([]Cell, l.Width)
		for x := range row {
			row[x] = CellWall
		}
		for x := 0; x < len(line); x++ {
			c := Cell(line[x])
			if c == CellStart {
				l.StartX, l.StartY = x, y
				c = CellFloor
			}
			row[x] = c
		}
		l.Cells[y] = row
	}
	return l
}

// Clone creates a deep copy of the level (for reset).
func (l *Level) Clone() *Level {
	clone := *l
	clone.Cells = make([][]Cell, len(l.Cells))
	for i, row := range l.Cells {
		clone.Cells[i] = make([]Cell, len(row))
		copy(clone.Cells[i], row)
	}
	return &clone
}

// At returns the cell at (x, y). Outside the room is wall.
func (l *Level) At(x, y int) Cell {
	if y < 0 || y >= l.Height || x < 0 || x >= l.Width {
		return CellWall
	}
	return l.Cells[y][x]
}

// Set replaces the cell at (x, y).
func (l *Level) Set(x, y int, c Cell) {
	if y < 0 || y >= l.Height || x < 0 || x >= l.Width {
		return
	}
	l.Cells[y][x] = c
}

// Rows returns the layout as strings.
func (l *Level) Rows() []string {
	rows := make([]string, l.Height)
	for y, row := range l.Cells {
		b := make([]byte, len(row))
		for x, c := range row {
			b[x] = byte(c)
		}
		rows[y] = string(b)
	}
	return rows
}

// nextStep returns the first step of a shortest safe path from (x, y) to
// the nearest cell accepted by goal, or (0, 0) when there is none.
func (l *Level) nextStep(x, y int, goal func(x, y int) bool) (dx, dy int) {
	type point struct{ x, y int }
	start := point{x, y}
	prev := map[point]point{start: start}
	queue := []point{start}
	dirs := []point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p != start && goal(p.x, p.y) {
			for prev[p] != start {
				p = prev[p]
			}
			return p.x - start.x, p.y - start.y
		}
		for _, d := range dirs {
			n := point{p.x + d.x, p.y + d.y}
			c := l.At(n.x, n.y)
			if c.Blocking() || c == CellHazard {
				continue
			}
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = p
			queue = append(queue, n)
		}
	}
	return 0, 0
}

// layouts are the room templates. Levels cycle through them.
var layouts = [][]string{
	{
		"##############################",
		"#@.......#..........^.......E#",
		"#........#..........^........#",
		"#....+...#....####..^...######",
		"#........+....#..#...........#",
		"#.............#C.#...........#",
		"#........#....#..#.....^^....#",
		"#........#...................#",
		"##############################",
	},
	{
		"##############################",
		"#@...#.......#.......#......E#",
		"#....#...^...#...^...#.......#",
		"#....#...^...#...^...#...+...#",
		"#....#.......#.......#.......#",
		"#........#.......#.......#...#",
		"#...C....#...+...#.......#...#",
		"#........#.......#.......#...#",
		"##############################",
	},
	{
		"##############################",
		"#@.........^^^^^^...........##",
		"#.####.....................#E#",
		"#.#..#.....######..........#.#",
		"#.#C.#.....#....#....+.......#",
		"#.#..#.....#....#............#",
		"#.##.#.....##.###.....^^^^...#",
		"#............................#",
		"##############################",
	},
	{
		"##############################",
		"#E..........#...............@#",
		"#...........#................#",
		"#^^^^^^.....#.....######.....#",
		"#...........#.....#C..+#.....#",
		"#.....+.....#.....#....#.....#",
		"#...........#.....###.##.....#",
		"#............................#",
		"##############################",
	},
}

// DefaultLevels returns one level per level alias.
func DefaultLevels() []*Level {
	levels := make([]*Level, len(config.LevelAliases))
	for i, alias := range config.LevelAliases {
		levels[i] = ParseLevel(alias, layouts[i%len(layouts)])
	}
	return levels
}
