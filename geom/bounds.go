package geom

// Cell is an integer grid position.
type Cell struct {
	X, Y, Z int
}

// Box is an axis aligned volume of cells. Both corners are inclusive.
type Box struct {
	Min Cell
	Max Cell
}

// NewBox orders the two corners so Min <= Max on every axis.
func NewBox(a, b Cell) Box {
	return Box{
		Min: Cell{minInt(a.X, b.X), minInt(a.Y, b.Y), minInt(a.Z, b.Z)},
		Max: Cell{maxInt(a.X, b.X), maxInt(a.Y, b.Y), maxInt(a.Z, b.Z)},
	}
}

// ContainsCell reports whether c lies inside the box.
func (b Box) ContainsCell(c Cell) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Contains reports whether the cell holding p lies inside the box.
func (b Box) Contains(p Vec3) bool {
	return b.ContainsCell(p.Floor())
}

// Center is the midpoint of the covered volume.
func (b Box) Center() Vec3 {
	return Vec3{
		X: float64(b.Min.X+b.Max.X+1) / 2,
		Y: float64(b.Min.Y+b.Max.Y+1) / 2,
		Z: float64(b.Min.Z+b.Max.Z+1) / 2,
	}
}

// Size is the number of cells along each axis.
func (b Box) Size() Cell {
	return Cell{
		X: b.Max.X - b.Min.X + 1,
		Y: b.Max.Y - b.Min.Y + 1,
		Z: b.Max.Z - b.Min.Z + 1,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
