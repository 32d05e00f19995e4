package subd

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latentform/mold/geom"
)

// Crease tags a cage edge with a sharpness value. Bilinear ignores
// creases; they are carried for host evaluators that honor them.
type Crease struct {
	Edge      int     `yaml:"edge"`
	Sharpness float64 `yaml:"sharpness"`
}

// Cage is a quad control cage. Each face lists four vertex indices in
// counter-clockwise order seen from outside, so that the patch normal
// du × dv points outward.
type Cage struct {
	Vertices [][3]float64 `yaml:"vertices"`
	Faces    [][]int      `yaml:"faces"`
	Creases  []Crease     `yaml:"creases,omitempty"`
}

// Validate checks that every face is a quad referencing existing vertices.
func (c *Cage) Validate() error {
	if len(c.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidCage)
	}
	if len(c.Faces) == 0 {
		return fmt.Errorf("%w: no faces", ErrInvalidCage)
	}
	for i, f := range c.Faces {
		if len(f) != 4 {
			return fmt.Errorf("%w: face %d has %d vertices, want 4", ErrInvalidCage, i, len(f))
		}
		for _, vi := range f {
			if vi < 0 || vi >= len(c.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidCage, i, vi, len(c.Vertices))
			}
		}
	}
	return nil
}

// Point returns vertex i as a position.
func (c *Cage) Point(i int) geom.Point3 {
	v := c.Vertices[i]
	return geom.Pt3(v[0], v[1], v[2])
}

// ParseCage decodes a YAML cage and validates it.
func ParseCage(r io.Reader) (*Cage, error) {
	var c Cage
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("subd: decode cage: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCage reads a YAML cage file.
func LoadCage(path string) (*Cage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("subd: open cage: %w", err)
	}
	defer f.Close()
	return ParseCage(f)
}

// Cube face indices of UnitCube.
const (
	CubeBottom = iota // z = 0, normal -Z
	CubeTop           // z = 1, normal +Z
	CubeFront         // y = 0, normal -Y
	CubeRight         // x = 1, normal +X
	CubeBack          // y = 1, normal +Y
	CubeLeft          // x = 0, normal -X
)

// UnitCube returns the closed cube [0,1]^3 with outward-facing quads.
func UnitCube() *Cage {
	return &Cage{
		Vertices: [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Faces: [][]int{
			CubeBottom: {0, 3, 2, 1},
			CubeTop:    {4, 5, 6, 7},
			CubeFront:  {0, 1, 5, 4},
			CubeRight:  {1, 2, 6, 5},
			CubeBack:   {2, 3, 7, 6},
			CubeLeft:   {3, 0, 4, 7},
		},
	}
}

// Quad returns a single-face cage spanning the given corners in
// counter-clockwise order.
func Quad(p0, p1, p2, p3 geom.Point3) *Cage {
	pts := []geom.Point3{p0, p1, p2, p3}
	c := &Cage{Faces: [][]int{{0, 1, 2, 3}}}
	for _, p := range pts {
		c.Vertices = append(c.Vertices, [3]float64{p.X, p.Y, p.Z})
	}
	return c
}
