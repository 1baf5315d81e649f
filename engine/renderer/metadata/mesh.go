package metadata

// Shape selects one of the primitive meshes the backend can upload
// and draw.
type Shape uint8

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeCone
	ShapePrism
	ShapeSphere
	ShapeTaperedCylinder
	ShapeTorus
	ShapeHalfSphere
)

// AllShapes lists every primitive in upload order.
var AllShapes = []Shape{
	ShapePlane,
	ShapeBox,
	ShapeCylinder,
	ShapeCone,
	ShapePrism,
	ShapeSphere,
	ShapeTaperedCylinder,
	ShapeTorus,
	ShapeHalfSphere,
}

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapePrism:
		return "prism"
	case ShapeSphere:
		return "sphere"
	case ShapeTaperedCylinder:
		return "tapered_cylinder"
	case ShapeTorus:
		return "torus"
	case ShapeHalfSphere:
		return "half_sphere"
	}
	return "unknown"
}
