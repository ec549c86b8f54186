package scenario

import (
	"fmt"

	"github.com/vovakirdan/collide/internal/geom"
)

// point is a YAML flow sequence [x, y].
type point []float64

func (p point) vector(field string) (geom.Vector2D, error) {
	if len(p) != 2 {
		return geom.Zero, fmt.Errorf("%w: %s needs 2 coordinates, got %d", ErrInvalid, field, len(p))
	}
	return geom.Vec(p[0], p[1]), nil
}

type lineSpec struct {
	Base      point `yaml:"base"`
	Direction point `yaml:"direction"`
}

type segmentSpec struct {
	Point1 point `yaml:"point1"`
	Point2 point `yaml:"point2"`
}

type circleSpec struct {
	Center point   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type rectangleSpec struct {
	Origin point `yaml:"origin"`
	Size   point `yaml:"size"`
}

type orientedSpec struct {
	Center     point   `yaml:"center"`
	HalfExtent point   `yaml:"half_extent"`
	Rotation   float64 `yaml:"rotation"`
}

// shapeSpec holds exactly one shape key.
type shapeSpec struct {
	Point     point          `yaml:"point"`
	Line      *lineSpec      `yaml:"line"`
	Segment   *segmentSpec   `yaml:"segment"`
	Circle    *circleSpec    `yaml:"circle"`
	Rectangle *rectangleSpec `yaml:"rectangle"`
	Oriented  *orientedSpec  `yaml:"oriented"`
}

func (s shapeSpec) keys() []string {
	var keys []string
	if s.Point != nil {
		keys = append(keys, "point")
	}
	if s.Line != nil {
		keys = append(keys, "line")
	}
	if s.Segment != nil {
		keys = append(keys, "segment")
	}
	if s.Circle != nil {
		keys = append(keys, "circle")
	}
	if s.Rectangle != nil {
		keys = append(keys, "rectangle")
	}
	if s.Oriented != nil {
		keys = append(keys, "oriented")
	}
	return keys
}

func (s shapeSpec) shape() (geom.Shape, error) {
	keys := s.keys()
	switch len(keys) {
	case 0:
		return nil, fmt.Errorf("%w: no shape key", ErrInvalid)
	case 1:
	default:
		return nil, fmt.Errorf("%w: several shape keys %v", ErrInvalid, keys)
	}

	switch {
	case s.Point != nil:
		return s.Point.vector("point")

	case s.Line != nil:
		base, err := s.Line.Base.vector("base")
		if err != nil {
			return nil, err
		}
		dir, err := s.Line.Direction.vector("direction")
		if err != nil {
			return nil, err
		}
		l, err := geom.NewLine(base, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		return l, nil

	case s.Segment != nil:
		p1, err := s.Segment.Point1.vector("point1")
		if err != nil {
			return nil, err
		}
		p2, err := s.Segment.Point2.vector("point2")
		if err != nil {
			return nil, err
		}
		return geom.Segment{Point1: p1, Point2: p2}, nil

	case s.Circle != nil:
		center, err := s.Circle.Center.vector("center")
		if err != nil {
			return nil, err
		}
		if s.Circle.Radius < 0 {
			return nil, fmt.Errorf("%w: negative radius %v", ErrInvalid, s.Circle.Radius)
		}
		return geom.Circle{Center: center, Radius: s.Circle.Radius}, nil

	case s.Rectangle != nil:
		origin, err := s.Rectangle.Origin.vector("origin")
		if err != nil {
			return nil, err
		}
		size, err := s.Rectangle.Size.vector("size")
		if err != nil {
			return nil, err
		}
		if size.X < 0 || size.Y < 0 {
			return nil, fmt.Errorf("%w: negative size %v", ErrInvalid, size)
		}
		return geom.Rectangle{Origin: origin, Size: size}, nil

	default:
		center, err := s.Oriented.Center.vector("center")
		if err != nil {
			return nil, err
		}
		half, err := s.Oriented.HalfExtent.vector("half_extent")
		if err != nil {
			return nil, err
		}
		if half.X < 0 || half.Y < 0 {
			return nil, fmt.Errorf("%w: negative half_extent %v", ErrInvalid, half)
		}
		return geom.OrientedRectangle{Center: center, HalfExtent: half, Rotation: s.Oriented.Rotation}, nil
	}
}
