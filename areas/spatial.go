package areas

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// polygonSpatial adapts an orb.Polygon for rtreego's Spatial interface
// by exposing its axis-aligned bounding box.
type polygonSpatial struct {
	Polygon orb.Polygon
}

func (p polygonSpatial) Bounds() *rtreego.Rect {
	return boundsOf(p.Polygon.Bound())
}

// pointSpatial adapts an orb.Point similarly, as a zero-size rect.
type pointSpatial struct {
	Point orb.Point
}

func (p pointSpatial) Bounds() *rtreego.Rect {
	rect, err := rtreego.NewRect(rtreego.Point{p.Point[0], p.Point[1]}, []float64{minSpan, minSpan})
	if err != nil {
		panic(err)
	}
	return rect
}

// minSpan is the smallest side length rtreego.NewRect accepts; points
// have zero extent, so every point rect is inflated to this to satisfy
// the library's "must be positive" precondition.
const minSpan = 1e-9

func boundsOf(b orb.Bound) *rtreego.Rect {
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w < minSpan {
		w = minSpan
	}
	if h < minSpan {
		h = minSpan
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
	if err != nil {
		panic(err)
	}
	return rect
}
