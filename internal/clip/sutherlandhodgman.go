package clip

import "contourtiles/internal/feature"

// ClipPolygon clips a closed ring against box b using Sutherland-Hodgman,
// walking the left, right, top, bottom edges in that order. The ring is
// reclosed on output; an empty result means the ring fell entirely
// outside the box.
func ClipPolygon(r feature.Ring, b box) feature.Ring {
	pts := feature.Ring(r)
	if feature.Closed(pts) {
		pts = pts[:len(pts)-1]
	}

	pts = clipEdge(pts, func(p feature.Pt) bool { return p[0] >= b.xmin },
		func(a, c feature.Pt) feature.Pt {
			return feature.Pt{b.xmin, a[1] + (c[1]-a[1])*(b.xmin-a[0])/(c[0]-a[0])}
		})
	pts = clipEdge(pts, func(p feature.Pt) bool { return p[0] <= b.xmax },
		func(a, c feature.Pt) feature.Pt {
			return feature.Pt{b.xmax, a[1] + (c[1]-a[1])*(b.xmax-a[0])/(c[0]-a[0])}
		})
	pts = clipEdge(pts, func(p feature.Pt) bool { return p[1] >= b.ymin },
		func(a, c feature.Pt) feature.Pt {
			return feature.Pt{a[0] + (c[0]-a[0])*(b.ymin-a[1])/(c[1]-a[1]), b.ymin}
		})
	pts = clipEdge(pts, func(p feature.Pt) bool { return p[1] <= b.ymax },
		func(a, c feature.Pt) feature.Pt {
			return feature.Pt{a[0] + (c[0]-a[0])*(b.ymax-a[1])/(c[1]-a[1]), b.ymax}
		})

	if len(pts) < 3 {
		return nil
	}
	return feature.Close(pts)
}

// clipEdge runs one Sutherland-Hodgman pass against a single half-plane,
// inside reporting whether a point satisfies it and intersect computing
// the crossing point of edge (a,c) with that half-plane's boundary.
func clipEdge(pts []feature.Pt, inside func(feature.Pt) bool, intersect func(a, c feature.Pt) feature.Pt) []feature.Pt {
	if len(pts) == 0 {
		return nil
	}
	var out []feature.Pt
	prev := pts[len(pts)-1]
	prevIn := inside(prev)
	for _, cur := range pts {
		curIn := inside(cur)
		if curIn != prevIn {
			out = append(out, intersect(prev, cur))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}
