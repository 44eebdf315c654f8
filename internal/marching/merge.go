package marching

import "math"

// quantKey rounds a point to the tracer's tolerance so that two edge
// crossings computed from opposite sides of a shared cell edge (and
// therefore from slightly different floating point paths) still land on
// the same merge key.
type quantKey [2]int64

func quantize(p pt) quantKey {
	const scale = 1e6
	return quantKey{int64(math.Round(p[0] * scale)), int64(math.Round(p[1] * scale))}
}

type chain struct {
	pts  []pt
	dead bool
}

func reversePts(p []pt) []pt {
	out := make([]pt, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// mergeSegments joins a segment soup into maximal chains: any two segments
// sharing an endpoint (in either orientation) are fused into one polyline,
// repeated until no further join is possible. Running time is near-linear
// in the number of segments — each chain's endpoints are looked up and
// removed from the index in constant time as it extends.
func mergeSegments(segs []seg) [][]pt {
	chains := make([]*chain, len(segs))
	for i, s := range segs {
		chains[i] = &chain{pts: []pt{s.a, s.b}}
	}

	index := make(map[quantKey][]*chain)
	push := func(k quantKey, c *chain) {
		index[k] = append(index[k], c)
	}
	pop := func(k quantKey, self *chain) *chain {
		lst := index[k]
		for i, c := range lst {
			if c == self || c.dead {
				continue
			}
			index[k] = append(lst[:i:i], lst[i+1:]...)
			return c
		}
		return nil
	}
	remove := func(k quantKey, c *chain) {
		lst := index[k]
		for i, cc := range lst {
			if cc == c {
				index[k] = append(lst[:i:i], lst[i+1:]...)
				return
			}
		}
	}

	for _, c := range chains {
		push(quantize(c.pts[0]), c)
		push(quantize(c.pts[len(c.pts)-1]), c)
	}

	for _, c := range chains {
		if c.dead {
			continue
		}
		remove(quantize(c.pts[0]), c)
		remove(quantize(c.pts[len(c.pts)-1]), c)

		extended := true
		for extended {
			extended = false

			endKey := quantize(c.pts[len(c.pts)-1])
			if other := pop(endKey, c); other != nil {
				other.dead = true
				remove(quantize(other.pts[0]), other)
				remove(quantize(other.pts[len(other.pts)-1]), other)
				if quantize(other.pts[0]) == endKey {
					c.pts = append(c.pts, other.pts[1:]...)
				} else {
					c.pts = append(c.pts, reversePts(other.pts)[1:]...)
				}
				extended = true
				continue
			}

			startKey := quantize(c.pts[0])
			if other := pop(startKey, c); other != nil {
				other.dead = true
				remove(quantize(other.pts[0]), other)
				remove(quantize(other.pts[len(other.pts)-1]), other)
				var prefix []pt
				if quantize(other.pts[len(other.pts)-1]) == startKey {
					prefix = other.pts[:len(other.pts)-1]
				} else {
					rev := reversePts(other.pts)
					prefix = rev[:len(rev)-1]
				}
				merged := make([]pt, 0, len(prefix)+len(c.pts))
				merged = append(merged, prefix...)
				merged = append(merged, c.pts...)
				c.pts = merged
				extended = true
			}
		}

		push(quantize(c.pts[0]), c)
		push(quantize(c.pts[len(c.pts)-1]), c)
	}

	var out [][]pt
	for _, c := range chains {
		if !c.dead {
			out = append(out, c.pts)
		}
	}
	return out
}
