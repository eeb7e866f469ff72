package lcd

// CircleSpans calls fn for each horizontal run of a filled circle of radius r
// centred on (cx, cy), clipped to the panel. x0 and x1 are inclusive.
// A pixel is inside when dx*dx+dy*dy <= r*r.
func CircleSpans(cx, cy, r int, fn func(x0, x1, y int)) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= Height {
			continue
		}
		w := 0
		for (w+1)*(w+1)+dy*dy <= r*r {
			w++
		}
		x0, x1 := max(cx-w, 0), min(cx+w, Width-1)
		if x0 > x1 {
			continue
		}
		fn(x0, x1, y)
	}
}
