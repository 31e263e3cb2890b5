package view

import "image"

// Paint carries out one render request against the tree rooted at root.
// It reports whether anything was painted; requests for views that have
// since been removed paint nothing.
func Paint(c *Canvas, root View, req RenderRequest) bool {
	if req.Rect.Empty() {
		return false
	}
	if req.Expose {
		return paintOverlapping(c, root, req.Rect)
	}
	v, ok := FindByID(root, req.ID)
	if !ok {
		return false
	}
	paintTree(c, v, req.Rect)
	// Views above v in paint order that cover the region win.
	paintAbove(c, root, v, req.Rect)
	return true
}

func paintTree(c *Canvas, v View, clip image.Rectangle) {
	r := v.Rect().Intersect(clip)
	if !r.Empty() {
		v.Render(c, r)
	}
	for _, ch := range v.Children() {
		paintTree(c, ch, clip)
	}
}

func paintOverlapping(c *Canvas, root View, clip image.Rectangle) bool {
	painted := false
	Walk(root, func(v View) bool {
		r := v.Rect().Intersect(clip)
		if !r.Empty() {
			v.Render(c, r)
			painted = true
		}
		return true
	})
	return painted
}

// paintAbove repaints the subtrees that come after target in paint order
// and overlap clip.
func paintAbove(c *Canvas, root, target View, clip image.Rectangle) {
	var visit func(v View) bool
	visit = func(v View) bool {
		if v == target {
			return true
		}
		cs := v.Children()
		for i, ch := range cs {
			if visit(ch) {
				for _, later := range cs[i+1:] {
					if later.Rect().Overlaps(clip) || Overlapping(later).Overlaps(clip) {
						paintTree(c, later, clip)
					}
				}
				return true
			}
		}
		return false
	}
	visit(root)
}
