package bidi

// mirrorShadow negates the horizontal offset, the first length of every
// shadow. inset, vertical offset, blur, spread and colour stay.
func mirrorShadow(v Node, dir Direction) (Node, error) {
	if !IsRTL(dir) {
		return v, nil
	}
	return mapAlternatives(v, func(alt Node) (Node, error) {
		items := components(alt)
		for i, it := range items {
			if d, ok := it.(Dimension); ok {
				items[i] = d.Neg()
				break
			}
		}
		return spaceList(items), nil
	})
}
