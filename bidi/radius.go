package bidi

// Radii are border-radius values split into horizontal (primary) and
// optional vertical (secondary) radii.
type Radii struct {
	Primary   []Node
	Secondary []Node
}

func (r Radii) String() string {
	sec := "null"
	if len(r.Secondary) > 0 {
		sec = Serialize(spaceList(r.Secondary))
	}
	return "(primary:" + Serialize(spaceList(r.Primary)) + ",secondary:" + sec + ")"
}

// ParseRadii splits a border-radius value. Besides the native "a b / c d"
// form, vertical radii may be given as a parenthesised group following the
// horizontal ones, "12px (26px,)" or "6px 12px (12px 6px)", and horizontal
// radii may be grouped themselves, "(12px 8px 9px 10px) 15px 18px". A
// leading group always holds horizontal radii, anything after a group is
// vertical.
func ParseRadii(v Node) Radii {
	items := components(v)
	if len(items) == 1 {
		if l, ok := items[0].(*List); ok && l.Parens && l.Sep == SepSpace {
			items = l.Items
		}
	}

	var r Radii
	for i, it := range items {
		if k, ok := it.(Keyword); ok && k.Text == "/" {
			r.Primary = append(r.Primary, items[:i]...)
			r.Secondary = append(r.Secondary, items[i+1:]...)
			return r
		}
	}

	vertical := false
	for i, it := range items {
		g, group := groupItems(it)
		switch {
		case group && i == 0:
			r.Primary = g
			vertical = true
		case group:
			r.Secondary = append(r.Secondary, g...)
			vertical = true
		case vertical:
			r.Secondary = append(r.Secondary, it)
		default:
			r.Primary = append(r.Primary, it)
		}
	}
	return r
}

func groupItems(n Node) ([]Node, bool) {
	if l, ok := n.(*List); ok && l.Parens {
		return l.Items, true
	}
	return nil, false
}

// mirrorCorners reorders top-left, top-right, bottom-right, bottom-left
// radii, shorter forms are expanded only as far as mirroring needs.
func mirrorCorners(vals []Node, dir Direction) []Node {
	if !IsRTL(dir) {
		return vals
	}
	switch len(vals) {
	case 2:
		return []Node{vals[1], vals[0]}
	case 3:
		return []Node{vals[1], vals[0], vals[1], vals[2]}
	case 4:
		return []Node{vals[1], vals[0], vals[3], vals[2]}
	}
	return vals
}

func mirrorBorderRadius(v Node, dir Direction) (Node, error) {
	r := ParseRadii(v)
	if len(r.Primary) == 0 {
		return v, nil
	}
	primary := spaceList(mirrorCorners(r.Primary, dir))
	if len(r.Secondary) == 0 {
		return primary, nil
	}
	secondary := spaceList(mirrorCorners(r.Secondary, dir))
	return &List{Items: []Node{primary, secondary}, Sep: SepSlash}, nil
}
