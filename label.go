package solids

// Fixed label clearances from their anchors. Placement is deterministic;
// there is no collision avoidance.
const (
	originLabelOffset = 0.5
	apexLabelOffset   = 0.3
)

// placeOriginLabel puts the origin label O below the bottom center anchor.
func placeOriginLabel(anchors AnchorSet) TextLabel {
	return NewTextLabel("O", anchors.CenterBottom.Add(Pt(0, -originLabelOffset)))
}

// placeTopLabel puts the top-center label O' above its anchor.
func placeTopLabel(anchors AnchorSet) TextLabel {
	return NewTextLabel("O'", anchors.CenterTop.Add(Pt(0, originLabelOffset)))
}

// placeApexLabel puts the apex label S just above the apex anchor.
func placeApexLabel(anchors AnchorSet) TextLabel {
	return NewTextLabel("S", anchors.Apex.Add(Pt(0, apexLabelOffset)))
}

// placeNorthLabel marks the sphere's top piercing point with N.
func placeNorthLabel(at Point) TextLabel {
	return NewTextLabel("N", at.Add(Pt(0, apexLabelOffset)))
}
