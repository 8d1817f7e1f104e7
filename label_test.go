package solids

import "testing"

func TestPlaceOriginLabel(t *testing.T) {
	anchors := resolveAnchors(Pt(1, -2), 2, 2, 3.5, topoCylinder)
	label := placeOriginLabel(anchors)
	if label.Text() != "O" {
		t.Errorf("Text() = %q, want O", label.Text())
	}
	if got, want := label.At(), Pt(1, -2.5); got != want {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestPlaceTopLabel(t *testing.T) {
	anchors := resolveAnchors(Pt(0, 0), 2, 2, 3.5, topoCylinder)
	label := placeTopLabel(anchors)
	if label.Text() != "O'" {
		t.Errorf("Text() = %q, want O'", label.Text())
	}
	if got, want := label.At(), Pt(0, 4); got != want {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestPlaceApexLabel(t *testing.T) {
	anchors := resolveAnchors(Pt(0, 0), 2, 0, 3.5, topoCone)
	label := placeApexLabel(anchors)
	if label.Text() != "S" {
		t.Errorf("Text() = %q, want S", label.Text())
	}
	if got, want := label.At(), Pt(0, 3.8); got != want {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

// Label placement reads anchors as-is; moving the center moves every label
// by the same offset and nothing else.
func TestLabels_FollowCenter(t *testing.T) {
	offset := Pt(3, -1)
	at := resolveAnchors(Pt(0, 0), 2, 0, 3.5, topoCone)
	moved := resolveAnchors(offset, 2, 0, 3.5, topoCone)

	if got, want := placeOriginLabel(moved).At(), placeOriginLabel(at).At().Add(offset); got != want {
		t.Errorf("origin label = %v, want %v", got, want)
	}
	if got, want := placeApexLabel(moved).At(), placeApexLabel(at).At().Add(offset); got != want {
		t.Errorf("apex label = %v, want %v", got, want)
	}
}
