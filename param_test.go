package bezier

import (
	"testing"
)

func TestChordLengthTValues(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(5, 0), Pt(8, 0), Pt(11, 0)}
	diff(t, []float64{0, 5.0 / 11, 8.0 / 11, 1}, ChordLength.TValues(pts))

	pts = []Point{Pt(0, 0), Pt(3, 0), Pt(9, 0), Pt(12, 0)}
	diff(t, []float64{0, 0.25, 0.75, 1}, ChordLength.TValues(pts))
}

func TestUniformTValues(t *testing.T) {
	// Uniform spacing ignores the geometry entirely.
	pts := make([]Point, 5)
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, Uniform.TValues(pts))
}

func TestCentripetalTValues(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(4, 0), Pt(13, 0)}
	diff(t, []float64{0, 0.4, 1}, Centripetal.TValues(pts))

	pts = []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(6, 0)}
	diff(t, []float64{0, 0.25, 0.5, 1}, Centripetal.TValues(pts))
}

func TestCentripetalDampensLongChords(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(101, 0)}
	chord := ChordLength.TValues(pts)
	cent := Centripetal.TValues(pts)
	if cent[1] <= chord[1] {
		t.Errorf("centripetal %v did not dampen the long chord against %v", cent, chord)
	}
}

func TestTValuesDegenerate(t *testing.T) {
	diff(t, []float64{}, ChordLength.TValues(nil))
	diff(t, []float64{0}, Centripetal.TValues([]Point{Pt(3, 4)}))

	// Coincident points leave no chords to measure.
	same := []Point{Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	diff(t, []float64{0, 0, 0}, ChordLength.TValues(same))
	diff(t, []float64{0, 0, 0}, Centripetal.TValues(same))
	diff(t, []float64{0, 0.5, 1}, Uniform.TValues(same))
}

func TestParameterizationString(t *testing.T) {
	diff(t, "ChordLength", ChordLength.String())
	diff(t, "Uniform", Uniform.String())
	diff(t, "Centripetal", Centripetal.String())
	diff(t, "Parameterization(7)", Parameterization(7).String())
}
