package grid

import "testing"

func TestIsSymmetric_EmptyGridIsSymmetric(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 5})
	if !IsSymmetric(g) {
		t.Error("uniform all-black grid should be symmetric")
	}
}

func TestIsSymmetric_MirroredCornersAreSymmetric(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 5})
	g.Cells[0][0].IsBlack = false
	g.Cells[4][4].IsBlack = false
	if !IsSymmetric(g) {
		t.Error("cells mirrored under 180-degree rotation should be symmetric")
	}
}

func TestIsSymmetric_UnmirroredCellIsAsymmetric(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 5})
	g.Cells[0][0].IsBlack = false
	if IsSymmetric(g) {
		t.Error("a single unmirrored white cell should break symmetry")
	}
}

func TestIsSymmetric_CenterCellAlwaysSymmetric(t *testing.T) {
	g := NewEmptyGrid(GridConfig{Size: 5})
	g.Cells[2][2].IsBlack = false
	if !IsSymmetric(g) {
		t.Error("the center cell of an odd-sized grid maps to itself")
	}
}

func TestIsSymmetric_NilGrid(t *testing.T) {
	if IsSymmetric(nil) {
		t.Error("nil grid should not be symmetric")
	}
}
