package terrain

import "testing"

func TestSelectLODLinearLadder(t *testing.T) {
	// With baseDistance=10 and linear ladder, thresholds are
	// (10)^2, (20)^2, (30)^2 ... walked from maxLOD down to minLOD.
	if got := selectLOD(0, 10, 0, 3, LadderLinear); got != 3 {
		t.Errorf("selectLOD(0): expected LOD 3, got %d", got)
	}
	if got := selectLOD(15*15, 10, 0, 3, LadderLinear); got != 2 {
		t.Errorf("selectLOD(15^2): expected LOD 2, got %d", got)
	}
	if got := selectLOD(1000*1000, 10, 0, 3, LadderLinear); got != 0 {
		t.Errorf("selectLOD(far): expected minLOD 0, got %d", got)
	}
}

func TestSelectLODGeometricLadder(t *testing.T) {
	// Geometric ladder: thresholds are baseDistance, 2*baseDistance,
	// 4*baseDistance ... squared, walked from maxLOD down.
	if got := selectLOD(0, 10, 0, 3, LadderGeometric); got != 3 {
		t.Errorf("selectLOD(0): expected LOD 3, got %d", got)
	}
	if got := selectLOD(25*25, 10, 0, 3, LadderGeometric); got != 1 {
		t.Errorf("selectLOD(25^2): expected LOD 1, got %d", got)
	}
}

func TestSelectLODRespectsMinLOD(t *testing.T) {
	got := selectLOD(1e12, 1, 2, 4, LadderLinear)
	if got != 2 {
		t.Errorf("selectLOD(huge distance): expected minLOD 2, got %d", got)
	}
}

func TestSelectLODRespectsMaxLOD(t *testing.T) {
	got := selectLOD(0, 100, 0, 2, LadderLinear)
	if got != 2 {
		t.Errorf("selectLOD(zero distance): expected maxLOD 2, got %d", got)
	}
}
