package geom

import "testing"

func TestReflectInvolution(t *testing.T) {
	size := Size{W: 400, H: 600}
	cases := []struct{ ix, iy bool }{
		{false, false}, {true, false}, {false, true}, {true, true},
	}
	pts := []Point{{0, 0}, {200, 300}, {399, 1}, {-10, 700}}
	for _, c := range cases {
		for _, p := range pts {
			got := Reflect(Reflect(p, size, c.ix, c.iy), size, c.ix, c.iy)
			if got != p {
				t.Fatalf("Reflect not involutive for ix=%v iy=%v p=%v: got %v", c.ix, c.iy, p, got)
			}
		}
	}
}

func TestReflectCtrlScenario(t *testing.T) {
	// Scenario 4 from spec.md §8: Ctrl+LeftClickDown at window (200,300),
	// frame (400,600), reflects to (200,300) by coincidence (400-200=200,
	// 600-300=300); move to (250,300) reflects to (150,300).
	size := Size{W: 400, H: 600}
	got := Reflect(Point{200, 300}, size, true, true)
	if got != (Point{200, 300}) {
		t.Fatalf("expected (200,300), got %v", got)
	}
	got = Reflect(Point{250, 300}, size, true, true)
	if got != (Point{150, 300}) {
		t.Fatalf("expected (150,300), got %v", got)
	}
}

func TestDistSquared(t *testing.T) {
	if got := DistSquared(Point{0, 0}, Point{3, 4}); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}
