package code_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
)

func TestDistanceLogicals_FiveQubit(t *testing.T) {
	c := fiveQubit(t)

	d, found, err := c.DistanceLogicals()
	if err != nil {
		t.Fatalf("DistanceLogicals: %v", err)
	}
	if d != 3 {
		t.Fatalf("distance = %d, want 3", d)
	}
	if len(found) != 30 {
		t.Fatalf("minimum-weight logicals = %d, want 30", len(found))
	}
	stabs := c.Stabilizers()
	logicals := c.Logicals()
	for _, op := range found {
		if op.Weight() != 3 {
			t.Errorf("%v has weight %d, want 3", op, op.Weight())
		}
		for _, s := range stabs {
			if com, _ := s.Commutation(op); com != 0 {
				t.Errorf("%v anticommutes with stabilizer %v", op, s)
			}
		}
		anti := false
		for _, l := range logicals {
			if com, _ := l.Commutation(op); com == 1 {
				anti = true
				break
			}
		}
		if !anti {
			t.Errorf("%v commutes with every logical", op)
		}
	}
}

func TestDistanceLogicals_TwoQubit(t *testing.T) {
	// [[2,1,1]]: the single stabilizer XX leaves XI and IX as weight-one
	// logicals.
	c, err := code.New(
		[]pauli.Operator{pauli.MustParse("XX")},
		[]pauli.Operator{pauli.MustParse("XI"), pauli.MustParse("ZZ")},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	d, found, err := c.DistanceLogicals()
	if err != nil {
		t.Fatalf("DistanceLogicals: %v", err)
	}
	if d != 1 {
		t.Fatalf("distance = %d, want 1", d)
	}
	want := []pauli.Operator{pauli.MustParse("XI"), pauli.MustParse("IX")}
	if len(found) != len(want) {
		t.Fatalf("found %v, want %v", found, want)
	}
	for i := range want {
		if found[i].String() != want[i].String() {
			t.Errorf("found[%d] = %v, want %v", i, found[i], want[i])
		}
	}
}

func TestDistanceLogicals_MaxWeight(t *testing.T) {
	c := fiveQubit(t)

	if _, _, err := c.DistanceLogicals(code.WithMaxWeight(2)); !errors.Is(err, code.ErrDistanceNotFound) {
		t.Fatalf("capped search: err = %v, want ErrDistanceNotFound", err)
	}
	d, _, err := c.DistanceLogicals(code.WithMaxWeight(3))
	if err != nil || d != 3 {
		t.Fatalf("capped at the distance: d = %d, err = %v", d, err)
	}
}

func TestDistanceLogicals_NoLogicals(t *testing.T) {
	c := bellState(t)
	if _, _, err := c.DistanceLogicals(); !errors.Is(err, code.ErrNoLogicals) {
		t.Fatalf("err = %v, want ErrNoLogicals", err)
	}
}
