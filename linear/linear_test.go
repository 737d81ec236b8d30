// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"
)

func TestV(t *testing.T) {
	var u V3
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u.Add(&v, &w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u.Sub(&v, &w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u.Scale(-1, &v); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(&w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6\n", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v\n", l, math.Sqrt(21))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v.Norm(&v); v != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", v)
	}
	if w.Norm(&w); w != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 1 0]", w)
	}
	if u.Cross(&v, &w); u != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [1 0 0]", u)
	}
	if u.Cross(&w, &v); u != (V3{-1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [-1 0 0]", u)
	}

	m := M3{
		{2, 0, 1},
		{1, 3, 2},
		{4, 2, 3},
	}
	v = V3{-1, 0, 1}

	if u.Mul(&m, &v); u != (V3{2, 2, 2}) {
		t.Fatalf("V3.Mul\nhave %v\nwant [2 2 2]", u)
	}
	m.I()
	if u.Mul(&m, &v); u != v {
		t.Fatalf("V3.Mul\nhave %v\nwant %v", u, v)
	}
}

func TestM(t *testing.T) {
	var l M3
	m := M3{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	n := M3{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	}

	if l.I(); l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.I\nhave %v\nwant [%v %v %v]", l, V3{1}, V3{0, 1}, V3{0, 0, 1})
	}
	if l.Mul(&m, &n); l != (M3{m[1], m[2], m[0]}) {
		t.Fatalf("M3.Mul\nhave %v\nwant [%v %v %v]", l, m[1], m[2], m[0])
	}
	if l.Transpose(&m); l != (M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}) {
		t.Fatalf("M3.Transpose\nhave %v\nwant %v", l, M3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	}
	if l.Invert(&n); l != (M3{n[1], n[2], n[0]}) {
		t.Fatalf("M3.Invert\nhave %v\nwant %v", l, M3{n[1], n[2], n[0]})
	}

	var x M4
	x.Translate(0, -20, 0)
	if l.Normal(&x); l != (M3{{1}, {0, 1}, {0, 0, 1}}) {
		t.Fatalf("M3.Normal\nhave %v\nwant identity", l)
	}
	x.Scale(2, 4, 8)
	if l.Normal(&x); l != (M3{{0.5}, {1: 0.25}, {2: 0.125}}) {
		t.Fatalf("M3.Normal\nhave %v\nwant [[0.5] [0 0.25] [0 0 0.125]]", l)
	}
}

func TestTS(t *testing.T) {
	var x, s M4

	x.Translate(-1, -2, -3)
	s.Scale(5, 5, 5)
	x.Mul(&x, &s)
	if x != (M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}}) {
		t.Fatalf("T*S\nhave %v\nwant %v", x, M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}})
	}
	v := V4{1, 1, 1, 1}
	v.Mul(&x, &v)
	if v != (V4{4, 3, 2, 1}) {
		t.Fatalf("T*S*v\nhave %v\nwant %v", v, V4{4, 3, 2, 1})
	}
}

func TestView(t *testing.T) {
	var m M4
	m.LookAt(&V3{0, 0, 5}, &V3{}, &V3{0, 1, 0})
	v := V4{0, 0, 5, 1}
	if v.Mul(&m, &v); v != (V4{0, 0, 0, 1}) {
		t.Fatalf("M4.LookAt: eye\nhave %v\nwant [0 0 0 1]", v)
	}
	v = V4{0, 0, 0, 1}
	if v.Mul(&m, &v); v != (V4{0, 0, -5, 1}) {
		t.Fatalf("M4.LookAt: center\nhave %v\nwant [0 0 -5 1]", v)
	}

	m.Perspective(math.Pi/2, 1, 1, 3)
	for _, x := range [...]struct {
		z, ndc float32
	}{
		{-1, -1},
		{-3, 1},
	} {
		v = V4{0, 0, x.z, 1}
		v.Mul(&m, &v)
		if d := v[2] / v[3]; d != x.ndc {
			t.Fatalf("M4.Perspective: depth of z=%v\nhave %v\nwant %v", x.z, d, x.ndc)
		}
	}

	m.Ortho(-2, 2, -1, 1, 0, 10)
	v = V4{2, 1, -10, 1}
	if v.Mul(&m, &v); v != (V4{1, 1, 1, 1}) {
		t.Fatalf("M4.Ortho\nhave %v\nwant [1 1 1 1]", v)
	}
}
