// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"
)

func BenchmarkMul(b *testing.B) {
	var m, l, r M4
	l.Translate(0, -20, 0)
	r.Perspective(0.785, 1.6, 0.1, 2000)
	b.Run("M4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m.Mul(&r, &l)
		}
	})
	var n M3
	b.Run("M3.Normal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			n.Normal(&m)
		}
	})
	b.Log(m, n)
}
