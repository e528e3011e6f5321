package curve

import "testing"

func BenchmarkPairing(b *testing.B) {
	c := Toy()
	p := c.ScalarMul(c.Generator(), 2)
	q := c.ScalarMul(c.Generator(), 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Pair(p, q)
	}
}

func BenchmarkScalarMul(b *testing.B) {
	c := Toy()
	g := c.Generator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ScalarMul(g, 4)
	}
}

func BenchmarkAdd(b *testing.B) {
	c := Toy()
	g := c.Generator()
	g2 := c.ScalarMul(g, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Add(g, g2)
	}
}
