package signal_test

import (
	"fmt"

	"github.com/guilmont/web-fourier/signal"
)

func ExampleGenerator_Circle() {
	g := signal.NewGenerator(signal.WithPoints(4))
	circle, _ := g.Circle(1)
	for _, c := range circle {
		fmt.Printf("%.0f%+.0fi\n", real(c), imag(c))
	}
	// Output:
	// 1+0i
	// 0+1i
	// -1+0i
	// -0-1i
}

func ExampleNormalize() {
	out, _ := signal.Normalize([]float64{1, -4, 2}, 1)
	fmt.Printf("%.2f %.2f %.2f\n", out[0], out[1], out[2])
	// Output:
	// 0.25 -1.00 0.50
}
