package vector

import (
	"fmt"
	"strings"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	_ = v.Append(10)
	_ = v.Append(20)
	_, _ = v.Insert(1, 15)
	fmt.Printf("After insert: %v\n", v.Elements())

	v.Erase(0)
	fmt.Printf("After erase: %v\n", v.Elements())
	fmt.Printf("Size: %d, capacity: %d\n", v.Size(), v.Capacity())

	// Output:
	// After insert: [10 15 20]
	// After erase: [15 20]
	// Size: 2, capacity: 4
}

// ExampleVector_Append demonstrates geometric growth
func ExampleVector_Append() {
	v := New[int]()
	defer v.Release()

	for i := 1; i <= 5; i++ {
		_ = v.Append(i)
		fmt.Printf("size=%d capacity=%d\n", v.Size(), v.Capacity())
	}

	// Output:
	// size=1 capacity=1
	// size=2 capacity=2
	// size=3 capacity=4
	// size=4 capacity=4
	// size=5 capacity=8
}

// ExampleVector_Reserve demonstrates exact growth with Reserve and Resize
func ExampleVector_Reserve() {
	v := New[float64]()
	defer v.Release()

	_ = v.Reserve(10)
	fmt.Printf("After Reserve(10): size=%d capacity=%d\n", v.Size(), v.Capacity())

	_ = v.Resize(3)
	fmt.Printf("After Resize(3): %v capacity=%d\n", v.Elements(), v.Capacity())

	_ = v.Resize(12)
	fmt.Printf("After Resize(12): size=%d capacity=%d\n", v.Size(), v.Capacity())

	// Output:
	// After Reserve(10): size=0 capacity=10
	// After Resize(3): [0 0 0] capacity=10
	// After Resize(12): size=12 capacity=12
}

// ExampleVector_Clone demonstrates that copies are independent
func ExampleVector_Clone() {
	a := New[string]()
	defer a.Release()
	for _, s := range []string{"x", "y", "z"} {
		_ = a.Append(s)
	}

	b, _ := a.Clone()
	defer b.Release()
	*b.At(0) = "changed"

	fmt.Println(strings.Join(a.Elements(), ","))
	fmt.Println(strings.Join(b.Elements(), ","))

	// Output:
	// x,y,z
	// changed,y,z
}

// ExampleVector_Move demonstrates ownership transfer
func ExampleVector_Move() {
	a := New[int]()
	_ = a.Append(1)
	_ = a.Append(2)

	b := a.Move()
	defer b.Release()

	fmt.Printf("a: size=%d capacity=%d\n", a.Size(), a.Capacity())
	fmt.Printf("b: %v\n", b.Elements())

	// Output:
	// a: size=0 capacity=0
	// b: [1 2]
}

// ExampleVector_EmplaceAppend demonstrates in-place construction
func ExampleVector_EmplaceAppend() {
	type point struct{ X, Y int }

	v := New[point]()
	defer v.Release()

	p, _ := v.EmplaceAppend(func(p *point) error {
		p.X, p.Y = 3, 4
		return nil
	})
	p.Y = 5

	fmt.Printf("%+v\n", *v.At(0))

	// Output:
	// {X:3 Y:5}
}

// ExampleVector_All demonstrates iteration
func ExampleVector_All() {
	v := New[string]()
	defer v.Release()
	_ = v.Append("a")
	_ = v.Append("b")

	for i, s := range v.All() {
		fmt.Println(i, s)
	}
	for i, s := range v.Backward() {
		fmt.Println(i, s)
	}

	// Output:
	// 0 a
	// 1 b
	// 1 b
	// 0 a
}

// ExampleMetrics demonstrates monitoring storage usage
func ExampleMetrics() {
	v := New[int32]()
	defer v.Release()

	for i := range 5 {
		_ = v.Append(int32(i))
	}

	metrics := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Size: %d\n", metrics.Size)
	fmt.Printf("  Capacity: %d\n", metrics.Capacity)
	fmt.Printf("  Bytes in use: %d\n", metrics.BytesInUse)
	fmt.Printf("  Bytes reserved: %d\n", metrics.BytesReserved)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Size: 5
	//   Capacity: 8
	//   Bytes in use: 20
	//   Bytes reserved: 32
	//   Utilization: 62.5%
}
