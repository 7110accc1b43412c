// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hwfix

import (
	"fmt"
)

func ExampleValue() {
	f := MustNewFormat(true, 18, 12, Floor)
	a, err := New(2.12345678, f)
	if err != nil {
		panic(err)
	}
	b, err := a.Another(6.87654321)
	if err != nil {
		panic(err)
	}
	fmt.Printf("a = %s, b = %s, limits of %s: [%v, %v]\n", a, b, f, f.LowerLimit(), f.UpperLimit())

	sum, _ := a.Add(b)
	diff, _ := a.Sub(b)
	prod, _ := a.Mul(b)
	quo, _ := a.Div(b)
	sq, _ := a.Pow(2)
	fmt.Printf("a+b = %s, a-b = %s, a*b = %s, a/b = %s, a**2 = %s\n", sum, diff, prod, quo, sq)

	c, _ := a.Another(32)
	over, _ := b.Mul(c)
	negB, _ := b.Neg()
	under, _ := negB.Mul(c)
	fmt.Printf("c = %s, b*c = %s, -b*c = %s\n", c, over, under)

	if _, err := a.Div(MustNew(0, f)); err != nil {
		fmt.Println(err)
	}

	acc := MustNew(0, f)
	for _, v := range []Value{a, diff, sum} {
		if err := acc.Commit(v); err != nil {
			panic(err)
		}
	}
	fmt.Printf("acc = %s, range = [%v, %v]\n", acc, acc.Range().Lower, acc.Range().Upper)

	// Output:
	// a = 2.123291015625, b = 6.87646484375, limits of s18.12/Floor: [-32, 31.999755859375]
	// a+b = 8.999755859375, a-b = -4.753173828125, a*b = 14.6005859375, a/b = 0.30859375, a**2 = 4.50830078125
	// c = 31.999755859375, b*c = 31.999755859375, -b*c = -32
	// div: division by zero
	// acc = 8.999755859375, range = [-4.753173828125, 8.999755859375]
}
