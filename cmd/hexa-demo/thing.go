package main

import (
	"github.com/pwnedgod/hexa"
	"github.com/pwnedgod/hexa/asnum"
	"github.com/pwnedgod/hexa/astext"
)

type textThing struct {
	Foo    astext.Hex            `json:"foo" msgpack:"foo"`
	Bar    astext.Optional       `json:"bar" msgpack:"bar"`
	BarBar astext.DoubleOptional `json:"barbar" msgpack:"barbar"`
	Buzz   astext.List           `json:"buzz" msgpack:"buzz"`
	Buz    astext.Pair           `json:"buz" msgpack:"buz"`
}

type numThing struct {
	Foo    asnum.Hex            `json:"foo" msgpack:"foo"`
	Bar    asnum.Optional       `json:"bar" msgpack:"bar"`
	BarBar asnum.DoubleOptional `json:"barbar" msgpack:"barbar"`
	Buzz   asnum.List           `json:"buzz" msgpack:"buzz"`
	Buz    asnum.Pair           `json:"buz" msgpack:"buz"`
}

type values struct {
	foo    hexa.Hex
	bar    *hexa.Hex
	barbar **hexa.Hex
	buzz   []hexa.Hex
	buz    hexa.Pair
}

func demoValues() values {
	bar := hexa.FromNumeric(16777215)
	inner := hexa.MustFromText("123456")
	barbar := &inner

	return values{
		foo:    hexa.MustFromText("123abc"),
		bar:    &bar,
		barbar: &barbar,
		buzz:   []hexa.Hex{hexa.FromBytes([]byte{1, 10, 100})},
		buz:    hexa.Pair{First: hexa.MustFromText("ffffff"), Second: hexa.MustFromText("000000")},
	}
}

func (v values) text() textThing {
	return textThing{
		Foo:    astext.Hex{V: v.foo},
		Bar:    astext.Optional{V: v.bar},
		BarBar: astext.DoubleOptional{V: v.barbar},
		Buzz:   astext.List{V: v.buzz},
		Buz:    astext.Pair{V: v.buz},
	}
}

func (v values) num() numThing {
	return numThing{
		Foo:    asnum.Hex{V: v.foo},
		Bar:    asnum.Optional{V: v.bar},
		BarBar: asnum.DoubleOptional{V: v.barbar},
		Buzz:   asnum.List{V: v.buzz},
		Buz:    asnum.Pair{V: v.buz},
	}
}
