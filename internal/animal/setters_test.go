package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMale_ClearingResetsMane(t *testing.T) {
	l := NewLion("Leo", 5, true, 10)
	l.SetMale(false)
	assert.False(t, l.Lion.Male)
	assert.Zero(t, l.Lion.ManeLength)
	assert.Equal(t, "Female lion (huntress)", l.SpecialCharacteristic())
}

func TestSetManeLength_OnlyForMales(t *testing.T) {
	l := Classify("Lion", "Leo", 5)
	l.SetManeLength(8)
	assert.Zero(t, l.Lion.ManeLength)

	l.SetMale(true)
	l.SetManeLength(8)
	assert.Equal(t, float32(8), l.Lion.ManeLength)
	assert.Equal(t, "Male lion with 8.000000 inch mane", l.SpecialCharacteristic())
}

func TestVariantSetters(t *testing.T) {
	h := Classify("Hyena", "Spot", 3)
	h.SetLaughing(false)
	assert.Equal(t, "Not currently laughing", h.SpecialCharacteristic())

	tg := Classify("Tiger", "Rajah", 6)
	tg.SetStripeCount(120)
	assert.Equal(t, "Has approximately 120 stripes", tg.SpecialCharacteristic())

	b := Classify("Bear", "Baloo", 10)
	b.SetBearType("Black")
	b.SetHibernating(true)
	assert.Equal(t, "Black bear (hibernating)", b.SpecialCharacteristic())
	assert.Equal(t, "Zzzzz...", b.Sound())
}

func TestVariantSetters_IgnoreOtherKinds(t *testing.T) {
	g := Classify("Zebra", "Zelda", 2)
	g.SetLaughing(true)
	g.SetMale(true)
	g.SetManeLength(3)
	g.SetStripeCount(7)
	g.SetBearType("Polar")
	g.SetHibernating(true)

	assert.Equal(t, NewGeneric("Zelda", 2, "Zebra"), g)
	assert.Equal(t, NoCharacteristic, g.SpecialCharacteristic())
}

func TestCommonSetters(t *testing.T) {
	a := Classify("Tiger", "Rajah", 6)
	a.SetName("Shere Khan")
	a.SetAge(7)
	a.SetSpecies("Bengal Tiger")

	assert.Equal(t, "Shere Khan", a.Name)
	assert.Equal(t, 7, a.Age)
	assert.Equal(t, "Bengal Tiger", a.Species)
	assert.Equal(t, Tiger, a.Kind)
}
