package animal

import "fmt"

// Kind tags which variant an Animal is.
type Kind int

const (
	Generic Kind = iota
	Hyena
	Lion
	Tiger
	Bear
)

func (k Kind) String() string {
	switch k {
	case Hyena:
		return "Hyena"
	case Lion:
		return "Lion"
	case Tiger:
		return "Tiger"
	case Bear:
		return "Bear"
	default:
		return "Generic"
	}
}

// NoCharacteristic is what a Generic animal reports as its characteristic.
// Reports omit it rather than print it.
const NoCharacteristic = "No special characteristic"

// DefaultStripeCount and DefaultBearType are the attributes every
// classified tiger and bear starts with.
const (
	DefaultStripeCount = 100
	DefaultBearType    = "Grizzly"
)

type HyenaTraits struct {
	Laughing bool
}

type LionTraits struct {
	Male       bool
	ManeLength float32 // inches, always 0 for females
}

type TigerTraits struct {
	StripeCount int
}

type BearTraits struct {
	Type        string // e.g. "Grizzly", "Polar", "Black"
	Hibernating bool
}

// Animal is a classified arrival. Only the traits matching Kind are
// meaningful; the others stay zero.
type Animal struct {
	Name    string
	Age     int
	Species string
	Kind    Kind

	Hyena HyenaTraits
	Lion  LionTraits
	Tiger TigerTraits
	Bear  BearTraits
}

// Classify maps a species name onto its variant with default attributes.
// Matching is exact and case-sensitive; anything unknown becomes Generic
// and keeps the species string as given.
func Classify(species, name string, age int) Animal {
	switch species {
	case "Hyena":
		return NewHyena(name, age, true)
	case "Lion":
		return NewLion(name, age, false, 0)
	case "Tiger":
		return NewTiger(name, age, DefaultStripeCount)
	case "Bear":
		return NewBear(name, age, DefaultBearType, false)
	default:
		return NewGeneric(name, age, species)
	}
}

func NewGeneric(name string, age int, species string) Animal {
	return Animal{Name: name, Age: age, Species: species, Kind: Generic}
}

func NewHyena(name string, age int, laughing bool) Animal {
	return Animal{
		Name: name, Age: age, Species: "Hyena", Kind: Hyena,
		Hyena: HyenaTraits{Laughing: laughing},
	}
}

// NewLion builds a lion. A mane length given for a female is dropped.
func NewLion(name string, age int, male bool, maneLength float32) Animal {
	if !male {
		maneLength = 0
	}
	return Animal{
		Name: name, Age: age, Species: "Lion", Kind: Lion,
		Lion: LionTraits{Male: male, ManeLength: maneLength},
	}
}

func NewTiger(name string, age int, stripeCount int) Animal {
	return Animal{
		Name: name, Age: age, Species: "Tiger", Kind: Tiger,
		Tiger: TigerTraits{StripeCount: stripeCount},
	}
}

func NewBear(name string, age int, bearType string, hibernating bool) Animal {
	return Animal{
		Name: name, Age: age, Species: "Bear", Kind: Bear,
		Bear: BearTraits{Type: bearType, Hibernating: hibernating},
	}
}

// Sound returns the noise the animal makes.
func (a Animal) Sound() string {
	switch a.Kind {
	case Hyena:
		return "Hee-hee-hee!"
	case Lion:
		return "ROAR!"
	case Tiger:
		return "Growl!"
	case Bear:
		if a.Bear.Hibernating {
			return "Zzzzz..."
		}
		return "GROWL!"
	default:
		return "Generic animal sound"
	}
}

// SpecialCharacteristic describes the animal from its variant attributes.
func (a Animal) SpecialCharacteristic() string {
	switch a.Kind {
	case Hyena:
		if a.Hyena.Laughing {
			return "Laughing hyena"
		}
		return "Not currently laughing"
	case Lion:
		if a.Lion.Male {
			return fmt.Sprintf("Male lion with %f inch mane", a.Lion.ManeLength)
		}
		return "Female lion (huntress)"
	case Tiger:
		return fmt.Sprintf("Has approximately %d stripes", a.Tiger.StripeCount)
	case Bear:
		if a.Bear.Hibernating {
			return a.Bear.Type + " bear (hibernating)"
		}
		return a.Bear.Type + " bear"
	default:
		return NoCharacteristic
	}
}

// HasCharacteristic reports whether SpecialCharacteristic is worth printing.
func (a Animal) HasCharacteristic() bool {
	return a.SpecialCharacteristic() != NoCharacteristic
}
