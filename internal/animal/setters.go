package animal

// Setters mirror the attributes a keeper may update after intake. The
// report pipeline never calls them. Variant setters do nothing when the
// animal is of another kind.

func (a *Animal) SetName(name string)       { a.Name = name }
func (a *Animal) SetAge(age int)            { a.Age = age }
func (a *Animal) SetSpecies(species string) { a.Species = species }

func (a *Animal) SetLaughing(laughing bool) {
	if a.Kind == Hyena {
		a.Hyena.Laughing = laughing
	}
}

// SetMale changes the lion's sex. Clearing it also clears the mane.
func (a *Animal) SetMale(male bool) {
	if a.Kind != Lion {
		return
	}
	a.Lion.Male = male
	if !male {
		a.Lion.ManeLength = 0
	}
}

// SetManeLength only applies to male lions.
func (a *Animal) SetManeLength(inches float32) {
	if a.Kind == Lion && a.Lion.Male {
		a.Lion.ManeLength = inches
	}
}

func (a *Animal) SetStripeCount(n int) {
	if a.Kind == Tiger {
		a.Tiger.StripeCount = n
	}
}

func (a *Animal) SetBearType(bearType string) {
	if a.Kind == Bear {
		a.Bear.Type = bearType
	}
}

func (a *Animal) SetHibernating(hibernating bool) {
	if a.Kind == Bear {
		a.Bear.Hibernating = hibernating
	}
}
