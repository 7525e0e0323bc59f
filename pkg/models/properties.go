package models

// Property is a single name/value annotation on a component.
type Property struct {
	Name  string
	Value string
}

// Properties is an ordered list of annotations. Unlike a map, the same name
// may appear several times and every occurrence is meaningful.
type Properties []Property

// Add appends a property and returns the extended list.
func (ps Properties) Add(name, value string) Properties {
	return append(ps, Property{Name: name, Value: value})
}

// Values returns the values of every property with the given name, in order.
func (ps Properties) Values(name string) []string {
	var values []string

	for _, p := range ps {
		if p.Name == name {
			values = append(values, p.Value)
		}
	}

	return values
}

// Contains reports whether at least one property has the given name.
func (ps Properties) Contains(name string) bool {
	for _, p := range ps {
		if p.Name == name {
			return true
		}
	}

	return false
}

// Has reports whether the exact name/value pair is present.
func (ps Properties) Has(name, value string) bool {
	for _, p := range ps {
		if p.Name == name && p.Value == value {
			return true
		}
	}

	return false
}
