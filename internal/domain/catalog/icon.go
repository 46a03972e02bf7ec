// internal/domain/catalog/icon.go
package catalog

// Icon is a closed set of category icon variants. The stored icon name is
// normalized through ParseIcon so clients only ever see a known variant;
// unknown names fall back to IconPackage.
type Icon string

const (
	IconSmartphone Icon = "Smartphone"
	IconLaptop     Icon = "Laptop"
	IconShirt      Icon = "Shirt"
	IconSofa       Icon = "Sofa"
	IconDumbbell   Icon = "Dumbbell"
	IconSparkles   Icon = "Sparkles"
	IconBook       Icon = "Book"
	IconToyBrick   Icon = "ToyBrick"
	IconUtensils   Icon = "Utensils"
	IconPackage    Icon = "Package" // Fallback variant
)

var icons = map[Icon]struct{}{
	IconSmartphone: {},
	IconLaptop:     {},
	IconShirt:      {},
	IconSofa:       {},
	IconDumbbell:   {},
	IconSparkles:   {},
	IconBook:       {},
	IconToyBrick:   {},
	IconUtensils:   {},
	IconPackage:    {},
}

// Valid reports whether the icon is a known variant.
func (i Icon) Valid() bool {
	_, ok := icons[i]
	return ok
}

func (i Icon) String() string {
	return string(i)
}

// ParseIcon maps an icon name to its variant, falling back to IconPackage
// for anything outside the known set.
func ParseIcon(name string) Icon {
	if icon := Icon(name); icon.Valid() {
		return icon
	}
	return IconPackage
}
