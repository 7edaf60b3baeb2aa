package cost_of_living

// LineItem is a single category-tagged cost-of-living entry. Items are
// grouped and summed by Category when the wizard is prefilled.
type LineItem struct {
	Id       string
	Category string
	Name     string
	Value    float64
}
