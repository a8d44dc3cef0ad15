package web

// PageProps configures the calculator page
type PageProps struct {
	Title             string
	Token             string
	DisableAnimations bool
}

// animations is the page's data-animations value
func (p PageProps) animations() string {
	if p.DisableAnimations {
		return "off"
	}
	return "on"
}
