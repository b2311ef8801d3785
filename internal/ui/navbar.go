package ui

// NavbarItem represents a link of the header navigation menu
type NavbarItem struct {
	Label string
	URL   string
}

var (
	NavbarItemHome   = NavbarItem{Label: "Home", URL: "/"}
	NavbarItemCamera = NavbarItem{Label: "Camera", URL: "/camera"}
	NavbarItemDoc    = NavbarItem{Label: "Doc", URL: "/doc"}
)

// HeaderNavbarItems returns the header menu, in display order.
func HeaderNavbarItems() []NavbarItem {
	return []NavbarItem{
		NavbarItemHome,
		NavbarItemCamera,
		NavbarItemDoc,
	}
}
