package site

import "github.com/loamtools/loam/config"

// FallbackLabel is rendered for navigation entries with no usable label.
const FallbackLabel = "(untitled)"

// Route is one entry of the sidebar navigation: a label, a symbolic
// icon name, and the slug of the post it selects. Routes are ordered;
// order is display-significant.
type Route struct {
	Label string
	Icon  string
	Slug  string
}

// DisplayLabel returns the route label, substituting the defined
// fallback for a missing label. A malformed entry must never crash the
// navigation region.
func (r Route) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	if r.Slug != "" {
		return r.Slug
	}
	return FallbackLabel
}

// BuildRoutes produces the ordered route list for the sidebar. When the
// configuration declares nav entries those are used verbatim, in
// declaration order; otherwise one route per discovered post is
// derived, in post order.
func BuildRoutes(nav []config.NavEntryConfig, posts []Post) []Route {
	if len(nav) > 0 {
		routes := make([]Route, 0, len(nav))
		for _, entry := range nav {
			routes = append(routes, Route{
				Label: entry.Label,
				Icon:  entry.Icon,
				Slug:  entry.Slug,
			})
		}
		return routes
	}

	routes := make([]Route, 0, len(posts))
	for _, p := range posts {
		icon := p.Meta.Icon
		if icon == "" {
			icon = "post"
		}
		routes = append(routes, Route{
			Label: p.DisplayTitle(),
			Icon:  icon,
			Slug:  p.Slug,
		})
	}
	return routes
}

// FindPost returns the post matching a slug, or false when no post matches.
func FindPost(posts []Post, slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
