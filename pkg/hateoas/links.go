package hateoas

import (
	"fmt"
	"strings"
)

// Link is one hypermedia entry embedded in a resource or collection response.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
	Title  string `json:"title,omitempty"`
	Type   string `json:"type,omitempty"`
}

const contentTypeJSON = "application/json"

// ResourceLinks builds the self/update/delete triple for a single resource,
// plus related-resource links for types that have them. resourcePath is the
// collection path relative to the base URL, e.g. "yards" or
// "yards/abc/vehicles". The base URL comes from the caller; this package
// never inspects ambient request state.
func ResourceLinks(baseURL, resourcePath, id string) []Link {
	href := fmt.Sprintf("%s/%s/%s", baseURL, resourcePath, id)
	name := resourceName(resourcePath)

	links := []Link{
		{Href: href, Rel: "self", Method: "GET", Title: "Get " + name + " Details", Type: contentTypeJSON},
		{Href: href, Rel: "update", Method: "PATCH", Title: "Update " + name, Type: contentTypeJSON},
		{Href: href, Rel: "delete", Method: "DELETE", Title: "Delete " + name, Type: contentTypeJSON},
	}

	switch resourcePath {
	case "yards":
		links = append(links,
			Link{Href: fmt.Sprintf("%s/yards/%s/employees", baseURL, id), Rel: "employees", Method: "GET", Title: "List Yard Employees", Type: contentTypeJSON},
			Link{Href: fmt.Sprintf("%s/yards/%s/vehicles", baseURL, id), Rel: "vehicles", Method: "GET", Title: "List Yard Vehicles", Type: contentTypeJSON},
		)
	case "vehicles":
		links = append(links,
			Link{Href: fmt.Sprintf("%s/vehicles?qrCodeId=%s", baseURL, id), Rel: "qr-code", Method: "GET", Title: "Get Vehicle by QR Code", Type: contentTypeJSON},
		)
	}
	return links
}

// CollectionLinks builds self/create plus prev/next/first/last pagination
// links, the latter only where the page position makes them meaningful.
func CollectionLinks(baseURL, resourcePath string, pageNumber, pageSize, totalPages int) []Link {
	name := collectionName(resourcePath)
	pageHref := func(n int) string {
		return fmt.Sprintf("%s/%s?pageNumber=%d&pageSize=%d", baseURL, resourcePath, n, pageSize)
	}

	links := []Link{
		{Href: pageHref(pageNumber), Rel: "self", Method: "GET", Title: "List " + name, Type: contentTypeJSON},
		{Href: fmt.Sprintf("%s/%s", baseURL, resourcePath), Rel: "create", Method: "POST", Title: "Create New " + name, Type: contentTypeJSON},
	}
	if pageNumber > 1 {
		links = append(links,
			Link{Href: pageHref(pageNumber - 1), Rel: "prev", Method: "GET", Title: "Previous Page", Type: contentTypeJSON},
			Link{Href: pageHref(1), Rel: "first", Method: "GET", Title: "First Page", Type: contentTypeJSON},
		)
	}
	if pageNumber < totalPages {
		links = append(links,
			Link{Href: pageHref(pageNumber + 1), Rel: "next", Method: "GET", Title: "Next Page", Type: contentTypeJSON},
			Link{Href: pageHref(totalPages), Rel: "last", Method: "GET", Title: "Last Page", Type: contentTypeJSON},
		)
	}
	return links
}

// resourceName derives a singular title from the last path segment:
// "yards/abc/vehicles" -> "Vehicle".
func resourceName(resourcePath string) string {
	return titleCase(strings.TrimSuffix(lastSegment(resourcePath), "s"))
}

func collectionName(resourcePath string) string {
	return titleCase(lastSegment(resourcePath))
}

func lastSegment(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
