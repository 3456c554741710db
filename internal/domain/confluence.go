package domain

// Page represents a Confluence page with the fields this server reads.
type Page struct {
	ID      FlexibleID `json:"id"`
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Space   *Space     `json:"space"`
	Body    *Body      `json:"body"`
	Version *Version   `json:"version"`
	Links   *Links     `json:"_links"`
}

// Space represents a Confluence space.
type Space struct {
	ID          FlexibleID        `json:"id"`
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Description *SpaceDescription `json:"description"`
	Homepage    *Page             `json:"homepage"`
	Links       *Links            `json:"_links"`
}

// SpaceDescription holds the expanded plain-text description of a space.
type SpaceDescription struct {
	Plain *PlainValue `json:"plain"`
}

// PlainValue is the plain-text representation of a description.
type PlainValue struct {
	Value string `json:"value"`
}

// Body represents the body content of a Confluence page.
type Body struct {
	Storage *Storage `json:"storage"`
}

// Storage represents the storage format of page content.
// Value is Confluence's XHTML-like markup embedded inside the JSON envelope.
type Storage struct {
	Value          string `json:"value"`
	Representation string `json:"representation"`
}

// Version represents the version information of a Confluence page.
type Version struct {
	Number int    `json:"number"`
	When   string `json:"when"`
	By     *User  `json:"by"`
}

// Links carries the hypermedia links Confluence attaches to entities.
type Links struct {
	Base  string `json:"base"`
	WebUI string `json:"webui"`
	Self  string `json:"self"`
}

// PageSearchResults represents the results of a CQL search.
type PageSearchResults struct {
	Results []Page `json:"results"`
	Start   int    `json:"start"`
	Limit   int    `json:"limit"`
	Size    int    `json:"size"`
}
