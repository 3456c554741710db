package domain

// AtlassianAPI defines the six read-only operations this server exposes
// against Jira and Confluence Cloud. The infrastructure package provides the
// HTTP implementation; tests substitute fakes.
type AtlassianAPI interface {
	// GetIssue retrieves a Jira issue by its key (e.g., "PROJ-123").
	GetIssue(issueKey string) (*Issue, error)

	// SearchIssues runs a JQL search bounded to maxResults issues.
	SearchIssues(jql string, maxResults int) (*SearchResults, error)

	// GetProject retrieves a Jira project by its key.
	GetProject(projectKey string) (*Project, error)

	// GetPage retrieves a Confluence page by ID, expanded with its body,
	// version, space, and ancestors.
	GetPage(pageID string) (*Page, error)

	// SearchPages runs a CQL search bounded to limit pages.
	SearchPages(cql string, limit int) (*PageSearchResults, error)

	// GetSpace retrieves a Confluence space by key, expanded with its
	// description and homepage.
	GetSpace(spaceKey string) (*Space, error)
}
