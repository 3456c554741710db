package application

import "atlassian-cloud-mcp/internal/domain"

// Tool name constants for the six operations.
const (
	ToolGetJiraIssue          = "get_jira_issue"
	ToolSearchJiraIssues      = "search_jira_issues"
	ToolGetJiraProject        = "get_jira_project"
	ToolGetConfluencePage     = "get_confluence_page"
	ToolSearchConfluencePages = "search_confluence_pages"
	ToolGetConfluenceSpace    = "get_confluence_space"
)

// Default result bounds applied when the caller omits max_results or
// supplies a non-positive value.
const (
	DefaultIssueSearchLimit = 50
	DefaultPageSearchLimit  = 25
)

// toolCatalog returns the static, ordered catalog of tool descriptors.
// The catalog is fixed at startup and never mutated.
func toolCatalog() []domain.ToolDefinition {
	return []domain.ToolDefinition{
		{
			Name:        ToolGetJiraIssue,
			Description: "Get detailed information about a specific Jira issue by its key (e.g., PEX-2288)",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"issue_key": map[string]interface{}{
						"type":        "string",
						"description": "The Jira issue key (e.g., PEX-2288, PROJ-123)",
					},
				},
				Required: []string{"issue_key"},
			},
		},
		{
			Name:        ToolSearchJiraIssues,
			Description: "Search for Jira issues using JQL (Jira Query Language)",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"jql": map[string]interface{}{
						"type":        "string",
						"description": "JQL query string (e.g., 'project = PEX AND status = \"In Progress\"')",
					},
					"max_results": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of results to return (default: 50)",
						"default":     DefaultIssueSearchLimit,
					},
				},
				Required: []string{"jql"},
			},
		},
		{
			Name:        ToolGetJiraProject,
			Description: "Get information about a Jira project",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"project_key": map[string]interface{}{
						"type":        "string",
						"description": "The project key (e.g., PEX, PROJ)",
					},
				},
				Required: []string{"project_key"},
			},
		},
		{
			Name:        ToolGetConfluencePage,
			Description: "Get detailed information and content from a specific Confluence page by its ID",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"page_id": map[string]interface{}{
						"type":        "string",
						"description": "The Confluence page ID (e.g., '123456789')",
					},
				},
				Required: []string{"page_id"},
			},
		},
		{
			Name:        ToolSearchConfluencePages,
			Description: "Search for Confluence pages using CQL (Confluence Query Language)",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "CQL query string (e.g., 'space = DEV AND title ~ \"documentation\"')",
					},
					"max_results": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of results to return (default: 25)",
						"default":     DefaultPageSearchLimit,
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        ToolGetConfluenceSpace,
			Description: "Get information about a Confluence space",
			InputSchema: domain.JSONSchema{
				Type: "object",
				Properties: map[string]interface{}{
					"space_key": map[string]interface{}{
						"type":        "string",
						"description": "The Confluence space key (e.g., DEV, PROJ)",
					},
				},
				Required: []string{"space_key"},
			},
		},
	}
}
