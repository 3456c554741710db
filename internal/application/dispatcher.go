package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"atlassian-cloud-mcp/internal/domain"
)

// ClientFactory constructs the Atlassian API client on first use.
// It is called lazily so a misconfigured environment produces a per-call
// configuration envelope instead of a startup crash, and initialization is
// retried on the next call.
type ClientFactory func() (domain.AtlassianAPI, error)

// Dispatcher holds the static tool catalog and routes tool calls to the
// matching client operation and formatter. It owns the client, which stays
// nil until the first successful initialization and is reused afterwards.
type Dispatcher struct {
	newClient ClientFactory
	client    domain.AtlassianAPI
	logger    zerolog.Logger
}

// NewDispatcher creates a Dispatcher with the given client factory.
func NewDispatcher(factory ClientFactory, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		newClient: factory,
		logger:    logger,
	}
}

// ListTools returns the static tool catalog. It succeeds regardless of
// configuration state.
func (d *Dispatcher) ListTools() []domain.ToolDefinition {
	return toolCatalog()
}

// Invoke executes a tool call and always returns the uniform single-block
// envelope: failures differ from successes only in the text they carry. The
// transport layer never sees an unhandled fault.
func (d *Dispatcher) Invoke(ctx context.Context, req *domain.ToolRequest) *domain.ToolResponse {
	if d.client == nil {
		client, err := d.newClient()
		if err != nil {
			d.logger.Warn().Err(err).Msg("client initialization failed")
			return domain.TextResponse(fmt.Sprintf("Configuration error: %v", err))
		}
		d.client = client
		d.logger.Info().Msg("Atlassian client initialized")
	}

	args := req.Arguments
	if args == nil {
		args = make(map[string]interface{})
	}

	d.logger.Debug().Str("tool", req.Name).Msg("dispatching tool call")

	switch req.Name {
	case ToolGetJiraIssue:
		return d.getJiraIssue(args)
	case ToolSearchJiraIssues:
		return d.searchJiraIssues(args)
	case ToolGetJiraProject:
		return d.getJiraProject(args)
	case ToolGetConfluencePage:
		return d.getConfluencePage(args)
	case ToolSearchConfluencePages:
		return d.searchConfluencePages(args)
	case ToolGetConfluenceSpace:
		return d.getConfluenceSpace(args)
	default:
		return domain.TextResponse(fmt.Sprintf("Error: Unknown tool '%s'", req.Name))
	}
}

func (d *Dispatcher) getJiraIssue(args map[string]interface{}) *domain.ToolResponse {
	issueKey, ok := stringArg(args, "issue_key")
	if !ok {
		return domain.TextResponse("Error: issue_key is required")
	}

	issue, err := d.client.GetIssue(issueKey)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatIssue(issue))
}

func (d *Dispatcher) searchJiraIssues(args map[string]interface{}) *domain.ToolResponse {
	jql, ok := stringArg(args, "jql")
	if !ok {
		return domain.TextResponse("Error: jql query is required")
	}
	maxResults := intArg(args, "max_results", DefaultIssueSearchLimit)

	results, err := d.client.SearchIssues(jql, maxResults)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatIssueSearchResults(results))
}

func (d *Dispatcher) getJiraProject(args map[string]interface{}) *domain.ToolResponse {
	projectKey, ok := stringArg(args, "project_key")
	if !ok {
		return domain.TextResponse("Error: project_key is required")
	}

	project, err := d.client.GetProject(projectKey)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatProject(project))
}

func (d *Dispatcher) getConfluencePage(args map[string]interface{}) *domain.ToolResponse {
	pageID, ok := stringArg(args, "page_id")
	if !ok {
		return domain.TextResponse("Error: page_id is required")
	}

	page, err := d.client.GetPage(pageID)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatPage(page))
}

func (d *Dispatcher) searchConfluencePages(args map[string]interface{}) *domain.ToolResponse {
	query, ok := stringArg(args, "query")
	if !ok {
		return domain.TextResponse("Error: query is required")
	}
	limit := intArg(args, "max_results", DefaultPageSearchLimit)

	results, err := d.client.SearchPages(query, limit)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatPageSearchResults(results))
}

func (d *Dispatcher) getConfluenceSpace(args map[string]interface{}) *domain.ToolResponse {
	spaceKey, ok := stringArg(args, "space_key")
	if !ok {
		return domain.TextResponse("Error: space_key is required")
	}

	space, err := d.client.GetSpace(spaceKey)
	if err != nil {
		return d.errorResponse(err)
	}
	return domain.TextResponse(domain.FormatSpace(space))
}

// errorResponse wraps a client failure in the uniform envelope, exposing
// only the failure's message text.
func (d *Dispatcher) errorResponse(err error) *domain.ToolResponse {
	d.logger.Warn().Err(err).Msg("tool call failed")
	return domain.TextResponse(fmt.Sprintf("Error: %v", err))
}
