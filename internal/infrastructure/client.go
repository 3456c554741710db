package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"atlassian-cloud-mcp/internal/domain"
)

// searchFields is the fixed set of issue fields requested by JQL searches.
var searchFields = []string{
	"summary", "status", "assignee", "reporter",
	"created", "updated", "priority", "issuetype",
}

// Client performs authenticated calls against the Jira and Confluence Cloud
// REST APIs of a single Atlassian site. It implements domain.AtlassianAPI.
type Client struct {
	jiraBaseURL       string
	confluenceBaseURL string
	authHeader        string
	httpClient        *http.Client
}

// NewClient creates a Client for the site identified by the credentials.
// The two base URLs are derived from the organization domain and the Basic
// authentication header is precomputed from email:token. Construction fails
// if any credential field is missing.
func NewClient(creds *domain.Credentials) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		jiraBaseURL:       fmt.Sprintf("https://%s.atlassian.net/rest/api/3", creds.Domain),
		confluenceBaseURL: fmt.Sprintf("https://%s.atlassian.net/wiki/rest/api", creds.Domain),
		authHeader:        creds.BasicAuth(),
		httpClient:        http.DefaultClient,
	}, nil
}

// NewClientWithBaseURLs creates a Client with explicit backend URLs.
// This is primarily used for testing against local HTTP servers.
func NewClientWithBaseURLs(creds *domain.Credentials, jiraBaseURL, confluenceBaseURL string) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		jiraBaseURL:       jiraBaseURL,
		confluenceBaseURL: confluenceBaseURL,
		authHeader:        creds.BasicAuth(),
		httpClient:        http.DefaultClient,
	}, nil
}

// do executes a request with authentication and the common JSON headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}

// GetIssue retrieves a Jira issue by its key (e.g., "PROJ-123").
func (c *Client) GetIssue(issueKey string) (*domain.Issue, error) {
	endpoint := fmt.Sprintf("%s/issue/%s", c.jiraBaseURL, issueKey)

	resp, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var issue domain.Issue
		if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &issue, nil
	case http.StatusNotFound:
		return nil, &domain.NotFoundError{Resource: "Issue", Key: issueKey}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError(fmt.Sprintf("get issue %s", issueKey), resp)
	}
}

// SearchIssues runs a JQL search bounded to maxResults issues.
func (c *Client) SearchIssues(jql string, maxResults int) (*domain.SearchResults, error) {
	endpoint := fmt.Sprintf("%s/search", c.jiraBaseURL)

	payload, err := json.Marshal(map[string]interface{}{
		"jql":        jql,
		"maxResults": maxResults,
		"fields":     searchFields,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var results domain.SearchResults
		if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &results, nil
	case http.StatusBadRequest:
		return nil, &domain.InvalidQueryError{Language: "JQL", Detail: readBody(resp)}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError("search issues", resp)
	}
}

// GetProject retrieves a Jira project by its key.
func (c *Client) GetProject(projectKey string) (*domain.Project, error) {
	endpoint := fmt.Sprintf("%s/project/%s", c.jiraBaseURL, projectKey)

	resp, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var project domain.Project
		if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &project, nil
	case http.StatusNotFound:
		return nil, &domain.NotFoundError{Resource: "Project", Key: projectKey}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError(fmt.Sprintf("get project %s", projectKey), resp)
	}
}

// GetPage retrieves a Confluence page by ID with its body, version, space,
// and ancestors expanded.
func (c *Client) GetPage(pageID string) (*domain.Page, error) {
	params := url.Values{}
	params.Set("expand", "body.storage,version,space,ancestors")
	endpoint := fmt.Sprintf("%s/content/%s?%s", c.confluenceBaseURL, pageID, params.Encode())

	resp, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var page domain.Page
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &page, nil
	case http.StatusNotFound:
		return nil, &domain.NotFoundError{Resource: "Confluence page", Key: pageID}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError(fmt.Sprintf("get page %s", pageID), resp)
	}
}

// SearchPages runs a CQL search bounded to limit pages.
func (c *Client) SearchPages(cql string, limit int) (*domain.PageSearchResults, error) {
	params := url.Values{}
	params.Set("cql", cql)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("expand", "space,version")
	endpoint := fmt.Sprintf("%s/content/search?%s", c.confluenceBaseURL, params.Encode())

	resp, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var results domain.PageSearchResults
		if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &results, nil
	case http.StatusBadRequest:
		return nil, &domain.InvalidQueryError{Language: "CQL", Detail: readBody(resp)}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError("search pages", resp)
	}
}

// GetSpace retrieves a Confluence space by key with its description and
// homepage expanded.
func (c *Client) GetSpace(spaceKey string) (*domain.Space, error) {
	params := url.Values{}
	params.Set("expand", "description.plain,homepage")
	endpoint := fmt.Sprintf("%s/space/%s?%s", c.confluenceBaseURL, spaceKey, params.Encode())

	resp, err := c.get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var space domain.Space
		if err := json.NewDecoder(resp.Body).Decode(&space); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return &space, nil
	case http.StatusNotFound:
		return nil, &domain.NotFoundError{Resource: "Confluence space", Key: spaceKey}
	case http.StatusUnauthorized:
		return nil, &domain.AuthenticationError{}
	default:
		return nil, apiError(fmt.Sprintf("get space %s", spaceKey), resp)
	}
}

// get issues an authenticated GET request against the endpoint.
func (c *Client) get(endpoint string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	return resp, nil
}

func apiError(op string, resp *http.Response) error {
	return &domain.APIError{Op: op, Status: resp.StatusCode, Body: readBody(resp)}
}

func readBody(resp *http.Response) string {
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}
