// Package api talks to GitHub on behalf of autobump: resolving a merge
// commit to its pull-request description and listing release tags.
package api

import (
	"github.com/cli/go-gh/v2/pkg/api"
)

// GraphQLClient interface allows mocking the GitHub GraphQL client for testing
type GraphQLClient interface {
	Query(name string, query interface{}, variables map[string]interface{}) error
}

// Client wraps the GitHub GraphQL API client with the lookups autobump needs
type Client struct {
	gql  GraphQLClient
	opts ClientOptions
}

// ClientOptions configures the API client
type ClientOptions struct {
	// Host is the GitHub hostname (default: github.com)
	Host string
}

// NewClient creates a new API client with default options
func NewClient() *Client {
	return NewClientWithOptions(ClientOptions{})
}

// NewClientWithOptions creates a new API client with custom options.
// Authentication comes from go-gh, which honors both gh login state and
// the GITHUB_TOKEN environment variable used on Actions runners.
func NewClientWithOptions(opts ClientOptions) *Client {
	apiOpts := api.ClientOptions{}
	if opts.Host != "" {
		apiOpts.Host = opts.Host
	}

	gql, err := api.NewGraphQLClient(apiOpts)
	if err != nil {
		// If we can't create a client (e.g., not authenticated),
		// return a client with nil gql - methods will return errors
		return &Client{opts: opts}
	}

	return &Client{
		gql:  gql,
		opts: opts,
	}
}

// NewClientWithGraphQL creates a Client with a custom GraphQL client (for testing)
func NewClientWithGraphQL(gql GraphQLClient) *Client {
	return &Client{gql: gql}
}
