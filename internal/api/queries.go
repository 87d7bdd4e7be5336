package api

import (
	"fmt"

	graphql "github.com/cli/shurcooL-graphql"
)

// GitObjectID is the GraphQL scalar for a commit SHA. The type name is
// significant: shurcooL-graphql derives the variable declaration from it.
type GitObjectID string

// PullRequest is the slice of pull-request data autobump cares about
type PullRequest struct {
	Number int
	Merged bool
	Body   string
}

// MergedPullRequestBody resolves a commit SHA to the description of the
// single merged pull request that introduced it. The lookup fails with
// ErrAmbiguousPullRequest unless exactly one associated pull request
// exists and it is merged, and with ErrEmptyDescription when the body is
// blank. Both are fatal to a bump run.
func (c *Client) MergedPullRequestBody(owner, repo, sha string) (string, error) {
	pr, err := c.associatedPullRequest(owner, repo, sha)
	if err != nil {
		return "", err
	}
	if pr.Body == "" {
		return "", &APIError{
			Operation: "resolve description for",
			Resource:  fmt.Sprintf("%s/%s@%s", owner, repo, shortSHA(sha)),
			Err:       ErrEmptyDescription,
		}
	}
	return pr.Body, nil
}

// associatedPullRequest returns the one merged pull request for a commit.
func (c *Client) associatedPullRequest(owner, repo, sha string) (*PullRequest, error) {
	if c.gql == nil {
		return nil, ErrNotAuthenticated
	}

	var query struct {
		Repository struct {
			Object struct {
				Commit struct {
					AssociatedPullRequests struct {
						TotalCount int
						Nodes      []struct {
							Number int
							Merged bool
							Body   string
						}
					} `graphql:"associatedPullRequests(first: 2)"`
				} `graphql:"... on Commit"`
			} `graphql:"object(oid: $oid)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"name":  graphql.String(repo),
		"oid":   GitObjectID(sha),
	}

	err := c.gql.Query("AssociatedPullRequests", &query, variables)
	if err != nil {
		return nil, WrapError("resolve pull request for", fmt.Sprintf("%s/%s@%s", owner, repo, shortSHA(sha)), err)
	}

	prs := query.Repository.Object.Commit.AssociatedPullRequests
	if prs.TotalCount != 1 || len(prs.Nodes) != 1 || !prs.Nodes[0].Merged {
		return nil, &APIError{
			Operation: "resolve pull request for",
			Resource:  fmt.Sprintf("%s/%s@%s", owner, repo, shortSHA(sha)),
			Err:       ErrAmbiguousPullRequest,
		}
	}

	node := prs.Nodes[0]
	return &PullRequest{
		Number: node.Number,
		Merged: node.Merged,
		Body:   node.Body,
	}, nil
}

// ListTags returns every tag name in the repository, following
// pagination. Order is whatever the API returns; callers sort.
func (c *Client) ListTags(owner, repo string) ([]string, error) {
	if c.gql == nil {
		return nil, ErrNotAuthenticated
	}

	var tags []string
	var cursor *graphql.String

	for {
		var query struct {
			Repository struct {
				Refs struct {
					Nodes []struct {
						Name string
					}
					PageInfo struct {
						HasNextPage bool
						EndCursor   string
					}
				} `graphql:"refs(refPrefix: \"refs/tags/\", first: 100, after: $cursor)"`
			} `graphql:"repository(owner: $owner, name: $name)"`
		}

		variables := map[string]interface{}{
			"owner":  graphql.String(owner),
			"name":   graphql.String(repo),
			"cursor": cursor,
		}

		err := c.gql.Query("ListTags", &query, variables)
		if err != nil {
			return nil, WrapError("list tags for", fmt.Sprintf("%s/%s", owner, repo), err)
		}

		for _, node := range query.Repository.Refs.Nodes {
			tags = append(tags, node.Name)
		}

		if !query.Repository.Refs.PageInfo.HasNextPage {
			return tags, nil
		}
		next := graphql.String(query.Repository.Refs.PageInfo.EndCursor)
		cursor = &next
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
