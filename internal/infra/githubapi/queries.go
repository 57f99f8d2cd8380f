package githubapi

import "github.com/shurcooL/githubv4"

// GraphQL query structures for GitHub API v4.

type projectNode struct {
	Title  githubv4.String
	Number githubv4.Int
}

type projectsConnection struct {
	Nodes []projectNode
}

type orgProjectsQuery struct {
	Organization struct {
		ProjectsV2 projectsConnection `graphql:"projectsV2(first: 100, query: $query)"`
	} `graphql:"organization(login: $login)"`
}

type userProjectsQuery struct {
	User struct {
		ProjectsV2 projectsConnection `graphql:"projectsV2(first: 100, query: $query)"`
	} `graphql:"user(login: $login)"`
}

type itemsConnection struct {
	Nodes []struct {
		Content struct {
			PullRequest struct {
				Repository struct {
					NameWithOwner githubv4.String
				}
				Number githubv4.Int
			} `graphql:"... on PullRequest"`
		}
	}
	PageInfo struct {
		EndCursor   githubv4.String
		HasNextPage githubv4.Boolean
	}
}

type projectItems struct {
	Items itemsConnection `graphql:"items(first: $first, after: $cursor)"`
}

type orgItemsQuery struct {
	Organization struct {
		ProjectV2 projectItems `graphql:"projectV2(number: $number)"`
	} `graphql:"organization(login: $login)"`
}

type userItemsQuery struct {
	User struct {
		ProjectV2 projectItems `graphql:"projectV2(number: $number)"`
	} `graphql:"user(login: $login)"`
}
