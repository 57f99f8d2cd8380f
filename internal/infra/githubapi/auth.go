package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"golang.org/x/oauth2"

	"github.com/scalar-labs/relnote/internal/domain"
)

// fallbackTokenEnv is consulted when the configured variable is empty.
const fallbackTokenEnv = "GH_TOKEN"

// TokenFromEnv returns the token held by envName, falling back to GH_TOKEN.
func TokenFromEnv(envName string) string {
	if envName != "" {
		if token := os.Getenv(envName); token != "" {
			return token
		}
	}
	return os.Getenv(fallbackTokenEnv)
}

// newHTTPClient returns an authenticated HTTP client. GitHub App
// credentials take precedence over a token.
func newHTTPClient(ctx context.Context, cfg domain.GitHubConfig, token string) (*http.Client, error) {
	if cfg.UsesApp() {
		itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, cfg.AppID, cfg.InstallationID, cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("create GitHub App transport: %w", err)
		}
		if cfg.BaseURL != "" {
			itr.BaseURL = restBaseURL(cfg.BaseURL)
		}
		return &http.Client{Transport: itr}, nil
	}

	if token == "" {
		return nil, domain.ErrMissingCredentials
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts), nil
}

// restBaseURL returns the REST API root of a GitHub Enterprise host,
// without a trailing slash.
func restBaseURL(baseURL string) string {
	return enterpriseRoot(baseURL) + "/api/v3"
}

// graphQLURL returns the GraphQL endpoint of a GitHub Enterprise host.
func graphQLURL(baseURL string) string {
	return enterpriseRoot(baseURL) + "/api/graphql"
}

func enterpriseRoot(baseURL string) string {
	root := strings.TrimSuffix(baseURL, "/")
	root = strings.TrimSuffix(root, "/api/v3")
	return strings.TrimSuffix(root, "/api/graphql")
}
