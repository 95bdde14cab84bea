package oauth

import (
	"context"

	"github.com/cmlabs-hris/hris-salary-go/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// NewServiceTokenSource returns the token source used for HR backend calls made
// without a user in the loop, such as the snapshot refresh job.
// Client credentials take precedence over a static token; nil means no service identity.
func NewServiceTokenSource(ctx context.Context, cfg config.HRAPIConfig) oauth2.TokenSource {
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		return oauth2.ReuseTokenSource(nil, cc.TokenSource(ctx))
	}

	if cfg.Token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		})
	}

	return nil
}
