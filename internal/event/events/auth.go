package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Authorization event types.
const (
	// TypeAuthOAuth2Authorize performs an OAuth 2 authorization.
	TypeAuthOAuth2Authorize event.Type = "oauth2authorize"

	// TypeAuthOIDCAuthorize performs an OpenID Connect authorization.
	TypeAuthOIDCAuthorize event.Type = "oidcauthorize"

	// TypeAuthOAuth2RemoveToken removes a cached OAuth 2 token.
	TypeAuthOAuth2RemoveToken event.Type = "oauth2removetoken"

	// TypeAuthOIDCRemoveTokens removes cached OpenID Connect tokens.
	TypeAuthOIDCRemoveTokens event.Type = "oidcremovetokens"

	// TypeAuthOAuth1Authorize performs an OAuth 1 authorization.
	TypeAuthOAuth1Authorize event.Type = "oauth1authorize"
)

// AuthOAuth2AuthorizeDetail is the detail of Auth.oauth2Authorize.
type AuthOAuth2AuthorizeDetail struct {
	// Config describes the authorization.
	Config OAuth2Authorization `json:"config"`
}

// NewAuthOAuth2AuthorizeEvent creates the Auth.oauth2Authorize request.
func NewAuthOAuth2AuthorizeEvent(config OAuth2Authorization, opts ...event.Option) *event.Request[AuthOAuth2AuthorizeDetail, *TokenInfo] {
	return event.NewRequest[AuthOAuth2AuthorizeDetail, *TokenInfo](TypeAuthOAuth2Authorize, AuthOAuth2AuthorizeDetail{Config: config}, opts...)
}

// AuthOAuth2Authorize runs the OAuth 2 authorization described by config.
func AuthOAuth2Authorize(ctx context.Context, d event.Dispatcher, config OAuth2Authorization) (*TokenInfo, error) {
	return event.Call(ctx, d, NewAuthOAuth2AuthorizeEvent(config))
}

// AuthOIDCAuthorizeDetail is the detail of Auth.oidcAuthorize.
type AuthOIDCAuthorizeDetail struct {
	// Config describes the authorization.
	Config OAuth2Authorization `json:"config"`
}

// NewAuthOIDCAuthorizeEvent creates the Auth.oidcAuthorize request.
func NewAuthOIDCAuthorizeEvent(config OAuth2Authorization, opts ...event.Option) *event.Request[AuthOIDCAuthorizeDetail, []OidcTokenInfo] {
	return event.NewRequest[AuthOIDCAuthorizeDetail, []OidcTokenInfo](TypeAuthOIDCAuthorize, AuthOIDCAuthorizeDetail{Config: config}, opts...)
}

// AuthOIDCAuthorize runs the OpenID Connect authorization described by
// config.
func AuthOIDCAuthorize(ctx context.Context, d event.Dispatcher, config OAuth2Authorization) ([]OidcTokenInfo, error) {
	return event.Call(ctx, d, NewAuthOIDCAuthorizeEvent(config))
}

// AuthOAuth2RemoveTokenDetail is the detail of Auth.oauth2RemoveToken.
type AuthOAuth2RemoveTokenDetail struct {
	// ClientID is the client the token was issued to.
	ClientID string `json:"clientId"`

	// AuthorizationURI is the authorization endpoint.
	AuthorizationURI string `json:"authorizationUri"`

	// AccessTokenURI is the token endpoint.
	AccessTokenURI string `json:"accessTokenUri"`

	// RedirectURI is the redirect URI of the client.
	RedirectURI string `json:"redirectUri"`

	// Scopes are the scopes the token was requested with.
	Scopes []string `json:"scopes"`
}

// NewAuthOAuth2RemoveTokenEvent creates the Auth.oauth2RemoveToken request.
func NewAuthOAuth2RemoveTokenEvent(clientID, authorizationURI, accessTokenURI, redirectURI string, scopes []string, opts ...event.Option) *event.Request[AuthOAuth2RemoveTokenDetail, event.Void] {
	detail := AuthOAuth2RemoveTokenDetail{
		ClientID:         clientID,
		AuthorizationURI: authorizationURI,
		AccessTokenURI:   accessTokenURI,
		RedirectURI:      redirectURI,
		Scopes:           scopes,
	}
	return event.NewRequest[AuthOAuth2RemoveTokenDetail, event.Void](TypeAuthOAuth2RemoveToken, detail, opts...)
}

// AuthOAuth2RemoveToken removes the cached OAuth 2 token that matches the
// arguments.
func AuthOAuth2RemoveToken(ctx context.Context, d event.Dispatcher, clientID, authorizationURI, accessTokenURI, redirectURI string, scopes []string) error {
	return event.Perform(ctx, d, NewAuthOAuth2RemoveTokenEvent(clientID, authorizationURI, accessTokenURI, redirectURI, scopes))
}

// AuthOIDCRemoveTokensDetail is the detail of Auth.oidcRemoveTokens.
type AuthOIDCRemoveTokensDetail struct {
	// ClientID is the client the token was issued to.
	ClientID string `json:"clientId"`

	// AuthorizationURI is the authorization endpoint.
	AuthorizationURI string `json:"authorizationUri"`

	// AccessTokenURI is the token endpoint.
	AccessTokenURI string `json:"accessTokenUri"`

	// RedirectURI is the redirect URI of the client.
	RedirectURI string `json:"redirectUri"`

	// Scopes are the scopes the token was requested with.
	Scopes []string `json:"scopes"`
}

// NewAuthOIDCRemoveTokensEvent creates the Auth.oidcRemoveTokens request.
func NewAuthOIDCRemoveTokensEvent(clientID, authorizationURI, accessTokenURI, redirectURI string, scopes []string, opts ...event.Option) *event.Request[AuthOIDCRemoveTokensDetail, event.Void] {
	detail := AuthOIDCRemoveTokensDetail{
		ClientID:         clientID,
		AuthorizationURI: authorizationURI,
		AccessTokenURI:   accessTokenURI,
		RedirectURI:      redirectURI,
		Scopes:           scopes,
	}
	return event.NewRequest[AuthOIDCRemoveTokensDetail, event.Void](TypeAuthOIDCRemoveTokens, detail, opts...)
}

// AuthOIDCRemoveTokens removes the cached OpenID Connect tokens that match
// the arguments.
func AuthOIDCRemoveTokens(ctx context.Context, d event.Dispatcher, clientID, authorizationURI, accessTokenURI, redirectURI string, scopes []string) error {
	return event.Perform(ctx, d, NewAuthOIDCRemoveTokensEvent(clientID, authorizationURI, accessTokenURI, redirectURI, scopes))
}

// AuthOAuth1AuthorizeDetail is the detail of Auth.oauth1Authorize.
type AuthOAuth1AuthorizeDetail struct {
	// Config describes the authorization.
	Config OAuth1Authorization `json:"config"`
}

// NewAuthOAuth1AuthorizeEvent creates the Auth.oauth1Authorize request.
func NewAuthOAuth1AuthorizeEvent(config OAuth1Authorization, opts ...event.Option) *event.Request[AuthOAuth1AuthorizeDetail, *OAuth1TokenInfo] {
	return event.NewRequest[AuthOAuth1AuthorizeDetail, *OAuth1TokenInfo](TypeAuthOAuth1Authorize, AuthOAuth1AuthorizeDetail{Config: config}, opts...)
}

// AuthOAuth1Authorize runs the OAuth 1 authorization described by config.
func AuthOAuth1Authorize(ctx context.Context, d event.Dispatcher, config OAuth1Authorization) (*OAuth1TokenInfo, error) {
	return event.Call(ctx, d, NewAuthOAuth1AuthorizeEvent(config))
}

func authEntries() []Entry {
	return []Entry{
		requestEntry[AuthOAuth2AuthorizeDetail, *TokenInfo]("Auth.oauth2Authorize", TypeAuthOAuth2Authorize),
		requestEntry[AuthOIDCAuthorizeDetail, []OidcTokenInfo]("Auth.oidcAuthorize", TypeAuthOIDCAuthorize),
		requestEntry[AuthOAuth2RemoveTokenDetail, event.Void]("Auth.oauth2RemoveToken", TypeAuthOAuth2RemoveToken),
		requestEntry[AuthOIDCRemoveTokensDetail, event.Void]("Auth.oidcRemoveTokens", TypeAuthOIDCRemoveTokens),
		requestEntry[AuthOAuth1AuthorizeDetail, *OAuth1TokenInfo]("Auth.oauth1Authorize", TypeAuthOAuth1Authorize),
	}
}
