package events

import (
	"context"

	"github.com/dshills/arcevents/internal/event"
)

// Navigation event types.
const (
	// TypeNavigationNavigate navigates the application to a route.
	TypeNavigationNavigate event.Type = "arcnavigate"

	// TypeNavigationRequest opens a stored request.
	TypeNavigationRequest event.Type = "arcnavigaterequest"

	// TypeNavigationRestAPI opens a REST API project.
	TypeNavigationRestAPI event.Type = "arcnavigaterestapi"

	// TypeNavigationProject opens a project.
	TypeNavigationProject event.Type = "arcnavigateproject"

	// TypeNavigationHelpTopic opens a help topic.
	TypeNavigationHelpTopic event.Type = "helpnavigate"

	// TypeNavigationExternal opens a URL outside of the application.
	TypeNavigationExternal event.Type = "arcnavigateexternal"
)

// NavigationNavigateDetail is the detail of Navigation.navigate.
type NavigationNavigateDetail struct {
	// Route is the application screen, e.g. "history".
	Route string `json:"route"`

	// Opts are route specific parameters.
	Opts RouteParams `json:"opts"`
}

// NewNavigationNavigateEvent creates the Navigation.navigate request.
func NewNavigationNavigateEvent(route string, params RouteParams, opts ...event.Option) *event.Request[NavigationNavigateDetail, event.Void] {
	return event.NewRequest[NavigationNavigateDetail, event.Void](TypeNavigationNavigate, NavigationNavigateDetail{Route: route, Opts: params}, opts...)
}

// NavigationNavigate opens route with params.
func NavigationNavigate(ctx context.Context, d event.Dispatcher, route string, params RouteParams) error {
	return event.Perform(ctx, d, NewNavigationNavigateEvent(route, params))
}

// NavigationRequestDetail is the detail of Navigation.navigateRequest.
type NavigationRequestDetail struct {
	// RequestID is the id of the request.
	RequestID string `json:"requestId"`

	// RequestType is "saved" or "history".
	RequestType string `json:"requestType"`

	// Route is the screen to open it in.
	Route string `json:"route"`

	// Action is what to do with it, e.g. "open" or "detail".
	Action string `json:"action"`
}

// NewNavigationRequestEvent creates the Navigation.navigateRequest request.
func NewNavigationRequestEvent(requestID, requestType, route, action string, opts ...event.Option) *event.Request[NavigationRequestDetail, event.Void] {
	detail := NavigationRequestDetail{
		RequestID:   requestID,
		RequestType: requestType,
		Route:       route,
		Action:      action,
	}
	return event.NewRequest[NavigationRequestDetail, event.Void](TypeNavigationRequest, detail, opts...)
}

// NavigationRequest opens the stored request with the given id.
func NavigationRequest(ctx context.Context, d event.Dispatcher, requestID, requestType, route, action string) error {
	return event.Perform(ctx, d, NewNavigationRequestEvent(requestID, requestType, route, action))
}

// NavigationRestAPIDetail is the detail of Navigation.navigateRestApi.
type NavigationRestAPIDetail struct {
	// API is the id of the API index entry.
	API string `json:"api"`

	// Version is the API version.
	Version string `json:"version"`

	// Route is the screen to open it in.
	Route string `json:"route"`

	// Action is what to do with it.
	Action string `json:"action"`
}

// NewNavigationRestAPIEvent creates the Navigation.navigateRestApi request.
func NewNavigationRestAPIEvent(api, version, route, action string, opts ...event.Option) *event.Request[NavigationRestAPIDetail, event.Void] {
	detail := NavigationRestAPIDetail{
		API:     api,
		Version: version,
		Route:   route,
		Action:  action,
	}
	return event.NewRequest[NavigationRestAPIDetail, event.Void](TypeNavigationRestAPI, detail, opts...)
}

// NavigationRestAPI opens version of api.
func NavigationRestAPI(ctx context.Context, d event.Dispatcher, api, version, route, action string) error {
	return event.Perform(ctx, d, NewNavigationRestAPIEvent(api, version, route, action))
}

// NavigationProjectDetail is the detail of Navigation.navigateProject.
type NavigationProjectDetail struct {
	// ID of the project.
	ID string `json:"id"`

	// Route is the screen to open it in.
	Route string `json:"route"`

	// Action is what to do with it.
	Action string `json:"action"`
}

// NewNavigationProjectEvent creates the Navigation.navigateProject request.
func NewNavigationProjectEvent(id, route, action string, opts ...event.Option) *event.Request[NavigationProjectDetail, event.Void] {
	detail := NavigationProjectDetail{
		ID:     id,
		Route:  route,
		Action: action,
	}
	return event.NewRequest[NavigationProjectDetail, event.Void](TypeNavigationProject, detail, opts...)
}

// NavigationProject opens the project with the given id.
func NavigationProject(ctx context.Context, d event.Dispatcher, id, route, action string) error {
	return event.Perform(ctx, d, NewNavigationProjectEvent(id, route, action))
}

// NavigationHelpTopicDetail is the detail of Navigation.helpTopic.
type NavigationHelpTopicDetail struct {
	// Topic is the help topic id.
	Topic string `json:"topic"`
}

// NewNavigationHelpTopicEvent creates the Navigation.helpTopic request.
func NewNavigationHelpTopicEvent(topic string, opts ...event.Option) *event.Request[NavigationHelpTopicDetail, event.Void] {
	return event.NewRequest[NavigationHelpTopicDetail, event.Void](TypeNavigationHelpTopic, NavigationHelpTopicDetail{Topic: topic}, opts...)
}

// NavigationHelpTopic opens the help page of topic.
func NavigationHelpTopic(ctx context.Context, d event.Dispatcher, topic string) error {
	return event.Perform(ctx, d, NewNavigationHelpTopicEvent(topic))
}

// NavigationExternalDetail is the detail of Navigation.navigateExternal.
type NavigationExternalDetail struct {
	// URL to open.
	URL string `json:"url"`

	// Purpose tells the shell why the URL is opened.
	Purpose string `json:"purpose"`
}

// NewNavigationExternalEvent creates the Navigation.navigateExternal
// request.
func NewNavigationExternalEvent(url, purpose string, opts ...event.Option) *event.Request[NavigationExternalDetail, event.Void] {
	return event.NewRequest[NavigationExternalDetail, event.Void](TypeNavigationExternal, NavigationExternalDetail{URL: url, Purpose: purpose}, opts...)
}

// NavigationExternal opens url in the default browser.
func NavigationExternal(ctx context.Context, d event.Dispatcher, url, purpose string) error {
	return event.Perform(ctx, d, NewNavigationExternalEvent(url, purpose))
}

func navigationEntries() []Entry {
	return []Entry{
		requestEntry[NavigationNavigateDetail, event.Void]("Navigation.navigate", TypeNavigationNavigate),
		requestEntry[NavigationRequestDetail, event.Void]("Navigation.navigateRequest", TypeNavigationRequest),
		requestEntry[NavigationRestAPIDetail, event.Void]("Navigation.navigateRestApi", TypeNavigationRestAPI),
		requestEntry[NavigationProjectDetail, event.Void]("Navigation.navigateProject", TypeNavigationProject),
		requestEntry[NavigationHelpTopicDetail, event.Void]("Navigation.helpTopic", TypeNavigationHelpTopic),
		requestEntry[NavigationExternalDetail, event.Void]("Navigation.navigateExternal", TypeNavigationExternal),
	}
}
