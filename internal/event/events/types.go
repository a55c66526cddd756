package events

// Empty is the detail of operations that take no arguments. It encodes as
// an empty JSON object.
type Empty struct{}

// ListResponse is a page of items.
type ListResponse[T any] struct {
	// Items is the page content.
	Items []T `json:"items"`

	// NextPageToken is passed to the next list call. It is empty on the
	// last page.
	NextPageToken string `json:"nextPageToken,omitempty"`
}

// ChangeRecord describes an entity after a store write.
type ChangeRecord[T any] struct {
	// ID is the datastore id of the entity.
	ID string `json:"id"`

	// Rev is the revision after the change.
	Rev string `json:"rev,omitempty"`

	// OldRev is the revision before the change, if the entity existed.
	OldRev string `json:"oldRev,omitempty"`

	// Item is the entity as stored.
	Item T `json:"item"`
}

// DeletedRecord identifies a removed entity.
type DeletedRecord struct {
	// ID is the datastore id of the removed entity.
	ID string `json:"id"`

	// Rev is the revision of the deletion.
	Rev string `json:"rev,omitempty"`
}

// FileRef points at a file picked by the user.
type FileRef struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// RouteParams are the route specific parameters of a navigation.
type RouteParams map[string]any

// VersionInfo lists the versions of the application and its runtime.
type VersionInfo struct {
	AppVersion string `json:"appVersion"`
	Chrome     string `json:"chrome,omitempty"`
	Electron   string `json:"electron,omitempty"`
	Node       string `json:"node,omitempty"`
	V8         string `json:"v8,omitempty"`
}

// OAuth2Authorization configures an OAuth 2 or OpenID Connect
// authorization.
type OAuth2Authorization struct {
	GrantType        string   `json:"grantType"`
	ClientID         string   `json:"clientId"`
	ClientSecret     string   `json:"clientSecret,omitempty"`
	AuthorizationURI string   `json:"authorizationUri,omitempty"`
	AccessTokenURI   string   `json:"accessTokenUri,omitempty"`
	RedirectURI      string   `json:"redirectUri,omitempty"`
	Scopes           []string `json:"scopes,omitempty"`
	State            string   `json:"state,omitempty"`
	Username         string   `json:"username,omitempty"`
	Password         string   `json:"password,omitempty"`
	ResponseType     string   `json:"responseType,omitempty"`
	Interactive      *bool    `json:"interactive,omitempty"`
	PKCE             bool     `json:"pkce,omitempty"`
}

// TokenInfo is the result of an OAuth 2 authorization.
type TokenInfo struct {
	AccessToken  string   `json:"accessToken"`
	TokenType    string   `json:"tokenType,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	ExpiresIn    int      `json:"expiresIn,omitempty"`
	ExpiresAt    int64    `json:"expiresAt,omitempty"`
	Scope        []string `json:"scope,omitempty"`
	State        string   `json:"state,omitempty"`
}

// OidcTokenInfo is one token set of an OpenID Connect authorization.
type OidcTokenInfo struct {
	TokenInfo
	IDToken string `json:"idToken,omitempty"`
	Time    int64  `json:"time,omitempty"`
}

// OAuth1Authorization configures an OAuth 1 authorization.
type OAuth1Authorization struct {
	ConsumerKey        string `json:"consumerKey"`
	ConsumerSecret     string `json:"consumerSecret,omitempty"`
	SignatureMethod    string `json:"signatureMethod,omitempty"`
	RequestTokenURI    string `json:"requestTokenUri,omitempty"`
	AuthTokenURI       string `json:"authTokenUri,omitempty"`
	AccessTokenURI     string `json:"accessTokenUri,omitempty"`
	RedirectURI        string `json:"redirectUri,omitempty"`
	AuthParamsLocation string `json:"authParamsLocation,omitempty"`
	Realm              string `json:"realm,omitempty"`
	Token              string `json:"token,omitempty"`
	TokenSecret        string `json:"tokenSecret,omitempty"`
}

// OAuth1TokenInfo is the result of an OAuth 1 authorization.
type OAuth1TokenInfo struct {
	Token       string `json:"oauth_token"`
	TokenSecret string `json:"oauth_token_secret"`
}

// Cookie is a session cookie.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain,omitempty"`
	Path     string  `json:"path,omitempty"`
	Expires  float64 `json:"expires,omitempty"`
	HostOnly bool    `json:"hostOnly,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	Session  bool    `json:"session,omitempty"`
}

// ExportOptions select what an export writes and where.
type ExportOptions struct {
	// Provider is the export destination: "file" or "drive".
	Provider string `json:"provider"`

	// Kind is the kind of the export object.
	Kind string `json:"kind,omitempty"`

	// Encrypt asks for the content to be encrypted with Passphrase.
	Encrypt    bool   `json:"encrypt,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`

	// SkipImport marks the file as not meant to be imported back.
	SkipImport bool `json:"skipImport,omitempty"`
}

// ProviderOptions configure the export destination.
type ProviderOptions struct {
	// File is the name of the file to create.
	File string `json:"file"`

	// Parent is the destination folder, if the provider supports it.
	Parent string `json:"parent,omitempty"`

	// ContentType of the created file.
	ContentType string `json:"contentType,omitempty"`
}

// ExportResult reports the outcome of an export.
type ExportResult struct {
	Success     bool   `json:"success"`
	Interrupted bool   `json:"interrupted"`
	ParentID    string `json:"parentId,omitempty"`
	FileID      string `json:"fileId,omitempty"`
}

// ExportData lists what a custom export contains, keyed by data kind
// ("requests", "projects", "history", ...). A value is either true for
// everything of that kind or a list of entities.
type ExportData map[string]any

// ExportObject is the normalized form of an export file.
type ExportObject struct {
	Kind      string         `json:"kind"`
	CreatedAt string         `json:"createdAt"`
	Version   string         `json:"version"`
	Data      map[string]any `json:"data,omitempty"`
}

// ImportOptions configure the processing of import data.
type ImportOptions struct {
	// Driver forces a specific import driver.
	Driver string `json:"driver,omitempty"`

	// PreviewOnly stops after the data was normalized.
	PreviewOnly bool `json:"previewOnly,omitempty"`
}

// AppFolder is the folder the application keeps in the user's drive.
type AppFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DriveFileMeta describes a file written to the drive.
type DriveFileMeta struct {
	Name        string   `json:"name"`
	MimeType    string   `json:"mimeType,omitempty"`
	Description string   `json:"description,omitempty"`
	Parents     []string `json:"parents,omitempty"`
}

// DriveSaveOptions configure a drive upload.
type DriveSaveOptions struct {
	// ID updates an existing file instead of creating one.
	ID string `json:"id,omitempty"`

	// ContentType of the uploaded data.
	ContentType string `json:"contentType,omitempty"`
}

// DriveFile is a file stored in the drive.
type DriveFile struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// ThemeState is the state of the theming system.
type ThemeState struct {
	Themes          []InstalledTheme `json:"themes"`
	Active          string           `json:"active"`
	SystemPreferred bool             `json:"systemPreferred"`
}

// InstalledTheme is a theme available to the application.
type InstalledTheme struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Version     string `json:"version,omitempty"`
	Location    string `json:"location,omitempty"`
	MainFile    string `json:"mainFile,omitempty"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

// UpdateInfo describes an application release.
type UpdateInfo struct {
	Version      string `json:"version"`
	ReleaseDate  string `json:"releaseDate,omitempty"`
	ReleaseName  string `json:"releaseName,omitempty"`
	ReleaseNotes string `json:"releaseNotes,omitempty"`
}

// SearchOptions configure an in-page search.
type SearchOptions struct {
	Forward   bool `json:"forward"`
	MatchCase bool `json:"matchCase"`
	FindNext  bool `json:"findNext"`
}

// ActionsResult is the outcome of running request or response actions.
type ActionsResult struct {
	// Variables are the values the actions assigned.
	Variables map[string]string `json:"variables,omitempty"`

	// Errors are the messages of the actions that failed.
	Errors []string `json:"errors,omitempty"`
}

// FileFilter limits a file dialog to some extensions.
type FileFilter struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// OpenDialogOptions configure an open file dialog.
type OpenDialogOptions struct {
	Title       string       `json:"title,omitempty"`
	DefaultPath string       `json:"defaultPath,omitempty"`
	ButtonLabel string       `json:"buttonLabel,omitempty"`
	Filters     []FileFilter `json:"filters,omitempty"`
	Properties  []string     `json:"properties,omitempty"`
}

// OpenDialogResult is what the user picked in an open file dialog.
type OpenDialogResult struct {
	Canceled  bool     `json:"canceled"`
	FilePaths []string `json:"filePaths"`
}

// SaveDialogOptions configure a save file dialog.
type SaveDialogOptions struct {
	Title       string       `json:"title,omitempty"`
	DefaultPath string       `json:"defaultPath,omitempty"`
	ButtonLabel string       `json:"buttonLabel,omitempty"`
	Filters     []FileFilter `json:"filters,omitempty"`
}

// SaveDialogResult is what the user picked in a save file dialog.
type SaveDialogResult struct {
	Canceled bool   `json:"canceled"`
	FilePath string `json:"filePath,omitempty"`
}

// MessageBoxOptions configure a message box.
type MessageBoxOptions struct {
	Type      string   `json:"type,omitempty"`
	Title     string   `json:"title,omitempty"`
	Message   string   `json:"message"`
	Detail    string   `json:"detail,omitempty"`
	Buttons   []string `json:"buttons,omitempty"`
	DefaultID int      `json:"defaultId,omitempty"`
	CancelID  int      `json:"cancelId,omitempty"`
}

// MessageBoxResult is the button the user clicked.
type MessageBoxResult struct {
	Response        int  `json:"response"`
	CheckboxChecked bool `json:"checkboxChecked,omitempty"`
}

// WindowOptions configure a new application window.
type WindowOptions struct {
	Page      string `json:"page,omitempty"`
	Route     string `json:"route,omitempty"`
	Workspace string `json:"workspaceFile,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Devtools  bool   `json:"devtools,omitempty"`
}
