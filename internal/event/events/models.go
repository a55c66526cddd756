package events

// AuthData is stored basic or NTLM credentials for an endpoint.
type AuthData struct {
	ID       string `json:"_id,omitempty"`
	Rev      string `json:"_rev,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Domain   string `json:"domain,omitempty"`
}

// CertificateData is the content of a certificate or key file.
type CertificateData struct {
	// Data is the file content; binary files are base64 encoded.
	Data       string `json:"data"`
	Passphrase string `json:"passphrase,omitempty"`

	// Type is "buffer" for binary data and "string" otherwise.
	Type string `json:"type,omitempty"`
}

// ClientCertificate is a stored TLS client certificate.
type ClientCertificate struct {
	ID      string           `json:"_id,omitempty"`
	Rev     string           `json:"_rev,omitempty"`
	Name    string           `json:"name"`
	Type    string           `json:"type"`
	Cert    CertificateData  `json:"cert"`
	Key     *CertificateData `json:"key,omitempty"`
	Created int64            `json:"created,omitempty"`
}

// Environment groups variables.
type Environment struct {
	ID          string `json:"_id,omitempty"`
	Rev         string `json:"_rev,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Created     int64  `json:"created,omitempty"`
}

// Variable is a named value available to requests.
type Variable struct {
	ID          string `json:"_id,omitempty"`
	Rev         string `json:"_rev,omitempty"`
	Environment string `json:"environment"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Enabled     bool   `json:"enabled"`
}

// EnvironmentState is the selected environment and its variables.
type EnvironmentState struct {
	// Environment is nil when the default environment is selected.
	Environment     *Environment      `json:"environment"`
	Variables       []Variable        `json:"variables"`
	SystemVariables map[string]string `json:"systemVariables,omitempty"`
}

// HostRule maps a host to another one when making requests.
type HostRule struct {
	ID      string `json:"_id,omitempty"`
	Rev     string `json:"_rev,omitempty"`
	From    string `json:"from"`
	To      string `json:"to"`
	Enabled bool   `json:"enabled"`
	Comment string `json:"comment,omitempty"`
}

// Project groups saved requests.
type Project struct {
	ID          string   `json:"_id,omitempty"`
	Rev         string   `json:"_rev,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Order       int      `json:"order,omitempty"`
	Requests    []string `json:"requests,omitempty"`
}

// Request store kinds.
const (
	RequestTypeSaved   = "saved"
	RequestTypeHistory = "history"
)

// StoredRequest is a request kept in the saved or history store.
type StoredRequest struct {
	ID          string            `json:"_id,omitempty"`
	Rev         string            `json:"_rev,omitempty"`
	Type        string            `json:"type"`
	Name        string            `json:"name,omitempty"`
	URL         string            `json:"url"`
	Method      string            `json:"method"`
	Headers     string            `json:"headers,omitempty"`
	Payload     any               `json:"payload,omitempty"`
	Description string            `json:"description,omitempty"`
	Projects    []string          `json:"projects,omitempty"`
	Created     int64             `json:"created,omitempty"`
	Updated     int64             `json:"updated,omitempty"`
	Midnight    int64             `json:"midnight,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// RequestReadOptions configure reading stored requests.
type RequestReadOptions struct {
	// Rev reads a specific revision.
	Rev string `json:"rev,omitempty"`

	// Restore decrypts and restores payload data.
	Restore bool `json:"restore,omitempty"`

	// PreserveOrder keeps the order of the requested ids, with nil for
	// missing ones.
	PreserveOrder bool `json:"preserveOrder,omitempty"`
}

// RestAPIIndex is the index entry of a REST API project.
type RestAPIIndex struct {
	ID            string   `json:"_id,omitempty"`
	Rev           string   `json:"_rev,omitempty"`
	Title         string   `json:"title"`
	Order         int      `json:"order,omitempty"`
	Versions      []string `json:"versions,omitempty"`
	LatestVersion string   `json:"latestVersion,omitempty"`
}

// RestAPIData is the processed model of a REST API version.
type RestAPIData struct {
	ID   string `json:"_id,omitempty"`
	Rev  string `json:"_rev,omitempty"`
	Data string `json:"data"`
}

// RestAPIProcessResult is the outcome of processing an API file.
type RestAPIProcessResult struct {
	// Model is the generated API model.
	Model string `json:"model"`

	// Type is the detected API type, e.g. "RAML 1.0".
	Type string `json:"type"`
}

// URLHistoryItem is an entry of the URL history.
type URLHistoryItem struct {
	ID           string `json:"_id,omitempty"`
	URL          string `json:"url"`
	Count        int    `json:"cnt"`
	Time         int64  `json:"time"`
	MidnightTime int64  `json:"midnight,omitempty"`
}

// IndexableRequest is a request submitted to the URL indexer.
type IndexableRequest struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// IndexQueryResult maps request ids to the request types that matched.
type IndexQueryResult map[string]string

// Workspace is the state of a request workspace.
type Workspace struct {
	ID            string            `json:"id,omitempty"`
	Kind          string            `json:"kind"`
	Version       string            `json:"version"`
	Requests      []EditorRequest   `json:"requests"`
	SelectedIndex int               `json:"selected"`
	Environment   string            `json:"environment,omitempty"`
	Variables     map[string]string `json:"variables,omitempty"`
}

// EditorRequest is a request open in a workspace editor.
type EditorRequest struct {
	ID      string         `json:"id"`
	Request HTTPRequest    `json:"request"`
	Meta    map[string]any `json:"meta,omitempty"`
}
