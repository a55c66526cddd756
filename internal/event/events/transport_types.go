package events

// HTTPRequest is a request as authored by the user.
type HTTPRequest struct {
	URL     string `json:"url"`
	Method  string `json:"method"`
	Headers string `json:"headers,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// RequestConfig configures how a request is transported.
type RequestConfig struct {
	Enabled              bool               `json:"enabled"`
	Timeout              int                `json:"timeout,omitempty"`
	FollowRedirects      bool               `json:"followRedirects"`
	IgnoreSessionCookies bool               `json:"ignoreSessionCookies,omitempty"`
	Validate             bool               `json:"validateCertificates,omitempty"`
	DefaultHeaders       bool               `json:"defaultHeaders,omitempty"`
	Hosts                []HostRule         `json:"hosts,omitempty"`
	ClientCertificate    *ClientCertificate `json:"clientCertificate,omitempty"`
	Proxy                string             `json:"proxy,omitempty"`
	ProxyUsername        string             `json:"proxyUsername,omitempty"`
	ProxyPassword        string             `json:"proxyPassword,omitempty"`
}

// RequestTime records the phases of a transported request in
// milliseconds.
type RequestTime struct {
	Blocked    float64 `json:"blocked"`
	DNS        float64 `json:"dns"`
	Connect    float64 `json:"connect"`
	SSL        float64 `json:"ssl,omitempty"`
	Send       float64 `json:"send"`
	Wait       float64 `json:"wait"`
	Receive    float64 `json:"receive"`
	StartTime  int64   `json:"startTime,omitempty"`
	TotalTime  float64 `json:"total,omitempty"`
	Redirected bool    `json:"redirected,omitempty"`
}

// TransportRecord is the request as it was sent on the wire.
type TransportRecord struct {
	URL         string `json:"url"`
	Method      string `json:"method"`
	Headers     string `json:"headers,omitempty"`
	Payload     any    `json:"payload,omitempty"`
	HTTPMessage string `json:"httpMessage,omitempty"`
	StartTime   int64  `json:"startTime"`
	EndTime     int64  `json:"endTime"`
}

// ResponseRedirect is one redirect followed by the transport.
type ResponseRedirect struct {
	URL       string       `json:"url"`
	Response  HTTPResponse `json:"response"`
	StartTime int64        `json:"startTime"`
	EndTime   int64        `json:"endTime"`
	Timings   *RequestTime `json:"timings,omitempty"`
}

// HTTPResponse is a transported response.
type HTTPResponse struct {
	Status      int                `json:"status"`
	StatusText  string             `json:"statusText,omitempty"`
	Headers     string             `json:"headers,omitempty"`
	Payload     any                `json:"payload,omitempty"`
	LoadingTime float64            `json:"loadingTime"`
	Timings     *RequestTime       `json:"timings,omitempty"`
	Redirects   []ResponseRedirect `json:"redirects,omitempty"`
	Size        int64              `json:"size,omitempty"`
}

// ErrorResponse is reported instead of a response when the transport
// failed.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// TransportResult is the outcome of a direct HTTP transport.
type TransportResult struct {
	Request  TransportRecord `json:"request"`
	Response HTTPResponse    `json:"response"`
}
