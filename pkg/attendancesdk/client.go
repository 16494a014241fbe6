package attendancesdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the attendance service. The session cookie set
// by SignIn is kept in the client's cookie jar, so one SDKClient represents
// one signed-in admin.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new attendance service client with an empty cookie
// jar.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil) // never fails without options

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}
