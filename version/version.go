// version.go
package version

import "fmt"

const (
	// UserAgentBase is the product token sent in the User-Agent header.
	UserAgentBase = "go-api-sdk-planningcenter"
	// SDKVersion is the current release of the SDK.
	SDKVersion = "0.1.0"
)

// GetUserAgentHeader returns the value sent as the User-Agent header.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", UserAgentBase, SDKVersion)
}
