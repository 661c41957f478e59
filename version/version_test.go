// version_test.go
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserAgentHeader(t *testing.T) {
	assert.Equal(t, "go-api-sdk-planningcenter/"+SDKVersion, GetUserAgentHeader())
}
