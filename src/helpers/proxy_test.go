package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyManager_Rotation(t *testing.T) {
	pm, err := NewProxyManager([]string{"10.0.0.1:3128", "https://10.0.0.2:8443"})
	require.NoError(t, err)
	require.True(t, pm.HasProxies())

	assert.Equal(t, "http://10.0.0.1:3128", pm.Current().String())
	assert.Equal(t, "https://10.0.0.2:8443", pm.RotateProxy().String())
	assert.Equal(t, "http://10.0.0.1:3128", pm.RotateProxy().String())
}

func TestProxyManager_Empty(t *testing.T) {
	pm, err := NewProxyManager(nil)
	require.NoError(t, err)

	assert.False(t, pm.HasProxies())
	assert.Nil(t, pm.Current())
	assert.Nil(t, pm.RotateProxy())
}

func TestProxyManager_RejectsInvalid(t *testing.T) {
	_, err := NewProxyManager([]string{"ftp://10.0.0.1:21"})
	assert.Error(t, err)
}

func TestValidateProxy(t *testing.T) {
	assert.True(t, ValidateProxy("127.0.0.1:8080"))
	assert.True(t, ValidateProxy("socks5://127.0.0.1:1080"))
	assert.False(t, ValidateProxy(""))
	assert.False(t, ValidateProxy("ftp://host:21"))
}
