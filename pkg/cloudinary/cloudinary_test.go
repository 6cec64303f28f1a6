package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptimizedImageURL(t *testing.T) {
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/q_auto,f_auto,w_400,c_limit/siteadmin/img_1",
		BuildOptimizedImageURL("demo", "siteadmin/img_1", ThumbWidth))
	assert.Contains(t, BuildOptimizedImageURL("demo", "x", 0), "w_1600")
}

func TestBuildVideoPosterURL(t *testing.T) {
	assert.Equal(t, "https://res.cloudinary.com/demo/video/upload/so_0/siteadmin/vid.jpg",
		BuildVideoPosterURL("demo", "siteadmin/vid"))
}

func TestNewClientFromParams(t *testing.T) {
	c, err := NewClientFromParams("demo", "key", "secret")
	require.NoError(t, err)
	assert.NotNil(t, c)
}
