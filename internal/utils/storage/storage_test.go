package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestDecodeDataURI(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngPixel)

	data, err := DecodeDataURI("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)

	data, err = DecodeDataURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, pngPixel, data)

	_, err = DecodeDataURI("data:image/png," + encoded)
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI("data:image/png;base64")
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, ErrInvalidDataURI)

	_, err = DecodeDataURI("data:image/png;base64,")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestDetectType(t *testing.T) {
	contentType, extension, err := DetectType(pngPixel, AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", extension)

	_, _, err = DetectType([]byte("just some text"), AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	contentType, _, err = DetectType([]byte("just some text"))
	require.NoError(t, err)
	assert.Contains(t, contentType, "text/plain")

	_, _, err = DetectType(nil, AllowImage...)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestPublicLinks(t *testing.T) {
	aws := &awsS3{bucket: "foodgram", region: "eu-central-1"}
	link := aws.GetPublicLinkKey("recipes/abc.png")
	assert.Equal(t, "https://foodgram.s3.eu-central-1.amazonaws.com/recipes/abc.png", link)
	assert.Equal(t, "recipes/abc.png", aws.GetObjectKeyFromLink(link))
	assert.Empty(t, aws.GetObjectKeyFromLink("https://elsewhere.example.com/recipes/abc.png"))

	minio := &awsS3{bucket: "foodgram", endpoint: "http://localhost:9000"}
	link = minio.GetPublicLinkKey("recipes/abc.png")
	assert.Equal(t, "http://localhost:9000/foodgram/recipes/abc.png", link)
	assert.Equal(t, "recipes/abc.png", minio.GetObjectKeyFromLink(link))
}
