package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid base64 data uri")

// DecodeDataURI decodes "data:<mime>;base64,<payload>". A bare base64
// payload without the data: prefix is accepted as well.
func DecodeDataURI(value string) ([]byte, error) {
	payload := strings.TrimSpace(value)
	if strings.HasPrefix(payload, "data:") {
		header, body, found := strings.Cut(payload, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, ErrInvalidDataURI
		}
		payload = body
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidDataURI
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}
