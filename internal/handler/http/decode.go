package http

import (
	"encoding/json"
	"net/http"
)

const maxRequestBodyBytes = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes)).Decode(dst)
}
