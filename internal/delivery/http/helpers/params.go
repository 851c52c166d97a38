package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// MaxBodyBytes caps the request body read by DecodeParams.
const MaxBodyBytes = 1 << 20

// Params holds request parameters by name. An absent key means the parameter was not supplied.
type Params map[string]string

// Get returns a pointer to the named value, or nil when it was not supplied.
func (p Params) Get(name string) *string {
	v, ok := p[name]
	if !ok {
		return nil
	}
	return &v
}

// DecodeParams collects parameters from the query string and then the request body
// (a JSON object or a urlencoded form); body values override query values. A JSON null
// removes the parameter. On a malformed body it writes a 400 JSON error and returns false.
// Callers should return immediately when DecodeParams returns false.
func DecodeParams(w http.ResponseWriter, r *http.Request) (Params, bool) {
	params := Params{}
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}
	if r.Body == nil {
		return params, true
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrKeyBody, err.Error())
		return nil, false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, true
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, ErrKeyBody, err.Error())
			return nil, false
		}
		for name, values := range form {
			if len(values) > 0 {
				params[name] = values[0]
			}
		}
		return params, true
	}

	if err := decodeJSONParams(body, params); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrKeyBody, err.Error())
		return nil, false
	}
	return params, true
}

func decodeJSONParams(body []byte, params Params) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if obj == nil {
		return errors.New("invalid JSON body: expected an object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: unexpected data after the object")
	}
	for name, raw := range obj {
		switch v := raw.(type) {
		case nil:
			delete(params, name)
		case string:
			params[name] = v
		case json.Number, bool:
			params[name] = fmt.Sprint(v)
		default:
			// Objects and arrays never carry a parameter; treat them as not supplied.
			delete(params, name)
		}
	}
	return nil
}
