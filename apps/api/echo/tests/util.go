package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/user"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

// page mirrors echoapi.Page with its data left raw.
type page struct {
	View  string            `json:"view"`
	User  *user.User        `json:"user"`
	Links []navigation.Link `json:"links"`
	Data  json.RawMessage   `json:"data"`
}

// success mirrors echoapi.SuccessResponse with its data left raw.
type success struct {
	Success string          `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func newCookieRequest(method, path string, cookies []*http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	req, rec := newRequest(method, path, data...)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarshal(t *testing.T, data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal(%s) failed: %v", string(data), err)
	}
}

// readPage decodes the Page in `rec` and its data into `data` (if not nil).
func readPage(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) page {
	var p page
	unmarshal(t, rec.Body.Bytes(), &p)
	if data != nil {
		unmarshal(t, p.Data, data)
	}
	return p
}

// readSuccess decodes the SuccessResponse in `rec` and its data into `data` (if not nil).
func readSuccess(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) success {
	var s success
	unmarshal(t, rec.Body.Bytes(), &s)
	if data != nil {
		unmarshal(t, s.Data, data)
	}
	return s
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if _, ok := j1.([]interface{}); !ok {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
