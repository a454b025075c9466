package graph

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(newTestSchema(t), zerolog.Nop())
	r := gin.New()
	r.POST("/graphql", h.Post)
	r.GET("/graphql", h.Get)
	r.GET("/", h.Playground("Gallery", "/graphql"))
	return r
}

func serve(r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, httpResponse) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body httpResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func postJSON(t *testing.T, payload interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_PostMutationThenGetQuery(t *testing.T) {
	r := newTestRouter(t)

	w, body := serve(r, postJSON(t, Request{
		Query:         `mutation Add($name: String!) { addAuthor(name: $name, lastName: "Malo", facePictureUrl: "f") { id name } }`,
		OperationName: "Add",
		Variables:     map[string]interface{}{"name": "Alex"},
	}))
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, body.Errors)

	var added struct {
		AddAuthor authorJSON `json:"addAuthor"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &added))
	assert.Equal(t, "Alex", added.AddAuthor.Name)

	q := url.Values{}
	q.Set("query", `query($id: String) { picturesByAuthor(id: $id) { name pictures { id } } }`)
	q.Set("variables", `{"id":"`+added.AddAuthor.ID+`"}`)
	w, body = serve(r, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, body.Errors)
	assert.JSONEq(t, `{"picturesByAuthor":{"name":"Alex","pictures":[]}}`, string(body.Data))
}

func TestHandler_ResolverErrorsStay200(t *testing.T) {
	r := newTestRouter(t)

	w, body := serve(r, postJSON(t, Request{Query: `mutation { updatePicture(id: "nope") { id } }`}))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0].Message, "picture not found")
}

func TestHandler_BadRequests(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		req     *http.Request
		message string
	}{
		{
			name:    "malformed body",
			req:     httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString("{not json")),
			message: "invalid graphql request body",
		},
		{
			name:    "empty query",
			req:     postJSON(t, Request{}),
			message: "must provide query string",
		},
		{
			name:    "bad variables",
			req:     httptest.NewRequest(http.MethodGet, "/graphql?query=%7Bpictures%7Bid%7D%7D&variables=nope", nil),
			message: "variables are invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(r, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			require.Len(t, body.Errors, 1)
			assert.Contains(t, body.Errors[0].Message, tt.message)
		})
	}
}

func getQuery(query, operationName string) *http.Request {
	q := url.Values{}
	q.Set("query", query)
	if operationName != "" {
		q.Set("operationName", operationName)
	}
	return httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil)
}

func TestHandler_GetRefusesMutations(t *testing.T) {
	r := newTestRouter(t)
	const doc = `
		query List { authors { id } }
		mutation Add { addAuthor(name: "Alex", lastName: "Malo", facePictureUrl: "f") { id } }`

	tests := []struct {
		name          string
		query         string
		operationName string
	}{
		{name: "anonymous mutation", query: `mutation { addAuthor(name: "Alex", lastName: "Malo", facePictureUrl: "f") { id } }`},
		{name: "named mutation selected", query: doc, operationName: "Add"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(r, getQuery(tt.query, tt.operationName))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
			require.Len(t, body.Errors, 1)
			assert.Contains(t, body.Errors[0].Message, "POST")
		})
	}

	w, body := serve(r, getQuery(doc, "List"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, body.Errors)
	assert.JSONEq(t, `{"authors":[]}`, string(body.Data), "no mutation ran")
}

func TestHandler_GetPassesUnparsableQueryToExecutor(t *testing.T) {
	r := newTestRouter(t)

	w, body := serve(r, getQuery(`mutation {`, ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body.Errors)
}

func TestHandler_Playground(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<title>Gallery</title>")
}
