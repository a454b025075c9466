package graph

import (
	"encoding/json"
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/rs/zerolog"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Request is a GraphQL request as sent in a POST body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type Handler struct {
	schema *graphql.Schema
	logger zerolog.Logger
}

func NewHandler(schema *graphql.Schema, logger zerolog.Logger) *Handler {
	return &Handler{
		schema: schema,
		logger: logger,
	}
}

// Post handles POST /graphql with a JSON body.
func (h *Handler) Post(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid graphql request body: %v", err)
		return
	}
	h.execute(c, req)
}

// Get handles GET /graphql?query=...&operationName=...&variables=...
// Mutations are refused with 405; they must be sent with POST.
func (h *Handler) Get(c *gin.Context) {
	req := Request{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}

	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			h.badRequest(c, "variables are invalid JSON: %v", err)
			return
		}
	}

	if selectsMutation(req) {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, &graphql.Response{
			Errors: []*gqlerrors.QueryError{
				gqlerrors.Errorf("can only perform a mutation operation from a POST request"),
			},
		})
		return
	}
	h.execute(c, req)
}

// selectsMutation reports whether the operation req would run is a mutation.
// Documents that do not parse are left to the executor to report.
func selectsMutation(req Request) bool {
	if req.Query == "" {
		return false
	}
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return false
	}
	op := doc.Operations.ForName(req.OperationName)
	return op != nil && op.Operation == ast.Mutation
}

// Playground serves the GraphQL IDE pointed at endpoint.
func (h *Handler) Playground(title, endpoint string) gin.HandlerFunc {
	return gin.WrapH(playground.Handler(title, endpoint))
}

func (h *Handler) execute(c *gin.Context, req Request) {
	if req.Query == "" {
		h.badRequest(c, "must provide query string")
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		h.logger.Debug().
			Str("request_id", c.GetString("request_id")).
			Str("operation", req.OperationName).
			Int("errors", len(resp.Errors)).
			Msg("[GRAPHQL] Query completed with errors")
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) badRequest(c *gin.Context, format string, args ...interface{}) {
	c.JSON(http.StatusBadRequest, &graphql.Response{
		Errors: []*gqlerrors.QueryError{gqlerrors.Errorf(format, args...)},
	})
}
