package graph

import (
	"context"
	_ "embed"
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/zerolog"

	"gallery-backend/internal/shared/middleware"
)

//go:embed schema.graphqls
var schemaSDL string

// SDL returns the schema definition served by the API.
func SDL() string {
	return schemaSDL
}

// NewSchema parses the SDL and binds it to resolver. maxDepth <= 0 disables
// the depth limit.
func NewSchema(resolver *Resolver, maxDepth int, logger zerolog.Logger) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
		graphql.Logger(panicLogger{logger: logger}),
	}
	if maxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(maxDepth))
	}

	schema, err := graphql.ParseSchema(schemaSDL, resolver, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}

// panicLogger reports resolver panics recovered by the executor.
type panicLogger struct {
	logger zerolog.Logger
}

func (l panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.logger.Error().
		Str("request_id", middleware.RequestIDFromContext(ctx)).
		Str("panic", fmt.Sprintf("%v", value)).
		Msg("[GRAPHQL] Resolver panic recovered")
}
