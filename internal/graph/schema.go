package graph

import (
	"github.com/graphql-go/graphql"
)

// GraphQL type definitions mirroring the service's wire contract. The
// schema is constructed once at startup and lives for the process lifetime.

var chatMessageInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChatMessageInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"role": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"content": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

var chatMessageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ChatMessage",
	Fields: graphql.Fields{
		"role":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var usageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usage",
	Fields: graphql.Fields{
		"prompt_tokens":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completion_tokens": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"total_tokens":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var chatResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ChatResponse",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"object":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"model":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"message": &graphql.Field{Type: graphql.NewNonNull(chatMessageType)},
		"usage":   &graphql.Field{Type: usageType},
	},
})

// NewSchema builds the executable schema bound to the given resolver
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: resolver.Health,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"chat": &graphql.Field{
				Type: graphql.NewNonNull(chatResponseType),
				Args: graphql.FieldConfigArgument{
					"messages": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(chatMessageInputType))),
					},
					"model": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"temperature": &graphql.ArgumentConfig{
						Type: graphql.Float,
					},
					"max_tokens": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
					"top_p": &graphql.ArgumentConfig{
						Type: graphql.Float,
					},
					"frequency_penalty": &graphql.ArgumentConfig{
						Type: graphql.Float,
					},
					"presence_penalty": &graphql.ArgumentConfig{
						Type: graphql.Float,
					},
				},
				Resolve: resolver.Chat,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
