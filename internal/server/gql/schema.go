package gql

import (
	"context"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Resolver handles one top-level field. Arguments arrive coerced to plain Go
// values with variables already substituted.
type Resolver func(ctx context.Context, args map[string]any) (any, error)

// Schema is a plain dispatch table over the parsed query document. Resolvers
// are ordinary functions; there is no schema-library extension API in play,
// so nothing here can bypass the service layer's authorization decisions.
type Schema struct {
	queries   map[string]Resolver
	mutations map[string]Resolver
}

// Execute parses the request's query document and dispatches each top-level
// selection to its resolver. Fields resolve independently; one failing field
// nulls its own entry and appends an error, it does not abort the siblings.
func (s *Schema) Execute(ctx context.Context, req Request) Response {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return Response{Errors: []ErrorEntry{{Message: err.Error()}}}
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return Response{Errors: []ErrorEntry{{Message: "Operation not found in the query document"}}}
	}

	resolvers := s.queries
	if op.Operation == ast.Mutation {
		resolvers = s.mutations
	} else if op.Operation != ast.Query {
		return Response{Errors: []ErrorEntry{{Message: fmt.Sprintf("Unsupported operation type %q", op.Operation)}}}
	}

	vars := s.coerceVariables(op, req.Variables)

	resp := Response{Data: map[string]any{}}

	for _, selection := range op.SelectionSet {
		field, ok := selection.(*ast.Field)
		if !ok {
			resp.Errors = append(resp.Errors, ErrorEntry{Message: "Fragments are not supported at the top level"})
			continue
		}

		alias := field.Alias
		if alias == "" {
			alias = field.Name
		}

		resolver, ok := resolvers[field.Name]
		if !ok {
			resp.Data[alias] = nil
			resp.Errors = append(resp.Errors, ErrorEntry{
				Message: fmt.Sprintf("Unknown field %q", field.Name),
				Path:    []string{alias},
			})

			continue
		}

		args, err := fieldArguments(field, vars)
		if err != nil {
			resp.Data[alias] = nil
			resp.Errors = append(resp.Errors, ErrorEntry{Message: err.Error(), Path: []string{alias}})

			continue
		}

		result, err := resolver(ctx, args)
		if err != nil {
			resp.Data[alias] = nil
			resp.Errors = append(resp.Errors, ErrorEntry{Message: err.Error(), Path: []string{alias}})

			continue
		}

		resp.Data[alias] = result
	}

	return resp
}

// coerceVariables fills in declared defaults for variables the request left
// out. Unknown extra variables are ignored, matching the permissive stance of
// the HTTP transport.
func (s *Schema) coerceVariables(op *ast.OperationDefinition, provided map[string]any) map[string]any {
	vars := make(map[string]any, len(provided))
	for name, value := range provided {
		vars[name] = value
	}

	for _, def := range op.VariableDefinitions {
		if _, ok := vars[def.Variable]; ok || def.DefaultValue == nil {
			continue
		}

		value, err := def.DefaultValue.Value(nil)
		if err != nil {
			continue
		}

		vars[def.Variable] = value
	}

	return vars
}

func fieldArguments(field *ast.Field, vars map[string]any) (map[string]any, error) {
	args := make(map[string]any, len(field.Arguments))

	for _, arg := range field.Arguments {
		value, err := arg.Value.Value(vars)
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q: %w", arg.Name, err)
		}

		args[arg.Name] = value
	}

	return args, nil
}
