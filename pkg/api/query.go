package api

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// ExecuteQuery runs a GraphQL query string against the schema and returns
// the raw result. Query errors are reported in the result, not as a Go
// error; only an unexecutable request fails outright.
func ExecuteQuery(schema graphql.Schema, query string) (*graphql.Result, error) {
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
	})
	if result == nil {
		return nil, fmt.Errorf("query execution returned no result")
	}
	return result, nil
}

// ExecuteQueryWithVariables runs a query with a variable map, for requests
// that parameterize IDs or calibration values instead of inlining them.
func ExecuteQueryWithVariables(schema graphql.Schema, query string, variables map[string]interface{}) (*graphql.Result, error) {
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
	if result == nil {
		return nil, fmt.Errorf("query execution returned no result")
	}
	return result, nil
}
