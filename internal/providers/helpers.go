package providers

import (
	"context"

	"github.com/kivkovic/fnsh/internal/shared/types"
)

// Provider is the interface every capability provider implements.
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// stringParam extracts a required string parameter.
func stringParam(params map[string]interface{}, name string) (string, bool) {
	v, ok := params[name].(string)
	return v, ok && v != ""
}

// boolParam extracts an optional boolean parameter.
func boolParam(params map[string]interface{}, name string) bool {
	v, _ := params[name].(bool)
	return v
}

// intParam extracts an optional numeric parameter; JSON and goja both
// deliver numbers as float64.
func intParam(params map[string]interface{}, name string) (int, bool) {
	switch v := params[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

// stringSliceParam extracts a required array-of-strings parameter.
func stringSliceParam(params map[string]interface{}, name string) ([]string, bool) {
	raw, ok := params[name].([]interface{})
	if !ok {
		if direct, ok := params[name].([]string); ok {
			return direct, true
		}
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// stringMapParam extracts an optional string-map parameter.
func stringMapParam(params map[string]interface{}, name string) map[string]string {
	raw, ok := params[name].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
