// Package service provides the registry that routes tool calls to service
// providers.
//
// A tool ID has the form "<service>.<tool>"; the registry picks the provider
// registered under <service> and hands it the full tool ID. Discover ranks
// services against a free-text query by keyword, capability and category
// matches.
//
//	registry := service.NewRegistry()
//	registry.Register(mathProvider)
//	result, err := registry.Execute(ctx, "math.sqrt", params, appCtx)
package service
