// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Upstream fetches JSON documents from the content API
	Upstream JSONFetcher

	// Logger provides structured logging
	Logger Logger
}
