// Package integration combines circuit breaker and retry patterns for comprehensive
// fault tolerance around the battle core's filesystem-facing operations.
//
// This package provides ResilientExecutor which layers retry logic on top of
// circuit breaker protection, giving operations the benefits of both mechanisms:
// automatic retries for transient failures and fast-fail for persistent outages.
//
// # Execution Flow
//
// When executing an operation:
//
//  1. The retrier runs up to MaxAttempts attempts with exponential backoff
//  2. Each attempt goes through the circuit breaker
//  3. If the circuit is open, that attempt fails with ErrCircuitBreakerOpen
//     without calling the operation; the retrier retries it like any other
//     error and, once attempts run out, returns it wrapped
//  4. If the circuit allows, the operation runs and the circuit breaker
//     records its success/failure for state management
//
// # Creating Executors
//
// Create a custom executor with specific configuration:
//
//	cbConfig := resilience.CircuitBreakerConfig{
//	    MaxFailures: 5,
//	    Timeout:     30 * time.Second,
//	}
//	retryConfig := retry.RetryConfig{
//	    MaxAttempts:  3,
//	    InitialDelay: 100 * time.Millisecond,
//	}
//	executor := integration.NewResilientExecutor(cbConfig, retryConfig)
//
// # Executing Operations
//
// Wrap operations with combined protection:
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return callExternalAPI(ctx)
//	})
//
// # Pre-configured Executor
//
// FileSystemExecutor wraps on-disk reads with the filesystem circuit breaker
// config and a retry policy tuned for local/NFS-mounted files. It backs the
// dex package's default override loaders; pkg/battle.WithConfig builds its
// own executor from the caller's retry knobs instead:
//
//	err := integration.ExecuteFileSystemOperation(ctx, operation)
//
// # Statistics
//
// Query the circuit breaker's statistics (the retrier keeps none):
//
//	stats := executor.GetStats()
//	// Circuit breaker fields, each key prefixed with "circuit_breaker_"
package integration
