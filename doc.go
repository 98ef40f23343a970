// Package sigsci provides a native Go client for the Signal Sciences
// (Fastly NGWAF) dashboard REST API, together with a connector layer
// (see the connector subpackage) that maps vendor resources into
// normalized graph entities and relationships.
//
// # Features
//
//   - Service-based architecture for expandability
//   - Modern Go 1.25+ iterators for resource enumeration
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Per-client retry transport with rate-limit aware backoff
//
// # Quick Start
//
//	client, err := sigsci.NewClient(
//	    sigsci.WithCredentials("user@example.com", "password"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Enumerate corp users
//	for user, err := range client.Users.List(ctx, "acme") {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("User: %s (%s)\n", user.Name, user.Email)
//	}
//
// # Authentication
//
// The dashboard API uses short-lived bearer tokens obtained from the
// /auth endpoint. The client acquires a fresh token before every
// resource fetch and never caches one, so exactly one authentication
// round-trip precedes every resource call.
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	err := client.VerifyAuthentication(ctx)
//	if err != nil {
//	    var authErr *sigsci.AuthenticationError
//	    if errors.As(err, &authErr) {
//	        // Handle bad credentials
//	    }
//	}
//
// # Iteration
//
// Resource listings are exposed as iterators:
//
//	for corp, err := range client.Corps.List(ctx) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	corps, err := sigsci.Collect(client.Corps.List(ctx))
//
// The vendor API returns each collection in a single response; the
// iterators perform exactly one fetch and no pagination.
package sigsci
