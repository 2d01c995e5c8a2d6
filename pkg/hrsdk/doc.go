/*
Package hrsdk provides a client SDK for interacting with the Dayflow HR service.

# Overview

The hrsdk package implements a typed HTTP client for the Dayflow HR service.
It provides both unauthenticated operations (via SDKClient) and authenticated
operations (via Session).

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations bound to a bearer token

Create an SDKClient to interact with public endpoints and to sign in or sign up:

	client := hrsdk.NewSDKClient("https://hr.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Sign in to create a session
	session, err := client.SignIn(ctx, "admin@dayflow.com", "admin123")

Use a Session for authenticated operations:

	// Who am I?
	me, err := session.CurrentSession(ctx)

	// Update my profile
	updated, err := session.UpdateProfile(ctx, hrsdk.ProfileUpdateRequest{
		Phone: hrsdk.String("+61 400 000 000"),
	})

	// List the directory (requires the admin role)
	employees, err := session.ListEmployees(ctx)

	// Sign out when done
	err = session.SignOut(ctx)

# Error Handling

Server-side failures are returned as *APIError values carrying the HTTP status
code and the machine-readable error code from the response body:

	session, err := client.SignIn(ctx, email, password)
	if err != nil {
		var apiErr *hrsdk.APIError
		if errors.As(err, &apiErr) && apiErr.Code == hrsdk.ErrorCodeInvalidCredentials {
			// Wrong email or password. The service deliberately does not
			// say which, so neither should the caller.
		}
		return err
	}

# Thread Safety

Sessions are safe for concurrent use. Multiple goroutines can share a single
Session and make authenticated requests concurrently.
*/
package hrsdk
