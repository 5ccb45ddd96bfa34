// Package mocks provides mock implementations for testing the console's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAuth := mocks.NewMockCredentialAuthenticator(ctrl)
//	mockAuth.EXPECT().Login(gomock.Any(), "ada", "pw").Return(ports.AuthResult{Success: true})
package mocks

// Generate mock for CredentialAuthenticator from internal/ports.
// This creates MockCredentialAuthenticator with Login and VerifyOTP.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_authenticator_mock.go github.com/auroracrm/console/internal/ports CredentialAuthenticator

// Generate mock for ProfileUpdater from internal/ports.
// This creates MockProfileUpdater with UpdateProfile.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_updater_mock.go github.com/auroracrm/console/internal/ports ProfileUpdater

// Generate mock for TicketAPI from internal/ports.
// This creates MockTicketAPI with Create, Get, Resolve, Queue.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ticket_api_mock.go github.com/auroracrm/console/internal/ports TicketAPI
