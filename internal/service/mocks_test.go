package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/auroracrm/console/internal/adapters/memory"
	"github.com/auroracrm/console/internal/domain/model"
	"github.com/auroracrm/console/internal/mocks"
	"github.com/auroracrm/console/internal/ports"
)

func TestAuthService_SignInPassesCredentialsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockCredentialAuthenticator(ctrl)
	mockAuth.EXPECT().
		Login(gomock.Any(), "ada", "pw").
		Return(ports.AuthResult{Success: false, Message: "nope"})

	store := memory.NewSessionStore()
	sessions := NewSessionService(SessionServiceOptions{Store: store})
	svc := NewAuthService(AuthServiceOptions{
		Authenticator: mockAuth,
		Sessions:      sessions,
		Store:         store,
		Remembered:    store,
	})

	res, err := svc.SignIn(context.Background(), "sid-1", SignInInput{Username: "ada", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "nope", res.Message)
}

func TestTicketService_ResolveForwardsArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockTicketAPI(ctrl)
	mockAPI.EXPECT().
		Resolve(gomock.Any(), "42", "replaced meter").
		Return(nil)

	svc := NewTicketService(TicketServiceOptions{Tickets: mockAPI})
	require.NoError(t, svc.Resolve(context.Background(), "42", "replaced meter"))
}

func TestTicketService_QueuePassesQueryThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAPI := mocks.NewMockTicketAPI(ctrl)
	mockAPI.EXPECT().
		Queue(gomock.Any(), model.QueueQuery{DepartmentID: "d1", PageNumber: 2, Status: "New"}).
		Return(&model.QueuePage{PageNumber: 2}, nil)

	svc := NewTicketService(TicketServiceOptions{Tickets: mockAPI})
	page, err := svc.Queue(context.Background(), model.QueueQuery{DepartmentID: "d1", PageNumber: 2, Status: "New"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.PageNumber)
}
