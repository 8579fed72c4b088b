package apiclient

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/dto/responses"
	"docai-portal/internal/pkg/exceptions"
	"errors"
	"net/http"
)

var errMissingSession = errors.New("response carries no user and token")

var loginPaths = map[models.Role]string{
	models.RolePatient: constvars.BackendPathPatientLogin,
	models.RoleDoctor:  constvars.BackendPathDoctorLogin,
	models.RoleAdmin:   constvars.BackendPathAdminLogin,
}

type authService struct {
	client *Client
}

func NewAuthService(client *Client) contracts.AuthService {
	return &authService{client: client}
}

func (s *authService) Register(ctx context.Context, request *requests.RegisterPayload) (*models.Session, error) {
	var envelope responses.AuthEnvelope
	err := s.client.do(ctx, http.MethodPost, constvars.BackendPathRegister, nil, request, &envelope)
	if err != nil {
		return nil, err
	}
	return sessionFromEnvelope(&envelope, constvars.BackendPathRegister)
}

func (s *authService) Login(ctx context.Context, role models.Role, request *requests.Login) (*models.Session, error) {
	path, ok := loginPaths[role]
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	var envelope responses.AuthEnvelope
	err := s.client.do(ctx, http.MethodPost, path, nil, request, &envelope)
	if err != nil {
		return nil, err
	}
	return sessionFromEnvelope(&envelope, path)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	var envelope responses.UserEnvelope
	err := s.client.do(ctx, http.MethodGet, constvars.BackendPathMe, nil, nil, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	if envelope.User != nil {
		return envelope.User, nil
	}
	return nil, exceptions.ErrDecodeResponse(errMissingSession, constvars.BackendPathMe)
}

// UpdateProfile returns the user echoed by the backend, or nil when the
// backend only acknowledges the change.
func (s *authService) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.User, error) {
	var envelope responses.UserEnvelope
	err := s.client.do(ctx, http.MethodPut, constvars.BackendPathProfile, nil, request, &envelope)
	if err != nil {
		return nil, err
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}
	return envelope.User, nil
}

func (s *authService) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return s.client.do(ctx, http.MethodPut, constvars.BackendPathChangePassword, nil, request, nil)
}

// sessionFromEnvelope accepts the flat {user, token} shape first and falls
// back to {data: {user, token}}.
func sessionFromEnvelope(envelope *responses.AuthEnvelope, path string) (*models.Session, error) {
	if envelope.User != nil && envelope.Token != "" {
		return &models.Session{User: envelope.User, Token: envelope.Token}, nil
	}
	if envelope.Data != nil && envelope.Data.User != nil && envelope.Data.Token != "" {
		return &models.Session{User: envelope.Data.User, Token: envelope.Data.Token}, nil
	}
	return nil, exceptions.ErrDecodeResponse(errMissingSession, path)
}
