package session

import (
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/core/guard"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the single source of truth for who is logged in, for one browser
// on the server or one user of the CLI. Memory and durable storage always
// hold either a full session or nothing.
type Store struct {
	mu      sync.RWMutex
	user    *models.User
	token   string
	loading bool

	storage         contracts.DurableStorage
	authService     contracts.AuthService
	recorder        contracts.SessionEventRecorder
	portalSessionID string
	now             func() time.Time
	log             *zap.Logger
}

type Option func(*Store)

// WithRecorder writes login, logout and profile changes to an audit trail.
func WithRecorder(recorder contracts.SessionEventRecorder) Option {
	return func(s *Store) {
		s.recorder = recorder
	}
}

func WithPortalSessionID(portalSessionID string) Option {
	return func(s *Store) {
		s.portalSessionID = portalSessionID
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns a store in the loading state. Call Rehydrate before
// consulting it.
func NewStore(storage contracts.DurableStorage, authService contracts.AuthService, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		loading:     true,
		storage:     storage,
		authService: authService,
		now:         time.Now,
		log:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rehydrate restores the session from durable storage. Partial, unparsable,
// wrongly-roled or expired records are removed and the store ends up
// unauthenticated. Only storage I/O failures are returned. Calling it again
// with the same storage yields the same state.
func (s *Store) Rehydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	s.user, s.token = nil, ""

	token, err := s.storage.Get(ctx, constvars.StorageKeyToken)
	if err != nil {
		return err
	}
	rawUser, err := s.storage.Get(ctx, constvars.StorageKeyUser)
	if err != nil {
		return err
	}
	if token == "" && rawUser == "" {
		return nil
	}

	user, ok := decodeUser(rawUser)
	if token == "" || !ok {
		s.log.Info("session.Store.Rehydrate discarded an incomplete session",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingPortalSessionIDKey, s.portalSessionID),
		)
		return s.removeDurable(ctx)
	}

	if utils.TokenExpired(token, s.now()) {
		s.log.Info("session.Store.Rehydrate discarded an expired token",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingUserIDKey, user.ID),
		)
		s.record(ctx, user, models.SessionEventExpired)
		return s.removeDurable(ctx)
	}

	s.user, s.token = user, token
	return nil
}

// Login authenticates against the role's endpoint. On failure the store is
// untouched and the error is returned as is; the user has already been
// notified by the API client.
func (s *Store) Login(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	s.log.Info("session.Store.Login called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)

	result, err := s.authService.Login(ctx, role, &requests.Login{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.establish(ctx, result, role, models.SessionEventLogin); err != nil {
		return nil, err
	}

	s.log.Info("session.Store.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return s.User(), nil
}

// Register signs up a patient. A free-form age is read like parseInt and
// dropped when it does not start with a number.
func (s *Store) Register(ctx context.Context, form *requests.RegisterForm) (*models.User, error) {
	s.log.Info("session.Store.Register called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)

	payload := &requests.RegisterPayload{
		FullName: form.FullName,
		Email:    form.Email,
		Password: form.Password,
		Gender:   form.Gender,
		Phone:    form.Phone,
		Address:  form.Address,
	}
	if form.Age != "" {
		payload.Age = utils.ParseLeadingInt(form.Age)
	}

	result, err := s.authService.Register(ctx, payload)
	if err != nil {
		return nil, err
	}
	if err := s.establish(ctx, result, models.RolePatient, models.SessionEventRegister); err != nil {
		return nil, err
	}

	s.log.Info("session.Store.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingUserIDKey, result.User.ID),
	)
	return s.User(), nil
}

// Logout forgets the session locally. The backend is not called.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.user
	s.user, s.token = nil, ""
	if err := s.removeDurable(ctx); err != nil {
		return err
	}
	if previous != nil {
		s.record(ctx, previous, models.SessionEventLogout)
	}
	return nil
}

// UpdateUser replaces the stored profile and keeps the token.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return exceptions.ErrNotAuthenticated()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return exceptions.ErrNotAuthenticated()
	}
	// The role is fixed for the lifetime of a session.
	user = cloneUser(user)
	if s.user != nil {
		if user.Role == "" {
			user.Role = s.user.Role
		}
		if user.Role != s.user.Role {
			return exceptions.ErrRoleMismatch(s.user.Role.String(), user.Role.String())
		}
	}
	if !user.Role.Valid() {
		return exceptions.ErrRoleMismatch("", user.Role.String())
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.storage.Set(ctx, constvars.StorageKeyUser, string(raw)); err != nil {
		return err
	}
	s.user = user
	s.record(ctx, user, models.SessionEventProfileUpdated)
	return nil
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// GuardState is the snapshot route guards decide on.
func (s *Store) GuardState() guard.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return guard.State{Loading: s.loading, User: cloneUser(s.user)}
}

// establish persists a fresh session. Durable writes finish before memory
// is updated, so IsAuthenticated never runs ahead of storage.
func (s *Store) establish(ctx context.Context, result *models.Session, role models.Role, kind models.SessionEventKind) error {
	if result == nil || result.User == nil || result.Token == "" {
		return exceptions.ErrServerProcess(errors.New("empty session from backend"))
	}
	user := cloneUser(result.User)
	if user.Role == "" {
		user.Role = role
	}
	if user.Role != role {
		return exceptions.ErrRoleMismatch(role.String(), user.Role.String())
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, constvars.StorageKeyUser, string(raw)); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, constvars.StorageKeyToken, result.Token); err != nil {
		return errors.Join(err, s.storage.Remove(ctx, constvars.StorageKeyUser))
	}
	s.user, s.token = user, result.Token
	s.loading = false
	s.record(ctx, user, kind)
	return nil
}

func (s *Store) removeDurable(ctx context.Context) error {
	errUser := s.storage.Remove(ctx, constvars.StorageKeyUser)
	errToken := s.storage.Remove(ctx, constvars.StorageKeyToken)
	return errors.Join(errUser, errToken)
}

func (s *Store) record(ctx context.Context, user *models.User, kind models.SessionEventKind) {
	if s.recorder == nil {
		return
	}
	event := &models.SessionEvent{
		ID:              uuid.NewString(),
		PortalSessionID: s.portalSessionID,
		UserID:          user.ID,
		Role:            user.Role,
		Kind:            kind,
		At:              s.now().UTC(),
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		s.log.Warn("session.Store failed to record session event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventKindKey, string(kind)),
			zap.Error(err),
		)
	}
}

func decodeUser(raw string) (*models.User, bool) {
	if raw == "" {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	if !user.Role.Valid() {
		return nil, false
	}
	return &user, true
}

func cloneUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}
	clone := *user
	if user.Age != nil {
		age := *user.Age
		clone.Age = &age
	}
	return &clone
}
