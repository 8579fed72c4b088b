package session

import (
	"context"
	"errors"
	"docai-portal/internal/app/models"
	"docai-portal/internal/app/services/shared/durable"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/dto/requests"
	"docai-portal/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, request *requests.RegisterPayload) (*models.Session, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, role models.Role, request *requests.Login) (*models.Session, error) {
	args := m.Called(ctx, role, request)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (*models.User, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, request *requests.ChangePassword) error {
	return m.Called(ctx, request).Error(0)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, event *models.SessionEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockRecorder) ListByUser(ctx context.Context, userID string, limit int64) ([]models.SessionEvent, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]models.SessionEvent), args.Error(1)
}

func newStore(t *testing.T, auth *MockAuthService, opts ...Option) (*Store, func(key string) string, func(key, value string)) {
	t.Helper()
	storage := durable.NewMemoryStorage()
	store := NewStore(storage, auth, zap.NewNop(), opts...)
	get := func(key string) string {
		value, err := storage.Get(context.Background(), key)
		require.NoError(t, err)
		return value
	}
	set := func(key, value string) {
		require.NoError(t, storage.Set(context.Background(), key, value))
	}
	return store, get, set
}

func TestStoreLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor login stores user and token", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Login", ctx, models.RoleDoctor, &requests.Login{Email: "a@b.com", Password: "pw"}).
			Return(&models.Session{User: &models.User{ID: "1", FullName: "Dr. X", Role: models.RoleDoctor}, Token: "tok1"}, nil)
		store, get, _ := newStore(t, auth)
		require.NoError(t, store.Rehydrate(ctx))

		user, err := store.Login(ctx, "a@b.com", "pw", models.RoleDoctor)

		require.NoError(t, err)
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, models.RoleDoctor, user.Role)
		assert.Equal(t, models.RoleDoctor, store.User().Role)
		assert.Equal(t, "tok1", get(constvars.StorageKeyToken))
		assert.JSONEq(t, `{"id":"1","fullName":"Dr. X","email":"","role":"doctor"}`, get(constvars.StorageKeyUser))
		auth.AssertExpectations(t)
	})

	t.Run("failed login leaves the store untouched", func(t *testing.T) {
		auth := new(MockAuthService)
		backendErr := &exceptions.BackendError{Kind: exceptions.KindUnauthorized, StatusCode: http.StatusUnauthorized}
		auth.On("Login", ctx, models.RolePatient, mock.Anything).Return(nil, backendErr)
		store, get, _ := newStore(t, auth)
		require.NoError(t, store.Rehydrate(ctx))

		_, err := store.Login(ctx, "a@b.com", "bad", models.RolePatient)

		assert.Same(t, backendErr, err)
		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, get(constvars.StorageKeyToken))
	})

	t.Run("backend answering with another role is rejected", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Login", ctx, models.RoleAdmin, mock.Anything).
			Return(&models.Session{User: &models.User{ID: "2", Role: models.RolePatient}, Token: "tok2"}, nil)
		store, get, _ := newStore(t, auth)

		_, err := store.Login(ctx, "a@b.com", "pw", models.RoleAdmin)

		assert.Error(t, err)
		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, get(constvars.StorageKeyUser))
	})

	t.Run("login is recorded", func(t *testing.T) {
		auth := new(MockAuthService)
		recorder := new(MockRecorder)
		auth.On("Login", ctx, models.RolePatient, mock.Anything).
			Return(&models.Session{User: &models.User{ID: "3", Role: models.RolePatient}, Token: "tok3"}, nil)
		recorder.On("Record", ctx, mock.MatchedBy(func(event *models.SessionEvent) bool {
			return event.Kind == models.SessionEventLogin && event.UserID == "3" && event.PortalSessionID == "sid-1"
		})).Return(nil)
		store, _, _ := newStore(t, auth, WithRecorder(recorder), WithPortalSessionID("sid-1"))

		_, err := store.Login(ctx, "a@b.com", "pw", models.RolePatient)

		require.NoError(t, err)
		recorder.AssertExpectations(t)
	})
}

type MockDurableStorage struct {
	mock.Mock
}

func (m *MockDurableStorage) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockDurableStorage) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockDurableStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestStoreLoginRollback(t *testing.T) {
	ctx := context.Background()
	auth := new(MockAuthService)
	auth.On("Login", ctx, models.RolePatient, mock.Anything).
		Return(&models.Session{User: &models.User{ID: "1", Role: models.RolePatient}, Token: "tok1"}, nil)

	setErr := errors.New("disk full")
	removeErr := errors.New("read-only")
	storage := new(MockDurableStorage)
	storage.On("Set", ctx, constvars.StorageKeyUser, mock.Anything).Return(nil)
	storage.On("Set", ctx, constvars.StorageKeyToken, "tok1").Return(setErr)
	storage.On("Remove", ctx, constvars.StorageKeyUser).Return(removeErr)
	store := NewStore(storage, auth, zap.NewNop())

	_, err := store.Login(ctx, "a@b.com", "pw", models.RolePatient)

	require.Error(t, err)
	assert.ErrorIs(t, err, setErr)
	assert.ErrorIs(t, err, removeErr)
	assert.False(t, store.IsAuthenticated())
	storage.AssertExpectations(t)
}

func TestStoreRegister(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		age  string
		want *int
	}{
		{name: "numeric age", age: "42", want: intPtr(42)},
		{name: "age with suffix", age: "42yrs", want: intPtr(42)},
		{name: "unparsable age is dropped", age: "forty", want: nil},
		{name: "empty age is dropped", age: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			auth.On("Register", ctx, mock.MatchedBy(func(payload *requests.RegisterPayload) bool {
				return assert.ObjectsAreEqual(tt.want, payload.Age) && payload.Email == "p@b.com"
			})).Return(&models.Session{User: &models.User{ID: "p1", Role: models.RolePatient}, Token: "tok"}, nil)
			store, _, _ := newStore(t, auth)

			_, err := store.Register(ctx, &requests.RegisterForm{FullName: "Pat", Email: "p@b.com", Password: "secret", Age: tt.age})

			require.NoError(t, err)
			assert.True(t, store.IsAuthenticated())
			auth.AssertExpectations(t)
		})
	}
}

func TestStoreLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears memory and storage", func(t *testing.T) {
		store, get, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","role":"doctor"}`)
		require.NoError(t, store.Rehydrate(ctx))
		require.True(t, store.IsAuthenticated())

		require.NoError(t, store.Logout(ctx))

		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, get(constvars.StorageKeyToken))
		assert.Empty(t, get(constvars.StorageKeyUser))
	})

	t.Run("logout without a session", func(t *testing.T) {
		store, get, _ := newStore(t, new(MockAuthService))

		require.NoError(t, store.Logout(ctx))

		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, get(constvars.StorageKeyToken))
	})
}

func TestStoreRehydrate(t *testing.T) {
	ctx := context.Background()

	t.Run("loading until rehydrated", func(t *testing.T) {
		store, _, _ := newStore(t, new(MockAuthService))
		assert.True(t, store.IsLoading())
		assert.True(t, store.GuardState().Loading)

		require.NoError(t, store.Rehydrate(ctx))
		assert.False(t, store.IsLoading())
	})

	t.Run("idempotent", func(t *testing.T) {
		store, _, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","fullName":"Dr. X","role":"doctor"}`)

		require.NoError(t, store.Rehydrate(ctx))
		first := store.User()
		require.NoError(t, store.Rehydrate(ctx))

		assert.Equal(t, first, store.User())
		assert.Equal(t, "Dr. X", store.User().FullName)
	})

	invalid := []struct {
		name  string
		token string
		user  string
	}{
		{name: "unparsable user", token: "tok1", user: "{not json"},
		{name: "unknown role", token: "tok1", user: `{"id":"1","role":"nurse"}`},
		{name: "token without user", token: "tok1"},
		{name: "user without token", user: `{"id":"1","role":"patient"}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			store, get, set := newStore(t, new(MockAuthService))
			if tt.token != "" {
				set(constvars.StorageKeyToken, tt.token)
			}
			if tt.user != "" {
				set(constvars.StorageKeyUser, tt.user)
			}

			require.NoError(t, store.Rehydrate(ctx))

			assert.False(t, store.IsAuthenticated())
			assert.Empty(t, get(constvars.StorageKeyToken))
			assert.Empty(t, get(constvars.StorageKeyUser))
		})
	}

	t.Run("expired jwt is discarded", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}).SignedString([]byte("k"))
		require.NoError(t, err)
		store, get, set := newStore(t, new(MockAuthService), WithClock(func() time.Time { return now }))
		set(constvars.StorageKeyToken, token)
		set(constvars.StorageKeyUser, `{"id":"1","role":"patient"}`)

		require.NoError(t, store.Rehydrate(ctx))

		assert.False(t, store.IsAuthenticated())
		assert.Empty(t, get(constvars.StorageKeyToken))
	})
}

func TestStoreUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the token", func(t *testing.T) {
		store, get, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","fullName":"Old","role":"patient"}`)
		require.NoError(t, store.Rehydrate(ctx))

		require.NoError(t, store.UpdateUser(ctx, &models.User{ID: "1", FullName: "New", Role: models.RolePatient}))

		assert.Equal(t, "New", store.User().FullName)
		assert.Equal(t, "tok1", get(constvars.StorageKeyToken))
		assert.Contains(t, get(constvars.StorageKeyUser), `"fullName":"New"`)
	})

	t.Run("requires a session", func(t *testing.T) {
		store, _, _ := newStore(t, new(MockAuthService))
		require.NoError(t, store.Rehydrate(ctx))

		assert.Error(t, store.UpdateUser(ctx, &models.User{ID: "1"}))
	})

	t.Run("rejects a role change", func(t *testing.T) {
		store, get, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","fullName":"Old","role":"patient"}`)
		require.NoError(t, store.Rehydrate(ctx))

		err := store.UpdateUser(ctx, &models.User{ID: "1", FullName: "Old", Role: models.RoleAdmin})

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, models.RolePatient, store.User().Role)
		assert.Contains(t, get(constvars.StorageKeyUser), `"role":"patient"`)
	})

	t.Run("rejects an unknown role and stays rehydratable", func(t *testing.T) {
		store, _, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","fullName":"Old","role":"patient"}`)
		require.NoError(t, store.Rehydrate(ctx))

		require.Error(t, store.UpdateUser(ctx, &models.User{ID: "1", Role: models.Role("Patient")}))

		require.NoError(t, store.Rehydrate(ctx))
		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, models.RolePatient, store.User().Role)
	})

	t.Run("empty role keeps the current role", func(t *testing.T) {
		store, get, set := newStore(t, new(MockAuthService))
		set(constvars.StorageKeyToken, "tok1")
		set(constvars.StorageKeyUser, `{"id":"1","fullName":"Old","role":"patient"}`)
		require.NoError(t, store.Rehydrate(ctx))

		require.NoError(t, store.UpdateUser(ctx, &models.User{ID: "1", FullName: "New"}))

		assert.Equal(t, models.RolePatient, store.User().Role)
		assert.Contains(t, get(constvars.StorageKeyUser), `"role":"patient"`)
	})
}

func TestContext(t *testing.T) {
	store, _, _ := newStore(t, new(MockAuthService))

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	found, ok := FromContext(WithStore(context.Background(), store))
	assert.True(t, ok)
	assert.Same(t, store, found)
}

func intPtr(v int) *int {
	return &v
}
