package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TejaVeta/Service-app/internal/data/entity"
	"github.com/TejaVeta/Service-app/internal/data/repository"
	"github.com/TejaVeta/Service-app/internal/dto/request"
	"github.com/TejaVeta/Service-app/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockOTPRepository struct {
	m    sync.Mutex
	otps []*entity.OTP
	err  error
}

func (m *mockOTPRepository) Create(_ context.Context, otp *entity.OTP) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	clone := *otp
	m.otps = append(m.otps, &clone)
	return nil
}

func (m *mockOTPRepository) FindLatestValid(_ context.Context, phone string) (*entity.OTP, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var latest *entity.OTP
	for _, otp := range m.otps {
		if otp.Phone != phone || otp.IsUsed || time.Now().After(otp.ExpiresAt) {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (m *mockOTPRepository) MarkAsUsed(_ context.Context, otpID uuid.UUID) error {
	m.m.Lock()
	defer m.m.Unlock()
	for _, otp := range m.otps {
		if otp.ID == otpID {
			otp.IsUsed = true
		}
	}
	return nil
}

type mockUserRepository struct {
	m     sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *entity.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepository) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, user := range m.users {
		if user.Phone == phone {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Update(_ context.Context, user *entity.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

type mockSessionRepository struct {
	m        sync.Mutex
	sessions map[string]*entity.Session
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*entity.Session)}
}

func (m *mockSessionRepository) Create(_ context.Context, session *entity.Session) error {
	m.m.Lock()
	defer m.m.Unlock()
	clone := *session
	m.sessions[session.Token.String()] = &clone
	return nil
}

func (m *mockSessionRepository) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	m.m.Lock()
	defer m.m.Unlock()
	session, ok := m.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (m *mockSessionRepository) Revoke(_ context.Context, token string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if session, ok := m.sessions[token]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func newAuthServiceForTest(otpRepo repository.OTPRepository, userRepo repository.UserRepository, sessionRepo repository.SessionRepository) AuthService {
	repo := &repository.Repository{
		OTP:     otpRepo,
		User:    userRepo,
		Session: sessionRepo,
	}
	config := &utils.Config{}
	config.App.Debug = true
	config.OTP.ExpiryMinutes = 10
	config.OTP.Length = 6
	return NewAuthService(repo, config, zap.NewNop())
}

func TestAuthLogin_GeneratesOTP(t *testing.T) {
	otpRepo := &mockOTPRepository{}
	svc := newAuthServiceForTest(otpRepo, newMockUserRepository(), newMockSessionRepository())

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	// Debug mode surfaces the code for testing
	assert.Len(t, resp.OTP, 6)
	require.Len(t, otpRepo.otps, 1)
	assert.Equal(t, "9876543210", otpRepo.otps[0].Phone)
	// The stored value is a hash, never the raw code
	assert.NotEqual(t, resp.OTP, otpRepo.otps[0].OTPHash)
	assert.True(t, utils.CheckOTPHash(resp.OTP, otpRepo.otps[0].OTPHash))
}

func TestAuthLogin_DebugOTPGoesToLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	repo := &repository.Repository{
		OTP:     &mockOTPRepository{},
		User:    newMockUserRepository(),
		Session: newMockSessionRepository(),
	}
	config := &utils.Config{}
	config.App.Debug = true
	config.OTP.ExpiryMinutes = 10
	config.OTP.Length = 6
	svc := NewAuthService(repo, config, zap.New(core))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	entries := logs.FilterMessage("OTP code").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, resp.OTP, entries[0].ContextMap()["otp"])
}

func TestAuthLogin_ValidationFailure(t *testing.T) {
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), newMockSessionRepository())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Phone: "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestAuthVerifyOTP_CreatesUserOnFirstLogin(t *testing.T) {
	otpRepo := &mockOTPRepository{}
	userRepo := newMockUserRepository()
	svc := newAuthServiceForTest(otpRepo, userRepo, newMockSessionRepository())
	ctx := context.Background()

	login, err := svc.Login(ctx, &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	auth, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: login.OTP})
	require.NoError(t, err)

	assert.NotEmpty(t, auth.Token)
	assert.True(t, auth.ExpiresAt.After(time.Now()))
	assert.Equal(t, "User 3210", auth.User.Name)
	assert.Equal(t, "9876543210", auth.User.Phone)
	assert.Equal(t, "English", auth.User.PreferredLanguage)
	assert.Equal(t, 1000.0, auth.User.WalletBalance)
}

func TestAuthVerifyOTP_ReusesExistingUser(t *testing.T) {
	otpRepo := &mockOTPRepository{}
	userRepo := newMockUserRepository()
	svc := newAuthServiceForTest(otpRepo, userRepo, newMockSessionRepository())
	ctx := context.Background()

	existing := &entity.User{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:              "Demo User",
		Phone:             "9876543210",
		PreferredLanguage: "English",
		WalletBalance:     5000.0,
	}
	require.NoError(t, userRepo.Create(ctx, existing))

	login, err := svc.Login(ctx, &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	auth, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: login.OTP})
	require.NoError(t, err)

	assert.Equal(t, existing.ID.String(), auth.User.ID)
	assert.Equal(t, "Demo User", auth.User.Name)
	assert.Equal(t, 5000.0, auth.User.WalletBalance)
	assert.Len(t, userRepo.users, 1)
}

func TestAuthVerifyOTP_WrongCode(t *testing.T) {
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), newMockSessionRepository())
	ctx := context.Background()

	_, err := svc.Login(ctx, &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: "000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired OTP")
}

func TestAuthVerifyOTP_CodeIsSingleUse(t *testing.T) {
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), newMockSessionRepository())
	ctx := context.Background()

	login, err := svc.Login(ctx, &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: login.OTP})
	require.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: login.OTP})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired OTP")
}

func TestAuthVerifyOTP_NoOutstandingCode(t *testing.T) {
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), newMockSessionRepository())

	_, err := svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{Phone: "9876543210", OTP: "123456"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired OTP")
}

func TestAuthLogout_RevokesSession(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), sessionRepo)
	ctx := context.Background()

	login, err := svc.Login(ctx, &request.LoginRequest{Phone: "9876543210"})
	require.NoError(t, err)
	auth, err := svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Phone: "9876543210", OTP: login.OTP})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Token))

	session, err := sessionRepo.FindValidSession(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthLogout_MalformedToken(t *testing.T) {
	svc := newAuthServiceForTest(&mockOTPRepository{}, newMockUserRepository(), newMockSessionRepository())

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token format")
}
