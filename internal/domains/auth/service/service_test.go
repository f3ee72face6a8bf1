package service_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkease/config"
	"parkease/infras/otel/mocks"
	"parkease/internal/domains/auth/model/dto"
	"parkease/internal/domains/auth/service"
	userMocks "parkease/internal/domains/user/mocks"
	userModel "parkease/internal/domains/user/model"
	"parkease/shared/constant"
	"parkease/shared/failure"
	"parkease/shared/password"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.AdminCode = "ADMIN123"

	return cfg
}

func strPtr(s string) *string {
	return &s
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	tests := []struct {
		name       string
		req        dto.RegisterRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantMsg    string
		wantID     string
		wantRole   string
		wantName   string
	}{
		{
			name: "successful user registration",
			req:  dto.RegisterRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantID:   "USER001",
			wantRole: constant.RoleUser,
			wantName: constant.DefaultUserName,
		},
		{
			name: "admin code grants admin role",
			req:  dto.RegisterRequest{Email: "boss@example.com", Password: "secret123", AdminCode: "ADMIN123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(2), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantID:   "ADMIN002",
			wantRole: constant.RoleAdmin,
			wantName: constant.DefaultUserName,
		},
		{
			name: "wrong admin code falls back to user role",
			req:  dto.RegisterRequest{Email: "impostor@example.com", Password: "secret123", AdminCode: "NOTADMIN"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(3), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantID:   "USER003",
			wantRole: constant.RoleUser,
			wantName: constant.DefaultUserName,
		},
		{
			name: "display id grows past three digits untruncated",
			req:  dto.RegisterRequest{Email: "late@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(1234), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantID:   "USER1234",
			wantRole: constant.RoleUser,
			wantName: constant.DefaultUserName,
		},
		{
			name: "duplicate email",
			req:  dto.RegisterRequest{Email: "taken@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  constant.ResponseMsgEmailInUse,
		},
		{
			name: "duplicate email lost to a concurrent insert",
			req:  dto.RegisterRequest{Email: "race@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), &pq.Error{Code: "23505", Constraint: "users_email_key"})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantMsg:  constant.ResponseMsgEmailInUse,
		},
		{
			name: "exist check error",
			req:  dto.RegisterRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  dto.RegisterRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "display id write-back failure still registers",
			req:  dto.RegisterRequest{Email: "unlucky@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					Return(int64(4), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  false,
			wantID:   "",
			wantRole: constant.RoleUser,
			wantName: constant.DefaultUserName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantRole, res.Role)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, tt.req.Email, res.Email)

			if res.ID != "" {
				assert.Regexp(t, regexp.MustCompile(`^(USER|ADMIN)\d{3,}$`), res.ID)
			}
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		InsertReturningID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) (int64, error) {
			assert.NotEqual(t, "secret123", user.Password)
			assert.NoError(t, password.Verify("secret123", user.Password))

			return int64(1), nil
		})

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	hashed, err := password.Hash("secret123")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
		wantID    string
		wantName  string
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       1,
						CustomID: strPtr("USER001"),
						Email:    "jane@example.com",
						Password: hashed,
						FullName: strPtr("Jane Doe"),
						Role:     constant.RoleUser,
					}, nil)
			},
			wantErr:  false,
			wantID:   "USER001",
			wantName: "Jane Doe",
		},
		{
			name: "name falls back when missing",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       1,
						CustomID: strPtr("USER001"),
						Email:    "jane@example.com",
						Password: hashed,
						Role:     constant.RoleUser,
					}, nil)
			},
			wantErr:  false,
			wantID:   "USER001",
			wantName: constant.FallbackLoginName,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
			wantMsg:  constant.ResponseMsgInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "not-the-password"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       1,
						CustomID: strPtr("USER001"),
						Email:    "jane@example.com",
						Password: hashed,
						Role:     constant.RoleUser,
					}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
			wantMsg:  constant.ResponseMsgInvalidCredentials,
		},
		{
			name: "missing display id is backfilled",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       2,
						Email:    "jane@example.com",
						Password: hashed,
						Role:     constant.RoleUser,
					}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  false,
			wantID:   "USER002",
			wantName: constant.FallbackLoginName,
		},
		{
			name: "backfill failure still logs in",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{
						ID:       2,
						Email:    "jane@example.com",
						Password: hashed,
						Role:     constant.RoleUser,
					}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  false,
			wantID:   "",
			wantName: constant.FallbackLoginName,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "jane@example.com", Password: "secret123"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, tt.req.Email, res.Email)
		})
	}
}

func TestAuthService_Login_UniformFailureMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	hashed, err := password.Hash("secret123")
	assert.NoError(t, err)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{}, nil)

	_, unknownEmailErr := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{
			ID:       1,
			Email:    "jane@example.com",
			CustomID: strPtr("USER001"),
			Password: hashed,
			Role:     constant.RoleUser,
		}, nil)

	_, wrongPasswordErr := svc.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "wrong"})

	assert.Error(t, unknownEmailErr)
	assert.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
	assert.Equal(t, failure.GetCode(unknownEmailErr), failure.GetCode(wrongPasswordErr))
}

func TestAuthService_LegacyPlaintextPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := testConfig()
	cfg.App.LegacyPlaintextPasswords = true

	svc := service.New(mockRepo, cfg, mockOtel)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	mockRepo.EXPECT().
		InsertReturningID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) (int64, error) {
			assert.Equal(t, "secret123", user.Password)

			return int64(1), nil
		})

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "jane@example.com", Password: "secret123"})
	assert.NoError(t, err)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(userModel.User{
			ID:       1,
			CustomID: strPtr("USER001"),
			Email:    "jane@example.com",
			Password: "secret123",
			Role:     constant.RoleUser,
		}, nil)

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "USER001", res.ID)
}
