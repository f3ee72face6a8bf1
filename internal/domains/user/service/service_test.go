package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"parkease/config"
	"parkease/infras/otel/mocks"
	userMocks "parkease/internal/domains/user/mocks"
	"parkease/internal/domains/user/model"
	"parkease/internal/domains/user/service"
	cacheMocks "parkease/shared/cache/mocks"
	"parkease/shared/constant"
	"parkease/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		email     string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantMsg   string
		wantName  string
	}{
		{
			name:  "cache hit skips the repository",
			email: "jane@example.com",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "profile found",
			email: "jane@example.com",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{
						ID:            1,
						CustomID:      strPtr("USER001"),
						Email:         "jane@example.com",
						FullName:      strPtr("Jane Doe"),
						Role:          constant.RoleUser,
						WalletBalance: 120.50,
						LoyaltyPoints: 40,
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:  false,
			wantName: "Jane Doe",
		},
		{
			name:  "user not found",
			email: "nobody@example.com",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
			wantMsg:  constant.ResponseMsgUserNotFound,
		},
		{
			name:  "repository error",
			email: "jane@example.com",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetProfile(context.Background(), tt.email)

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

			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, res.Name)
				assert.Equal(t, tt.email, res.Email)
				assert.Equal(t, 120.50, res.WalletBalance)
				assert.Equal(t, 40, res.LoyaltyPoints)
			}
		})
	}
}
