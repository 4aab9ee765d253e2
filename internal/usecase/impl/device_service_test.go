package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/service"
	mockRepo "excerpta/internal/mocks/repository"
	mockSvc "excerpta/internal/mocks/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	hasher     *mockSvc.MockPasswordHasher
	keyGen     *mockSvc.MockKeyGenerator
	qrService  *mockSvc.MockQRCodeService
	clock      *mockSvc.MockClock
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	keyGen := mockSvc.NewMockKeyGenerator(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	clock := mockSvc.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Hasher:     hasher,
		KeyGen:     keyGen,
		QRService:  qrService,
		Clock:      clock,
		Logger:     logger,
	})

	return deviceServiceFixtures{
		service:    svc,
		deviceRepo: deviceRepo,
		hasher:     hasher,
		keyGen:     keyGen,
		qrService:  qrService,
		clock:      clock,
	}
}

func TestDeviceService_CreateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.keyGen.EXPECT().NewKey(service.KeyPrefixLive).Return("phm_live_rawkey", nil)
	fx.hasher.EXPECT().Hash("phm_live_rawkey").Return("key_hash", nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			device.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.CreateDevice(ctx, userID, "  Kobo Libra  ")

	require.NoError(t, err)
	assert.Equal(t, "Kobo Libra", output.Device.Name)
	assert.Equal(t, service.KeyPrefixLive, output.Device.KeyPrefix)
	assert.Equal(t, "key_hash", output.Device.KeyHash)
	assert.Equal(t, "phm_live_rawkey", output.RawKey)
}

func TestDeviceService_CreateDevice_ReservedName(t *testing.T) {
	fx := createTestDeviceService(t)

	output, err := fx.service.CreateDevice(context.Background(), uuid.New(), entity.WebDeviceName)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_CreateDevice_EmptyName(t *testing.T) {
	fx := createTestDeviceService(t)

	output, err := fx.service.CreateDevice(context.Background(), uuid.New(), "   ")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RollDeviceKey_ReplacesHash(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    userID,
			Name:      "Kobo Libra",
			KeyPrefix: service.KeyPrefixLive,
			KeyHash:   "old_hash",
		}, nil)
	fx.keyGen.EXPECT().NewKey(service.KeyPrefixLive).Return("phm_live_newkey", nil)
	fx.hasher.EXPECT().Hash("phm_live_newkey").Return("new_hash", nil)
	fx.deviceRepo.EXPECT().UpdateKeyHash(ctx, deviceID, "new_hash").Return(nil)

	output, err := fx.service.RollDeviceKey(ctx, userID, deviceID)

	require.NoError(t, err)
	assert.Equal(t, "phm_live_newkey", output.RawKey)
	assert.Equal(t, "new_hash", output.Device.KeyHash)
}

func TestDeviceService_RollDeviceKey_WebDeviceProtected(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    userID,
			Name:      entity.WebDeviceName,
			KeyPrefix: service.KeyPrefixWeb,
		}, nil)

	output, err := fx.service.RollDeviceKey(ctx, userID, deviceID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWebDeviceProtected))
}

func TestDeviceService_RollDeviceKey_OtherUsersDeviceHidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    uuid.New(),
			Name:      "Kobo Libra",
			KeyPrefix: service.KeyPrefixLive,
		}, nil)

	output, err := fx.service.RollDeviceKey(ctx, uuid.New(), deviceID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_RevokeDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    userID,
			Name:      "Kobo Libra",
			KeyPrefix: service.KeyPrefixLive,
		}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.deviceRepo.EXPECT().RevokeDevice(ctx, deviceID, now).Return(nil)

	err := fx.service.RevokeDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_RevokeDevice_AlreadyRevokedIsNoOp(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	revokedAt := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    userID,
			Name:      "Kobo Libra",
			KeyPrefix: service.KeyPrefixLive,
			RevokedAt: &revokedAt,
		}, nil)

	err := fx.service.RevokeDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_RevokeDevice_WebDeviceProtected(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.Device{
			ID:        deviceID,
			UserID:    userID,
			Name:      entity.WebDeviceName,
			KeyPrefix: service.KeyPrefixWeb,
		}, nil)

	err := fx.service.RevokeDevice(ctx, userID, deviceID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrWebDeviceProtected))
}

func TestDeviceService_ResolveByKey_MatchStampsLastUsed(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	matching := &entity.Device{ID: uuid.New(), UserID: uuid.New(), Name: "Kobo Libra", KeyHash: "hash_b"}
	other := &entity.Device{ID: uuid.New(), UserID: uuid.New(), Name: "Boox", KeyHash: "hash_a"}

	fx.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.Device{other, matching}, nil)
	fx.hasher.EXPECT().Check("phm_live_rawkey", "hash_a").Return(false)
	fx.hasher.EXPECT().Check("phm_live_rawkey", "hash_b").Return(true)
	fx.clock.EXPECT().Now().Return(now)
	fx.deviceRepo.EXPECT().StampLastUsed(ctx, matching.ID, now).Return(nil)

	device, err := fx.service.ResolveByKey(ctx, "phm_live_rawkey")

	require.NoError(t, err)
	assert.Equal(t, matching.ID, device.ID)
	require.NotNil(t, device.LastUsedAt)
	assert.Equal(t, now, *device.LastUsedAt)
}

func TestDeviceService_ResolveByKey_UnknownKey(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	active := &entity.Device{ID: uuid.New(), KeyHash: "hash_a"}

	fx.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.Device{active}, nil)
	fx.hasher.EXPECT().Check("phm_live_stale", "hash_a").Return(false)

	device, err := fx.service.ResolveByKey(ctx, "phm_live_stale")

	require.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestDeviceService_ResolveByKey_EmptyKey(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.ResolveByKey(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, Name: entity.WebDeviceName},
		{ID: uuid.New(), UserID: userID, Name: "Kobo Libra"},
	}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_EnrollmentQR(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.qrService.EXPECT().GenerateEnrollmentQR("phm_live_rawkey").Return(png, nil)

	got, err := fx.service.EnrollmentQR(ctx, "phm_live_rawkey")

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

// The repository only hands back non-revoked devices, so a rolled key stops
// matching as soon as the stored hash changes. This pins the check order: the
// presented key is verified against the stored hash, nothing else.
func TestDeviceService_ResolveByKey_RolledKeyNoLongerMatches(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), UserID: uuid.New(), Name: "Kobo Libra", KeyHash: "rolled_hash"}

	fx.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.Device{device}, nil)
	fx.hasher.EXPECT().Check("phm_live_oldkey", "rolled_hash").Return(false)

	got, err := fx.service.ResolveByKey(ctx, "phm_live_oldkey")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
