package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "excerpta/internal/delivery/context"
	"excerpta/internal/domain/entity"
	domainerrors "excerpta/internal/domain/errors"
	"excerpta/internal/domain/repository"
	"excerpta/internal/domain/service"
	"excerpta/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	hasher     service.PasswordHasher
	keyGen     service.KeyGenerator
	qrService  service.QRCodeService
	clock      service.Clock
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Hasher     service.PasswordHasher
	KeyGen     service.KeyGenerator
	QRService  service.QRCodeService
	Clock      service.Clock
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		hasher:     params.Hasher,
		keyGen:     params.KeyGen,
		qrService:  params.QRService,
		clock:      params.Clock,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDevices returns every device of the user, revoked ones included.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// CreateDevice registers a named device and mints its key. The raw key is
// returned once; only the hash is stored.
func (srv *deviceService) CreateDevice(ctx context.Context, userID uuid.UUID, name string) (*usecase.DeviceKeyOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "device name must not be empty")
	}
	if name == entity.WebDeviceName {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "device name %q is reserved", entity.WebDeviceName)
	}

	rawKey, err := srv.keyGen.NewKey(service.KeyPrefixLive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint device key")
	}

	keyHash, err := srv.hasher.Hash(rawKey)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash device key")
	}

	device := &entity.Device{
		UserID:    userID,
		Name:      name,
		KeyPrefix: service.KeyPrefixLive,
		KeyHash:   keyHash,
	}
	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Info("Device created", slog.Any("userID", userID), slog.Any("deviceID", device.ID), slog.String("name", name))

	return &usecase.DeviceKeyOutput{Device: device, RawKey: rawKey}, nil
}

// RollDeviceKey replaces a device's key with a fresh one. The old key stops
// authenticating the moment the new hash is stored.
func (srv *deviceService) RollDeviceKey(ctx context.Context, userID, deviceID uuid.UUID) (*usecase.DeviceKeyOutput, error) {
	device, err := srv.findOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}
	if device.IsWeb() {
		return nil, errors.Wrap(domainerrors.ErrWebDeviceProtected, "web device key cannot be rolled")
	}
	if device.IsRevoked() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "revoked device key cannot be rolled")
	}

	rawKey, err := srv.keyGen.NewKey(device.KeyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint device key")
	}

	keyHash, err := srv.hasher.Hash(rawKey)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash device key")
	}

	if err := srv.deviceRepo.UpdateKeyHash(ctx, device.ID, keyHash); err != nil {
		return nil, errors.Wrap(err, "failed to update device key hash")
	}
	device.KeyHash = keyHash

	srv.log(ctx).Info("Device key rolled", slog.Any("userID", userID), slog.Any("deviceID", device.ID))

	return &usecase.DeviceKeyOutput{Device: device, RawKey: rawKey}, nil
}

// RevokeDevice tombstones a device. Revoking an already-revoked device is a no-op.
func (srv *deviceService) RevokeDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.findOwnedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}
	if device.IsWeb() {
		return errors.Wrap(domainerrors.ErrWebDeviceProtected, "web device cannot be revoked")
	}
	if device.IsRevoked() {
		return nil
	}

	if err := srv.deviceRepo.RevokeDevice(ctx, device.ID, srv.clock.Now()); err != nil {
		return errors.Wrap(err, "failed to revoke device")
	}

	srv.log(ctx).Info("Device revoked", slog.Any("userID", userID), slog.Any("deviceID", device.ID))

	return nil
}

// EnrollmentQR renders a raw device key as a PNG QR code.
func (srv *deviceService) EnrollmentQR(ctx context.Context, rawKey string) ([]byte, error) {
	png, err := srv.qrService.GenerateEnrollmentQR(rawKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate enrollment QR code")
	}

	return png, nil
}

// ResolveByKey authenticates a raw device key. Only salted hashes are stored,
// so the key is verified against every active device until one matches.
func (srv *deviceService) ResolveByKey(ctx context.Context, rawKey string) (*entity.Device, error) {
	if rawKey == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "missing device key")
	}

	devices, err := srv.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	for _, device := range devices {
		if srv.hasher.Check(rawKey, device.KeyHash) {
			now := srv.clock.Now()
			if err := srv.deviceRepo.StampLastUsed(ctx, device.ID, now); err != nil {
				srv.log(ctx).Warn("Failed to stamp device last_used_at", slog.Any("deviceID", device.ID), slog.Any("error", err))
			} else {
				device.LastUsedAt = &now
			}

			return device, nil
		}
	}

	return nil, errors.Wrap(domainerrors.ErrUnauthorized, "unknown device key")
}

func (srv *deviceService) findOwnedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}
	// Hide other users' devices instead of admitting they exist.
	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	}

	return device, nil
}
