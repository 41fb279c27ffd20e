package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rasoighar/backend/internal/logger"
	"github.com/rasoighar/backend/internal/middleware"
	"github.com/rasoighar/backend/internal/model"
)

// Sensor alert thresholds. Conditions are checked in priority order:
// fire, then gas, then weight; the first match wins.
const (
	gasAlertLevel    = 400
	weightAlertLevel = 200

	alertFire      = "Fire detected in kitchen!"
	alertGas       = "High gas concentration detected!"
	alertLowWeight = "Low weight detected – check inventory!"
)

var ErrInvalidDeviceCredentials = errors.New("invalid device credentials")

// IoTService handles sensor devices and their readings.
type IoTService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewIoTService creates a new IoTService instance
func NewIoTService(db *gorm.DB, jwtSecret string) *IoTService {
	return &IoTService{db: db, jwtSecret: jwtSecret}
}

// RegisterDevice stores a new device with a bcrypt hash of its secret.
func (s *IoTService) RegisterDevice(ctx context.Context, deviceID, name, secret string) (*model.Device, error) {
	if deviceID == "" {
		return nil, &model.ValidationError{Field: "deviceId", Message: "is required"}
	}
	if secret == "" {
		return nil, &model.ValidationError{Field: "secret", Message: "is required"}
	}

	var existing model.Device
	if err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&existing).Error; err == nil {
		return nil, &model.ValidationError{Field: "deviceId", Message: "is already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	device := model.Device{
		DeviceID:   deviceID,
		Name:       name,
		SecretHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

// IssueToken exchanges a device secret for a signed bearer token.
func (s *IoTService) IssueToken(ctx context.Context, deviceID, secret string) (string, error) {
	var device model.Device
	if err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return "", ErrInvalidDeviceCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(device.SecretHash), []byte(secret)); err != nil {
		return "", ErrInvalidDeviceCredentials
	}

	claims := jwt.MapClaims{
		"device_id": device.DeviceID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks a device bearer token and returns its claims.
func (s *IoTService) ValidateToken(tokenString string) (*middleware.DeviceClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		deviceID, ok := claims["device_id"].(string)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return &middleware.DeviceClaims{DeviceID: deviceID}, nil
	}
	return nil, errors.New("invalid token")
}

// RecordReading stores a sensor reading and derives its alert, if any.
func (s *IoTService) RecordReading(ctx context.Context, reading *model.SensorReading) (*model.SensorReading, error) {
	if reading.DeviceID == "" {
		return nil, &model.ValidationError{Field: "deviceId", Message: "is required"}
	}

	reading.Alert = DeriveAlert(reading.Fire, reading.Gas, reading.Weight)
	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, err
	}
	if reading.Alert != "" {
		logger.Warn("sensor alert",
			zap.String("device_id", reading.DeviceID),
			zap.String("alert", reading.Alert),
		)
	}
	return reading, nil
}

// LatestReadings returns the most recent readings, newest first.
func (s *IoTService) LatestReadings(ctx context.Context, limit int) ([]model.SensorReading, error) {
	if limit <= 0 {
		limit = 5
	}
	var readings []model.SensorReading
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

// DeriveAlert maps a reading onto its alert text. Fire outranks gas,
// gas outranks low weight; a calm reading produces no alert.
func DeriveAlert(fire bool, gas, weight float64) string {
	switch {
	case fire:
		return alertFire
	case gas > gasAlertLevel:
		return alertGas
	case weight < weightAlertLevel:
		return alertLowWeight
	default:
		return ""
	}
}
