package services

import "errors"

var ErrInvalidWaterAmount = errors.New("water amount must be positive")

// WaterStore is the key-value interface behind the running milliliter
// counter. The counter only grows until an explicit reset; there is no
// automatic day-boundary rollover.
type WaterStore interface {
	Get(userID uint) (int, error)
	Set(userID uint, milliliters int) error
}

type WaterService struct {
	store WaterStore
}

func NewWaterService(store WaterStore) *WaterService {
	return &WaterService{store: store}
}

func (service *WaterService) Intake(userID uint) (int, error) {
	return service.store.Get(userID)
}

func (service *WaterService) Add(userID uint, milliliters int) (int, error) {
	if milliliters <= 0 {
		return 0, ErrInvalidWaterAmount
	}
	current, err := service.store.Get(userID)
	if err != nil {
		return 0, err
	}
	total := current + milliliters
	if err := service.store.Set(userID, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (service *WaterService) Reset(userID uint) error {
	return service.store.Set(userID, 0)
}
