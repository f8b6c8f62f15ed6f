package apperror

import "errors"

var ErrOrderNotFound = errors.New("order not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidKitchenStatus = errors.New("invalid kitchen status")
var ErrConfigNotFound = errors.New("pos config not found")
var ErrDuplicateReference = errors.New("order reference already exists")
