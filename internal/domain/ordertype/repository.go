package ordertype

import "context"

type OrderTypeRepository interface {
	Create(ctx context.Context, t OrderType) (OrderType, error)
	GetByID(ctx context.Context, id string) (OrderType, error)
	GetByIDs(ctx context.Context, ids []string) ([]OrderType, error)
	GetAll(ctx context.Context, activeOnly bool) ([]OrderType, error)
	Update(ctx context.Context, t OrderType) error

	// Per-user settings
	UpsertUserSetting(ctx context.Context, s UserTypeSetting) (UserTypeSetting, error)
	GetUserSettings(ctx context.Context, userID *string) ([]UserTypeSetting, error)
}
