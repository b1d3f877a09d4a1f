package model

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type CreateRecurringOrderRequest struct {
	ItemID     string   `json:"item_id" validate:"required,uuid4"`
	Quantity   int      `json:"quantity" validate:"required,min=1"`
	FireTime   string   `json:"fire_time" validate:"required,firetime"`
	Rule       string   `json:"rule" validate:"required,oneof=daily weekdays custom"`
	CustomDays []string `json:"custom_days" validate:"required_if=Rule custom,omitempty,min=1,dive,weekday"`
}

type UpdateRecurringOrderRequest struct {
	ItemID     *string  `json:"item_id,omitempty" validate:"omitempty,uuid4"`
	Quantity   *int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
	FireTime   *string  `json:"fire_time,omitempty" validate:"omitempty,firetime"`
	Rule       *string  `json:"rule,omitempty" validate:"omitempty,oneof=daily weekdays custom"`
	CustomDays []string `json:"custom_days,omitempty" validate:"omitempty,min=1,dive,weekday"`
}
