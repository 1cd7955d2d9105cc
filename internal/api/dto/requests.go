package dto

// CreateNotificationRequest is the payload for submitting a notification.
// Channel validation happens here, at creation time; the dispatch table still
// fails closed on unknown names to avoid masking a validation gap.
type CreateNotificationRequest struct {
	UserID   int64    `json:"user_id" validate:"required"`
	Title    string   `json:"title" validate:"required,max=200"`
	Message  string   `json:"message" validate:"required"`
	Channels []string `json:"channels" validate:"required,min=1,dive,oneof=email sms push in_app"`
}

// CreateUserRequest is the payload for registering a recipient.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	FullName string `json:"full_name" validate:"omitempty,max=100"`
}
