package models

// PasswordPolicy enumerates password strength requirements.
type PasswordPolicy string

const (
	PasswordPolicyBasic  PasswordPolicy = "basic"
	PasswordPolicyMedium PasswordPolicy = "medium"
	PasswordPolicyStrong PasswordPolicy = "strong"
)

// GeneralSettings holds system-wide identity switches.
type GeneralSettings struct {
	SystemName      string `json:"system_name" yaml:"system_name" validate:"required,min=2"`
	AdminEmail      string `json:"admin_email" yaml:"admin_email" validate:"required,email"`
	MaintenanceMode bool   `json:"maintenance_mode" yaml:"maintenance_mode"`
	DarkMode        bool   `json:"dark_mode" yaml:"dark_mode"`
}

// NotificationSettings controls outbound notifications.
type NotificationSettings struct {
	EmailNotifications bool   `json:"email_notifications" yaml:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications" yaml:"sms_notifications"`
	MaintenanceAlerts  bool   `json:"maintenance_alerts" yaml:"maintenance_alerts"`
	NotificationEmail  string `json:"notification_email" yaml:"notification_email" validate:"omitempty,email"`
}

// SecuritySettings controls the login policy.
type SecuritySettings struct {
	TwoFactorAuth    bool           `json:"two_factor_auth" yaml:"two_factor_auth"`
	SessionTimeout   bool           `json:"session_timeout" yaml:"session_timeout"`
	PasswordPolicy   PasswordPolicy `json:"password_policy" yaml:"password_policy" validate:"required,oneof=basic medium strong"`
	MaxLoginAttempts int            `json:"max_login_attempts" yaml:"max_login_attempts" validate:"min=1,max=20"`
}

// SystemSettings aggregates every settings section.
type SystemSettings struct {
	General       GeneralSettings      `json:"general" yaml:"general"`
	Notifications NotificationSettings `json:"notifications" yaml:"notifications"`
	Security      SecuritySettings     `json:"security" yaml:"security"`
}
