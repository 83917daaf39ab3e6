package models

// User is the primary account record. The secret key is stored encrypted
// under a per-record salt and is never serialized to clients. Users are
// never hard-deleted; removal goes through the audit-trail soft delete.
type User struct {
	Identity
	Timestamps
	AuditTrail

	Username      string `gorm:"column:username;size:256;uniqueIndex;not null" json:"username"`
	SecretKey     string `gorm:"column:secret_key;size:512" json:"-"`
	SecretKeySalt string `gorm:"column:secret_key_salt;size:32" json:"-"`
}

func (User) TableName() string {
	return "users"
}
