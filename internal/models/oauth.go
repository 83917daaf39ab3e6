package models

import "time"

// OAuthAuthorization stores authorization tokens handed out during the auth
// flow, used to obtain access grants.
type OAuthAuthorization struct {
	Identity
	Timestamps

	Token string `gorm:"column:token;size:256" json:"token"`
}

func (OAuthAuthorization) TableName() string {
	return "oauth_auth"
}

// OAuthAccessGrant stores access tokens for API consumption. Expiry is pure
// data here; whether a grant is still valid is the consuming API layer's
// call.
type OAuthAccessGrant struct {
	Identity
	Timestamps
	Owned

	DateExpires *time.Time `gorm:"column:date_expires" json:"date_expires"`
	Grants      int64      `gorm:"column:grants" json:"grants"`
	Token       string     `gorm:"column:token;size:256" json:"token"`
}

func (OAuthAccessGrant) TableName() string {
	return "oauth_access"
}
