// Package model defines the serialized records persisted by the key-value store.
package model

import "github.com/ledgerly/backend/internal/domain/entity"

// UserRecord is the wire representation of the singleton user.
type UserRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UserFromEntity converts the domain User to its wire record.
func UserFromEntity(user *entity.User) UserRecord {
	return UserRecord{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Currency:  user.Currency,
		AvatarURL: user.AvatarURL,
	}
}

// ToEntity converts the wire record back to a domain User.
func (r UserRecord) ToEntity() *entity.User {
	return &entity.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Currency:  r.Currency,
		AvatarURL: r.AvatarURL,
	}
}
